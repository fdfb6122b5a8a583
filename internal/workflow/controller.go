package workflow

import (
	"sync"

	"github.com/alpinetrips/skipack/internal/domain"
	"github.com/alpinetrips/skipack/internal/quote"
	"github.com/alpinetrips/skipack/internal/session"
)

// Step is one stage of the package builder.
type Step string

const (
	StepFlight   Step = "flight"
	StepHotel    Step = "hotel"
	StepTransfer Step = "transfer"
	StepReview   Step = "review"
)

// ParseStep maps a wire value to a Step.
func ParseStep(s string) (Step, bool) {
	switch Step(s) {
	case StepFlight, StepHotel, StepTransfer, StepReview:
		return Step(s), true
	}
	return "", false
}

// Controller sequences the package builder steps for one session and keeps
// the stored quote synchronized with the selection: every mutation either
// recomputes the quote (complete selection) or drops it (incomplete).
// There is no terminal step; Review persists until checkout resets the
// machine.
type Controller struct {
	mu     sync.Mutex
	store  *session.Store
	engine *quote.Engine
	step   Step
}

func NewController(store *session.Store, engine *quote.Engine) *Controller {
	return &Controller{store: store, engine: engine, step: StepFlight}
}

// SelectFlight replaces the flight leg. Selecting from the flight step
// advances to the hotel step; re-selecting from a later step stays put.
func (c *Controller) SelectFlight(f *domain.Flight) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.SetFlight(f)
	if c.step == StepFlight {
		c.step = StepHotel
	}
	c.recompute()
}

func (c *Controller) SelectHotel(h *domain.Hotel) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.SetHotel(h)
	if c.step == StepHotel {
		c.step = StepTransfer
	}
	c.recompute()
}

func (c *Controller) SelectTransfer(t *domain.Transfer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.SetTransfer(t)
	if c.step == StepTransfer {
		c.step = StepReview
	}
	c.recompute()
}

// SetPassengerCount forwards to the store and reports whether the value
// was accepted. An accepted change on a complete selection recomputes the
// quote; a rejected one leaves both count and quote untouched.
func (c *Controller) SetPassengerCount(n int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.store.SetPassengerCount(n) {
		return false
	}
	c.recompute()
	return true
}

// Navigate moves to target if its prior legs are already selected; a user
// cannot jump ahead of completed work. Entering Review re-derives the
// quote so the rendered snapshot is fresh.
func (c *Controller) Navigate(target Step) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.reachable(target) {
		return domain.ErrStepLocked
	}
	c.step = target
	if target == StepReview {
		c.recompute()
	}
	return nil
}

func (c *Controller) reachable(target Step) bool {
	sel := c.store.Snapshot()
	switch target {
	case StepFlight:
		return true
	case StepHotel:
		return sel.Flight != nil
	case StepTransfer:
		return sel.Flight != nil && sel.Hotel != nil
	case StepReview:
		return sel.Complete()
	}
	return false
}

// Step returns the current builder step.
func (c *Controller) Step() Step {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step
}

// State returns the current step, selection snapshot and quote (nil when
// the selection is incomplete).
func (c *Controller) State() (Step, session.Selection, *domain.PackageQuote) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step, c.store.Snapshot(), c.store.Quote()
}

func (c *Controller) Quote() *domain.PackageQuote {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Quote()
}

func (c *Controller) Selection() session.Selection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Snapshot()
}

// Reset clears the selection and returns the machine to the flight step,
// for the next package build after checkout or an explicit clear.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.Clear()
	c.step = StepFlight
}

// recompute must be called with the lock held after every mutation.
func (c *Controller) recompute() {
	sel := c.store.Snapshot()
	if !sel.Complete() {
		c.store.SetQuote(nil)
		return
	}
	c.store.SetQuote(c.engine.Compute(sel))
}
