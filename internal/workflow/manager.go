package workflow

import (
	"sync"
	"time"

	"github.com/alpinetrips/skipack/internal/quote"
	"github.com/alpinetrips/skipack/internal/session"
	"github.com/google/uuid"
)

// DefaultSessionIdle is how long an untouched session survives before it
// becomes eligible for pruning.
const DefaultSessionIdle = 2 * time.Hour

type entry struct {
	ctrl     *Controller
	lastSeen time.Time
}

// Manager owns one controller (and selection store) per session id, so
// independent sessions never share mutable state. Idle sessions are
// pruned lazily on access; there is no background sweeper.
type Manager struct {
	mu      sync.Mutex
	engine  *quote.Engine
	idleTTL time.Duration
	entries map[string]*entry
}

func NewManager(engine *quote.Engine, idleTTL time.Duration) *Manager {
	if idleTTL <= 0 {
		idleTTL = DefaultSessionIdle
	}
	return &Manager{
		engine:  engine,
		idleTTL: idleTTL,
		entries: make(map[string]*entry),
	}
}

// GetOrCreate returns the controller for id, creating a fresh session when
// id is empty or unknown. The returned id identifies the session in either
// case.
func (m *Manager) GetOrCreate(id string) (string, *Controller) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pruneLocked(time.Now())

	if id != "" {
		if e, ok := m.entries[id]; ok {
			e.lastSeen = time.Now()
			return id, e.ctrl
		}
	}

	if id == "" {
		id = uuid.NewString()
	}
	ctrl := NewController(session.NewStore(), m.engine)
	m.entries[id] = &entry{ctrl: ctrl, lastSeen: time.Now()}
	return id, ctrl
}

// Get returns the controller for id, or nil when the session is unknown.
func (m *Manager) Get(id string) *Controller {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[id]
	if !ok {
		return nil
	}
	e.lastSeen = time.Now()
	return e.ctrl
}

// Drop removes the session entirely.
func (m *Manager) Drop(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, id)
}

func (m *Manager) pruneLocked(now time.Time) {
	for id, e := range m.entries {
		if now.Sub(e.lastSeen) > m.idleTTL {
			delete(m.entries, id)
		}
	}
}
