package workflow

import (
	"testing"
	"time"

	"github.com/alpinetrips/skipack/internal/quote"
	"github.com/stretchr/testify/assert"
)

func TestManager_SessionsAreIndependent(t *testing.T) {
	m := NewManager(quote.NewEngine(quote.DefaultStayNights, quote.DefaultTTL), time.Hour)

	idA, ctrlA := m.GetOrCreate("")
	idB, ctrlB := m.GetOrCreate("")

	assert.NotEqual(t, idA, idB)
	assert.NotSame(t, ctrlA, ctrlB)

	ctrlA.SelectFlight(flightToGVA())
	assert.Equal(t, StepHotel, ctrlA.Step())
	assert.Equal(t, StepFlight, ctrlB.Step())
}

func TestManager_GetOrCreate_ReturnsSameController(t *testing.T) {
	m := NewManager(quote.NewEngine(quote.DefaultStayNights, quote.DefaultTTL), time.Hour)

	id, ctrl := m.GetOrCreate("")
	_, again := m.GetOrCreate(id)
	assert.Same(t, ctrl, again)

	assert.Same(t, ctrl, m.Get(id))
	assert.Nil(t, m.Get("unknown"))
}

func TestManager_Drop(t *testing.T) {
	m := NewManager(quote.NewEngine(quote.DefaultStayNights, quote.DefaultTTL), time.Hour)

	id, _ := m.GetOrCreate("")
	m.Drop(id)
	assert.Nil(t, m.Get(id))
}
