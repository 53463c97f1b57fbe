package widget

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpeningOneSelectClosesTheOther(t *testing.T) {
	r := NewRegistry()

	assert.Equal(t, "", r.Open(SelectTimeline))
	assert.True(t, r.IsOpen(SelectTimeline))

	assert.Equal(t, SelectTimeline, r.Open(SelectBudget))
	assert.False(t, r.IsOpen(SelectTimeline))
	assert.Equal(t, SelectBudget, r.OpenID())

	assert.Equal(t, "", r.Open(SelectBudget), "reopening is a no-op")
	assert.Equal(t, SelectBudget, r.Open(SelectConsultation))
}

func TestToggleAndCloseAll(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, "", r.Toggle("a"))
	assert.True(t, r.IsOpen("a"))
	assert.Equal(t, "a", r.Toggle("b"))
	assert.Equal(t, "b", r.Toggle("b"))
	assert.Equal(t, "", r.OpenID())

	r.Open("c")
	assert.Equal(t, "c", r.CloseAll())
	assert.Equal(t, "", r.CloseAll())
	assert.Equal(t, "", r.OpenID())
}

func TestCloseOnlyClosesTheOpenSelect(t *testing.T) {
	r := NewRegistry()
	r.Open("a")
	assert.False(t, r.Close("b"))
	assert.True(t, r.IsOpen("a"))
	assert.True(t, r.Close("a"))
	assert.False(t, r.Close("a"))
}

func TestConcurrentTogglesKeepAtMostOneOpen(t *testing.T) {
	r := NewRegistry()
	ids := []string{SelectTimeline, SelectBudget, SelectConsultation}

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			r.Toggle(id)
		}(ids[i%len(ids)])
	}
	wg.Wait()

	open := 0
	for _, id := range ids {
		if r.IsOpen(id) {
			open++
		}
	}
	assert.LessOrEqual(t, open, 1)
}

func TestRegistriesAreIndependent(t *testing.T) {
	a, b := NewRegistry(), NewRegistry()
	a.Open("x")
	b.Open("y")
	assert.True(t, a.IsOpen("x"))
	assert.True(t, b.IsOpen("y"))
}

func TestSelectHas(t *testing.T) {
	assert.True(t, ConsultationSelect.Has("Yes"))
	assert.False(t, ConsultationSelect.Has("Maybe"))
	assert.True(t, BudgetSelect.Has("$10k+"))
}
