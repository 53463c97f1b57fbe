package toast

import (
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTimer struct {
	clock   *fakeClock
	at      time.Time
	fn      func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{clock: c, at: c.now.Add(d), fn: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves time forward and fires due timers in order.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	var due []*fakeTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired && !t.at.After(c.now) {
			t.fired = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()

	sort.Slice(due, func(i, j int) bool { return due[i].at.Before(due[j].at) })
	for _, t := range due {
		t.fn()
	}
}

func TestPushFillsDefaults(t *testing.T) {
	q := NewQueue(WithClock(newFakeClock()))

	got := q.Push(Toast{Title: "Hello"})
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, VariantDefault, got.Variant)
	assert.Equal(t, DefaultDuration, got.Duration)
	assert.False(t, got.CreatedAt.IsZero())
	assert.Equal(t, 1, q.Len())
}

func TestFiniteToastExpires(t *testing.T) {
	clock := newFakeClock()
	q := NewQueue(WithClock(clock))

	q.Push(Toast{Title: "Sent", Duration: 8 * time.Second})
	clock.Advance(7 * time.Second)
	assert.Equal(t, 1, q.Len())

	clock.Advance(time.Second)
	assert.Equal(t, 0, q.Len())
}

func TestInfiniteToastPersistsUntilDismissed(t *testing.T) {
	clock := newFakeClock()
	q := NewQueue(WithClock(clock))

	tt := q.Push(Toast{Title: "Book a call", Duration: Infinite})
	clock.Advance(24 * time.Hour)
	require.Equal(t, 1, q.Len())

	assert.True(t, q.Dismiss(tt.ID))
	assert.Equal(t, 0, q.Len())
	assert.False(t, q.Dismiss(tt.ID))
}

func TestDismissStopsTimer(t *testing.T) {
	clock := newFakeClock()
	q := NewQueue(WithClock(clock))

	var removed int
	q.Subscribe(func(ev Event) {
		if ev.Type == EventRemoved {
			removed++
		}
	})

	tt := q.Push(Toast{Title: "x", Duration: time.Second})
	q.Dismiss(tt.ID)
	clock.Advance(time.Minute)

	assert.Equal(t, 1, removed)
}

func TestLimitDropsOldest(t *testing.T) {
	q := NewQueue(WithClock(newFakeClock()), WithLimit(2))

	q.Push(Toast{ID: "a", Title: "a"})
	q.Push(Toast{ID: "b", Title: "b"})
	q.Push(Toast{ID: "c", Title: "c"})

	list := q.List()
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ID)
	assert.Equal(t, "c", list[1].ID)
}

func TestSubscribeAndUnsubscribe(t *testing.T) {
	q := NewQueue(WithClock(newFakeClock()))

	var events []Event
	unsubscribe := q.Subscribe(func(ev Event) { events = append(events, ev) })

	tt := q.Push(Toast{Title: "one"})
	q.Dismiss(tt.ID)
	unsubscribe()
	q.Push(Toast{Title: "two"})

	require.Len(t, events, 2)
	assert.Equal(t, EventAdded, events[0].Type)
	assert.Equal(t, EventRemoved, events[1].Type)
	assert.Equal(t, tt.ID, events[1].Toast.ID)
}

func TestCloseDropsEverything(t *testing.T) {
	clock := newFakeClock()
	q := NewQueue(WithClock(clock))
	q.Push(Toast{Title: "a"})
	q.Close()

	assert.Equal(t, 0, q.Len())
	q.Push(Toast{Title: "after close"})
	assert.Equal(t, 0, q.Len())
}

func TestRealClockExpiry(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	q.Push(Toast{Title: "quick", Duration: 10 * time.Millisecond})
	assert.Eventually(t, func() bool { return q.Len() == 0 }, time.Second, 5*time.Millisecond)
}
