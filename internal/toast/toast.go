// Package toast keeps the short-lived notifications shown to a visitor.
//
// A Queue owns its toasts: finite toasts are removed automatically once their
// duration elapses, Infinite ones stay until dismissed.
package toast

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Infinite marks a toast that is only removed by an explicit Dismiss.
const Infinite time.Duration = -1

const (
	DefaultDuration = 5 * time.Second
	DefaultLimit    = 5
)

type Action struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type Toast struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Variant     Variant       `json:"variant"`
	Duration    time.Duration `json:"duration"`
	Action      *Action       `json:"action,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
}

func (t Toast) Persistent() bool {
	return t.Duration == Infinite
}

type EventType int

const (
	EventAdded EventType = iota
	EventRemoved
)

type Event struct {
	Type  EventType
	Toast Toast
}

type Timer interface {
	Stop() bool
}

type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

type Option func(*Queue)

func WithClock(c Clock) Option {
	return func(q *Queue) { q.clock = c }
}

// WithLimit caps the number of visible toasts; the oldest is dropped first.
func WithLimit(n int) Option {
	return func(q *Queue) {
		if n > 0 {
			q.limit = n
		}
	}
}

type entry struct {
	toast Toast
	timer Timer
}

type Queue struct {
	mu      sync.Mutex
	clock   Clock
	limit   int
	entries []*entry
	subs    map[int]func(Event)
	nextSub int
	closed  bool
}

func NewQueue(opts ...Option) *Queue {
	q := &Queue{
		clock: realClock{},
		limit: DefaultLimit,
		subs:  make(map[int]func(Event)),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Push enqueues t and returns it with ID, variant, duration and creation time
// filled in.
func (q *Queue) Push(t Toast) Toast {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Variant == "" {
		t.Variant = VariantDefault
	}
	if t.Duration == 0 {
		t.Duration = DefaultDuration
	}
	t.CreatedAt = q.clock.Now()

	var events []Event

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return t
	}
	e := &entry{toast: t}
	if !t.Persistent() {
		e.timer = q.clock.AfterFunc(t.Duration, func() { q.expire(e) })
	}
	q.entries = append(q.entries, e)
	events = append(events, Event{Type: EventAdded, Toast: t})
	for len(q.entries) > q.limit {
		dropped := q.entries[0]
		q.entries = q.entries[1:]
		stopTimer(dropped)
		events = append(events, Event{Type: EventRemoved, Toast: dropped.toast})
	}
	subs := q.subscribers()
	q.mu.Unlock()

	notify(subs, events...)
	return t
}

// Dismiss removes the toast early. It reports whether the toast was present.
func (q *Queue) Dismiss(id string) bool {
	q.mu.Lock()
	e := q.removeLocked(func(e *entry) bool { return e.toast.ID == id })
	subs := q.subscribers()
	q.mu.Unlock()

	if e == nil {
		return false
	}
	stopTimer(e)
	notify(subs, Event{Type: EventRemoved, Toast: e.toast})
	return true
}

func (q *Queue) expire(want *entry) {
	q.mu.Lock()
	e := q.removeLocked(func(e *entry) bool { return e == want })
	subs := q.subscribers()
	q.mu.Unlock()

	if e != nil {
		notify(subs, Event{Type: EventRemoved, Toast: e.toast})
	}
}

// List returns the visible toasts, oldest first.
func (q *Queue) List() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]Toast, 0, len(q.entries))
	for _, e := range q.entries {
		out = append(out, e.toast)
	}
	return out
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}

// Subscribe registers fn for add/remove events. Callbacks run outside the
// queue lock and may call back into the queue.
func (q *Queue) Subscribe(fn func(Event)) (unsubscribe func()) {
	q.mu.Lock()
	id := q.nextSub
	q.nextSub++
	q.subs[id] = fn
	q.mu.Unlock()

	return func() {
		q.mu.Lock()
		delete(q.subs, id)
		q.mu.Unlock()
	}
}

// Close stops all pending timers and drops every toast without notifying.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, e := range q.entries {
		stopTimer(e)
	}
	q.entries = nil
	q.closed = true
}

func (q *Queue) removeLocked(match func(*entry) bool) *entry {
	for i, e := range q.entries {
		if match(e) {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			return e
		}
	}
	return nil
}

func (q *Queue) subscribers() []func(Event) {
	out := make([]func(Event), 0, len(q.subs))
	for _, fn := range q.subs {
		out = append(out, fn)
	}
	return out
}

func stopTimer(e *entry) {
	if e.timer != nil {
		e.timer.Stop()
	}
}

func notify(subs []func(Event), events ...Event) {
	for _, ev := range events {
		for _, fn := range subs {
			fn(ev)
		}
	}
}
