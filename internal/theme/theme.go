// Package theme tracks the light/dark preference and tells subscribers when it
// changes, so the theme-color meta tag and the cookie stay in sync.
package theme

import "sync"

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

const (
	lightColor = "#ffffff"
	darkColor  = "#0a0a0a"
)

func Parse(s string) (Theme, bool) {
	switch Theme(s) {
	case Light, Dark:
		return Theme(s), true
	}
	return "", false
}

// Color is the value of the theme-color meta tag for t.
func Color(t Theme) string {
	if t == Dark {
		return darkColor
	}
	return lightColor
}

func (t Theme) Opposite() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

type Store struct {
	mu      sync.Mutex
	current Theme
	subs    map[int]func(Theme)
	nextID  int
}

func NewStore(initial Theme) *Store {
	if _, ok := Parse(string(initial)); !ok {
		initial = Dark
	}
	return &Store{current: initial, subs: make(map[int]func(Theme))}
}

func (s *Store) Current() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Set changes the theme. Subscribers are only notified on an actual change.
func (s *Store) Set(t Theme) {
	s.update(func(Theme) Theme { return t })
}

// Toggle flips the theme in one step and returns the new value.
func (s *Store) Toggle() Theme {
	return s.update(Theme.Opposite)
}

func (s *Store) update(next func(Theme) Theme) Theme {
	s.mu.Lock()
	t := next(s.current)
	if t == s.current {
		s.mu.Unlock()
		return t
	}
	s.current = t
	subs := make([]func(Theme), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(t)
	}
	return t
}

func (s *Store) Subscribe(fn func(Theme)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}
