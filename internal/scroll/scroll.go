// Package scroll remembers where a visitor was on a page so a reload can put
// them back. Restoration is advisory: content that is still lazy-loading can
// move the page after the position is applied.
package scroll

import (
	"errors"
	"math"
	"strings"
	"sync"
)

type NavigationType string

const (
	NavigationNavigate    NavigationType = "navigate"
	NavigationReload      NavigationType = "reload"
	NavigationBackForward NavigationType = "back_forward"
	NavigationPrerender   NavigationType = "prerender"
)

var ErrInvalidPosition = errors.New("invalid scroll position")

// ParseNavigationType accepts the Navigation Timing type names, including the
// hyphenated "back-forward" form. Unknown values read as a plain navigation.
func ParseNavigationType(s string) NavigationType {
	switch NavigationType(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")) {
	case NavigationReload:
		return NavigationReload
	case NavigationBackForward:
		return NavigationBackForward
	case NavigationPrerender:
		return NavigationPrerender
	default:
		return NavigationNavigate
	}
}

// Storage is the per-tab store the positions live in.
type Storage interface {
	Get(key string) (float64, bool)
	Set(key string, y float64)
	Delete(key string)
}

type MemoryStorage struct {
	mu     sync.Mutex
	values map[string]float64
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]float64)}
}

func (m *MemoryStorage) Get(key string) (float64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryStorage) Set(key string, y float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = y
}

func (m *MemoryStorage) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
}

type Restorer struct {
	storage Storage
}

func NewRestorer(s Storage) *Restorer {
	return &Restorer{storage: s}
}

// Save records y for path when the page is hidden or unloaded.
func (r *Restorer) Save(path string, y float64) error {
	if y < 0 || math.IsNaN(y) || math.IsInf(y, 0) {
		return ErrInvalidPosition
	}
	r.storage.Set(key(path), y)
	return nil
}

// Restore returns the saved position for path, but only when the page was
// reloaded. A regular navigation starts at the top and clears the entry.
func (r *Restorer) Restore(path string, nav NavigationType) (float64, bool) {
	k := key(path)
	if nav != NavigationReload {
		if nav == NavigationNavigate {
			r.storage.Delete(k)
		}
		return 0, false
	}
	return r.storage.Get(k)
}

func key(path string) string {
	if path == "" {
		path = "/"
	}
	return "scroll:" + path
}
