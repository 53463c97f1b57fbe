// Package widget models the stateful form controls of the contact page.
package widget

import "sync"

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Select struct {
	ID          string
	Label       string
	Placeholder string
	Options     []Option
}

// Has reports whether value is one of the select's options.
func (s Select) Has(value string) bool {
	for _, o := range s.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

// Registry tracks which Select is expanded. At most one is open at any time:
// opening one closes the previous one and reports it to the caller.
type Registry struct {
	mu   sync.Mutex
	open string
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Open expands id and returns the select it displaced, or "" when none was
// open.
func (r *Registry) Open(id string) (closed string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.open == id {
		return ""
	}
	closed, r.open = r.open, id
	return closed
}

// Close collapses id and reports whether it was open.
func (r *Registry) Close(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id == "" || r.open != id {
		return false
	}
	r.open = ""
	return true
}

// CloseAll handles an outside click. It returns the select that closed.
func (r *Registry) CloseAll() (closed string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	closed, r.open = r.open, ""
	return closed
}

// Toggle flips id and returns the select that closed as a result, if any.
func (r *Registry) Toggle(id string) (closed string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.open == id {
		r.open = ""
		return id
	}
	closed, r.open = r.open, id
	return closed
}

func (r *Registry) IsOpen(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return id != "" && r.open == id
}

// OpenID returns the open select, or "" when all are closed.
func (r *Registry) OpenID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.open
}
