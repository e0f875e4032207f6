// core/guide/registry.go
package guide

import (
	"sync"

	"bedesign-core/pam"
)

// Registry remembers every accepted spacer together with its reverse
// complement, so a target is emitted once whichever strand finds it first.
// It is safe for concurrent use.
type Registry struct {
	mu   sync.Mutex
	seen map[string]struct{}
	n    int
}

func NewRegistry() *Registry {
	return &Registry{seen: make(map[string]struct{})}
}

// Admit registers spacer and reports true, unless spacer or its reverse
// complement was admitted before.
func (r *Registry) Admit(spacer string) bool {
	rc := pam.RevCompString(spacer)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.seen[spacer]; ok {
		return false
	}
	if _, ok := r.seen[rc]; ok {
		return false
	}
	r.seen[spacer] = struct{}{}
	r.seen[rc] = struct{}{}
	r.n++
	return true
}

// Contains reports whether spacer (in either orientation) was admitted.
func (r *Registry) Contains(spacer string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.seen[spacer]
	return ok
}

// Len is the number of admitted spacers.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.n
}
