// Package observe holds the change-listener registry shared by the
// preference stores and the host signals.
package observe

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// IDPrefix prefixes listener identifiers
const IDPrefix = "lsn-"

// Registry keeps callbacks in registration order. The zero value is ready
// to use and safe for concurrent use.
type Registry[T any] struct {
	mu    sync.Mutex
	order []string
	fns   map[string]func(T)
}

// Add registers fn and returns its id and a remove function.
// Calling remove more than once is harmless.
func (r *Registry[T]) Add(fn func(T)) (string, func()) {
	id := generateID()

	r.mu.Lock()
	if r.fns == nil {
		r.fns = make(map[string]func(T))
	}
	r.fns[id] = fn
	r.order = append(r.order, id)
	r.mu.Unlock()

	var once sync.Once
	return id, func() {
		once.Do(func() { r.remove(id) })
	}
}

func (r *Registry[T]) remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.fns[id]; !ok {
		return
	}
	delete(r.fns, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of registered callbacks
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.fns)
}

// Notify calls every registered callback with v. Callbacks run without the
// registry lock held, so they may add or remove listeners; one removed
// during delivery is skipped.
func (r *Registry[T]) Notify(v T) {
	r.mu.Lock()
	ids := append([]string(nil), r.order...)
	r.mu.Unlock()

	for _, id := range ids {
		r.mu.Lock()
		fn, ok := r.fns[id]
		r.mu.Unlock()
		if ok {
			fn(v)
		}
	}
}

// generateID uses UUID v7 so ids sort by creation time
func generateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(IDPrefix+"%d", time.Now().UnixNano())
	}
	return IDPrefix + id.String()
}
