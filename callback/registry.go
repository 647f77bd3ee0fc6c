// Package callback provides a registry for one-shot callbacks: each
// registration is keyed by an opaque id and discarded on first invocation.
package callback

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// ID is an opaque registration key.
type ID string

// Func is a registered callback. Args carry whatever the invoking layer
// forwards from the host event.
type Func func(args ...interface{}) (interface{}, error)

// Registry holds one-shot callbacks. Safe for concurrent use.
type Registry struct {
	mu        sync.Mutex
	callbacks map[ID]Func
}

func NewRegistry() *Registry {
	return &Registry{callbacks: make(map[ID]Func)}
}

// Register stores the callback and returns its id.
func (r *Registry) Register(fn Func) ID {
	id := ID(uuid.NewString())
	r.mu.Lock()
	r.callbacks[id] = fn
	r.mu.Unlock()
	return id
}

// InvokeAndRemove removes the registration, then invokes it. A second call
// with the same id reports an unknown id; the callback itself runs outside
// the registry lock.
func (r *Registry) InvokeAndRemove(id ID, args ...interface{}) (interface{}, error) {
	r.mu.Lock()
	fn, ok := r.callbacks[id]
	if ok {
		delete(r.callbacks, id)
	}
	r.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("unknown callback id: %s", id)
	}
	return fn(args...)
}

// Remove discards a registration without invoking it.
func (r *Registry) Remove(id ID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.callbacks[id]
	delete(r.callbacks, id)
	return ok
}

// Len reports the number of live registrations.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.callbacks)
}
