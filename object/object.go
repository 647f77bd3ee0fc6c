package object

import (
	"sort"
	"sync"
)

// Object is the contract a host-managed dynamic object must provide. The
// accessor layer only borrows the object for the duration of a single call; it
// never owns, allocates, or frees host objects.
type Object interface {
	// Get reads the value at prop. An absent slot reads as the undefined
	// value, not an error.
	Get(prop string) (Value, error)

	// Set overwrites the slot unconditionally and reports whether the write
	// defined a previously-absent property.
	Set(prop string, value Value) (bool, error)

	// Delete removes the slot and reports whether a property existed.
	Delete(prop string) (bool, error)
}

// Enumerable is an Object whose property names can be listed. The map-backed
// implementation satisfies it; host stores that cannot enumerate simply don't.
type Enumerable interface {
	Object
	Keys() []string
}

// MapObject is a map-backed Object. It stands in for a host store in tests,
// and backs documents loaded by the store layer. Individual calls are safe
// for concurrent use; multi-call sequences that must be atomic (a batch
// write, for instance) still need external synchronization.
type MapObject struct {
	mu    sync.RWMutex
	props map[string]Value
}

func NewMapObject() *MapObject {
	return &MapObject{props: make(map[string]Value)}
}

func (m *MapObject) Get(prop string) (Value, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.props[prop]
	if !ok {
		return Undefined(), nil
	}
	return v, nil
}

func (m *MapObject) Set(prop string, value Value) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, exists := m.props[prop]
	m.props[prop] = value
	return !exists, nil
}

func (m *MapObject) Delete(prop string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, exists := m.props[prop]
	delete(m.props, prop)
	return exists, nil
}

// Keys returns the property names in sorted order.
func (m *MapObject) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.props))
	for k := range m.props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m *MapObject) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.props)
}

// Dump materializes an enumerable object as a plain map, suitable for JSON
// encoding.
func Dump(o Enumerable) (map[string]interface{}, error) {
	out := make(map[string]interface{})
	for _, k := range o.Keys() {
		v, err := o.Get(k)
		if err != nil {
			return nil, err
		}
		out[k] = v.Interface()
	}
	return out, nil
}
