package registry

import (
	"errors"
	"slices"
)

var ErrDuplicateKey = errors.New("duplicate key")

// Registry is a keyed collection that remembers insertion order.
type Registry[V any] struct {
	keys   []string
	values map[string]V
}

func New[V any]() *Registry[V] {
	return &Registry[V]{
		keys:   []string{},
		values: make(map[string]V),
	}
}

func (r *Registry[V]) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

func (r *Registry[V]) Get(key string) (V, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Put adds a new entry. An existing key is left untouched.
func (r *Registry[V]) Put(key string, value V) error {
	if r.Has(key) {
		return ErrDuplicateKey
	}

	r.keys = append(r.keys, key)
	r.values[key] = value

	return nil
}

func (r *Registry[V]) Remove(key string) {
	if !r.Has(key) {
		return
	}

	delete(r.values, key)
	r.keys = slices.DeleteFunc(r.keys, func(k string) bool { return k == key })
}

func (r *Registry[V]) Len() int {
	return len(r.keys)
}

func (r *Registry[V]) Keys() []string {
	return slices.Clone(r.keys)
}

func (r *Registry[V]) Values() []V {
	values := make([]V, 0, len(r.keys))
	for _, key := range r.keys {
		values = append(values, r.values[key])
	}
	return values
}
