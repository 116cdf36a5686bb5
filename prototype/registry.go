package prototype

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrRegistryPanic is returned if cloning a registered prototype panics.
var ErrRegistryPanic = errors.New("registry: panic during Resolve")

// Registry keeps named prototypes and hands out clones of them.
//
// Stored prototypes are never returned directly, so callers cannot mutate
// the registered originals.
//
// Expected usage:
//
//	reg := prototype.NewRegistry[*prototype.Sheep]().
//		Provide("lazy", prototype.NewSheep("lazySheep"))
//	s, ok := reg.Get("lazy")
type Registry[T Prototype[T]] struct {
	items map[string]T
}

func NewRegistry[T Prototype[T]]() *Registry[T] {
	return &Registry[T]{items: map[string]T{}}
}

// Provide stores proto under key and returns the registry for chaining.
func (r *Registry[T]) Provide(key string, proto T) *Registry[T] {
	r.items[key] = proto
	return r
}

// Get returns a clone of the prototype stored under key.
func (r *Registry[T]) Get(key string) (T, bool) {
	p, ok := r.items[key]
	if !ok {
		var zero T
		return zero, false
	}
	return p.Clone(), true
}

// Resolve is Get but converts panics (from the registry or from Clone) into errors.
func (r *Registry[T]) Resolve(key string) (val T, ok bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			var zero T
			val = zero
			ok = false
			err = fmt.Errorf("%w: %v", ErrRegistryPanic, rec)
		}
	}()

	val, ok = r.Get(key)
	return val, ok, nil
}

// MustGet returns a clone of the prototype under key or panics with a helpful message.
func (r *Registry[T]) MustGet(key string) T {
	v, ok := r.Get(key)
	if !ok {
		panic(fmt.Errorf("prototype: registry missing key %q", key))
	}
	return v
}

// Keys returns the registered keys in sorted order.
func (r *Registry[T]) Keys() []string {
	return slices.Sorted(maps.Keys(r.items))
}
