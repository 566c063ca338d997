package di

import (
	"errors"
	"fmt"
	"sort"
)

// Registry supplies named components to a Container.
//
// It is intentionally:
// - read-only
// - side effect free
// - build-time only
//
// cfg is the definition being materialized when the lookup happens (a
// *beans.Definition, or nil for top-level lookups). Registries may ignore it.
//
// Expected usage:
//
//	val, ok, err := reg.Resolve(def, "conversionService")
type Registry interface {
	Resolve(cfg any, key string) (val any, ok bool, err error)
}

// ErrRegistryPanic is returned if a registry implementation panics internally.
var ErrRegistryPanic = errors.New("registry: panic during Resolve")

// MapRegistry is a simple in-memory registry keyed by bean name.
// It ignores cfg.
type MapRegistry struct {
	items map[string]any
}

func NewMapRegistry() *MapRegistry {
	return &MapRegistry{items: map[string]any{}}
}

// Provide registers val under name and returns the registry for chaining.
func (r *MapRegistry) Provide(name string, val any) *MapRegistry {
	r.items[name] = val
	return r
}

// Resolve implements Registry and converts panics into errors.
func (r *MapRegistry) Resolve(_ any, key string) (val any, ok bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			val = nil
			ok = false
			err = fmt.Errorf("%w: %v", ErrRegistryPanic, rec)
		}
	}()

	v, ok := r.items[key]
	return v, ok, nil
}

// Get returns the value if present (no panic).
func (r *MapRegistry) Get(name string) (any, bool) {
	v, ok := r.items[name]
	return v, ok
}

// MustGet returns the value or panics with a helpful message.
func (r *MapRegistry) MustGet(name string) any {
	v, ok := r.items[name]
	if !ok {
		panic(fmt.Errorf("di: registry missing bean %q", name))
	}
	return v
}

// Names returns the registered bean names in sorted order.
func (r *MapRegistry) Names() []string {
	names := make([]string, 0, len(r.items))
	for k := range r.items {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
