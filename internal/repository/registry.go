package repository

import (
	"fmt"
	"sort"

	"logrange-backend/internal/model"
)

// Registry maps a store name to its adapter. It is filled once at startup.
type Registry struct {
	adapters map[string]StoreAdapter
}

func NewRegistry() *Registry {
	return &Registry{adapters: make(map[string]StoreAdapter)}
}

// Register adds an adapter under name, wrapped by the limiter.
func (r *Registry) Register(name string, adapter StoreAdapter, limiter ResultLimiter) {
	r.adapters[name] = limiter.Wrap(name, adapter)
}

func (r *Registry) Get(name string) (StoreAdapter, error) {
	adapter, ok := r.adapters[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownStore, name)
	}
	return adapter, nil
}

// Names returns the registered store names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.adapters))
	for name := range r.adapters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
