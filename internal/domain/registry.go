package domain

import "github.com/samber/lo"

// Registry is the ordered manifest of registered modules. Order is deployment
// order: add appends, remove deletes in place, neither reorders survivors.
type Registry struct {
	Contents []ModuleDescriptor `json:"contents"`
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{Contents: []ModuleDescriptor{}}
}

// Contains reports whether a descriptor with the same identity key exists.
func (r *Registry) Contains(d ModuleDescriptor) bool {
	return lo.ContainsBy(r.Contents, func(e ModuleDescriptor) bool {
		return e.Key() == d.Key()
	})
}

// Append adds a descriptor at the end. Returns ErrAlreadyRegistered if the
// identity key is taken.
func (r *Registry) Append(d ModuleDescriptor) error {
	if r.Contains(d) {
		return ErrAlreadyRegistered
	}
	r.Contents = append(r.Contents, d)
	return nil
}

// Remove deletes the descriptor matching d's identity key, preserving the
// order of all other entries. Returns ErrNotRegistered if absent.
func (r *Registry) Remove(d ModuleDescriptor) error {
	if !r.Contains(d) {
		return ErrNotRegistered
	}
	r.Contents = lo.Filter(r.Contents, func(e ModuleDescriptor, _ int) bool {
		return e.Key() != d.Key()
	})
	return nil
}

// Len returns the number of registered modules.
func (r *Registry) Len() int {
	return len(r.Contents)
}
