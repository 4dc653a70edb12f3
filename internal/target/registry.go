package target

import (
	"fmt"

	"crateup/internal/config"
)

// Registry manages the ordered collection of install targets.
// Order is declaration order from the configuration: the primary target
// first, then plugins as declared. There is no dependency graph; the
// declared order is the install order.
type Registry struct {
	ordered []*Target
	byName  map[string]*Target
}

// NewRegistry creates a registry from configuration, preserving target order.
func NewRegistry(cfg *config.Config) (*Registry, error) {
	r := &Registry{
		byName: make(map[string]*Target, len(cfg.Targets)),
	}

	for _, targetCfg := range cfg.Targets {
		t, err := NewTarget(targetCfg)
		if err != nil {
			return nil, fmt.Errorf("target %q: %w", targetCfg.Name, err)
		}
		if _, exists := r.byName[t.Name()]; exists {
			return nil, fmt.Errorf("duplicate target name %q", t.Name())
		}
		r.ordered = append(r.ordered, t)
		r.byName[t.Name()] = t
	}

	return r, nil
}

// Get retrieves a target by name.
func (r *Registry) Get(name string) (*Target, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// All returns all targets in declaration order.
func (r *Registry) All() []*Target {
	result := make([]*Target, len(r.ordered))
	copy(result, r.ordered)
	return result
}

// Names returns all target names in declaration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.ordered))
	for i, t := range r.ordered {
		names[i] = t.Name()
	}
	return names
}

// Len returns the number of targets.
func (r *Registry) Len() int {
	return len(r.ordered)
}

// Select returns the named targets in declaration order (not request order).
// Returns an error if any name is unknown.
func (r *Registry) Select(names []string) ([]*Target, error) {
	requested := make(map[string]bool, len(names))
	for _, name := range names {
		if _, ok := r.byName[name]; !ok {
			return nil, fmt.Errorf("target not found: %s", name)
		}
		requested[name] = true
	}

	var result []*Target
	for _, t := range r.ordered {
		if requested[t.Name()] {
			result = append(result, t)
		}
	}
	return result, nil
}
