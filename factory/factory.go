package factory

import (
	"fmt"
	"strings"
)

// optionalPrefix marks a dependency that may be absent.
const optionalPrefix = "?"

// CreateFunc builds one operation from its resolved dependencies.
type CreateFunc func(deps Deps) (any, error)

// Factory is a deferred, dependency-declaring constructor.
type Factory struct {
	Name         string
	Dependencies []string
	Create       CreateFunc
}

// New returns a Factory. The dependency slice is copied.
func New(name string, dependencies []string, create CreateFunc) Factory {
	return Factory{
		Name:         name,
		Dependencies: append([]string(nil), dependencies...),
		Create:       create,
	}
}

// validate checks the descriptor shape.
func (f Factory) validate() error {
	if f.Name == "" || strings.HasPrefix(f.Name, optionalPrefix) {
		return fmt.Errorf("%w: bad name %q", ErrBadFactory, f.Name)
	}
	if f.Create == nil {
		return fmt.Errorf("%w: %s: nil builder", ErrBadFactory, f.Name)
	}
	for _, d := range f.Dependencies {
		if name, _ := splitDep(d); name == "" {
			return fmt.Errorf("%w: %s: empty dependency name", ErrBadFactory, f.Name)
		}
	}

	return nil
}

// splitDep strips the optional marker.
func splitDep(dep string) (name string, optional bool) {
	if strings.HasPrefix(dep, optionalPrefix) {
		return strings.TrimPrefix(dep, optionalPrefix), true
	}

	return dep, false
}

// Deps is the set of resolved dependencies handed to a builder. Only names
// the factory declared are present.
type Deps struct {
	owner  string
	values map[string]any
	names  []string
}

// Get returns the dependency bound to name, or nil.
func (d Deps) Get(name string) any { return d.values[name] }

// Has reports whether name is bound (optional dependencies may not be).
func (d Deps) Has(name string) bool {
	_, ok := d.values[name]
	return ok
}

// Names returns the bound dependency names in declaration order.
func (d Deps) Names() []string { return append([]string(nil), d.names...) }

// Dep returns the dependency bound to name as T.
func Dep[T any](d Deps, name string) (T, error) {
	var zero T
	raw, ok := d.values[name]
	if !ok {
		return zero, fmt.Errorf("%w: %s needs %q", ErrMissingDependency, d.owner, name)
	}
	v, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s: %q is %T, want %T", ErrDependencyType, d.owner, name, raw, zero)
	}

	return v, nil
}

// Names the host binds with Provide before any catalog factory resolves.
const (
	// TypedName holds the shared *typed.Builder.
	TypedName = "typed"
	// ConfigName holds the config.Provider read at call time.
	ConfigName = "config"
)
