package factory

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the factory registry.
var (
	// ErrCyclicDependency indicates an operation transitively depends on itself.
	ErrCyclicDependency = errors.New("factory: cyclic dependency")

	// ErrUnknownDependency indicates a dependency name with no registration.
	ErrUnknownDependency = errors.New("factory: unknown dependency")

	// ErrBuildFailed wraps an error returned by a builder.
	ErrBuildFailed = errors.New("factory: build failed")

	// ErrAlreadyDefined indicates a second registration under the same name.
	ErrAlreadyDefined = errors.New("factory: name already defined")

	// ErrBadFactory indicates an empty name, empty dependency name or nil builder.
	ErrBadFactory = errors.New("factory: invalid factory")

	// ErrMissingDependency indicates Deps access to a name that is not bound.
	ErrMissingDependency = errors.New("factory: dependency not bound")

	// ErrDependencyType indicates a bound dependency of an unexpected type.
	ErrDependencyType = errors.New("factory: dependency has unexpected type")
)

// CycleError names the dependency cycle, first element repeated at the end.
type CycleError struct {
	Cycle []string
}

// Error implements error.
func (e *CycleError) Error() string {
	return fmt.Sprintf("%v: %s", ErrCyclicDependency, strings.Join(e.Cycle, " -> "))
}

// Unwrap exposes ErrCyclicDependency to errors.Is.
func (e *CycleError) Unwrap() error { return ErrCyclicDependency }

// UnknownDependencyError names the missing dependency and who asked for it.
// RequiredBy is empty when the name was resolved directly.
type UnknownDependencyError struct {
	Name       string
	RequiredBy string
}

// Error implements error.
func (e *UnknownDependencyError) Error() string {
	if e.RequiredBy == "" {
		return fmt.Sprintf("%v: %q", ErrUnknownDependency, e.Name)
	}

	return fmt.Sprintf("%v: %q (required by %q)", ErrUnknownDependency, e.Name, e.RequiredBy)
}

// Unwrap exposes ErrUnknownDependency to errors.Is.
func (e *UnknownDependencyError) Unwrap() error { return ErrUnknownDependency }
