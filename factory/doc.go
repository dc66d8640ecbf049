// Package factory is the dependency-injection convention of typedmath: every
// operation is declared as a Factory (name, dependency names, builder) and
// materialised lazily by a Registry the first time something resolves it.
//
// Lifecycle:
//
//	r := factory.NewRegistry()
//	_ = r.Provide("config", store)          // static bindings (leaves)
//	_ = r.Provide("typed", typed.New())
//	_ = r.Register(relational.EqualScalar)   // records the descriptor only
//	fn, err := r.Resolve("equalScalar")      // plans, then builds once
//
// Guarantees:
//
//   - Define/Register only record descriptors; nothing is built eagerly.
//   - Resolve plans the whole transitive graph (three-colour DFS) before any
//     builder runs: a cycle yields *CycleError (ErrCyclicDependency), a
//     missing name *UnknownDependencyError (ErrUnknownDependency).
//   - Each factory is built at most once per scope; later Resolve calls
//     return the identical cached value.
//   - Dependencies written "?name" are optional: absent names are skipped
//     and the builder sees Has(name) == false.
//   - Builder failures wrap ErrBuildFailed and are not cached.
//   - A new configuration scope is a Fork (fresh cache, same descriptors) or
//     an explicit Invalidate; built values are never mutated in place.
//
// Concurrency: one mutex serialises resolve-or-build, so concurrent first
// resolutions of the same name observe one instance. Builders receive their
// dependencies through Deps and must not call back into the Registry.
package factory
