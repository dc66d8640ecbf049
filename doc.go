// Package typedmath is a typed-dispatch numeric core: operations are
// declared once per concrete argument-type combination, built lazily from
// named dependencies, and routed at call time by the runtime kinds of all
// their arguments.
//
// What is inside?
//
//	types/      — value kinds (Tag), Signature, Classifier, ConversionTable
//	tolerance/  — NearlyEqual / BigNearlyEqual relative-tolerance comparators
//	typed/      — Builder, Table, Function: multiple dispatch with conversions
//	factory/    — Registry: deferred, dependency-declaring, build-once factories
//	config/     — Config (epsilon, default number type), YAML/JSON loading, Store
//	unit/       — physical-unit values normalised to SI base dimensions
//	relational/ — equalScalar, equal, unequal, deepEqual
//	matrix/     — Dense matrix value and the matrix catalog factories
//
// Create wires all of them: one config.Store, one typed.Builder and one
// factory.Registry with every catalog factory registered.
//
//	m, err := typedmath.Create(typedmath.WithConfig(cfg))
//	ok, err := m.Call("equal", unit.MustParse("5 m"), unit.MustParse("500 cm"))
//
// Nothing is built until first use. SetConfig is visible to the next call of
// every operation; Fork starts an independent scope with its own config and
// its own cache.
//
// Value representations:
//
//	boolean bool · number float64 · BigNumber decimal.Decimal ·
//	Fraction *big.Rat · Complex complex128 · Unit *unit.Unit · Matrix *matrix.Dense
//
// NaN is never equal to anything, itself included.
//
//	go get github.com/katalvlaran/typedmath
package typedmath
