package relational

import (
	"fmt"

	"github.com/katalvlaran/typedmath/factory"
	"github.com/katalvlaran/typedmath/typed"
	"github.com/katalvlaran/typedmath/types"
)

// Operation names registered by this package.
const (
	EqualScalarName = "equalScalar"
	EqualName       = "equal"
	UnequalName     = "unequal"
	DeepEqualName   = "deepEqual"
)

// scalarTags are the kinds equalScalar accepts, in declaration order.
var scalarTags = []types.Tag{
	types.Boolean,
	types.Number,
	types.BigNumber,
	types.Fraction,
	types.Complex,
	types.Unit,
}

// All returns the relational factories.
func All() []factory.Factory {
	return []factory.Factory{
		EqualScalar(),
		Equal(),
		Unequal(),
		DeepEqual(),
	}
}

// operation declares a factory depending on "typed" and one other
// operation, handing both to fn.
func operation(name, dep string, fn func(dep *typed.Function) (*typed.Table, error)) factory.Factory {
	return factory.New(name, []string{factory.TypedName, dep}, func(d factory.Deps) (any, error) {
		b, err := factory.Dep[*typed.Builder](d, factory.TypedName)
		if err != nil {
			return nil, err
		}
		f, err := factory.Dep[*typed.Function](d, dep)
		if err != nil {
			return nil, err
		}
		table, err := fn(f)
		if err != nil {
			return nil, err
		}
		built, err := b.Build(name, table)
		if err != nil {
			return nil, err
		}

		return built, nil
	})
}

// pair renders a two-argument signature.
func pair(a, b types.Tag) string {
	return types.Signature{a, b}.String()
}

// operands asserts both dispatched arguments as T. A classifier that tags a
// value it does not represent yields ErrNoMatchingSignature, not a panic.
func operands[T any](args []any) (T, T, error) {
	x, ok := args[0].(T)
	y, ok2 := args[1].(T)
	if !ok || !ok2 {
		var zero T
		return zero, zero, fmt.Errorf("%w: got %T, %T", typed.ErrNoMatchingSignature, args[0], args[1])
	}

	return x, y, nil
}
