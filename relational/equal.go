package relational

import (
	"fmt"

	"github.com/katalvlaran/typedmath/factory"
	"github.com/katalvlaran/typedmath/matrix"
	"github.com/katalvlaran/typedmath/typed"
	"github.com/katalvlaran/typedmath/types"
)

// asDense asserts a dispatched Matrix argument.
func asDense(v any) (*matrix.Dense, error) {
	m, ok := v.(*matrix.Dense)
	if !ok || m == nil {
		return nil, fmt.Errorf("%w: got %T", typed.ErrNoMatchingSignature, v)
	}

	return m, nil
}

// elementwise applies f to matching elements of a and b.
func elementwise(f *typed.Function, a, b *matrix.Dense) (*matrix.Dense, error) {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return nil, fmt.Errorf("%v vs %v: %w", a.Size(), b.Size(), matrix.ErrDimensionMismatch)
	}
	av, bv := a.Values(), b.Values()
	out := make([]any, len(av))
	for k := range av {
		res, err := f.Call(av[k], bv[k])
		if err != nil {
			return nil, err
		}
		out[k] = res
	}

	return matrix.FromSlice(a.Rows(), a.Cols(), out)
}

// broadcast applies f to every element of m paired with the scalar s. With
// scalarFirst the scalar is the left operand.
func broadcast(f *typed.Function, m *matrix.Dense, s any, scalarFirst bool) (*matrix.Dense, error) {
	return m.Map(func(v any) (any, error) {
		if scalarFirst {
			return f.Call(s, v)
		}
		return f.Call(v, s)
	})
}

// Equal returns the factory of equal(x, y): a bool for scalars, a boolean
// *matrix.Dense when either side is a matrix.
func Equal() factory.Factory {
	return operation(EqualName, EqualScalarName, func(eq *typed.Function) (*typed.Table, error) {
		scalar := func(args ...any) (any, error) {
			return eq.Call(args...)
		}

		table := typed.NewTable()
		for _, t := range scalarTags {
			table.Add(pair(t, t), scalar)
		}
		table.Add(pair(types.Matrix, types.Matrix), func(args ...any) (any, error) {
			a, err := asDense(args[0])
			if err != nil {
				return nil, err
			}
			b, err := asDense(args[1])
			if err != nil {
				return nil, err
			}
			return elementwise(eq, a, b)
		})
		for _, t := range scalarTags {
			table.
				Add(pair(types.Matrix, t), func(args ...any) (any, error) {
					m, err := asDense(args[0])
					if err != nil {
						return nil, err
					}
					return broadcast(eq, m, args[1], false)
				}).
				Add(pair(t, types.Matrix), func(args ...any) (any, error) {
					m, err := asDense(args[1])
					if err != nil {
						return nil, err
					}
					return broadcast(eq, m, args[0], true)
				})
		}

		return table, nil
	})
}

// not negates a bool or every element of a boolean matrix.
func not(v any) (any, error) {
	switch x := v.(type) {
	case bool:
		return !x, nil
	case *matrix.Dense:
		return x.Map(not)
	}

	return nil, fmt.Errorf("%w: %T", typed.ErrResultType, v)
}

// Unequal returns the factory of unequal(x, y), the negation of equal with
// the same signatures.
func Unequal() factory.Factory {
	return operation(UnequalName, EqualName, func(eq *typed.Function) (*typed.Table, error) {
		negated := func(args ...any) (any, error) {
			res, err := eq.Call(args...)
			if err != nil {
				return nil, err
			}
			return not(res)
		}

		table := typed.NewTable()
		for _, sig := range eq.Signatures() {
			table.Add(sig.String(), negated)
		}

		return table, nil
	})
}
