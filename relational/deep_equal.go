package relational

import (
	"github.com/katalvlaran/typedmath/factory"
	"github.com/katalvlaran/typedmath/matrix"
	"github.com/katalvlaran/typedmath/typed"
	"github.com/katalvlaran/typedmath/types"
)

// DeepEqual returns the factory of deepEqual(x, y) bool. Matrices are equal
// when their shapes match and every element pair is equal; a matrix never
// equals a scalar.
func DeepEqual() factory.Factory {
	return operation(DeepEqualName, EqualScalarName, func(eq *typed.Function) (*typed.Table, error) {
		scalar := func(args ...any) (any, error) {
			return eq.Call(args...)
		}
		never := func(...any) (any, error) { return false, nil }

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
			return deepEqual(eq, a, b)
		})
		for _, t := range scalarTags {
			table.Add(pair(types.Matrix, t), never).Add(pair(t, types.Matrix), never)
		}

		return table, nil
	})
}

func deepEqual(eq *typed.Function, a, b *matrix.Dense) (bool, error) {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, nil
	}
	av, bv := a.Values(), b.Values()
	for k := range av {
		same, err := typed.Call[bool](eq, av[k], bv[k])
		if err != nil {
			return false, err
		}
		if !same {
			return false, nil
		}
	}

	return true, nil
}
