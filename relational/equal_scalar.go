package relational

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/typedmath/config"
	"github.com/katalvlaran/typedmath/factory"
	"github.com/katalvlaran/typedmath/tolerance"
	"github.com/katalvlaran/typedmath/typed"
	"github.com/katalvlaran/typedmath/unit"
)

// EqualScalar returns the factory of equalScalar(x, y) bool.
func EqualScalar() factory.Factory {
	deps := []string{factory.TypedName, factory.ConfigName}

	return factory.New(EqualScalarName, deps, func(d factory.Deps) (any, error) {
		b, err := factory.Dep[*typed.Builder](d, factory.TypedName)
		if err != nil {
			return nil, err
		}
		cfg, err := factory.Dep[config.Provider](d, factory.ConfigName)
		if err != nil {
			return nil, err
		}

		// self is set once Build returns; the Unit branch only runs
		// on later calls.
		var self *typed.Function
		table := typed.NewTable().
			Add("boolean, boolean", func(args ...any) (any, error) {
				x, y, err := operands[bool](args)
				if err != nil {
					return nil, err
				}
				return x == y, nil
			}).
			Add("number, number", func(args ...any) (any, error) {
				x, y, err := operands[float64](args)
				if err != nil {
					return nil, err
				}
				return x == y || tolerance.NearlyEqual(x, y, cfg.Load().Epsilon), nil
			}).
			Add("BigNumber, BigNumber", func(args ...any) (any, error) {
				x, y, err := operands[decimal.Decimal](args)
				if err != nil {
					return nil, err
				}
				return x.Equal(y) || tolerance.BigNearlyEqual(x, y, cfg.Load().Epsilon), nil
			}).
			Add("Fraction, Fraction", func(args ...any) (any, error) {
				x, y, err := operands[*big.Rat](args)
				if err == nil && (x == nil || y == nil) {
					err = fmt.Errorf("%w: nil Fraction", typed.ErrNoMatchingSignature)
				}
				if err != nil {
					return nil, err
				}
				return x.Cmp(y) == 0, nil
			}).
			Add("Complex, Complex", func(args ...any) (any, error) {
				x, y, err := operands[complex128](args)
				if err != nil {
					return nil, err
				}
				return x == y, nil
			}).
			Add("Unit, Unit", func(args ...any) (any, error) {
				x, y, err := operands[*unit.Unit](args)
				if err == nil && (x == nil || y == nil) {
					err = fmt.Errorf("%w: nil Unit", typed.ErrNoMatchingSignature)
				}
				if err != nil {
					return nil, err
				}
				if !x.EqualBase(y) {
					return nil, fmt.Errorf("%w: %s vs %s", ErrIncompatibleBase, x.Dimension(), y.Dimension())
				}
				return self.Call(x.Value(), y.Value())
			})

		self, err = b.Build(EqualScalarName, table)
		if err != nil {
			return nil, err
		}

		return self, nil
	})
}
