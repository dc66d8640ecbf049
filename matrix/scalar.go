// SPDX-License-Identifier: MIT
// Package: matrix
//
// Helpers shared by the catalog: dimension arguments and the configured
// numeric constants used to fill new matrices.

package matrix

import (
	"fmt"
	"math"
	"math/big"
	"math/cmplx"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/typedmath/config"
)

// maxDim caps a single dimension argument; maxElems caps rows*cols.
const (
	maxDim   = 1 << 24
	maxElems = 1 << 24
)

// dimension converts a number argument to a positive matrix dimension.
func dimension(v any) (int, error) {
	x, _ := v.(float64)
	if x < 1 || x > maxDim || x != math.Trunc(x) {
		return 0, fmt.Errorf("dimension %v: %w", v, ErrInvalidDimensions)
	}

	return int(x), nil
}

// offset converts a number argument to a diagonal offset.
func offset(v any) (int, error) {
	x, _ := v.(float64)
	if math.Abs(x) > maxDim || x != math.Trunc(x) {
		return 0, fmt.Errorf("offset %v: %w", v, ErrInvalidDimensions)
	}

	return int(x), nil
}

// constant returns v in the configured default number representation.
func constant(n config.NumberType, v int64) any {
	switch n {
	case config.NumberBig:
		return decimal.NewFromInt(v)
	case config.NumberFraction:
		return big.NewRat(v, 1)
	default:
		return float64(v)
	}
}

// conj conjugates Complex values and returns every other value unchanged.
func conj(v any) (any, error) {
	if z, ok := v.(complex128); ok {
		return cmplx.Conj(z), nil
	}

	return v, nil
}
