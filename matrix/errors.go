// SPDX-License-Identifier: MIT
// Package: matrix
//
// Sentinel errors. Call sites wrap them with the operation name so that
// errors.Is works on every error this package returns.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates a non-positive or non-integral size.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be positive integers")

	// ErrOutOfRange indicates an index outside [0,rows) × [0,cols).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates operands whose shapes cannot be combined.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrBadShape indicates a reshape or diag target that does not fit the data.
	ErrBadShape = errors.New("matrix: bad shape")

	// ErrRagged indicates rows of unequal length passed to FromRows.
	ErrRagged = errors.New("matrix: ragged rows")

	// ErrNilMatrix indicates that a nil *Dense was passed to an operation.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
