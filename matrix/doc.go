// SPDX-License-Identifier: MIT

// Package matrix provides the Dense matrix value and a catalog of matrix
// operations registered through the factory convention.
//
// Dense stores rows×cols elements in a flat row-major slice of any, so one
// matrix may mix booleans, numbers, BigNumbers, Fractions and Complex values.
// It implements types.Tagged and classifies as types.Matrix, which is how the
// typed dispatcher routes it to "Matrix" signatures.
//
// Catalog (all resolved from a factory.Registry that provides "typed" and,
// where noted, "config"):
//
//	size(Matrix)                 → 1×2 [rows cols]
//	transpose(Matrix)            → Matrix
//	ctranspose(Matrix)           → conjugate transpose (depends on transpose)
//	identity(n) / identity(r, c) → identity in config.Number     (config)
//	zeros(n) / zeros(r, c)       → 1×n or r×c zeros               (config)
//	ones(n) / ones(r, c)         → 1×n or r×c ones                (config)
//	diag(Matrix[, k])            → vector ↔ diagonal at offset k (config)
//	flatten(Matrix)              → 1×n row vector
//	reshape(Matrix, r, c)        → same elements, new shape; one of r, c may be -1
//	getMatrixDataType(Matrix)    → common element tag or "mixed"
//
// Errors are sentinels (ErrInvalidDimensions, ErrOutOfRange,
// ErrDimensionMismatch, ErrBadShape, ErrRagged, ErrNilMatrix) wrapped with
// the failing step; match them with errors.Is.
//
// Complexity: every catalog operation is O(rows·cols) time and memory.
package matrix
