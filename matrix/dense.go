// SPDX-License-Identifier: MIT
// Package: matrix
//
// Dense is a row-major two-dimensional container of scalar values. Elements
// are stored as any so that a single matrix can hold booleans, numbers,
// BigNumbers, Fractions and Complex values side by side; the element kind is
// reported by DataType.

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/typedmath/types"
)

// Dense is a rows×cols matrix in a flat row-major slice.
type Dense struct {
	r, c int
	data []any
}

var _ types.Tagged = (*Dense)(nil)

// NewDense returns an r×c matrix filled with the float64 zero.
// Returns ErrInvalidDimensions if r or c is not positive.
func NewDense(r, c int) (*Dense, error) {
	return NewFilled(r, c, 0.0)
}

// validShape reports whether r×c is positive and within maxElems.
func validShape(r, c int) bool {
	return r > 0 && c > 0 && r <= maxElems && c <= maxElems/r
}

// NewFilled returns an r×c matrix with every element set to v.
// Returns ErrInvalidDimensions if r or c is not positive or r*c exceeds
// the element cap.
func NewFilled(r, c int, v any) (*Dense, error) {
	if !validShape(r, c) {
		return nil, matrixErrorf("NewFilled", ErrInvalidDimensions)
	}
	data := make([]any, r*c)
	for i := range data {
		data[i] = v
	}

	return &Dense{r: r, c: c, data: data}, nil
}

// FromRows builds a matrix from a slice of equal-length rows. The rows are
// copied.
func FromRows(rows [][]any) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf("FromRows", ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	data := make([]any, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("FromRows: row %d has %d elements, want %d: %w", i, len(row), c, ErrRagged)
		}
		data = append(data, row...)
	}

	return &Dense{r: r, c: c, data: data}, nil
}

// MustFromRows is FromRows that panics on error. Intended for literals in
// tests and examples.
func MustFromRows(rows [][]any) *Dense {
	m, err := FromRows(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// FromSlice wraps a copy of data as an r×c matrix.
func FromSlice(r, c int, data []any) (*Dense, error) {
	if !validShape(r, c) {
		return nil, matrixErrorf("FromSlice", ErrInvalidDimensions)
	}
	if len(data) != r*c {
		return nil, fmt.Errorf("FromSlice: %d elements for %dx%d: %w", len(data), r, c, ErrBadShape)
	}

	return &Dense{r: r, c: c, data: append([]any(nil), data...)}, nil
}

// TypeTag reports types.Matrix. A nil *Dense is Unknown.
func (m *Dense) TypeTag() types.Tag {
	if m == nil {
		return types.Unknown
	}

	return types.Matrix
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense) Shape() (int, int) { return m.r, m.c }

// Size returns [rows, cols].
func (m *Dense) Size() []int { return []int{m.r, m.c} }

// Len returns rows*cols.
func (m *Dense) Len() int { return len(m.data) }

// indexOf validates (i,j) and returns the flat offset.
func (m *Dense) indexOf(i, j int) (int, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, ErrOutOfRange
	}

	return i*m.c + j, nil
}

// At returns the element at (i,j).
func (m *Dense) At(i, j int) (any, error) {
	k, err := m.indexOf(i, j)
	if err != nil {
		return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
	}

	return m.data[k], nil
}

// Set assigns v at (i,j).
func (m *Dense) Set(i, j int, v any) error {
	k, err := m.indexOf(i, j)
	if err != nil {
		return fmt.Errorf("Set(%d,%d): %w", i, j, err)
	}
	m.data[k] = v

	return nil
}

// Values returns a copy of the elements in row-major order.
func (m *Dense) Values() []any { return append([]any(nil), m.data...) }

// Clone returns a deep copy of the container. Elements are shared.
func (m *Dense) Clone() *Dense {
	return &Dense{r: m.r, c: m.c, data: m.Values()}
}

// Map returns a new matrix of the same shape with fn applied to every
// element. The first error aborts the walk.
func (m *Dense) Map(fn func(v any) (any, error)) (*Dense, error) {
	out := &Dense{r: m.r, c: m.c, data: make([]any, len(m.data))}
	for k, v := range m.data {
		res, err := fn(v)
		if err != nil {
			return nil, fmt.Errorf("Map[%d,%d]: %w", k/m.c, k%m.c, err)
		}
		out.data[k] = res
	}

	return out, nil
}

// DataType names the common tag of all elements, "mixed" when they differ,
// "unknown" for a matrix without elements.
// Elements the classifier does not recognise render as "unknown(T)".
func (m *Dense) DataType(c types.Classifier) string {
	if len(m.data) == 0 {
		return types.Unknown.String()
	}
	first := types.Describe(m.data[0], c)
	for _, v := range m.data[1:] {
		if types.Describe(v, c) != first {
			return "mixed"
		}
	}

	return first
}

// String renders the matrix as nested brackets, e.g. [[1 2] [3 4]].
func (m *Dense) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < m.r; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprint(&sb, m.data[i*m.c+j])
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')

	return sb.String()
}
