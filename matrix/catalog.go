// SPDX-License-Identifier: MIT
// Package: matrix
//
// Catalog factories. Every operation is a factory.Factory whose builder
// receives the shared *typed.Builder (and, where needed, the config
// provider or other operations) and returns a *typed.Function.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/typedmath/config"
	"github.com/katalvlaran/typedmath/factory"
	"github.com/katalvlaran/typedmath/typed"
)

// Operation names registered by this package.
const (
	SizeName              = "size"
	TransposeName         = "transpose"
	CTransposeName        = "ctranspose"
	IdentityName          = "identity"
	ZerosName             = "zeros"
	OnesName              = "ones"
	DiagName              = "diag"
	FlattenName           = "flatten"
	ReshapeName           = "reshape"
	GetMatrixDataTypeName = "getMatrixDataType"
)

// All returns every catalog factory in registration order.
func All() []factory.Factory {
	return []factory.Factory{
		Size(),
		Transpose(),
		CTranspose(),
		Identity(),
		Zeros(),
		Ones(),
		Diag(),
		Flatten(),
		Reshape(),
		GetMatrixDataType(),
	}
}

// tableFunc declares the signature table of one operation.
type tableFunc func(b *typed.Builder, d factory.Deps) (*typed.Table, error)

// typedFactory declares a factory depending on "typed" plus extra, whose
// builder compiles the table returned by fn.
func typedFactory(name string, extra []string, fn tableFunc) factory.Factory {
	deps := append([]string{factory.TypedName}, extra...)

	return factory.New(name, deps, func(d factory.Deps) (any, error) {
		b, err := factory.Dep[*typed.Builder](d, factory.TypedName)
		if err != nil {
			return nil, err
		}
		table, err := fn(b, d)
		if err != nil {
			return nil, err
		}
		f, err := b.Build(name, table)
		if err != nil {
			return nil, err
		}

		return f, nil
	})
}

// dense asserts the dispatched Matrix argument. A zero-value Dense holds no
// elements and is rejected like nil.
func dense(v any) (*Dense, error) {
	m, ok := v.(*Dense)
	if !ok || m == nil || len(m.data) == 0 {
		return nil, fmt.Errorf("%w: got %T", ErrNilMatrix, v)
	}

	return m, nil
}

// Size returns [rows, cols] as a 1×2 matrix of numbers.
func Size() factory.Factory {
	return typedFactory(SizeName, nil, func(*typed.Builder, factory.Deps) (*typed.Table, error) {
		return typed.NewTable().
			Add("Matrix", func(args ...any) (any, error) {
				m, err := dense(args[0])
				if err != nil {
					return nil, err
				}
				return FromSlice(1, 2, []any{float64(m.r), float64(m.c)})
			}), nil
	})
}

// transpose returns mᵀ.
func transpose(m *Dense) *Dense {
	out := &Dense{r: m.c, c: m.r, data: make([]any, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*out.c+i] = m.data[i*m.c+j]
		}
	}

	return out
}

// Transpose swaps rows and columns.
func Transpose() factory.Factory {
	return typedFactory(TransposeName, nil, func(*typed.Builder, factory.Deps) (*typed.Table, error) {
		return typed.NewTable().
			Add("Matrix", func(args ...any) (any, error) {
				m, err := dense(args[0])
				if err != nil {
					return nil, err
				}
				return transpose(m), nil
			}), nil
	})
}

// CTranspose is the conjugate transpose: transpose, then conjugate every
// Complex element.
func CTranspose() factory.Factory {
	return typedFactory(CTransposeName, []string{TransposeName}, func(_ *typed.Builder, d factory.Deps) (*typed.Table, error) {
		tr, err := factory.Dep[*typed.Function](d, TransposeName)
		if err != nil {
			return nil, err
		}

		return typed.NewTable().
			Add("Matrix", func(args ...any) (any, error) {
				t, err := typed.Call[*Dense](tr, args...)
				if err != nil {
					return nil, err
				}
				return t.Map(conj)
			}), nil
	})
}

// configured declares a factory that also depends on "config".
func configured(name string, fn func(cfg config.Provider) *typed.Table) factory.Factory {
	return typedFactory(name, []string{factory.ConfigName}, func(_ *typed.Builder, d factory.Deps) (*typed.Table, error) {
		cfg, err := factory.Dep[config.Provider](d, factory.ConfigName)
		if err != nil {
			return nil, err
		}

		return fn(cfg), nil
	})
}

// eye builds an r×c identity in the configured number type.
func eye(cfg config.Provider, r, c int) (*Dense, error) {
	n := cfg.Load().Number
	m, err := NewFilled(r, c, constant(n, 0))
	if err != nil {
		return nil, err
	}
	one := constant(n, 1)
	for i := 0; i < r && i < c; i++ {
		m.data[i*c+i] = one
	}

	return m, nil
}

// Identity returns an n×n or r×c identity matrix.
func Identity() factory.Factory {
	return configured(IdentityName, func(cfg config.Provider) *typed.Table {
		return typed.NewTable().
			Add("number", func(args ...any) (any, error) {
				n, err := dimension(args[0])
				if err != nil {
					return nil, err
				}
				return eye(cfg, n, n)
			}).
			Add("number, number", func(args ...any) (any, error) {
				r, err := dimension(args[0])
				if err != nil {
					return nil, err
				}
				c, err := dimension(args[1])
				if err != nil {
					return nil, err
				}
				return eye(cfg, r, c)
			})
	})
}

// constantFactory builds zeros and ones: one argument is a 1×n row vector,
// two arguments an r×c matrix.
func constantFactory(name string, v int64) factory.Factory {
	return configured(name, func(cfg config.Provider) *typed.Table {
		return typed.NewTable().
			Add("number", func(args ...any) (any, error) {
				c, err := dimension(args[0])
				if err != nil {
					return nil, err
				}
				return NewFilled(1, c, constant(cfg.Load().Number, v))
			}).
			Add("number, number", func(args ...any) (any, error) {
				r, err := dimension(args[0])
				if err != nil {
					return nil, err
				}
				c, err := dimension(args[1])
				if err != nil {
					return nil, err
				}
				return NewFilled(r, c, constant(cfg.Load().Number, v))
			})
	})
}

// Zeros returns a matrix of zeros in the configured number type.
func Zeros() factory.Factory { return constantFactory(ZerosName, 0) }

// Ones returns a matrix of ones in the configured number type.
func Ones() factory.Factory { return constantFactory(OnesName, 1) }

// diag places a vector on the k-th diagonal of a square matrix, or extracts
// the k-th diagonal of a matrix as a column vector.
func diag(cfg config.Provider, m *Dense, k int) (*Dense, error) {
	// 1) Vector input: build a square matrix.
	if m.r == 1 || m.c == 1 {
		n := len(m.data)
		size := n + abs(k)
		out, err := NewFilled(size, size, constant(cfg.Load().Number, 0))
		if err != nil {
			return nil, err
		}
		for i, v := range m.data {
			row, col := i, i+k
			if k < 0 {
				row, col = i-k, i
			}
			out.data[row*size+col] = v
		}
		return out, nil
	}

	// 2) Matrix input: collect (i, i+k) while in range.
	var vals []any
	for i := 0; i < m.r; i++ {
		j := i + k
		if j < 0 {
			continue
		}
		if j >= m.c {
			break
		}
		vals = append(vals, m.data[i*m.c+j])
	}
	if len(vals) == 0 {
		return nil, fmt.Errorf("diag: offset %d outside %dx%d: %w", k, m.r, m.c, ErrBadShape)
	}

	return &Dense{r: len(vals), c: 1, data: vals}, nil
}

func abs(k int) int {
	if k < 0 {
		return -k
	}

	return k
}

// Diag builds a diagonal matrix from a vector or extracts a diagonal from a
// matrix, optionally at offset k.
func Diag() factory.Factory {
	return configured(DiagName, func(cfg config.Provider) *typed.Table {
		return typed.NewTable().
			Add("Matrix", func(args ...any) (any, error) {
				m, err := dense(args[0])
				if err != nil {
					return nil, err
				}
				return diag(cfg, m, 0)
			}).
			Add("Matrix, number", func(args ...any) (any, error) {
				m, err := dense(args[0])
				if err != nil {
					return nil, err
				}
				k, err := offset(args[1])
				if err != nil {
					return nil, err
				}
				return diag(cfg, m, k)
			})
	})
}

// Flatten returns the elements as a 1×n row vector.
func Flatten() factory.Factory {
	return typedFactory(FlattenName, nil, func(*typed.Builder, factory.Deps) (*typed.Table, error) {
		return typed.NewTable().
			Add("Matrix", func(args ...any) (any, error) {
				m, err := dense(args[0])
				if err != nil {
					return nil, err
				}
				return &Dense{r: 1, c: len(m.data), data: m.Values()}, nil
			}), nil
	})
}

// reshape re-wraps the elements in row-major order. One of r, c may be -1
// and is then inferred.
func reshape(m *Dense, r, c float64) (*Dense, error) {
	n := float64(len(m.data))
	switch {
	case r == -1 && c == -1:
		return nil, fmt.Errorf("reshape: only one dimension may be -1: %w", ErrBadShape)
	case r == -1:
		r = n / c
	case c == -1:
		c = n / r
	}
	rows, err := dimension(r)
	if err != nil {
		return nil, fmt.Errorf("reshape: %w", ErrBadShape)
	}
	cols, err := dimension(c)
	if err != nil {
		return nil, fmt.Errorf("reshape: %w", ErrBadShape)
	}

	return FromSlice(rows, cols, m.data)
}

// Reshape changes the shape keeping row-major element order.
func Reshape() factory.Factory {
	return typedFactory(ReshapeName, nil, func(*typed.Builder, factory.Deps) (*typed.Table, error) {
		return typed.NewTable().
			Add("Matrix, number, number", func(args ...any) (any, error) {
				m, err := dense(args[0])
				if err != nil {
					return nil, err
				}
				r, _ := args[1].(float64)
				c, _ := args[2].(float64)
				return reshape(m, r, c)
			}), nil
	})
}

// GetMatrixDataType names the element tag shared by every element, or
// "mixed".
func GetMatrixDataType() factory.Factory {
	return typedFactory(GetMatrixDataTypeName, nil, func(b *typed.Builder, _ factory.Deps) (*typed.Table, error) {
		classify := b.Classifier()

		return typed.NewTable().
			Add("Matrix", func(args ...any) (any, error) {
				m, err := dense(args[0])
				if err != nil {
					return nil, err
				}
				return m.DataType(classify), nil
			}), nil
	})
}
