package typed

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Impl is one overload body. It receives arguments already converted to the
// declared signature.
type Impl func(args ...any) (any, error)

// Table maps signature text to implementations, preserving declaration order
// (the order decides ties during routing).
type Table struct {
	m    *orderedmap.OrderedMap[string, Impl]
	dups []string
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{m: orderedmap.New[string, Impl]()}
}

// Add declares sig → impl and returns t for chaining. Re-adding the same
// text is remembered and reported by Builder.Build.
func (t *Table) Add(sig string, impl Impl) *Table {
	if _, present := t.m.Set(sig, impl); present {
		t.dups = append(t.dups, sig)
	}

	return t
}

// Len returns the number of declared signatures.
func (t *Table) Len() int {
	if t == nil || t.m == nil {
		return 0
	}

	return t.m.Len()
}
