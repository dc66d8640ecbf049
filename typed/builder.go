package typed

import (
	"fmt"

	"github.com/katalvlaran/typedmath/types"
)

// Builder constructs Functions sharing one classifier and one conversion
// table. It is the "typed" dependency injected into operation factories.
type Builder struct {
	classify types.Classifier
	conv     *types.ConversionTable
}

// Option configures a Builder.
type Option func(*Builder)

// WithClassifier replaces the default types.Classify. nil is ignored.
func WithClassifier(c types.Classifier) Option {
	return func(b *Builder) {
		if c != nil {
			b.classify = c
		}
	}
}

// WithConversions replaces types.DefaultConversions. nil is ignored.
func WithConversions(t *types.ConversionTable) Option {
	return func(b *Builder) {
		if t != nil {
			b.conv = t
		}
	}
}

// New returns a Builder with the given options applied.
func New(opts ...Option) *Builder {
	b := &Builder{classify: types.Classify}
	for _, opt := range opts {
		opt(b)
	}
	if b.conv == nil {
		b.conv = types.DefaultConversions()
	}

	return b
}

// Classifier returns the classifier used by built functions.
func (b *Builder) Classifier() types.Classifier { return b.classify }

// Conversions returns the conversion table used by built functions.
func (b *Builder) Conversions() *types.ConversionTable { return b.conv }

// Build validates table and returns the dispatching Function.
//
// Validation order: name, table non-empty, duplicate text, signature text,
// nil implementations, duplicate signatures after parsing.
func (b *Builder) Build(name string, table *Table) (*Function, error) {
	// 1) Shape checks
	if name == "" {
		return nil, ErrEmptyName
	}
	if table.Len() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyTable, name)
	}
	if len(table.dups) > 0 {
		return nil, fmt.Errorf("%w: %s: %q", ErrDuplicateSignature, name, table.dups[0])
	}

	f := &Function{
		name:     name,
		classify: b.classify,
		conv:     b.conv,
		exact:    make(map[uint64]*overload, table.Len()),
		byArity:  make(map[int][]*overload),
	}

	// 2) Parse each declared signature once, in declaration order
	for pair := table.m.Oldest(); pair != nil; pair = pair.Next() {
		sig, err := types.ParseSignature(pair.Key)
		if err != nil {
			return nil, fmt.Errorf("typed: %s: %w", name, err)
		}
		if pair.Value == nil {
			return nil, fmt.Errorf("%w: %s(%s)", ErrNilImpl, name, sig)
		}
		key, _ := sig.Key() // ParseSignature bounds arity
		if prev, dup := f.exact[key]; dup {
			return nil, fmt.Errorf("%w: %s: %q and %q", ErrDuplicateSignature, name, prev.text, pair.Key)
		}

		ov := &overload{sig: sig, key: key, impl: pair.Value, text: pair.Key}
		f.overloads = append(f.overloads, ov)
		f.exact[key] = ov
		f.byArity[len(sig)] = append(f.byArity[len(sig)], ov)
	}

	return f, nil
}

// MustBuild is Build that panics on error.
func (b *Builder) MustBuild(name string, table *Table) *Function {
	f, err := b.Build(name, table)
	if err != nil {
		panic(err)
	}

	return f
}
