package types

import (
	"fmt"
	"math"
	"math/big"
	"sync"

	"github.com/shopspring/decimal"
)

// ConvertFunc converts a value of the edge's From tag into its To tag.
// It returns an error instead of silently discarding information.
type ConvertFunc func(v any) (any, error)

// Conversion is one declared widening edge.
type Conversion struct {
	From, To Tag
	Cost     int64
	Convert  ConvertFunc
}

// Route is the cheapest chain of conversions from one tag to another.
// A zero-step route (From == To) has cost 0.
type Route struct {
	From, To Tag
	Cost     int64
	Steps    []Conversion
}

// Apply runs every step of the route in order.
func (r Route) Apply(v any) (any, error) {
	var err error
	for _, step := range r.Steps {
		if v, err = step.Convert(v); err != nil {
			return nil, fmt.Errorf("%s -> %s: %w", step.From, step.To, err)
		}
	}

	return v, nil
}

// ConversionTable is the declared set of implicit widenings. Edges may be
// added until the first Path call; after that the table is frozen and
// read-only, which makes Path safe for concurrent use.
type ConversionTable struct {
	mu     sync.Mutex
	edges  []Conversion
	seen   map[[2]Tag]struct{}
	frozen bool

	once   sync.Once
	routes [tagCount][tagCount]*Route
}

// NewConversionTable returns an empty table.
func NewConversionTable() *ConversionTable {
	return &ConversionTable{seen: make(map[[2]Tag]struct{})}
}

// Add declares the edge from → to with the given positive cost.
func (t *ConversionTable) Add(from, to Tag, cost int64, fn ConvertFunc) error {
	// 1) Validate the edge itself
	if !from.Valid() || !to.Valid() || from == to || cost <= 0 || fn == nil {
		return fmt.Errorf("%w: %s -> %s cost=%d", ErrBadConversion, from, to, cost)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// 2) Routes are computed once; later edges would be ignored silently
	if t.frozen {
		return fmt.Errorf("%w: add %s -> %s", ErrTableFrozen, from, to)
	}
	// 3) One edge per ordered pair
	pair := [2]Tag{from, to}
	if t.seen == nil {
		t.seen = make(map[[2]Tag]struct{})
	}
	if _, dup := t.seen[pair]; dup {
		return fmt.Errorf("%w: %s -> %s", ErrDuplicateConversion, from, to)
	}
	t.seen[pair] = struct{}{}
	t.edges = append(t.edges, Conversion{From: from, To: to, Cost: cost, Convert: fn})

	return nil
}

// MustAdd is Add that panics on error; for building static tables.
func (t *ConversionTable) MustAdd(from, to Tag, cost int64, fn ConvertFunc) *ConversionTable {
	if err := t.Add(from, to, cost, fn); err != nil {
		panic(err)
	}

	return t
}

// Edges returns a copy of the declared edges in declaration order.
func (t *ConversionTable) Edges() []Conversion {
	t.mu.Lock()
	defer t.mu.Unlock()

	return append([]Conversion(nil), t.edges...)
}

// Path returns the cheapest route from → to, or ok=false if to is not
// reachable. The first call freezes the table.
func (t *ConversionTable) Path(from, to Tag) (Route, bool) {
	if !from.Valid() || !to.Valid() {
		return Route{}, false
	}
	if from == to {
		return Route{From: from, To: to}, true
	}

	t.once.Do(t.freeze)
	if r := t.routes[from][to]; r != nil {
		return *r, true
	}

	return Route{}, false
}

// CanConvert reports whether to is reachable from from (including from == to).
func (t *ConversionTable) CanConvert(from, to Tag) bool {
	_, ok := t.Path(from, to)
	return ok
}

// freeze closes the table for writes and computes every cheapest route.
func (t *ConversionTable) freeze() {
	t.mu.Lock()
	t.frozen = true
	edges := t.edges
	t.mu.Unlock()

	for src := Boolean; src < tagCount; src++ {
		for dst, r := range shortestRoutes(src, edges) {
			t.routes[src][dst] = r
		}
	}
}

// DefaultConversions returns the standard widening table:
//
//	boolean → number     cost 1   (false=0, true=1)
//	number  → BigNumber  cost 1   (shortest decimal that round-trips)
//	number  → Fraction   cost 2   (exact binary value as a rational)
//	number  → Complex    cost 3   (imaginary part 0)
//
// Non-finite numbers are rejected by the BigNumber and Fraction edges.
//
// BigNumber → Complex is deliberately absent even though it is the usual
// widening chain (number → BigNumber → Complex): complex128 cannot hold an
// arbitrary-precision value, so the edge would round silently. Callers who
// accept that loss can Add it to their own table.
func DefaultConversions() *ConversionTable {
	return NewConversionTable().
		MustAdd(Boolean, Number, 1, boolToNumber).
		MustAdd(Number, BigNumber, 1, numberToBig).
		MustAdd(Number, Fraction, 2, numberToFraction).
		MustAdd(Number, Complex, 3, numberToComplex)
}

func boolToNumber(v any) (any, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, fmt.Errorf("%w: want bool, got %T", ErrConversionFailed, v)
	}
	if b {
		return 1.0, nil
	}

	return 0.0, nil
}

func numberToBig(v any) (any, error) {
	x, ok := v.(float64)
	if !ok {
		return nil, fmt.Errorf("%w: want float64, got %T", ErrConversionFailed, v)
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil, fmt.Errorf("%w: %v has no BigNumber representation", ErrConversionFailed, x)
	}

	return decimal.NewFromFloat(x), nil
}

func numberToFraction(v any) (any, error) {
	x, ok := v.(float64)
	if !ok {
		return nil, fmt.Errorf("%w: want float64, got %T", ErrConversionFailed, v)
	}
	r := new(big.Rat).SetFloat64(x)
	if r == nil {
		return nil, fmt.Errorf("%w: %v has no Fraction representation", ErrConversionFailed, x)
	}

	return r, nil
}

func numberToComplex(v any) (any, error) {
	x, ok := v.(float64)
	if !ok {
		return nil, fmt.Errorf("%w: want float64, got %T", ErrConversionFailed, v)
	}

	return complex(x, 0), nil
}
