package typed

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/typedmath/types"
)

type overload struct {
	sig  types.Signature
	key  uint64
	impl Impl
	text string
}

// plan is a memoised routing decision. ov == nil records "no match".
type plan struct {
	ov     *overload
	routes []types.Route // nil for exact matches
	cost   int64
}

// Function is a built, immutable multiple-dispatch callable.
type Function struct {
	name      string
	classify  types.Classifier
	conv      *types.ConversionTable
	overloads []*overload
	exact     map[uint64]*overload
	byArity   map[int][]*overload

	plans sync.Map // uint64 → *plan
}

// Name returns the function name.
func (f *Function) Name() string { return f.name }

// Signatures returns the declared signatures in declaration order.
func (f *Function) Signatures() []types.Signature {
	out := make([]types.Signature, len(f.overloads))
	for i, ov := range f.overloads {
		out[i] = append(types.Signature(nil), ov.sig...)
	}

	return out
}

// Call routes args to the best-matching implementation.
func (f *Function) Call(args ...any) (any, error) {
	// 1) Classify
	sig := make(types.Signature, len(args))
	for i, a := range args {
		sig[i] = f.classify(a)
	}

	// 2) Route
	p := f.lookup(sig)
	if p.ov == nil {
		return nil, f.noMatch(args)
	}
	if p.routes == nil {
		return p.ov.impl(args...)
	}

	// 3) Convert argument by argument
	converted := make([]any, len(args))
	for i, a := range args {
		v, err := p.routes[i].Apply(a)
		if err != nil {
			return nil, fmt.Errorf("typed: %s: argument %d: %w", f.name, i, err)
		}
		converted[i] = v
	}

	return p.ov.impl(converted...)
}

// Select reports which signature a call with the given argument tags would
// use and the total conversion cost (0 for an exact match).
func (f *Function) Select(tags ...types.Tag) (types.Signature, int64, error) {
	p := f.lookup(types.Signature(tags))
	if p.ov == nil {
		args := make([]string, len(tags))
		for i, t := range tags {
			args[i] = t.String()
		}
		return nil, 0, &NoMatchError{Function: f.name, Args: args}
	}

	return append(types.Signature(nil), p.ov.sig...), p.cost, nil
}

// lookup returns the memoised plan for sig, computing it on first use.
func (f *Function) lookup(sig types.Signature) *plan {
	key, ok := sig.Key()
	if !ok {
		return &plan{}
	}
	if cached, hit := f.plans.Load(key); hit {
		return cached.(*plan)
	}

	p := f.resolve(sig, key)
	actual, _ := f.plans.LoadOrStore(key, p)

	return actual.(*plan)
}

// resolve computes the routing decision without caching.
func (f *Function) resolve(sig types.Signature, key uint64) *plan {
	// 1) Exact match
	if ov, ok := f.exact[key]; ok {
		return &plan{ov: ov}
	}

	// 2) Cheapest reachable signature of the same arity; strict < keeps
	//    the first-declared candidate on ties
	best := &plan{}
	for _, ov := range f.byArity[len(sig)] {
		routes := make([]types.Route, len(sig))
		var total int64
		reachable := true
		for i, from := range sig {
			r, ok := f.conv.Path(from, ov.sig[i])
			if !ok {
				reachable = false
				break
			}
			routes[i] = r
			total += r.Cost
		}
		if !reachable {
			continue
		}
		if best.ov == nil || total < best.cost {
			best = &plan{ov: ov, routes: routes, cost: total}
		}
	}

	return best
}

func (f *Function) noMatch(args []any) error {
	desc := make([]string, len(args))
	for i, a := range args {
		desc[i] = types.Describe(a, f.classify)
	}

	return &NoMatchError{Function: f.name, Args: desc}
}

// Call invokes f and asserts the result type.
func Call[T any](f *Function, args ...any) (T, error) {
	var zero T
	res, err := f.Call(args...)
	if err != nil {
		return zero, err
	}
	v, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s returned %T, want %T", ErrResultType, f.name, res, zero)
	}

	return v, nil
}
