package factory_test

import (
	"bytes"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/typedmath/factory"
)

// counter returns a builder that records how often it ran and yields a
// fresh pointer each time, so identity checks are meaningful.
func counter(n *int32) factory.CreateFunc {
	return func(factory.Deps) (any, error) {
		atomic.AddInt32(n, 1)
		v := new(int)
		return v, nil
	}
}

// TestResolve_BuildsOnceAndCaches checks reference stability and laziness.
func TestResolve_BuildsOnceAndCaches(t *testing.T) {
	r := factory.NewRegistry()
	var built int32
	require.NoError(t, r.Define("A", nil, counter(&built)))
	assert.False(t, r.IsBuilt("A"), "Define must not build")
	assert.Zero(t, atomic.LoadInt32(&built))

	first, err := r.Resolve("A")
	require.NoError(t, err)
	second, err := r.Resolve("A")
	require.NoError(t, err)

	assert.Same(t, first.(*int), second.(*int))
	assert.Equal(t, int32(1), atomic.LoadInt32(&built))
	assert.True(t, r.IsBuilt("A"))
}

// TestResolve_TransitiveOrder builds dependencies before dependents and hands
// each builder exactly its declared dependencies.
func TestResolve_TransitiveOrder(t *testing.T) {
	r := factory.NewRegistry()
	var trace []string
	require.NoError(t, r.Provide("config", "cfg"))
	require.NoError(t, r.Register(
		factory.New("top", []string{"mid", "config"}, func(d factory.Deps) (any, error) {
			trace = append(trace, "top")
			mid, err := factory.Dep[string](d, "mid")
			if err != nil {
				return nil, err
			}
			assert.Equal(t, []string{"mid", "config"}, d.Names())
			assert.False(t, d.Has("leaf"))
			return "top(" + mid + ")", nil
		}),
		factory.New("mid", []string{"leaf"}, func(d factory.Deps) (any, error) {
			trace = append(trace, "mid")
			return "mid(" + d.Get("leaf").(string) + ")", nil
		}),
		factory.New("leaf", []string{"config"}, func(d factory.Deps) (any, error) {
			trace = append(trace, "leaf")
			return "leaf", nil
		}),
	))

	v, err := r.Resolve("top")
	require.NoError(t, err)
	assert.Equal(t, "top(mid(leaf))", v)
	assert.Equal(t, []string{"leaf", "mid", "top"}, trace)
	assert.Equal(t, []string{"top", "mid", "leaf"}, r.Names())

	cfg, err := r.Resolve("config")
	require.NoError(t, err)
	assert.Equal(t, "cfg", cfg)
}

// TestResolve_Cycle fails before any builder executes and names the cycle.
func TestResolve_Cycle(t *testing.T) {
	r := factory.NewRegistry()
	var built int32
	require.NoError(t, r.Define("A", []string{"B"}, counter(&built)))
	require.NoError(t, r.Define("B", []string{"C"}, counter(&built)))
	require.NoError(t, r.Define("C", []string{"A"}, counter(&built)))
	require.NoError(t, r.Define("D", []string{"D"}, counter(&built)))

	_, err := r.Resolve("A")
	require.Error(t, err)
	assert.ErrorIs(t, err, factory.ErrCyclicDependency)
	var ce *factory.CycleError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, []string{"A", "B", "C", "A"}, ce.Cycle)
	assert.Contains(t, err.Error(), "A -> B -> C -> A")

	_, err = r.Resolve("D")
	assert.ErrorIs(t, err, factory.ErrCyclicDependency)
	assert.Zero(t, atomic.LoadInt32(&built))
}

// TestResolve_CycleBehindHealthyPrefix rejects even when the root itself is
// not part of the cycle.
func TestResolve_CycleBehindHealthyPrefix(t *testing.T) {
	r := factory.NewRegistry()
	var built int32
	require.NoError(t, r.Define("root", []string{"ok", "A"}, counter(&built)))
	require.NoError(t, r.Define("ok", nil, counter(&built)))
	require.NoError(t, r.Define("A", []string{"B"}, counter(&built)))
	require.NoError(t, r.Define("B", []string{"A"}, counter(&built)))

	_, err := r.Resolve("root")
	var ce *factory.CycleError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, []string{"A", "B", "A"}, ce.Cycle)
	assert.Zero(t, atomic.LoadInt32(&built), "no builder may run when the plan has a cycle")
}

// TestResolve_UnknownDependency names the missing dependency and requester.
func TestResolve_UnknownDependency(t *testing.T) {
	r := factory.NewRegistry()
	var built int32
	require.NoError(t, r.Define("A", []string{"typed"}, counter(&built)))

	_, err := r.Resolve("A")
	assert.ErrorIs(t, err, factory.ErrUnknownDependency)
	var ue *factory.UnknownDependencyError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, "typed", ue.Name)
	assert.Equal(t, "A", ue.RequiredBy)
	assert.Zero(t, atomic.LoadInt32(&built))

	_, err = r.Resolve("nope")
	assert.ErrorIs(t, err, factory.ErrUnknownDependency)
	assert.Contains(t, err.Error(), `"nope"`)
}

// TestResolve_OptionalDependency skips absent optional names.
func TestResolve_OptionalDependency(t *testing.T) {
	r := factory.NewRegistry()
	require.NoError(t, r.Define("A", []string{"?matrix", "?present"}, func(d factory.Deps) (any, error) {
		return []bool{d.Has("matrix"), d.Has("present")}, nil
	}))
	require.NoError(t, r.Provide("present", 1))

	v, err := r.Resolve("A")
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true}, v)
}

// TestResolve_BuildFailureNotCached wraps builder errors and retries later.
func TestResolve_BuildFailureNotCached(t *testing.T) {
	r := factory.NewRegistry()
	boom := errors.New("boom")
	fail := true
	require.NoError(t, r.Define("A", nil, func(factory.Deps) (any, error) {
		if fail {
			return nil, boom
		}
		return "ok", nil
	}))
	require.NoError(t, r.Define("B", nil, func(factory.Deps) (any, error) { return nil, nil }))

	_, err := r.Resolve("A")
	assert.ErrorIs(t, err, factory.ErrBuildFailed)
	assert.ErrorIs(t, err, boom)
	assert.False(t, r.IsBuilt("A"))

	fail = false
	v, err := r.Resolve("A")
	require.NoError(t, err)
	assert.Equal(t, "ok", v)

	_, err = r.Resolve("B")
	assert.ErrorIs(t, err, factory.ErrBuildFailed)
}

// TestRegister_Validation covers descriptor and duplicate checks.
func TestRegister_Validation(t *testing.T) {
	r := factory.NewRegistry()
	ok := func(factory.Deps) (any, error) { return 1, nil }

	assert.ErrorIs(t, r.Define("", nil, ok), factory.ErrBadFactory)
	assert.ErrorIs(t, r.Define("?x", nil, ok), factory.ErrBadFactory)
	assert.ErrorIs(t, r.Define("x", nil, nil), factory.ErrBadFactory)
	assert.ErrorIs(t, r.Define("x", []string{"?"}, ok), factory.ErrBadFactory)
	assert.ErrorIs(t, r.Provide("", 1), factory.ErrBadFactory)

	require.NoError(t, r.Define("x", nil, ok))
	assert.ErrorIs(t, r.Define("x", nil, ok), factory.ErrAlreadyDefined)
	assert.ErrorIs(t, r.Provide("x", 1), factory.ErrAlreadyDefined)

	// A batch with an internal duplicate records nothing.
	err := r.Register(factory.New("y", nil, ok), factory.New("y", nil, ok))
	assert.ErrorIs(t, err, factory.ErrAlreadyDefined)
	assert.Equal(t, []string{"x"}, r.Names())

	assert.Panics(t, func() { r.MustResolve("missing") })
}

// TestDep_Errors checks typed dependency access.
func TestDep_Errors(t *testing.T) {
	r := factory.NewRegistry()
	require.NoError(t, r.Provide("n", 3))
	require.NoError(t, r.Define("A", []string{"n"}, func(d factory.Deps) (any, error) {
		if _, err := factory.Dep[string](d, "n"); !errors.Is(err, factory.ErrDependencyType) {
			return nil, errors.New("expected type error")
		}
		if _, err := factory.Dep[int](d, "other"); !errors.Is(err, factory.ErrMissingDependency) {
			return nil, errors.New("expected missing error")
		}
		return factory.Dep[int](d, "n")
	}))

	n, err := factory.ResolveAs[int](r, "A")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = factory.ResolveAs[string](r, "A")
	assert.ErrorIs(t, err, factory.ErrDependencyType)
}

// TestInvalidate_And_Fork verifies scope semantics: old values are never
// mutated, new scopes rebuild.
func TestInvalidate_And_Fork(t *testing.T) {
	r := factory.NewRegistry(factory.WithScopeID("base"))
	assert.Equal(t, "base", r.ScopeID())
	require.NoError(t, r.Provide("eps", 1e-12))
	require.NoError(t, r.Define("op", []string{"eps"}, func(d factory.Deps) (any, error) {
		eps := d.Get("eps").(float64)
		return &eps, nil
	}))

	before := r.MustResolve("op").(*float64)

	fork, err := r.Fork(map[string]any{"eps": 1e-6})
	require.NoError(t, err)
	assert.NotEqual(t, r.ScopeID(), fork.ScopeID())
	assert.False(t, fork.IsBuilt("op"))
	forked := fork.MustResolve("op").(*float64)
	assert.Equal(t, 1e-6, *forked)
	assert.Equal(t, 1e-12, *before, "parent value untouched")
	assert.Same(t, before, r.MustResolve("op").(*float64))

	_, err = r.Fork(map[string]any{"op": 1})
	assert.ErrorIs(t, err, factory.ErrAlreadyDefined)

	r.Invalidate()
	assert.False(t, r.IsBuilt("op"))
	after := r.MustResolve("op").(*float64)
	assert.NotSame(t, before, after)
	assert.Equal(t, 1e-12, *before)
}

// TestResolve_ConcurrentFirstResolution ensures concurrent first resolutions
// observe one instance and one build.
func TestResolve_ConcurrentFirstResolution(t *testing.T) {
	r := factory.NewRegistry()
	var built int32
	require.NoError(t, r.Define("leaf", nil, counter(&built)))
	require.NoError(t, r.Define("A", []string{"leaf"}, counter(&built)))

	const workers = 64
	results := make([]*int, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			v, err := r.Resolve("A")
			assert.NoError(t, err)
			results[i], _ = v.(*int)
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		assert.Same(t, results[0], results[i])
	}
	assert.Equal(t, int32(2), atomic.LoadInt32(&built))
}

// TestLogging emits structured debug and warning entries.
func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})

	r := factory.NewRegistry(factory.WithLogger(l), factory.WithScopeID("s1"))
	require.NoError(t, r.Define("A", nil, func(factory.Deps) (any, error) { return 1, nil }))
	_, err := r.Resolve("A")
	require.NoError(t, err)
	_, err = r.Resolve("missing")
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "factory: built")
	assert.Contains(t, out, "operation=A")
	assert.Contains(t, out, "scope=s1")
	assert.Contains(t, out, "factory: resolution plan rejected")
}
