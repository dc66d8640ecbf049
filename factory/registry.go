package factory

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Visitation states for dependency planning.
const (
	white = iota // not visited
	gray         // on the current DFS stack
	black        // planned
)

// Registry maps operation names to factories and caches built operations
// for one scope.
type Registry struct {
	mu       sync.Mutex
	scope    string
	log      logrus.FieldLogger
	defs     map[string]Factory
	order    []string
	provided map[string]any
	built    map[string]any
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger. nil is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// WithScopeID overrides the generated scope id. Empty is ignored.
func WithScopeID(id string) Option {
	return func(r *Registry) {
		if id != "" {
			r.scope = id
		}
	}
}

// discardLogger is the silent default.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		scope:    uuid.NewString(),
		defs:     make(map[string]Factory),
		provided: make(map[string]any),
		built:    make(map[string]any),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		r.log = discardLogger()
	}

	return r
}

// ScopeID identifies this registry's build scope in logs.
func (r *Registry) ScopeID() string { return r.scope }

// Provide binds a ready value (config accessor, dispatcher builder, ...)
// under name. Provided values are leaves of the dependency graph.
func (r *Registry) Provide(name string, value any) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrBadFactory)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.knownLocked(name) {
		return fmt.Errorf("%w: %q", ErrAlreadyDefined, name)
	}
	r.provided[name] = value

	return nil
}

// Define records a factory descriptor; see Register.
func (r *Registry) Define(name string, dependencies []string, create CreateFunc) error {
	return r.Register(New(name, dependencies, create))
}

// Register records factory descriptors. Nothing is built. Registration is
// all-or-nothing.
func (r *Registry) Register(fs ...Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// 1) Validate the whole batch first
	batch := make(map[string]struct{}, len(fs))
	for _, f := range fs {
		if err := f.validate(); err != nil {
			return err
		}
		if _, dup := batch[f.Name]; dup || r.knownLocked(f.Name) {
			return fmt.Errorf("%w: %q", ErrAlreadyDefined, f.Name)
		}
		batch[f.Name] = struct{}{}
	}

	// 2) Record
	for _, f := range fs {
		r.defs[f.Name] = New(f.Name, f.Dependencies, f.Create)
		r.order = append(r.order, f.Name)
	}

	return nil
}

// Names returns the registered factory names in registration order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.order...)
}

// IsBuilt reports whether name has been built in this scope.
func (r *Registry) IsBuilt(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.built[name]
	return ok
}

// Resolve returns the value bound to name, building it and its transitive
// dependencies on first use.
func (r *Registry) Resolve(name string) (any, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// 1) Fast paths: static binding or cached build
	if v, ok := r.provided[name]; ok {
		return v, nil
	}
	if v, ok := r.built[name]; ok {
		return v, nil
	}

	// 2) Plan the full graph before running any builder
	order, err := r.planLocked(name)
	if err != nil {
		r.log.WithFields(logrus.Fields{"scope": r.scope, "operation": name}).
			WithError(err).Warn("factory: resolution plan rejected")
		return nil, err
	}

	// 3) Build in dependency order
	for _, n := range order {
		if _, done := r.built[n]; done {
			continue
		}
		if err = r.buildLocked(n); err != nil {
			return nil, err
		}
	}

	return r.built[name], nil
}

// MustResolve is Resolve that panics on error.
func (r *Registry) MustResolve(name string) any {
	v, err := r.Resolve(name)
	if err != nil {
		panic(err)
	}

	return v
}

// ResolveAs resolves name and asserts its type.
func ResolveAs[T any](r *Registry, name string) (T, error) {
	var zero T
	raw, err := r.Resolve(name)
	if err != nil {
		return zero, err
	}
	v, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %q is %T, want %T", ErrDependencyType, name, raw, zero)
	}

	return v, nil
}

// Invalidate drops every built value; descriptors and bindings are kept.
// Values handed out earlier stay valid and unchanged.
func (r *Registry) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.built = make(map[string]any)
	r.log.WithField("scope", r.scope).Debug("factory: cache invalidated")
}

// Fork returns a registry with the same descriptors and bindings, a fresh
// cache and a new scope id. overrides replace (or add) bindings in the fork
// only; a name registered as a factory cannot be overridden.
func (r *Registry) Fork(overrides map[string]any) (*Registry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f := &Registry{
		scope:    uuid.NewString(),
		log:      r.log,
		defs:     make(map[string]Factory, len(r.defs)),
		order:    append([]string(nil), r.order...),
		provided: make(map[string]any, len(r.provided)+len(overrides)),
		built:    make(map[string]any),
	}
	for k, v := range r.defs {
		f.defs[k] = v
	}
	for k, v := range r.provided {
		f.provided[k] = v
	}
	for k, v := range overrides {
		if _, isDef := r.defs[k]; isDef || k == "" {
			return nil, fmt.Errorf("%w: cannot override %q", ErrAlreadyDefined, k)
		}
		f.provided[k] = v
	}
	r.log.WithFields(logrus.Fields{"scope": r.scope, "fork": f.scope}).Debug("factory: scope forked")

	return f, nil
}

func (r *Registry) knownLocked(name string) bool {
	_, isDef := r.defs[name]
	_, isVal := r.provided[name]

	return isDef || isVal
}

// planLocked returns the post-order of every factory reachable from root
// that still has to be planned. Provided and already-built names are leaves.
func (r *Registry) planLocked(root string) ([]string, error) {
	p := &planner{r: r, state: make(map[string]int)}
	if err := p.visit(root, ""); err != nil {
		return nil, err
	}

	return p.order, nil
}

// planner carries DFS state for one Resolve call.
type planner struct {
	r     *Registry
	state map[string]int
	stack []string
	order []string
}

func (p *planner) visit(name, requiredBy string) error {
	// 1) Leaves
	if _, ok := p.r.provided[name]; ok {
		return nil
	}
	if _, ok := p.r.built[name]; ok {
		return nil
	}
	def, ok := p.r.defs[name]
	if !ok {
		return &UnknownDependencyError{Name: name, RequiredBy: requiredBy}
	}

	// 2) Colour check: Gray means a back edge, i.e. a cycle
	switch p.state[name] {
	case gray:
		return &CycleError{Cycle: p.cycleTo(name)}
	case black:
		return nil
	}

	// 3) Descend
	p.state[name] = gray
	p.stack = append(p.stack, name)
	for _, dep := range def.Dependencies {
		depName, optional := splitDep(dep)
		if optional && !p.r.knownLocked(depName) {
			continue
		}
		if err := p.visit(depName, name); err != nil {
			return err
		}
	}
	p.stack = p.stack[:len(p.stack)-1]
	p.state[name] = black
	p.order = append(p.order, name)

	return nil
}

// cycleTo extracts the stack segment starting at name and closes it.
func (p *planner) cycleTo(name string) []string {
	idx := 0
	for i, n := range p.stack {
		if n == name {
			idx = i
			break
		}
	}
	cycle := append([]string(nil), p.stack[idx:]...)

	return append(cycle, name)
}

// buildLocked runs the builder of name; all its dependencies are available.
func (r *Registry) buildLocked(name string) error {
	def := r.defs[name]
	deps := Deps{owner: name, values: make(map[string]any, len(def.Dependencies))}
	for _, dep := range def.Dependencies {
		depName, _ := splitDep(dep)
		if v, ok := r.provided[depName]; ok {
			deps.values[depName] = v
		} else if v, ok = r.built[depName]; ok {
			deps.values[depName] = v
		} else {
			continue // optional and absent
		}
		deps.names = append(deps.names, depName)
	}

	entry := r.log.WithFields(logrus.Fields{
		"scope":        r.scope,
		"operation":    name,
		"dependencies": deps.names,
	})

	v, err := def.Create(deps)
	if err == nil && v == nil {
		err = errors.New("builder returned nil")
	}
	if err != nil {
		entry.WithError(err).Warn("factory: build failed")
		return fmt.Errorf("%w: %s: %w", ErrBuildFailed, name, err)
	}

	r.built[name] = v
	entry.Debug("factory: built")

	return nil
}
