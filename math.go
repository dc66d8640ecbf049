package typedmath

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/typedmath/config"
	"github.com/katalvlaran/typedmath/factory"
	"github.com/katalvlaran/typedmath/matrix"
	"github.com/katalvlaran/typedmath/relational"
	"github.com/katalvlaran/typedmath/typed"
	"github.com/katalvlaran/typedmath/types"
)

// Option configures Create.
type Option func(*settings)

type settings struct {
	cfg       config.Config
	log       logrus.FieldLogger
	conv      *types.ConversionTable
	factories []factory.Factory
}

// WithConfig sets the initial configuration. It is validated by Create.
func WithConfig(c config.Config) Option {
	return func(s *settings) { s.cfg = c }
}

// WithLogger sets the logger used by Create and the registry. nil is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *settings) {
		if l != nil {
			s.log = l
		}
	}
}

// WithConversions replaces the default conversion table.
// Panics if t is nil.
func WithConversions(t *types.ConversionTable) Option {
	if t == nil {
		panic("typedmath: WithConversions: nil table")
	}

	return func(s *settings) { s.conv = t }
}

// WithFactories registers extra factories next to the built-in catalog.
func WithFactories(fs ...factory.Factory) Option {
	return func(s *settings) { s.factories = append(s.factories, fs...) }
}

// Math is one configured instance: a config store, a dispatcher builder and
// a registry of operations built on demand.
type Math struct {
	store    *config.Store
	builder  *typed.Builder
	registry *factory.Registry
	log      logrus.FieldLogger
}

// Create builds a Math instance. No operation is built yet.
func Create(opts ...Option) (*Math, error) {
	// 1) Collect settings
	s := settings{cfg: config.Default()}
	for _, opt := range opts {
		opt(&s)
	}
	if s.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		s.log = l
	}
	if s.conv == nil {
		s.conv = types.DefaultConversions()
	}

	// 2) Config store
	store, err := config.NewStore(s.cfg)
	if err != nil {
		return nil, fmt.Errorf("typedmath: %w", err)
	}

	// 3) Registry with the leaves bound and every factory recorded
	builder := typed.New(typed.WithConversions(s.conv))
	registry := factory.NewRegistry(factory.WithLogger(s.log))
	if err := registry.Provide(factory.TypedName, builder); err != nil {
		return nil, fmt.Errorf("typedmath: %w", err)
	}
	if err := registry.Provide(factory.ConfigName, store); err != nil {
		return nil, fmt.Errorf("typedmath: %w", err)
	}
	all := append(relational.All(), matrix.All()...)
	all = append(all, s.factories...)
	if err := registry.Register(all...); err != nil {
		return nil, fmt.Errorf("typedmath: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"scope":      registry.ScopeID(),
		"operations": len(all),
		"epsilon":    s.cfg.Epsilon,
		"number":     s.cfg.Number,
	}).Debug("typedmath: created")

	return &Math{store: store, builder: builder, registry: registry, log: s.log}, nil
}

// Function resolves the named operation, building it and its dependencies
// on first use.
func (m *Math) Function(name string) (*typed.Function, error) {
	return factory.ResolveAs[*typed.Function](m.registry, name)
}

// Call resolves name and invokes it with args.
func (m *Math) Call(name string, args ...any) (any, error) {
	f, err := m.Function(name)
	if err != nil {
		return nil, err
	}

	return f.Call(args...)
}

// Config returns the current configuration.
func (m *Math) Config() config.Config { return m.store.Load() }

// SetConfig publishes c to every operation of this instance. Built
// operations are kept; they read the config on each call.
func (m *Math) SetConfig(c config.Config) error {
	if err := m.store.Set(c); err != nil {
		return fmt.Errorf("typedmath: %w", err)
	}
	m.log.WithFields(logrus.Fields{
		"scope":   m.registry.ScopeID(),
		"epsilon": c.Epsilon,
		"number":  c.Number,
	}).Debug("typedmath: config updated")

	return nil
}

// Fork returns an independent instance with config c, the same factories and
// conversions, and an empty build cache. The receiver is unaffected.
func (m *Math) Fork(c config.Config) (*Math, error) {
	store, err := config.NewStore(c)
	if err != nil {
		return nil, fmt.Errorf("typedmath: %w", err)
	}
	registry, err := m.registry.Fork(map[string]any{factory.ConfigName: store})
	if err != nil {
		return nil, fmt.Errorf("typedmath: %w", err)
	}

	return &Math{store: store, builder: m.builder, registry: registry, log: m.log}, nil
}

// Registry exposes the underlying registry, e.g. to Define more operations
// or inspect IsBuilt.
func (m *Math) Registry() *factory.Registry { return m.registry }

// Builder returns the dispatcher builder shared by every operation.
func (m *Math) Builder() *typed.Builder { return m.builder }
