package config

import "sync/atomic"

// Provider is the read-only accessor operations depend on.
type Provider interface {
	Load() Config
}

// Store publishes the current Config. Load is wait-free; Set replaces the
// value atomically. Only the surrounding application calls Set.
type Store struct {
	v atomic.Pointer[Config]
}

var _ Provider = (*Store)(nil)

// NewStore returns a Store holding c. c is validated.
func NewStore(c Config) (*Store, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	s := &Store{}
	s.v.Store(&c)

	return s, nil
}

// Load returns the current Config, or Default if nothing was stored.
func (s *Store) Load() Config {
	if p := s.v.Load(); p != nil {
		return *p
	}

	return Default()
}

// Set validates and publishes c.
func (s *Store) Set(c Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	s.v.Store(&c)

	return nil
}
