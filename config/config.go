package config

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors.
var (
	ErrBadEpsilon    = errors.New("config: epsilon must be finite and non-negative")
	ErrBadNumberType = errors.New("config: unsupported number type")
	ErrDecode        = errors.New("config: cannot decode payload")
)

// NumberType selects the representation constructors use for numeric
// literals such as the ones produced by identity or ones.
type NumberType string

// Supported number types.
const (
	NumberFloat    NumberType = "number"
	NumberBig      NumberType = "BigNumber"
	NumberFraction NumberType = "Fraction"
)

// Defaults (single source of truth).
const (
	// DefaultEpsilon is the relative tolerance applied by equalScalar.
	DefaultEpsilon = 1e-12

	// DefaultNumber is the constructor number type.
	DefaultNumber = NumberFloat
)

const panicEpsilonInvalid = "config: WithEpsilon: eps must be finite, non-negative"

// Config is the read-only numeric policy.
type Config struct {
	Epsilon float64    `yaml:"epsilon" json:"epsilon"`
	Number  NumberType `yaml:"number" json:"number"`
}

// Option mutates a Config under construction.
type Option func(*Config)

// WithEpsilon sets the tolerance. Panics on negative or non-finite eps
// (programmer error); use Validate for untrusted input.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(c *Config) { c.Epsilon = eps }
}

// WithNumber sets the constructor number type.
func WithNumber(n NumberType) Option {
	return func(c *Config) { c.Number = n }
}

// Default returns the default configuration.
func Default() Config {
	return Config{Epsilon: DefaultEpsilon, Number: DefaultNumber}
}

// New applies opts over Default and validates the result.
func New(opts ...Option) (Config, error) {
	c := Default()
	for _, opt := range opts {
		opt(&c)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon < 0 {
		return fmt.Errorf("%w: %v", ErrBadEpsilon, c.Epsilon)
	}
	switch c.Number {
	case NumberFloat, NumberBig, NumberFraction:
	default:
		return fmt.Errorf("%w: %q", ErrBadNumberType, c.Number)
	}

	return nil
}
