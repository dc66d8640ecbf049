package config_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/typedmath/config"
)

// TestDefault_And_New covers defaults and option application.
func TestDefault_And_New(t *testing.T) {
	d := config.Default()
	assert.Equal(t, config.DefaultEpsilon, d.Epsilon)
	assert.Equal(t, config.NumberFloat, d.Number)

	c, err := config.New(config.WithEpsilon(1e-6), config.WithNumber(config.NumberBig))
	require.NoError(t, err)
	assert.Equal(t, 1e-6, c.Epsilon)
	assert.Equal(t, config.NumberBig, c.Number)

	_, err = config.New(config.WithNumber("decimal"))
	assert.ErrorIs(t, err, config.ErrBadNumberType)
}

// TestWithEpsilon_Panics verifies the programmer-error contract.
func TestWithEpsilon_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "config: WithEpsilon: eps must be finite, non-negative", func() {
		config.WithEpsilon(-1)
	})
	assert.Panics(t, func() { config.WithEpsilon(math.NaN()) })
	assert.Panics(t, func() { config.WithEpsilon(math.Inf(1)) })
	assert.NotPanics(t, func() { config.WithEpsilon(0) })
}

// TestValidate reports epsilon violations for struct literals.
func TestValidate(t *testing.T) {
	assert.ErrorIs(t, config.Config{Epsilon: -1, Number: config.NumberFloat}.Validate(), config.ErrBadEpsilon)
	assert.ErrorIs(t, config.Config{Epsilon: math.Inf(1), Number: config.NumberFloat}.Validate(), config.ErrBadEpsilon)
	assert.NoError(t, config.Config{Epsilon: 0, Number: config.NumberFraction}.Validate())
}

// TestFromYAML decodes over defaults.
func TestFromYAML(t *testing.T) {
	c, err := config.FromYAML([]byte("epsilon: 1e-9\n"))
	require.NoError(t, err)
	assert.Equal(t, 1e-9, c.Epsilon)
	assert.Equal(t, config.NumberFloat, c.Number)

	c, err = config.FromYAML([]byte("number: Fraction\n"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultEpsilon, c.Epsilon)
	assert.Equal(t, config.NumberFraction, c.Number)

	_, err = config.FromYAML([]byte("epsilon: [1, 2]\n"))
	assert.ErrorIs(t, err, config.ErrDecode)

	_, err = config.FromYAML([]byte("epsilon: -0.5\n"))
	assert.ErrorIs(t, err, config.ErrBadEpsilon)
}

// TestFromJSON decodes over defaults and round-trips via ToJSON.
func TestFromJSON(t *testing.T) {
	c, err := config.FromJSON([]byte(`{"epsilon": 0.001, "number": "BigNumber"}`))
	require.NoError(t, err)
	assert.Equal(t, 0.001, c.Epsilon)
	assert.Equal(t, config.NumberBig, c.Number)

	raw, err := c.ToJSON()
	require.NoError(t, err)
	back, err := config.FromJSON(raw)
	require.NoError(t, err)
	assert.Equal(t, c, back)

	_, err = config.FromJSON([]byte(`{"epsilon": "tiny"}`))
	assert.ErrorIs(t, err, config.ErrDecode)

	_, err = config.FromJSON([]byte(`{"number": "int"}`))
	assert.ErrorIs(t, err, config.ErrBadNumberType)
}

// TestStore covers zero value, Set validation and concurrent reads.
func TestStore(t *testing.T) {
	var zero config.Store
	assert.Equal(t, config.Default(), zero.Load())

	s, err := config.NewStore(config.Default())
	require.NoError(t, err)
	assert.ErrorIs(t, s.Set(config.Config{Epsilon: -1, Number: config.NumberFloat}), config.ErrBadEpsilon)
	assert.Equal(t, config.DefaultEpsilon, s.Load().Epsilon)

	_, err = config.NewStore(config.Config{})
	assert.ErrorIs(t, err, config.ErrBadNumberType)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = s.Load()
		}()
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, s.Set(config.Config{Epsilon: float64(i) * 1e-9, Number: config.NumberFloat}))
		}(i)
	}
	wg.Wait()
	assert.GreaterOrEqual(t, s.Load().Epsilon, 0.0)
}
