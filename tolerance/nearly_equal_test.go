package tolerance_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/typedmath/tolerance"
)

// TestNearlyEqual_Table pins the float64 rule at several magnitudes.
func TestNearlyEqual_Table(t *testing.T) {
	inf := math.Inf(1)
	nan := math.NaN()
	cases := []struct {
		name string
		x, y float64
		eps  float64
		want bool
	}{
		{"tiny relative error", 1.0, 1.0 + 1e-15, 1e-9, true},
		{"ten percent apart", 1.0, 1.1, 1e-9, false},
		{"large magnitude", 1e20, 1e20 + 1e5, 1e-12, true},
		{"large magnitude outside", 1e20, 1.0001e20, 1e-12, false},
		{"small magnitude relative", 1e-20, 1.0000000000001e-20, 1e-9, true},
		{"below absolute floor", 1e-20, 2e-20, 1e-9, true},
		{"straddling zero below floor", 1e-17, -1e-17, 1e-9, true},
		{"zero eps exact", 1.0, 1.0 + 1e-15, 0, false},
		{"negative eps exact", 2.0, 2.0, -1, true},
		{"NaN eps exact", 1.0, 1.0 + 1e-15, nan, false},
		{"signed zeros", 0.0, math.Copysign(0, -1), 1e-9, true},
		{"same infinity", inf, inf, 1e-9, true},
		{"opposite infinity", inf, -inf, 1e-9, false},
		{"infinity vs finite", inf, math.MaxFloat64, 1e-9, false},
		{"NaN self", nan, nan, 1e-9, false},
		{"NaN vs number", nan, 1, 1e-9, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tolerance.NearlyEqual(tc.x, tc.y, tc.eps))
			assert.Equal(t, tc.want, tolerance.NearlyEqual(tc.y, tc.x, tc.eps), "symmetry")
		})
	}
}

// TestBigNearlyEqual_Table pins the decimal rule.
func TestBigNearlyEqual_Table(t *testing.T) {
	d := decimal.RequireFromString
	cases := []struct {
		name string
		x, y decimal.Decimal
		eps  float64
		want bool
	}{
		{"identical", d("0.1"), d("0.10"), 0, true},
		{"within eps", d("1"), d("1.0000000000000001"), 1e-12, true},
		{"outside eps", d("1"), d("1.1"), 1e-12, false},
		{"zero eps", d("1"), d("1.0000000000000001"), 0, false},
		{"beyond float precision", d("123456789012345678901234567890"), d("123456789012345678901234567891"), 1e-20, true},
		{"relative at scale", d("1e40"), d("1.000001e40"), 1e-9, false},
		{"infinite eps", d("1"), d("2"), math.Inf(1), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tolerance.BigNearlyEqual(tc.x, tc.y, tc.eps))
			assert.Equal(t, tc.want, tolerance.BigNearlyEqual(tc.y, tc.x, tc.eps), "symmetry")
		})
	}
}
