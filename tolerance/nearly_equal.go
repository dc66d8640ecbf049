package tolerance

import (
	"math"

	"github.com/shopspring/decimal"
)

// DBLEpsilon is the gap between 1.0 and the next float64 (2^-52); it is the
// absolute floor under the relative rule of NearlyEqual.
const DBLEpsilon = 2.220446049250313e-16

// NearlyEqual reports whether x and y are equal within the relative
// tolerance eps. See the package documentation for the exact rule.
func NearlyEqual(x, y, eps float64) bool {
	// 1) No tolerance configured: exact comparison
	if !(eps > 0) {
		return x == y
	}
	// 2) Exact short-circuit (infinities of equal sign, ±0)
	if x == y {
		return true
	}
	// 3) NaN never compares nearly equal
	if math.IsNaN(x) || math.IsNaN(y) {
		return false
	}
	// 4) Finite values: absolute floor, then relative bound
	if !math.IsInf(x, 0) && !math.IsInf(y, 0) {
		diff := math.Abs(x - y)
		if diff < DBLEpsilon {
			return true
		}

		return diff <= math.Max(math.Abs(x), math.Abs(y))*eps
	}

	// 5) At least one infinity and not identical
	return false
}

// BigNearlyEqual is NearlyEqual for arbitrary-precision decimals. Decimals
// are always finite, so only the exact and relative rules apply.
func BigNearlyEqual(x, y decimal.Decimal, eps float64) bool {
	if x.Equal(y) {
		return true
	}
	if !(eps > 0) || math.IsInf(eps, 0) {
		return false
	}

	diff := x.Sub(y).Abs()
	bound := decimal.Max(x.Abs(), y.Abs()).Mul(decimal.NewFromFloat(eps))

	return diff.LessThanOrEqual(bound)
}
