// Package tolerance implements the tolerant comparators used by
// tolerance-aware operations: NearlyEqual for float64 and BigNearlyEqual for
// arbitrary-precision decimals (github.com/shopspring/decimal).
//
// Rule (both variants):
//
//  1. eps <= 0 (or NaN) ⇒ exact equality.
//  2. x == y ⇒ true (covers equal-sign infinities and ±0).
//  3. NaN on either side ⇒ false. NaN is never nearly equal to anything,
//     itself included.
//  4. Both finite ⇒ true when |x−y| <= max(|x|, |y|)·eps (relative rule).
//     The float64 variant also accepts |x−y| < DBLEpsilon so that values
//     straddling zero are not rejected by a vanishing relative bound.
//  5. Otherwise (any infinity left) ⇒ false.
//
// The decimal variant computes the tolerance product in exact decimal
// arithmetic, so the check itself adds no rounding error.
//
// Complexity: O(1) for float64; O(digits) for decimals.
package tolerance
