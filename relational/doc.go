// Package relational defines the comparison operations of typedmath as
// factories: equalScalar, equal, unequal and deepEqual.
//
// equalScalar is the building block. Its dispatch table has one signature
// per scalar kind:
//
//	boolean,   boolean    exact identity
//	number,    number     x == y, or tolerance.NearlyEqual with config epsilon
//	BigNumber, BigNumber  Equal, or tolerance.BigNearlyEqual with config epsilon
//	Fraction,  Fraction   exact (Cmp == 0), never tolerant
//	Complex,   Complex    exact on real and imaginary parts
//	Unit,      Unit       ErrIncompatibleBase unless the dimensions agree,
//	                      then equalScalar on the SI-normalised values
//
// Mixed scalar kinds go through the declared conversions, so a Fraction is
// compared against the exact rational value of a float64 and is never
// truncated. Epsilon is read from the config provider on every call.
//
// NaN is never equal to anything, itself included, in every operation here.
//
// equal and unequal work elementwise on *matrix.Dense and broadcast a scalar
// against a matrix; deepEqual returns a single boolean and treats a shape
// mismatch as "not equal" rather than an error.
package relational
