// Package types is the type registry of typedmath: the closed set of value
// kinds the dispatcher understands, the classification of runtime values into
// those kinds, and the declared table of implicit widenings between them.
//
// What lives here:
//
//	Tag              — one recognised value kind (boolean, number, BigNumber, ...)
//	Signature        — ordered tuple of Tags naming one overload
//	Classifier       — total function value → Tag (Unknown for foreign values)
//	ConversionTable  — directed, weighted widening edges + cheapest routes
//
// Go representations of the tags:
//
//	boolean    bool
//	number     float64
//	BigNumber  decimal.Decimal (github.com/shopspring/decimal)
//	Fraction   *big.Rat
//	Complex    complex128
//	Unit       any value implementing Tagged with TypeTag() == Unit
//	Matrix     any value implementing Tagged with TypeTag() == Matrix
//
// Conversions never narrow: nothing converts out of Complex, and lossy edges
// (BigNumber→Complex, Fraction→Complex, Fraction↔BigNumber) are not declared
// by DefaultConversions. Cheapest routes are computed once per table with a
// lazy-decrease-key Dijkstra; among equal-cost routes the one Dijkstra
// reaches first wins (edges scanned in declaration order, heap ties in
// discovery order), so dispatch is reproducible across runs.
//
// Complexity:
//
//   - Classify: O(1).
//   - Signature.Key: O(len(sig)).
//   - ConversionTable.Path: O(1) after the first call, which costs
//     O(T · (T + E) log T) for T tags and E edges.
package types
