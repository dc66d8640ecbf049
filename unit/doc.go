// Package unit provides physical-unit values: a magnitude normalised to SI
// base units together with its base Dimension.
//
// Two units are comparable only when their dimensions match (EqualBase);
// once they are, comparing their normalised Values compares the quantities:
//
//	a, _ := unit.Parse("5 m")
//	b, _ := unit.Parse("500 cm")
//	a.EqualBase(b)           // true
//	a.Value() == b.Value()   // 5 == 5
//
// Syntax: "<number> <expr>", expr is a product of symbols with optional
// integer powers, "*" multiplies and "/" divides the next factor only:
//
//	"9.81 kg*m/s^2"   "3 km/h"   "2 m^2"   "1 L"
//
// Supported symbols: SI bases (m g s A K mol cd), time (min h day),
// imperial length/mass (in ft mi lb), derived (L N J W Pa Hz). SI prefixes
// G M k h d c m u n apply to m g s A K mol L N J W Pa Hz. Exact symbols take
// precedence over prefixed readings ("min" is minutes, "h" is hours).
// Temperatures are absolute (K); offset scales are not supported.
package unit
