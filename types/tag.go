package types

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Tag names one recognised value kind. The set is closed; Unknown is the
// zero value and is never a legal signature entry.
type Tag uint8

// The closed tag set.
const (
	Unknown Tag = iota
	Boolean
	Number
	BigNumber
	Fraction
	Complex
	Unit
	Matrix

	tagCount // number of tags including Unknown; keep last
)

var tagNames = [tagCount]string{
	Unknown:   "unknown",
	Boolean:   "boolean",
	Number:    "number",
	BigNumber: "BigNumber",
	Fraction:  "Fraction",
	Complex:   "Complex",
	Unit:      "Unit",
	Matrix:    "Matrix",
}

// String returns the canonical tag name, e.g. "number" or "BigNumber".
func (t Tag) String() string {
	if t >= tagCount {
		return fmt.Sprintf("Tag(%d)", uint8(t))
	}

	return tagNames[t]
}

// Valid reports whether t is a member of the closed set other than Unknown.
func (t Tag) Valid() bool {
	return t > Unknown && t < tagCount
}

// Tags returns every valid tag in declaration order.
func Tags() []Tag {
	out := make([]Tag, 0, tagCount-1)
	for t := Boolean; t < tagCount; t++ {
		out = append(out, t)
	}

	return out
}

// ParseTag maps a canonical tag name to its Tag. Matching is exact after
// trimming surrounding whitespace.
func ParseTag(name string) (Tag, error) {
	name = strings.TrimSpace(name)
	for t := Boolean; t < tagCount; t++ {
		if tagNames[t] == name {
			return t, nil
		}
	}

	return Unknown, fmt.Errorf("%w: %q", ErrUnknownTag, name)
}

// Tagged is implemented by value objects that classify themselves
// (units, matrices). A Tagged value claiming any other tag is Unknown. Classification inspects the value's identity and never
// attempts numeric coercion first.
type Tagged interface {
	TypeTag() Tag
}

// Classifier maps a runtime value to exactly one Tag. It must be total:
// values outside the supported representations map to Unknown.
type Classifier func(v any) Tag

// Classify is the default Classifier.
func Classify(v any) Tag {
	switch x := v.(type) {
	case bool:
		return Boolean
	case float64:
		return Number
	case decimal.Decimal:
		return BigNumber
	case *big.Rat:
		if x == nil {
			return Unknown
		}
		return Fraction
	case complex128:
		return Complex
	case Tagged:
		// Built-in kinds have fixed Go representations; only value objects
		// may name their own tag.
		if t := x.TypeTag(); t == Unit || t == Matrix {
			return t
		}
	}

	return Unknown
}

// Describe renders the tag of v for error messages, including the Go type
// when the value is not classifiable.
func Describe(v any, c Classifier) string {
	if c == nil {
		c = Classify
	}
	if t := c(v); t != Unknown {
		return t.String()
	}

	return fmt.Sprintf("unknown(%T)", v)
}
