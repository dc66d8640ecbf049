package unit

import (
	"math"
	"strconv"
	"strings"
)

// Base dimension indices.
const (
	Length = iota
	Mass
	Time
	Current
	Temperature
	Amount
	Luminosity

	baseCount
)

var baseSymbols = [baseCount]string{"m", "kg", "s", "A", "K", "mol", "cd"}

// Dimension holds the exponent of each SI base dimension.
type Dimension [baseCount]int8

// Mul returns d·o. ok is false if an exponent leaves the int8 range.
func (d Dimension) Mul(o Dimension) (Dimension, bool) {
	for i := range d {
		e := int(d[i]) + int(o[i])
		if e < math.MinInt8 || e > math.MaxInt8 {
			return Dimension{}, false
		}
		d[i] = int8(e)
	}

	return d, true
}

// Pow returns d^n. ok is false if an exponent leaves the int8 range.
func (d Dimension) Pow(n int) (Dimension, bool) {
	for i := range d {
		e := int(d[i]) * n
		if e < math.MinInt8 || e > math.MaxInt8 {
			return Dimension{}, false
		}
		d[i] = int8(e)
	}

	return d, true
}

// IsDimensionless reports whether every exponent is zero.
func (d Dimension) IsDimensionless() bool {
	return d == Dimension{}
}

// String renders the dimension in SI base symbols, e.g. "kg m s^-2".
func (d Dimension) String() string {
	if d.IsDimensionless() {
		return "1"
	}
	parts := make([]string, 0, baseCount)
	for _, i := range []int{Mass, Length, Time, Current, Temperature, Amount, Luminosity} {
		switch e := d[i]; e {
		case 0:
		case 1:
			parts = append(parts, baseSymbols[i])
		default:
			parts = append(parts, baseSymbols[i]+"^"+strconv.Itoa(int(e)))
		}
	}

	return strings.Join(parts, " ")
}

// dim builds a Dimension from (index, exponent) pairs.
func dim(pairs ...int) Dimension {
	var d Dimension
	for i := 0; i+1 < len(pairs); i += 2 {
		d[pairs[i]] = int8(pairs[i+1])
	}

	return d
}
