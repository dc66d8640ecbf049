package unit

import "strings"

type definition struct {
	factor     float64 // multiply to reach SI base units
	dim        Dimension
	prefixable bool
}

var definitions = map[string]definition{
	// SI bases (gram carries the kg factor)
	"m":   {1, dim(Length, 1), true},
	"g":   {1e-3, dim(Mass, 1), true},
	"s":   {1, dim(Time, 1), true},
	"A":   {1, dim(Current, 1), true},
	"K":   {1, dim(Temperature, 1), true},
	"mol": {1, dim(Amount, 1), true},
	"cd":  {1, dim(Luminosity, 1), false},

	// time
	"min": {60, dim(Time, 1), false},
	"h":   {3600, dim(Time, 1), false},
	"day": {86400, dim(Time, 1), false},

	// imperial
	"in": {0.0254, dim(Length, 1), false},
	"ft": {0.3048, dim(Length, 1), false},
	"mi": {1609.344, dim(Length, 1), false},
	"lb": {0.45359237, dim(Mass, 1), false},

	// derived
	"L":  {1e-3, dim(Length, 3), true},
	"N":  {1, dim(Mass, 1, Length, 1, Time, -2), true},
	"J":  {1, dim(Mass, 1, Length, 2, Time, -2), true},
	"W":  {1, dim(Mass, 1, Length, 2, Time, -3), true},
	"Pa": {1, dim(Mass, 1, Length, -1, Time, -2), true},
	"Hz": {1, dim(Time, -1), true},
}

var prefixes = map[string]float64{
	"G": 1e9,
	"M": 1e6,
	"k": 1e3,
	"h": 1e2,
	"d": 1e-1,
	"c": 1e-2,
	"m": 1e-3,
	"u": 1e-6,
	"n": 1e-9,
}

// lookup resolves a single symbol, exact match first, then prefix + base.
func lookup(sym string) (definition, bool) {
	if def, ok := definitions[sym]; ok {
		return def, true
	}
	for p, scale := range prefixes {
		rest, found := strings.CutPrefix(sym, p)
		if !found || rest == "" {
			continue
		}
		if def, ok := definitions[rest]; ok && def.prefixable {
			def.factor *= scale
			return def, true
		}
	}

	return definition{}, false
}
