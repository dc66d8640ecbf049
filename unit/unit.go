package unit

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/typedmath/types"
)

// Sentinel errors.
var (
	ErrUnknownUnit   = errors.New("unit: unknown unit")
	ErrBadUnitSyntax = errors.New("unit: malformed unit expression")
	ErrIncompatible  = errors.New("unit: incompatible dimensions")
)

// Unit is an immutable physical quantity.
type Unit struct {
	value  float64 // normalised to SI base units
	amount float64 // as written, in expr units
	expr   string
	factor float64
	dim    Dimension
}

var _ types.Tagged = (*Unit)(nil)

// Parse reads "<number> <expr>", e.g. "5 m" or "9.81 kg*m/s^2".
func Parse(text string) (*Unit, error) {
	text = strings.TrimSpace(text)
	num, expr, found := strings.Cut(text, " ")
	if !found {
		return nil, fmt.Errorf("%w: %q: want \"<number> <unit>\"", ErrBadUnitSyntax, text)
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: bad number: %v", ErrBadUnitSyntax, text, err)
	}

	return New(v, expr)
}

// MustParse is Parse that panics on error.
func MustParse(text string) *Unit {
	u, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return u
}

// New returns value expressed in the unit expression expr.
func New(value float64, expr string) (*Unit, error) {
	expr = strings.Join(strings.Fields(expr), "")
	factor, d, err := parseExpr(expr)
	if err != nil {
		return nil, err
	}

	return &Unit{value: value * factor, amount: value, expr: expr, factor: factor, dim: d}, nil
}

// parseExpr evaluates a product/quotient of symbols with integer powers.
func parseExpr(expr string) (float64, Dimension, error) {
	if expr == "" {
		return 0, Dimension{}, fmt.Errorf("%w: empty unit", ErrBadUnitSyntax)
	}

	factor := 1.0
	var d Dimension
	sign := int8(1)
	start := 0
	for i := 0; i <= len(expr); i++ {
		if i < len(expr) && expr[i] != '*' && expr[i] != '/' {
			continue
		}
		// 1) Evaluate the factor expr[start:i]
		f, fd, err := parseFactor(expr[start:i])
		if err != nil {
			return 0, Dimension{}, fmt.Errorf("%q: %w", expr, err)
		}
		ok := true
		if sign < 0 {
			f = 1 / f
			fd, ok = fd.Pow(-1)
		}
		if ok {
			d, ok = d.Mul(fd)
		}
		if !ok {
			return 0, Dimension{}, fmt.Errorf("%w: %q: exponent out of range", ErrBadUnitSyntax, expr)
		}
		factor *= f

		// 2) The operator applies to the next factor only
		sign = 1
		if i < len(expr) && expr[i] == '/' {
			sign = -1
		}
		start = i + 1
	}

	return factor, d, nil
}

// parseFactor reads "sym" or "sym^n".
func parseFactor(tok string) (float64, Dimension, error) {
	sym, powText, hasPow := strings.Cut(tok, "^")
	if sym == "" {
		return 0, Dimension{}, fmt.Errorf("%w: empty factor", ErrBadUnitSyntax)
	}
	power := int64(1)
	if hasPow {
		p, err := strconv.ParseInt(powText, 10, 8)
		if err != nil || p == 0 {
			return 0, Dimension{}, fmt.Errorf("%w: bad power %q", ErrBadUnitSyntax, powText)
		}
		power = p
	}

	def, ok := lookup(sym)
	if !ok {
		return 0, Dimension{}, fmt.Errorf("%w: %q", ErrUnknownUnit, sym)
	}

	d, ok := def.dim.Pow(int(power))
	if !ok {
		return 0, Dimension{}, fmt.Errorf("%w: %q: exponent out of range", ErrBadUnitSyntax, tok)
	}

	return math.Pow(def.factor, float64(power)), d, nil
}

// TypeTag classifies *Unit as types.Unit; a nil *Unit is Unknown.
func (u *Unit) TypeTag() types.Tag {
	if u == nil {
		return types.Unknown
	}

	return types.Unit
}

// Value returns the magnitude normalised to SI base units.
func (u *Unit) Value() float64 { return u.value }

// Dimension returns the base dimension.
func (u *Unit) Dimension() Dimension { return u.dim }

// EqualBase reports whether u and o have the same base dimension.
func (u *Unit) EqualBase(o *Unit) bool { return u.dim == o.dim }

// To re-expresses u in expr. The dimensions must match.
func (u *Unit) To(expr string) (*Unit, error) {
	target, err := New(1, expr)
	if err != nil {
		return nil, err
	}
	if !u.EqualBase(target) {
		return nil, fmt.Errorf("%w: %s vs %s", ErrIncompatible, u.dim, target.dim)
	}

	return &Unit{
		value:  u.value,
		amount: u.value / target.factor,
		expr:   target.expr,
		factor: target.factor,
		dim:    target.dim,
	}, nil
}

// String renders the quantity as written, e.g. "500 cm".
func (u *Unit) String() string {
	return strconv.FormatFloat(u.amount, 'g', -1, 64) + " " + u.expr
}
