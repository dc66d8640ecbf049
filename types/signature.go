package types

import (
	"fmt"
	"strings"
)

// MaxArity is the largest number of positions a Signature may hold; it is
// bounded by the packed Key encoding (4 bits per position, one slot reserved
// for the arity).
const MaxArity = 15

// Signature is an ordered sequence of Tags, one per argument position.
type Signature []Tag

// ParseSignature parses comma-separated tag names, e.g. "number, number".
// The empty string is the zero-arity signature. Intended for declaration
// time only; dispatch compares packed keys.
func ParseSignature(text string) (Signature, error) {
	if strings.TrimSpace(text) == "" {
		return Signature{}, nil
	}

	parts := strings.Split(text, ",")
	if len(parts) > MaxArity {
		return nil, fmt.Errorf("%w: %d > %d in %q", ErrSignatureTooLong, len(parts), MaxArity, text)
	}

	sig := make(Signature, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			return nil, fmt.Errorf("%w: empty entry in %q", ErrBadSignature, text)
		}
		t, err := ParseTag(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadSignature, err)
		}
		sig = append(sig, t)
	}

	return sig, nil
}

// MustParseSignature is ParseSignature that panics on error. For package-level
// declarations only.
func MustParseSignature(text string) Signature {
	sig, err := ParseSignature(text)
	if err != nil {
		panic(err)
	}

	return sig
}

// Key packs the signature into a uint64: the low 4 bits hold the arity and
// each following nibble one tag. Two signatures are textually identical iff
// their keys are equal. Signatures longer than MaxArity yield ok=false.
func (s Signature) Key() (key uint64, ok bool) {
	if len(s) > MaxArity {
		return 0, false
	}

	key = uint64(len(s))
	for i, t := range s {
		key |= uint64(t&0xF) << (4 * uint(i+1))
	}

	return key, true
}

// Equal reports positional equality.
func (s Signature) Equal(o Signature) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}

	return true
}

// String renders the signature the way it is declared: "number, number".
func (s Signature) String() string {
	names := make([]string, len(s))
	for i, t := range s {
		names[i] = t.String()
	}

	return strings.Join(names, ", ")
}

// Of classifies each argument with c and returns the resulting signature.
func Of(c Classifier, args ...any) Signature {
	if c == nil {
		c = Classify
	}
	sig := make(Signature, len(args))
	for i, a := range args {
		sig[i] = c(a)
	}

	return sig
}
