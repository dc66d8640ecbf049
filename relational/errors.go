package relational

import "errors"

// ErrIncompatibleBase is returned when two units of different physical
// dimension are compared.
var ErrIncompatibleBase = errors.New("relational: cannot compare units with different base")
