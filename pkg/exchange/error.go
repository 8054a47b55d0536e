package exchange

import "errors"

var (
	// ErrDuplicateClientRef is returned when a client ref was already
	// submitted in this process.
	ErrDuplicateClientRef = errors.New("duplicate client ref")
	// ErrInvalidSide is returned for sides other than BUY and SELL.
	ErrInvalidSide = errors.New("invalid order side")
)
