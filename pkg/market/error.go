package market

import "errors"

var (
	// ErrInvalidOrder is returned when admission validation fails; no state
	// is created or mutated in that case.
	ErrInvalidOrder = errors.New("invalid order")
	// ErrBookNotFound is returned by observational order book lookups for
	// symbols never traded.
	ErrBookNotFound = errors.New("order book not found")
	// ErrPositionNotFound is returned by observational position lookups for
	// symbols never traded.
	ErrPositionNotFound = errors.New("position not found")
)
