package orderbook

import "errors"

var (
	// ErrDuplicateOrder is returned when admitting an id the book already holds.
	ErrDuplicateOrder = errors.New("order already exists")
	// ErrOrderNotFound is returned for lookups and cancels of unknown ids.
	ErrOrderNotFound = errors.New("order not found")
	// ErrInvalidTrade is returned when two legs cannot form a valid trade.
	ErrInvalidTrade = errors.New("invalid trade")
)
