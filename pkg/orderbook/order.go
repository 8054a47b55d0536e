package orderbook

import (
	"time"

	"github.com/google/uuid"
)

type Side string

const (
	BUY  Side = "BUY"
	SELL Side = "SELL"
)

type OrderStatus string

const (
	StatusNew       OrderStatus = "NEW"
	StatusFilled    OrderStatus = "FILLED"
	StatusCancelled OrderStatus = "CANCELLED"
	StatusRejected  OrderStatus = "REJECTED"
)

// Order is one limit order. ID and CreatedAt are assigned once at
// construction; only Status changes afterwards. Qty is the original order
// size and is never reduced by matching.
type Order struct {
	ID        string
	Symbol    string
	Side      Side
	Qty       float64
	Price     float64
	Status    OrderStatus
	CreatedAt time.Time
}

// NewOrder creates an order with a fresh id and status NEW.
func NewOrder(symbol string, side Side, qty, price float64) *Order {
	return &Order{
		ID:        uuid.NewString(),
		Symbol:    symbol,
		Side:      side,
		Qty:       qty,
		Price:     price,
		Status:    StatusNew,
		CreatedAt: time.Now(),
	}
}
