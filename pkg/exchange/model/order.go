package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderSide string

const (
	OrderSideBuy  OrderSide = "BUY"
	OrderSideSell OrderSide = "SELL"
)

// NewOrderRequest carries a host's order terms across the service boundary.
// Price and Quantity stay decimal until admission, where they convert to the
// engine's native floats.
type NewOrderRequest struct {
	ClientRef    string
	Account      string
	Symbol       string
	Side         OrderSide
	Price        decimal.Decimal
	Quantity     decimal.Decimal
	TransactTime time.Time
}

type CancelOrderRequest struct {
	ClientRef string
	OrderID   string
}
