package model

import (
	"fmt"
	"time"

	"github.com/tradewire/exchange-core/pkg/orderbook"
)

type EventType string

const (
	EventTypeNew       EventType = "New"
	EventTypeCancelled EventType = "Cancelled"
	EventTypeTrade     EventType = "Trade"
)

// OrderEvent is one entry of the append-only per-order audit trail.
type OrderEvent struct {
	EventID   string
	OrderID   string
	ClientRef string
	Type      EventType
	Symbol    string
	Qty       float64
	Price     float64
	Timestamp time.Time
}

func NewOrderEventNew(order *orderbook.Order, clientRef string, ts time.Time) *OrderEvent {
	return &OrderEvent{
		EventID:   NewEventID(order.ID, EventTypeNew),
		OrderID:   order.ID,
		ClientRef: clientRef,
		Type:      EventTypeNew,
		Symbol:    order.Symbol,
		Qty:       order.Qty,
		Price:     order.Price,
		Timestamp: ts,
	}
}

func NewOrderEventCancelled(orderID string, ts time.Time) *OrderEvent {
	return &OrderEvent{
		EventID:   NewEventID(orderID, EventTypeCancelled),
		OrderID:   orderID,
		Type:      EventTypeCancelled,
		Timestamp: ts,
	}
}

// NewOrderEventTrade records one leg's participation in a trade.
func NewOrderEventTrade(orderID string, trade *orderbook.Trade) *OrderEvent {
	return &OrderEvent{
		EventID:   fmt.Sprintf("%s-%s-%s", orderID, EventTypeTrade, trade.ID),
		OrderID:   orderID,
		Type:      EventTypeTrade,
		Symbol:    trade.Symbol,
		Qty:       trade.Qty,
		Price:     trade.Price,
		Timestamp: trade.Timestamp,
	}
}

func NewEventID(orderID string, t EventType) string {
	return fmt.Sprintf("%s-%s", orderID, t)
}
