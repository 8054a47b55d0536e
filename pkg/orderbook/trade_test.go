package orderbook

import (
	"errors"
	"testing"
)

func TestNewTradeFields(t *testing.T) {
	buy := NewOrder("AAPL", BUY, 100, 150.0)
	sell := NewOrder("AAPL", SELL, 100, 149.0)

	trade, err := NewTrade(buy, sell)
	if err != nil {
		t.Fatalf("new trade: %v", err)
	}

	if trade.BuyOrderID != buy.ID || trade.SellOrderID != sell.ID {
		t.Errorf("wrong leg ids: %+v", trade)
	}
	if trade.Symbol != "AAPL" {
		t.Errorf("wrong symbol: %s", trade.Symbol)
	}
	if trade.Qty != 100 {
		t.Errorf("trade quantity must be the buy quantity, got %v", trade.Qty)
	}
	if trade.Price != 150.0 {
		t.Errorf("trade price must be the buy limit price, got %v", trade.Price)
	}
	if trade.Timestamp.IsZero() {
		t.Errorf("timestamp must be captured at construction")
	}
}

func TestNewTradeSymbolMismatch(t *testing.T) {
	buy := NewOrder("AAPL", BUY, 100, 150.0)
	sell := NewOrder("MSFT", SELL, 100, 149.0)

	if _, err := NewTrade(buy, sell); !errors.Is(err, ErrInvalidTrade) {
		t.Fatalf("expected ErrInvalidTrade, got %v", err)
	}
}

func TestNewTradeWrongSides(t *testing.T) {
	buy := NewOrder("AAPL", BUY, 100, 150.0)
	sell := NewOrder("AAPL", SELL, 100, 149.0)

	// reversed argument order
	if _, err := NewTrade(sell, buy); !errors.Is(err, ErrInvalidTrade) {
		t.Fatalf("expected ErrInvalidTrade for reversed legs, got %v", err)
	}

	other := NewOrder("AAPL", BUY, 100, 149.0)
	if _, err := NewTrade(buy, other); !errors.Is(err, ErrInvalidTrade) {
		t.Fatalf("expected ErrInvalidTrade for two buy legs, got %v", err)
	}
}

func TestNewTradePriceInversion(t *testing.T) {
	buy := NewOrder("AAPL", BUY, 100, 90.0)
	sell := NewOrder("AAPL", SELL, 100, 100.0)

	if _, err := NewTrade(buy, sell); !errors.Is(err, ErrInvalidTrade) {
		t.Fatalf("expected ErrInvalidTrade when buy price < sell price, got %v", err)
	}
}
