package market

import (
	"errors"
	"testing"

	"github.com/tradewire/exchange-core/pkg/orderbook"
)

func TestAddOrderValidation(t *testing.T) {
	cases := []struct {
		name  string
		order *orderbook.Order
	}{
		{"zero quantity", orderbook.NewOrder("AAPL", orderbook.BUY, 0, 150.0)},
		{"negative quantity", orderbook.NewOrder("AAPL", orderbook.BUY, -5, 150.0)},
		{"zero price", orderbook.NewOrder("AAPL", orderbook.BUY, 100, 0)},
		{"negative price", orderbook.NewOrder("AAPL", orderbook.BUY, 100, -1)},
		{"empty symbol", orderbook.NewOrder("", orderbook.BUY, 100, 150.0)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMarket()
			err := m.AddOrder(tc.order)
			if !errors.Is(err, ErrInvalidOrder) {
				t.Fatalf("expected ErrInvalidOrder, got %v", err)
			}
			if m.HasOrderBook(tc.order.Symbol) {
				t.Errorf("no book may be created on validation failure")
			}
			if len(m.GetAllPositions()) != 0 {
				t.Errorf("no position may be created on validation failure")
			}
		})
	}
}

func TestAddOrderCreatesBookLazily(t *testing.T) {
	m := NewMarket()

	if m.HasOrderBook("AAPL") {
		t.Fatalf("fresh market should have no books")
	}

	if err := m.AddOrder(orderbook.NewOrder("AAPL", orderbook.BUY, 100, 150.0)); err != nil {
		t.Fatalf("add order: %v", err)
	}

	if !m.HasOrderBook("AAPL") {
		t.Fatalf("book should exist after first admission")
	}
}

func TestCancelOrderAcrossSymbols(t *testing.T) {
	m := NewMarket()

	aapl := orderbook.NewOrder("AAPL", orderbook.BUY, 100, 150.0)
	msft := orderbook.NewOrder("MSFT", orderbook.SELL, 50, 310.0)
	if err := m.AddOrder(aapl); err != nil {
		t.Fatalf("add aapl: %v", err)
	}
	if err := m.AddOrder(msft); err != nil {
		t.Fatalf("add msft: %v", err)
	}

	if err := m.CancelOrder(msft.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	book, err := m.GetOrderBook("MSFT")
	if err != nil {
		t.Fatalf("get book: %v", err)
	}
	if book.HasOrder(msft.ID) {
		t.Errorf("cancelled order should be gone")
	}

	if err := m.CancelOrder("unknown-id"); !errors.Is(err, orderbook.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestMatchOrdersCrossingScenario(t *testing.T) {
	m := NewMarket()

	buy := orderbook.NewOrder("AAPL", orderbook.BUY, 100, 150.0)
	sell := orderbook.NewOrder("AAPL", orderbook.SELL, 100, 150.0)
	if err := m.AddOrder(buy); err != nil {
		t.Fatalf("add buy: %v", err)
	}
	if err := m.AddOrder(sell); err != nil {
		t.Fatalf("add sell: %v", err)
	}

	trades, err := m.MatchOrders("AAPL")
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if len(trades) != 1 {
		t.Fatalf("expected 1 trade, got %d", len(trades))
	}
	trade := trades[0]
	if trade.Qty != 100 || trade.Price != 150.0 {
		t.Errorf("unexpected trade terms: %+v", trade)
	}
	if trade.BuyOrderID != buy.ID || trade.SellOrderID != sell.ID {
		t.Errorf("unexpected trade legs: %+v", trade)
	}

	book, err := m.GetOrderBook("AAPL")
	if err != nil {
		t.Fatalf("get book: %v", err)
	}
	if len(book.Orders()) != 0 {
		t.Errorf("book should hold zero resting orders after full cross")
	}

	position, err := m.GetPosition("AAPL")
	if err != nil {
		t.Fatalf("get position: %v", err)
	}
	if position.Quantity() != 0 {
		t.Errorf("buy and sell legs should net to zero, got %v", position.Quantity())
	}
	if position.AveragePrice() != 0 {
		t.Errorf("average price should reset to 0 at flat, got %v", position.AveragePrice())
	}

	if len(m.GetTradesForSymbol("AAPL")) != 1 {
		t.Errorf("trade should be archived in market history")
	}
}

func TestMatchOrdersNoCross(t *testing.T) {
	m := NewMarket()

	if err := m.AddOrder(orderbook.NewOrder("AAPL", orderbook.BUY, 100, 90.0)); err != nil {
		t.Fatalf("add buy: %v", err)
	}
	if err := m.AddOrder(orderbook.NewOrder("AAPL", orderbook.SELL, 100, 100.0)); err != nil {
		t.Fatalf("add sell: %v", err)
	}

	trades, err := m.MatchOrders("AAPL")
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if len(trades) != 0 {
		t.Fatalf("expected no trades, got %d", len(trades))
	}

	book, err := m.GetOrderBook("AAPL")
	if err != nil {
		t.Fatalf("get book: %v", err)
	}
	if len(book.Orders()) != 2 {
		t.Errorf("both orders should remain resting")
	}
	if _, err := m.GetPosition("AAPL"); !errors.Is(err, ErrPositionNotFound) {
		t.Errorf("no position should exist without executions, got %v", err)
	}
}

func TestLookupContracts(t *testing.T) {
	m := NewMarket()

	if _, err := m.GetOrderBook("AAPL"); !errors.Is(err, ErrBookNotFound) {
		t.Fatalf("expected ErrBookNotFound, got %v", err)
	}
	if m.HasOrderBook("AAPL") {
		t.Fatalf("observational lookup must not create state")
	}

	if book := m.GetOrCreateOrderBook("AAPL"); book == nil {
		t.Fatalf("creating lookup must materialize a book")
	}
	if !m.HasOrderBook("AAPL") {
		t.Fatalf("book should exist after creating lookup")
	}

	if _, err := m.GetPosition("AAPL"); !errors.Is(err, ErrPositionNotFound) {
		t.Fatalf("expected ErrPositionNotFound, got %v", err)
	}
	if position := m.GetOrCreatePosition("AAPL"); position == nil {
		t.Fatalf("creating lookup must materialize a position")
	}
	if _, err := m.GetPosition("AAPL"); err != nil {
		t.Fatalf("position should exist after creating lookup: %v", err)
	}
}

func TestSnapshotReadsNeverError(t *testing.T) {
	m := NewMarket()

	if got := m.GetTradesForSymbol("NEVER"); len(got) != 0 {
		t.Errorf("expected empty trade history, got %d", len(got))
	}
	if got := m.GetAllPositions(); len(got) != 0 {
		t.Errorf("expected no positions, got %d", len(got))
	}
}

func TestGetAllPositionsAcrossSymbols(t *testing.T) {
	m := NewMarket()

	for _, symbol := range []string{"AAPL", "MSFT"} {
		if err := m.AddOrder(orderbook.NewOrder(symbol, orderbook.BUY, 10, 100.0)); err != nil {
			t.Fatalf("add buy: %v", err)
		}
		if err := m.AddOrder(orderbook.NewOrder(symbol, orderbook.SELL, 10, 100.0)); err != nil {
			t.Fatalf("add sell: %v", err)
		}
		if _, err := m.MatchOrders(symbol); err != nil {
			t.Fatalf("match %s: %v", symbol, err)
		}
	}

	if got := len(m.GetAllPositions()); got != 2 {
		t.Fatalf("expected 2 tracked positions, got %d", got)
	}
}
