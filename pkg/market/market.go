package market

import (
	"fmt"

	"github.com/tradewire/exchange-core/pkg/market/rule"
	"github.com/tradewire/exchange-core/pkg/orderbook"
)

// Market routes orders to per-symbol order books, feeds completed trades
// into per-symbol positions and archives trade history. Books and positions
// are created lazily on first use.
//
// All state belongs to one Market instance; there is no package-level state.
// The Market does no locking of its own — a concurrent host must serialize
// access, globally for CancelOrder and GetAllPositions which scan across
// symbols.
type Market struct {
	books     map[string]*orderbook.OrderBook
	positions map[string]*Position
	trades    map[string][]*orderbook.Trade

	rules []rule.Rule
}

// NewMarket creates an empty market. Optional validation rules run on every
// admission after the built-in checks.
func NewMarket(rules ...rule.Rule) *Market {
	return &Market{
		books:     make(map[string]*orderbook.OrderBook),
		positions: make(map[string]*Position),
		trades:    make(map[string][]*orderbook.Trade),
		rules:     rules,
	}
}

// AddOrder validates an order and admits it into its symbol's book, creating
// the book on first use. On validation failure no state is created or
// mutated.
func (m *Market) AddOrder(order *orderbook.Order) error {
	if order.Qty <= 0 {
		return fmt.Errorf("%w: quantity must be greater than 0", ErrInvalidOrder)
	}
	if order.Price <= 0 {
		return fmt.Errorf("%w: price must be greater than 0", ErrInvalidOrder)
	}
	if order.Symbol == "" {
		return fmt.Errorf("%w: symbol cannot be empty", ErrInvalidOrder)
	}
	for _, r := range m.rules {
		if err := r.Check(order); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidOrder, err)
		}
	}

	if book, ok := m.books[order.Symbol]; ok {
		return book.AddOrder(order)
	}

	book := orderbook.NewOrderBook(order.Symbol)
	if err := book.AddOrder(order); err != nil {
		return err
	}
	m.books[order.Symbol] = book
	return nil
}

// CancelOrder locates the order by scanning every tracked symbol's book and
// removes it. The scan is O(symbols); observable behavior would not change
// with a secondary id index.
func (m *Market) CancelOrder(orderID string) error {
	for _, book := range m.books {
		if book.HasOrder(orderID) {
			return book.CancelOrder(orderID)
		}
	}
	return fmt.Errorf("%w: %s", orderbook.ErrOrderNotFound, orderID)
}

// MatchOrders runs the symbol's crossing algorithm. For every executed trade
// it synthesizes a fully-filled BUY leg and SELL leg at the trade's quantity
// and price, feeds both into the symbol's position and archives the trade.
func (m *Market) MatchOrders(symbol string) ([]*orderbook.Trade, error) {
	book := m.GetOrCreateOrderBook(symbol)
	executed, err := book.MatchOrders()
	if err != nil {
		return executed, err
	}

	for _, trade := range executed {
		position := m.GetOrCreatePosition(symbol)

		buyLeg := orderbook.NewOrder(symbol, orderbook.BUY, trade.Qty, trade.Price)
		buyLeg.Status = orderbook.StatusFilled
		sellLeg := orderbook.NewOrder(symbol, orderbook.SELL, trade.Qty, trade.Price)
		sellLeg.Status = orderbook.StatusFilled

		position.UpdateOnFill(buyLeg)
		position.UpdateOnFill(sellLeg)

		m.trades[symbol] = append(m.trades[symbol], trade)
	}

	return executed, nil
}

// HasOrderBook reports whether a book exists for the symbol.
func (m *Market) HasOrderBook(symbol string) bool {
	_, ok := m.books[symbol]
	return ok
}

// GetOrderBook is the observational lookup: it fails for symbols that were
// never traded and creates nothing.
func (m *Market) GetOrderBook(symbol string) (*orderbook.OrderBook, error) {
	book, ok := m.books[symbol]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBookNotFound, symbol)
	}
	return book, nil
}

// GetOrCreateOrderBook is the creating lookup: it materializes an empty book
// on first use and never fails.
func (m *Market) GetOrCreateOrderBook(symbol string) *orderbook.OrderBook {
	if book, ok := m.books[symbol]; ok {
		return book
	}
	book := orderbook.NewOrderBook(symbol)
	m.books[symbol] = book
	return book
}

// GetPosition is the observational lookup: it fails for symbols that were
// never tracked and creates nothing.
func (m *Market) GetPosition(symbol string) (*Position, error) {
	position, ok := m.positions[symbol]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPositionNotFound, symbol)
	}
	return position, nil
}

// GetOrCreatePosition is the creating lookup: it materializes a flat
// position on first use and never fails.
func (m *Market) GetOrCreatePosition(symbol string) *Position {
	if position, ok := m.positions[symbol]; ok {
		return position
	}
	position := NewPosition(symbol)
	m.positions[symbol] = position
	return position
}

// GetAllPositions returns every tracked position. Empty when nothing has
// been tracked, never an error.
func (m *Market) GetAllPositions() []*Position {
	all := make([]*Position, 0, len(m.positions))
	for _, position := range m.positions {
		all = append(all, position)
	}
	return all
}

// GetTradesForSymbol returns the symbol's archived trades. Empty when
// nothing has been recorded, never an error.
func (m *Market) GetTradesForSymbol(symbol string) []*orderbook.Trade {
	trades := m.trades[symbol]
	out := make([]*orderbook.Trade, len(trades))
	copy(out, trades)
	return out
}
