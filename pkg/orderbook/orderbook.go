package orderbook

import (
	"container/heap"
	"fmt"

	"github.com/gammazero/deque"
)

// OrderBook holds one symbol's resting interest and runs the crossing
// algorithm. The orders map owns every resting order; the per-price level
// queues hold order ids only, never a second copy. Orders at one price are
// queued FIFO in admission order.
//
// The book is not safe for concurrent use; a concurrent host must serialize
// access per symbol.
type OrderBook struct {
	symbol string

	orders map[string]*Order

	bids map[float64]*deque.Deque[string]
	asks map[float64]*deque.Deque[string]

	bidHeap *PriceHeap
	askHeap *PriceHeap

	trades []*Trade
}

func NewOrderBook(symbol string) *OrderBook {
	return &OrderBook{
		symbol:  symbol,
		orders:  make(map[string]*Order),
		bids:    make(map[float64]*deque.Deque[string]),
		asks:    make(map[float64]*deque.Deque[string]),
		bidHeap: NewPriceHeap(func(a, b float64) bool { return a > b }), // best bid first
		askHeap: NewPriceHeap(func(a, b float64) bool { return a < b }), // best ask first
	}
}

func (ob *OrderBook) Symbol() string {
	return ob.symbol
}

// AddOrder admits an order into the book. The book stores its own copy, so
// later mutations of the caller's value are not observed.
func (ob *OrderBook) AddOrder(order *Order) error {
	if _, ok := ob.orders[order.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateOrder, order.ID)
	}

	stored := *order
	ob.orders[stored.ID] = &stored

	if stored.Side == BUY {
		ob.addToLevel(ob.bids, ob.bidHeap, &stored)
	} else {
		ob.addToLevel(ob.asks, ob.askHeap, &stored)
	}
	return nil
}

// CancelOrder removes a resting order from its price level and from primary
// storage. Cancellation is terminal.
func (ob *OrderBook) CancelOrder(orderID string) error {
	order, ok := ob.orders[orderID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}
	order.Status = StatusCancelled
	ob.removeOrder(order)
	return nil
}

// MatchOrders repeatedly crosses the best bid against the best ask until no
// cross remains or one side empties. Matching removes whole orders only: the
// bid of each iteration is consumed in full, the ask leaves only when its
// quantity equals the traded quantity and otherwise rests untouched at full
// size. Executed trades are returned and archived in book-local history.
func (ob *OrderBook) MatchOrders() ([]*Trade, error) {
	var executed []*Trade

	for {
		bidPrice, ok := ob.bestPrice(ob.bids, ob.bidHeap)
		if !ok {
			break
		}
		askPrice, ok := ob.bestPrice(ob.asks, ob.askHeap)
		if !ok {
			break
		}
		if bidPrice < askPrice {
			break
		}

		bid := ob.orders[ob.bids[bidPrice].Front()]
		ask := ob.orders[ob.asks[askPrice].Front()]

		trade, err := NewTrade(bid, ask)
		if err != nil {
			return executed, err
		}
		executed = append(executed, trade)
		ob.trades = append(ob.trades, trade)

		if bid.Qty == trade.Qty {
			bid.Status = StatusFilled
			ob.removeOrder(bid)
		}
		if ask.Qty == trade.Qty {
			ask.Status = StatusFilled
			ob.removeOrder(ask)
		}
	}

	return executed, nil
}

// HasOrder reports whether an order is resting in the book.
func (ob *OrderBook) HasOrder(orderID string) bool {
	_, ok := ob.orders[orderID]
	return ok
}

// GetOrder returns a copy of a resting order.
func (ob *OrderBook) GetOrder(orderID string) (*Order, error) {
	order, ok := ob.orders[orderID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}
	cp := *order
	return &cp, nil
}

// Orders returns copies of all resting orders in storage iteration order.
func (ob *OrderBook) Orders() []*Order {
	all := make([]*Order, 0, len(ob.orders))
	for _, order := range ob.orders {
		cp := *order
		all = append(all, &cp)
	}
	return all
}

// BestBid returns the highest resting buy price.
func (ob *OrderBook) BestBid() (float64, bool) {
	return ob.bestPrice(ob.bids, ob.bidHeap)
}

// BestAsk returns the lowest resting sell price.
func (ob *OrderBook) BestAsk() (float64, bool) {
	return ob.bestPrice(ob.asks, ob.askHeap)
}

// Trades returns the book-local trade history.
func (ob *OrderBook) Trades() []*Trade {
	out := make([]*Trade, len(ob.trades))
	copy(out, ob.trades)
	return out
}

func (ob *OrderBook) addToLevel(levels map[float64]*deque.Deque[string], h *PriceHeap, order *Order) {
	if levels[order.Price] == nil {
		levels[order.Price] = &deque.Deque[string]{}
		heap.Push(h, order.Price)
	}
	levels[order.Price].PushBack(order.ID)
}

func (ob *OrderBook) removeOrder(order *Order) {
	levels := ob.bids
	if order.Side == SELL {
		levels = ob.asks
	}
	if q := levels[order.Price]; q != nil {
		if i := q.Index(func(id string) bool { return id == order.ID }); i >= 0 {
			q.Remove(i)
		}
	}
	// emptied levels are pruned lazily by bestPrice
	delete(ob.orders, order.ID)
}

// bestPrice peeks the best price on one side, pruning price levels whose
// queues have emptied.
func (ob *OrderBook) bestPrice(levels map[float64]*deque.Deque[string], h *PriceHeap) (float64, bool) {
	for {
		price, ok := h.Peek()
		if !ok {
			return 0, false
		}
		q := levels[price]
		if q == nil || q.Len() == 0 {
			heap.Pop(h)
			delete(levels, price)
			continue
		}
		return price, true
	}
}
