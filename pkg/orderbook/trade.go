package orderbook

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Trade records one completed match. It is immutable once constructed.
//
// Price is fixed to the buy order's limit price and Qty to the buy order's
// quantity. Timestamp is wall clock at construction; fast successive trades
// may share a timestamp, so it must not be used for ordering.
type Trade struct {
	ID          string
	BuyOrderID  string
	SellOrderID string
	Symbol      string
	Qty         float64
	Price       float64
	Timestamp   time.Time
}

// NewTrade builds a trade from a buy leg and a sell leg. The crossing
// condition is re-checked here independently of the matching loop so that no
// record of an economically invalid trade can exist.
func NewTrade(buy, sell *Order) (*Trade, error) {
	if buy.Symbol != sell.Symbol {
		return nil, fmt.Errorf("%w: symbol mismatch %s != %s", ErrInvalidTrade, buy.Symbol, sell.Symbol)
	}
	if buy.Side != BUY || sell.Side != SELL {
		return nil, fmt.Errorf("%w: legs must be BUY then SELL", ErrInvalidTrade)
	}
	if buy.Price < sell.Price {
		return nil, fmt.Errorf("%w: buy price %v below sell price %v", ErrInvalidTrade, buy.Price, sell.Price)
	}

	return &Trade{
		ID:          uuid.NewString(),
		BuyOrderID:  buy.ID,
		SellOrderID: sell.ID,
		Symbol:      buy.Symbol,
		Qty:         buy.Qty,
		Price:       buy.Price,
		Timestamp:   time.Now(),
	}, nil
}
