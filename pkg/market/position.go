package market

import "github.com/tradewire/exchange-core/pkg/orderbook"

// Position tracks one symbol's net quantity and volume-weighted average
// entry price from a stream of fill legs. Quantity is signed: positive is
// net long, negative net short.
//
// Fills that grow exposure away from zero fold into the average price;
// fills that shrink exposure leave it unchanged. Reaching exactly zero
// resets the average to zero, and crossing through zero re-opens the
// residual exposure at the fill price.
type Position struct {
	symbol   string
	quantity float64
	avgPrice float64
}

func NewPosition(symbol string) *Position {
	return &Position{symbol: symbol}
}

func (p *Position) Symbol() string        { return p.symbol }
func (p *Position) Quantity() float64     { return p.quantity }
func (p *Position) AveragePrice() float64 { return p.avgPrice }

// UpdateOnFill applies one fill leg. Orders that are not FILLED or belong to
// another symbol are ignored without error.
func (p *Position) UpdateOnFill(order *orderbook.Order) {
	if order.Status != orderbook.StatusFilled || order.Symbol != p.symbol {
		return
	}

	signed := order.Qty
	if order.Side == orderbook.SELL {
		signed = -order.Qty
	}

	switch {
	case p.quantity == 0:
		p.quantity = signed
		p.avgPrice = order.Price

	case sameSign(p.quantity, signed):
		held := abs(p.quantity)
		p.avgPrice = (held*p.avgPrice + order.Qty*order.Price) / (held + order.Qty)
		p.quantity += signed

	default: // reducing exposure
		p.quantity += signed
		if p.quantity == 0 {
			p.avgPrice = 0
		} else if !sameSign(p.quantity, p.quantity-signed) {
			// crossed through zero
			p.avgPrice = order.Price
		}
	}
}

func sameSign(a, b float64) bool {
	return (a > 0 && b > 0) || (a < 0 && b < 0)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
