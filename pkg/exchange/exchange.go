package exchange

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tradewire/exchange-core/pkg/exchange/eventstore"
	"github.com/tradewire/exchange-core/pkg/exchange/model"
	"github.com/tradewire/exchange-core/pkg/logging"
	"github.com/tradewire/exchange-core/pkg/market"
	"github.com/tradewire/exchange-core/pkg/market/rule"
	"github.com/tradewire/exchange-core/pkg/orderbook"
)

// Config holds host-side exchange options.
type Config struct {
	// TickRuleFile points at a JSON tick-size config; empty disables the rule.
	TickRuleFile string
}

// Exchange is the host-facing service around one Market. The engine itself
// is single-threaded, so the Exchange serializes every call with one mutex;
// hosts needing finer granularity must shard markets themselves.
type Exchange struct {
	mu     sync.Mutex
	market *market.Market
	events eventstore.EventStore
	log    *logging.Logger
}

func New(cfg *Config, log *logging.Logger) (*Exchange, error) {
	var rules []rule.Rule
	if cfg != nil && cfg.TickRuleFile != "" {
		tick, err := rule.NewTickSizeRuleFromFile(cfg.TickRuleFile)
		if err != nil {
			return nil, fmt.Errorf("load tick rule: %w", err)
		}
		rules = append(rules, tick)
	}

	return &Exchange{
		market: market.NewMarket(rules...),
		events: eventstore.NewInMemoryEventStore(),
		log:    log,
	}, nil
}

// SubmitOrder admits a new order. Requests reusing an already-seen client
// ref are rejected before any engine state is touched. The admitted order
// (with its generated id) is returned.
func (e *Exchange) SubmitOrder(ctx context.Context, req *model.NewOrderRequest) (*orderbook.Order, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	log, _ := logging.FromContext(ctx, e.log)

	if req.ClientRef != "" && e.events.GetOrderID(req.ClientRef) != "" {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateClientRef, req.ClientRef)
	}

	var side orderbook.Side
	switch req.Side {
	case model.OrderSideBuy:
		side = orderbook.BUY
	case model.OrderSideSell:
		side = orderbook.SELL
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidSide, req.Side)
	}

	order := orderbook.NewOrder(req.Symbol, side, req.Quantity.InexactFloat64(), req.Price.InexactFloat64())
	if err := e.market.AddOrder(order); err != nil {
		return nil, err
	}

	e.events.AddEvent(model.NewOrderEventNew(order, req.ClientRef, time.Now()))
	log.Info("order accepted",
		zap.String("order_id", order.ID),
		zap.String("symbol", order.Symbol),
		zap.String("side", string(order.Side)),
		zap.Float64("qty", order.Qty),
		zap.Float64("price", order.Price),
	)

	return order, nil
}

// CancelOrder removes a resting order by id.
func (e *Exchange) CancelOrder(ctx context.Context, orderID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	log, _ := logging.FromContext(ctx, e.log)

	if err := e.market.CancelOrder(orderID); err != nil {
		return err
	}

	e.events.AddEvent(model.NewOrderEventCancelled(orderID, time.Now()))
	log.Info("order cancelled", zap.String("order_id", orderID))
	return nil
}

// MatchSymbol runs the symbol's matching algorithm and records a trade
// event for each leg of every execution.
func (e *Exchange) MatchSymbol(ctx context.Context, symbol string) ([]*orderbook.Trade, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	log, _ := logging.FromContext(ctx, e.log)

	trades, err := e.market.MatchOrders(symbol)
	if err != nil {
		return trades, err
	}

	for _, trade := range trades {
		e.events.AddEvent(model.NewOrderEventTrade(trade.BuyOrderID, trade))
		e.events.AddEvent(model.NewOrderEventTrade(trade.SellOrderID, trade))
		log.Info("trade executed",
			zap.String("trade_id", trade.ID),
			zap.String("symbol", trade.Symbol),
			zap.Float64("qty", trade.Qty),
			zap.Float64("price", trade.Price),
		)
	}

	return trades, nil
}

// Position returns the symbol's position; fails for untracked symbols.
func (e *Exchange) Position(symbol string) (*market.Position, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.market.GetPosition(symbol)
}

// Positions returns every tracked position.
func (e *Exchange) Positions() []*market.Position {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.market.GetAllPositions()
}

// Trades returns the symbol's archived trades, empty when none.
func (e *Exchange) Trades(symbol string) []*orderbook.Trade {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.market.GetTradesForSymbol(symbol)
}

// Events returns the audit trail of one order.
func (e *Exchange) Events(orderID string) []*model.OrderEvent {
	return e.events.Events(orderID)
}
