package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tradewire/exchange-core/config"
	"github.com/tradewire/exchange-core/pkg/exchange"
	"github.com/tradewire/exchange-core/pkg/exchange/model"
	"github.com/tradewire/exchange-core/pkg/logging"
)

func main() {
	configFile := flag.String("config", "./config/config.yaml", "config file path")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log := logging.NewLogger(cfg.LogLevel)
	defer log.Sync() //nolint:errcheck

	ex, err := exchange.New(&exchange.Config{TickRuleFile: cfg.TickRuleFile}, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init exchange: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		defer close(done)
		runFeed(ctx, ex, cfg.Feed, log)
	}()

	select {
	case <-sigs:
		log.Info("interrupted, shutting down")
		cancel()
		<-done
	case <-done:
	}

	for _, p := range ex.Positions() {
		log.Info("position",
			zap.String("symbol", p.Symbol()),
			zap.Float64("qty", p.Quantity()),
			zap.Float64("avg_price", p.AveragePrice()),
		)
	}
}

func runFeed(ctx context.Context, ex *exchange.Exchange, feed *config.FeedConfig, log *logging.Logger) {
	if feed == nil || len(feed.Symbols) == 0 {
		log.Warn("no feed configured")
		return
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	trades := 0

	for i := 0; i < feed.Orders; i++ {
		select {
		case <-ctx.Done():
			return
		default:
		}

		symbol := feed.Symbols[rng.Intn(len(feed.Symbols))]
		if _, err := ex.SubmitOrder(ctx, randomOrder(rng, feed, symbol, i)); err != nil {
			log.Warn("submit failed", zap.Error(err))
			continue
		}

		executed, err := ex.MatchSymbol(ctx, symbol)
		if err != nil {
			log.Error("match failed", zap.String("symbol", symbol), zap.Error(err))
			continue
		}
		trades += len(executed)
	}

	log.Info("feed finished",
		zap.Int("orders", feed.Orders),
		zap.Int("trades", trades),
	)
}

func randomOrder(rng *rand.Rand, feed *config.FeedConfig, symbol string, seq int) *model.NewOrderRequest {
	side := model.OrderSideBuy
	if rng.Intn(2) == 0 {
		side = model.OrderSideSell
	}

	price := feed.MinPrice + rng.Float64()*(feed.MaxPrice-feed.MinPrice)
	qty := rng.Intn(feed.MaxQty-feed.MinQty+1) + feed.MinQty

	return &model.NewOrderRequest{
		ClientRef:    fmt.Sprintf("FEED-%06d", seq),
		Symbol:       symbol,
		Side:         side,
		Price:        decimal.NewFromFloat(price).Round(2),
		Quantity:     decimal.NewFromInt(int64(qty)),
		TransactTime: time.Now(),
	}
}
