package rule

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/tradewire/exchange-core/pkg/orderbook"
)

type tickSizeBand struct {
	MaxPrice float64 `json:"maxPrice"` // 0 = no upper bound
	Step     float64 `json:"step"`
}

// TickSizeRule validates that an order's price lands on the symbol's tick
// grid. Bands are checked in file order; the first band whose MaxPrice
// covers the order price decides. Symbols without config pass unchecked.
type TickSizeRule struct {
	Config map[string][]tickSizeBand
}

// NewTickSizeRuleFromFile loads per-symbol tick bands from a JSON file.
func NewTickSizeRuleFromFile(path string) (*TickSizeRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg map[string][]tickSizeBand
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &TickSizeRule{Config: cfg}, nil
}

func (r *TickSizeRule) Check(order *orderbook.Order) error {
	bands, ok := r.Config[order.Symbol]
	if !ok {
		return nil
	}

	for _, band := range bands {
		if band.MaxPrice == 0 || order.Price <= band.MaxPrice {
			if !onGrid(order.Price, band.Step) {
				return fmt.Errorf("price %v violates tick size %v", order.Price, band.Step)
			}
			return nil
		}
	}

	return nil
}

func onGrid(price, step float64) bool {
	if step <= 0 {
		return true
	}
	ticks := price / step
	return math.Abs(ticks-math.Round(ticks)) < 1e-9
}
