package rule

import "github.com/tradewire/exchange-core/pkg/orderbook"

// Rule is one admission-time validation check. Rules reject malformed
// orders; they carry no account, margin or balance knowledge.
type Rule interface {
	Check(order *orderbook.Order) error
}
