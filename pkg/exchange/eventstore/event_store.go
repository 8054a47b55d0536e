package eventstore

import "github.com/tradewire/exchange-core/pkg/exchange/model"

// EventStore is the append-only order audit trail plus the client-ref index
// used to reject duplicate submissions.
type EventStore interface {
	AddEvent(ev *model.OrderEvent)
	Events(orderID string) []*model.OrderEvent
	TrackClientRef(clientRef, orderID string)
	GetOrderID(clientRef string) string
	DeleteByOrderID(orderID string)
}
