package eventstore

import (
	"sync"

	"github.com/tradewire/exchange-core/pkg/exchange/model"
)

type InMemoryEventStore struct {
	mu     sync.RWMutex
	events map[string][]*model.OrderEvent
	refs   map[string]string // ClientRef -> OrderID
	orders map[string]string // OrderID -> ClientRef
}

func NewInMemoryEventStore() *InMemoryEventStore {
	return &InMemoryEventStore{
		events: make(map[string][]*model.OrderEvent),
		refs:   make(map[string]string),
		orders: make(map[string]string),
	}
}

func (s *InMemoryEventStore) AddEvent(ev *model.OrderEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events[ev.OrderID] = append(s.events[ev.OrderID], ev)
	if ev.ClientRef != "" {
		s.trackLocked(ev.ClientRef, ev.OrderID)
	}
}

// Events returns the order's audit trail in append order.
func (s *InMemoryEventStore) Events(orderID string) []*model.OrderEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	evs := s.events[orderID]
	out := make([]*model.OrderEvent, len(evs))
	copy(out, evs)
	return out
}

func (s *InMemoryEventStore) TrackClientRef(clientRef, orderID string) {
	if clientRef == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trackLocked(clientRef, orderID)
}

// GetOrderID returns the order id a client ref was submitted under, or "".
func (s *InMemoryEventStore) GetOrderID(clientRef string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.refs[clientRef]
}

func (s *InMemoryEventStore) DeleteByOrderID(orderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ref, ok := s.orders[orderID]; ok {
		delete(s.refs, ref)
		delete(s.orders, orderID)
	}
	delete(s.events, orderID)
}

func (s *InMemoryEventStore) trackLocked(clientRef, orderID string) {
	s.refs[clientRef] = orderID
	s.orders[orderID] = clientRef
}
