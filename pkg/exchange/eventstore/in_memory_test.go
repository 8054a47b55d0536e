package eventstore

import (
	"testing"
	"time"

	"github.com/tradewire/exchange-core/pkg/exchange/model"
)

func TestAddEventTracksClientRef(t *testing.T) {
	s := NewInMemoryEventStore()

	s.AddEvent(&model.OrderEvent{
		EventID:   "O1-New",
		OrderID:   "O1",
		ClientRef: "C1",
		Type:      model.EventTypeNew,
		Timestamp: time.Now(),
	})

	if got := s.GetOrderID("C1"); got != "O1" {
		t.Fatalf("expected client ref to map to O1, got %q", got)
	}
	if evs := s.Events("O1"); len(evs) != 1 {
		t.Fatalf("expected 1 event, got %d", len(evs))
	}
}

func TestEventsAppendInOrder(t *testing.T) {
	s := NewInMemoryEventStore()

	s.AddEvent(&model.OrderEvent{EventID: "O1-New", OrderID: "O1", Type: model.EventTypeNew})
	s.AddEvent(&model.OrderEvent{EventID: "O1-Trade", OrderID: "O1", Type: model.EventTypeTrade})

	evs := s.Events("O1")
	if len(evs) != 2 || evs[0].Type != model.EventTypeNew || evs[1].Type != model.EventTypeTrade {
		t.Fatalf("unexpected event order: %+v", evs)
	}
}

func TestDeleteByOrderID(t *testing.T) {
	s := NewInMemoryEventStore()

	s.AddEvent(&model.OrderEvent{EventID: "O1-New", OrderID: "O1", ClientRef: "C1", Type: model.EventTypeNew})
	s.DeleteByOrderID("O1")

	if got := s.GetOrderID("C1"); got != "" {
		t.Errorf("client ref should be freed, got %q", got)
	}
	if evs := s.Events("O1"); len(evs) != 0 {
		t.Errorf("events should be deleted, got %d", len(evs))
	}
}
