package validate

import (
	"strings"
	"testing"
	"time"

	"github.com/duramedstack/duramed-sla/internal/models"
)

func TestValidateEventAcceptsWellFormedPayload(t *testing.T) {
	v, err := NewEventValidator()
	if err != nil {
		t.Fatalf("compile validator: %v", err)
	}

	event := models.Event{
		Topic:     "order.created",
		Timestamp: time.Now().UTC(),
		Payload:   map[string]any{"order_id": "ORD-1", "region": "northeast"},
	}
	if err := v.ValidateEvent(event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateEventRejectsMissingOrderID(t *testing.T) {
	v, err := NewEventValidator()
	if err != nil {
		t.Fatalf("compile validator: %v", err)
	}

	event := models.Event{
		Topic:     "shipment.delivered",
		Timestamp: time.Now().UTC(),
		Payload:   map[string]any{"region": "northeast"},
	}
	if err := v.ValidateEvent(event); err == nil {
		t.Fatalf("expected validation error for missing order_id")
	}
}

func TestValidateEventRejectsNonBooleanSuccess(t *testing.T) {
	v, err := NewEventValidator()
	if err != nil {
		t.Fatalf("compile validator: %v", err)
	}

	event := models.Event{
		Topic:   "order.first_pass",
		Payload: map[string]any{"order_id": "ORD-1", "success": "yes"},
	}
	if err := v.ValidateEvent(event); err == nil {
		t.Fatalf("expected validation error for non-boolean success")
	}
}

func TestValidateEventsReportsOffendingIndex(t *testing.T) {
	v, err := NewEventValidator()
	if err != nil {
		t.Fatalf("compile validator: %v", err)
	}

	events := []models.Event{
		{Topic: "order.created", Payload: map[string]any{"order_id": "ORD-1"}},
		{Topic: "shipment.delivered", Payload: map[string]any{}},
	}
	err = v.ValidateEvents(events)
	if err == nil {
		t.Fatalf("expected error for second event")
	}
	if !strings.Contains(err.Error(), "event 1") {
		t.Fatalf("expected offending index in error, got %v", err)
	}
}
