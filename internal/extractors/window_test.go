package extractors

import (
	"testing"
	"time"

	"github.com/duramedstack/duramed-sla/internal/models"
)

func event(topic string, ts time.Time, payload map[string]any) models.Event {
	if payload == nil {
		payload = map[string]any{}
	}
	payload["order_id"] = "ORD-X"
	return models.Event{Topic: topic, Timestamp: ts, Payload: payload}
}

var deliverySpec = models.SlaSpec{
	Name:       "On-Time Delivery",
	Metric:     "delivery_time_hours",
	Threshold:  72,
	Window:     "order.created -> shipment.delivered",
	CreditRule: models.CreditRule{PerBreach: 100},
}

func TestWindowExtractElapsedHours(t *testing.T) {
	base := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	events := []models.Event{
		event("shipment.delivered", base.Add(30*time.Hour), nil),
		event("order.created", base, nil),
	}

	obs := NewWindowExtractor().Extract(events, deliverySpec, base.Add(40*time.Hour))
	if obs.Incomplete {
		t.Fatalf("expected complete observation, got %+v", obs)
	}
	if obs.Observed == nil || *obs.Observed != 30 {
		t.Fatalf("expected 30 observed hours, got %v", obs.Observed)
	}
	if !obs.ObservedAt.Equal(base.Add(30 * time.Hour)) {
		t.Fatalf("unexpected governing timestamp: %v", obs.ObservedAt)
	}
}

func TestWindowExtractUsesEarliestOccurrences(t *testing.T) {
	base := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	events := []models.Event{
		// An end event before the window start must be ignored.
		event("shipment.delivered", base.Add(-2*time.Hour), nil),
		event("order.created", base.Add(6*time.Hour), nil),
		event("order.created", base, nil),
		event("shipment.delivered", base.Add(50*time.Hour), nil),
		event("shipment.delivered", base.Add(20*time.Hour), nil),
	}

	obs := NewWindowExtractor().Extract(events, deliverySpec, base.Add(60*time.Hour))
	if obs.Observed == nil || *obs.Observed != 20 {
		t.Fatalf("expected earliest-start to earliest-end elapsed of 20h, got %v", obs.Observed)
	}
}

func TestWindowExtractOpenWindowReportsElapsed(t *testing.T) {
	base := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	events := []models.Event{event("order.created", base, nil)}

	obs := NewWindowExtractor().Extract(events, deliverySpec, base.Add(5*time.Hour))
	if !obs.Incomplete {
		t.Fatalf("expected incomplete observation")
	}
	if obs.Observed == nil || *obs.Observed != 5 {
		t.Fatalf("expected elapsed 5h for open window, got %v", obs.Observed)
	}
}

func TestWindowExtractMissingStart(t *testing.T) {
	base := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	events := []models.Event{event("shipment.delivered", base, nil)}

	obs := NewWindowExtractor().Extract(events, deliverySpec, base.Add(time.Hour))
	if !obs.Incomplete || obs.Observed != nil {
		t.Fatalf("expected incomplete observation without value, got %+v", obs)
	}
	if obs.Details == "" {
		t.Fatalf("expected details for missing start")
	}
}

func TestWindowExtractDayUnit(t *testing.T) {
	base := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	spec := models.SlaSpec{
		Name:      "Days Sales Outstanding",
		Metric:    "dso_days",
		Threshold: 45,
		Window:    "order.created -> claim.paid",
	}
	events := []models.Event{
		event("order.created", base, nil),
		event("claim.paid", base.Add(60*time.Hour), nil),
	}

	obs := NewWindowExtractor().Extract(events, spec, base.Add(61*time.Hour))
	if obs.Observed == nil || *obs.Observed != 2.5 {
		t.Fatalf("expected 2.5 days, got %v", obs.Observed)
	}
}

func TestRatioExtract(t *testing.T) {
	base := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	spec := models.SlaSpec{
		Name:      "First-Pass Approvals",
		Metric:    "first_pass_ratio",
		Threshold: 0.98,
		Window:    "order.first_pass",
	}
	extractor := NewRatioExtractor()

	pass := extractor.Extract([]models.Event{
		event("order.first_pass", base, map[string]any{"success": true}),
	}, spec, base.Add(time.Hour))
	if pass.Observed == nil || *pass.Observed != 1.0 {
		t.Fatalf("expected observed 1.0, got %v", pass.Observed)
	}

	fail := extractor.Extract([]models.Event{
		event("order.first_pass", base, map[string]any{"success": false}),
	}, spec, base.Add(time.Hour))
	if fail.Observed == nil || *fail.Observed != 0.0 {
		t.Fatalf("expected observed 0.0, got %v", fail.Observed)
	}

	absent := extractor.Extract(nil, spec, base.Add(time.Hour))
	if !absent.Incomplete || absent.Observed != nil {
		t.Fatalf("expected incomplete observation, got %+v", absent)
	}
}

func TestLatencyExtractUsesReferenceTopic(t *testing.T) {
	base := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	spec := models.SlaSpec{
		Name:      "Status Sync Latency",
		Metric:    "status_latency_hours",
		Threshold: 96,
		Window:    "status.live",
	}
	events := []models.Event{
		event("order.approved", base.Add(2*time.Hour), nil),
		event("status.live", base.Add(80*time.Hour), nil),
	}

	obs := NewLatencyExtractor().Extract(events, spec, base.Add(81*time.Hour))
	if obs.Observed == nil || *obs.Observed != 78 {
		t.Fatalf("expected 78h latency, got %v", obs.Observed)
	}
}
