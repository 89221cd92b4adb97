package services

import (
	"context"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/duramedstack/duramed-sla/internal/engine"
	slav1 "github.com/duramedstack/duramed-sla/internal/grpc/generated"
	"github.com/duramedstack/duramed-sla/internal/models"
	"github.com/duramedstack/duramed-sla/internal/validate"
)

type fakeBridge struct {
	ensured []models.SlaBreach
	task    models.Task
	err     error
}

func (f *fakeBridge) EnsureSLATask(_ context.Context, breach models.SlaBreach) (models.Task, error) {
	f.ensured = append(f.ensured, breach)
	if f.err != nil {
		return models.Task{}, f.err
	}
	task := f.task
	if task.ID == "" {
		task.ID = "task-1"
	}
	task.SLARef = breach.Ref()
	return task, nil
}

func newTestService(t *testing.T, bridge TaskBridge) *SLAService {
	t.Helper()
	validator, err := validate.NewEventValidator()
	if err != nil {
		t.Fatalf("compile validator: %v", err)
	}
	return NewSLAService(nil, engine.NewEvaluator(nil), bridge, validator, nil, "")
}

func protoEvent(topic, orderID string, ts time.Time) *slav1.OrderEvent {
	return &slav1.OrderEvent{
		Topic:       topic,
		Timestamp:   timestamppb.New(ts),
		PayloadJson: `{"order_id":"` + orderID + `"}`,
	}
}

func TestEvaluateOrderHappyPath(t *testing.T) {
	svc := newTestService(t, &fakeBridge{})
	base := time.Date(2024, 9, 2, 8, 0, 0, 0, time.UTC)

	req := &slav1.EvaluateOrderRequest{
		Events: []*slav1.OrderEvent{
			protoEvent("order.created", "ORD-1", base),
			{
				Topic:       "order.first_pass",
				Timestamp:   timestamppb.New(base.Add(1 * time.Hour)),
				PayloadJson: `{"order_id":"ORD-1","success":true}`,
			},
			protoEvent("order.approved", "ORD-1", base.Add(2*time.Hour)),
			protoEvent("shipment.delivered", "ORD-1", base.Add(60*time.Hour)),
			protoEvent("claim.paid", "ORD-1", base.Add(60*time.Hour)),
			protoEvent("status.live", "ORD-1", base.Add(80*time.Hour)),
		},
	}

	score, err := svc.EvaluateOrder(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score.GetOrderId() != "ORD-1" {
		t.Fatalf("unexpected order id: %s", score.GetOrderId())
	}
	if len(score.GetBreaches()) != 0 {
		t.Fatalf("expected clean score, got breaches: %+v", score.GetBreaches())
	}
	if score.GetTotalCredits() != 0 {
		t.Fatalf("expected zero credits, got %f", score.GetTotalCredits())
	}
	if score.GetPolicyVersion() != "2024.09" {
		t.Fatalf("unexpected policy version: %s", score.GetPolicyVersion())
	}
}

func TestEvaluateOrderRejectsMissingOrderID(t *testing.T) {
	svc := newTestService(t, &fakeBridge{})

	req := &slav1.EvaluateOrderRequest{
		Events: []*slav1.OrderEvent{
			{
				Topic:       "order.created",
				Timestamp:   timestamppb.New(time.Now()),
				PayloadJson: `{"region":"northeast"}`,
			},
		},
	}

	_, err := svc.EvaluateOrder(context.Background(), req)
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestEvaluateOrderRejectsBadPolicyWindow(t *testing.T) {
	svc := newTestService(t, &fakeBridge{})
	base := time.Date(2024, 9, 2, 8, 0, 0, 0, time.UTC)

	req := &slav1.EvaluateOrderRequest{
		Events: []*slav1.OrderEvent{
			protoEvent("order.created", "ORD-1", base),
		},
		Policy: []*slav1.SlaSpec{
			{Name: "Broken", Metric: "delivery_time_hours", Threshold: 72, Window: "a -> b -> c"},
		},
	}

	_, err := svc.EvaluateOrder(context.Background(), req)
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestEvaluateOrderRejectsEmptyTimeline(t *testing.T) {
	svc := newTestService(t, &fakeBridge{})

	_, err := svc.EvaluateOrder(context.Background(), &slav1.EvaluateOrderRequest{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestGetPolicyReturnsDefaults(t *testing.T) {
	svc := newTestService(t, &fakeBridge{})

	resp, err := svc.GetPolicy(context.Background(), &slav1.GetPolicyRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.GetPolicyVersion() != "2024.09" {
		t.Fatalf("unexpected version: %s", resp.GetPolicyVersion())
	}
	if len(resp.GetSpecs()) != 4 {
		t.Fatalf("expected 4 default specs, got %d", len(resp.GetSpecs()))
	}
}

func TestEnsureSlaTask(t *testing.T) {
	bridge := &fakeBridge{}
	svc := newTestService(t, bridge)

	req := &slav1.EnsureTaskRequest{
		Breach: &slav1.SlaBreach{
			SpecName:  "DSO",
			Metric:    "dso_days",
			OrderId:   "ORD-2",
			Observed:  60,
			Threshold: 45,
			Credits:   150,
		},
	}

	task, err := svc.EnsureSlaTask(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.GetSlaRef() != "sla:ORD-2:dso_days:DSO" {
		t.Fatalf("unexpected sla ref: %s", task.GetSlaRef())
	}
	if len(bridge.ensured) != 1 {
		t.Fatalf("expected one ensure call, got %d", len(bridge.ensured))
	}

	if _, err := svc.EnsureSlaTask(context.Background(), &slav1.EnsureTaskRequest{}); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument for missing breach, got %v", err)
	}
}
