package tasks

import (
	"context"
	"errors"
	"testing"

	"github.com/duramedstack/duramed-sla/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.CreateTask(ctx, models.Task{
		Title:         "SLA breach: On-Time Delivery (ORD-9)",
		TaskType:      models.TaskTypeSLARemediation,
		SLARef:        "sla:ORD-9:delivery_time_hours:On-Time Delivery",
		BreachReason:  "window end shipment.delivered not observed after order.created",
		FirstPassFlag: false,
		Metadata:      map[string]string{"sla_order_id": "ORD-9", "claim_id": "CLM-9"},
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	if created.ID == "" || created.Status != models.TaskStatusOpen {
		t.Fatalf("unexpected created task: %+v", created)
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}

	got, err := store.GetTask(ctx, created.ID)
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if got.Title != created.Title || got.SLARef != created.SLARef {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.Metadata["sla_order_id"] != "ORD-9" {
		t.Fatalf("metadata lost in round trip: %v", got.Metadata)
	}

	if err := store.UpdateTaskStatus(ctx, created.ID, models.TaskStatusClosed); err != nil {
		t.Fatalf("update status: %v", err)
	}
	got, err = store.GetTask(ctx, created.ID)
	if err != nil {
		t.Fatalf("get task after close: %v", err)
	}
	if got.Status != models.TaskStatusClosed {
		t.Fatalf("expected closed, got %s", got.Status)
	}
}

func TestSQLiteStoreNotFound(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.GetTask(ctx, "missing"); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
	if err := store.UpdateTaskStatus(ctx, "missing", models.TaskStatusClosed); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
	if _, ok, err := store.FindBySLARef(ctx, "sla:none"); err != nil || ok {
		t.Fatalf("expected no match, got ok=%v err=%v", ok, err)
	}
}

func TestSQLiteStoreRejectsDuplicateSLARef(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	draft := models.Task{
		Title:    "SLA breach: DSO (ORD-10)",
		TaskType: models.TaskTypeSLARemediation,
		SLARef:   "sla:ORD-10:dso_days:DSO",
	}
	if _, err := store.CreateTask(ctx, draft); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := store.CreateTask(ctx, draft); !errors.Is(err, ErrDuplicateTask) {
		t.Fatalf("expected ErrDuplicateTask, got %v", err)
	}

	// Tasks without an SLA reference are unconstrained.
	plain := models.Task{Title: "Follow up", TaskType: "finance_review"}
	if _, err := store.CreateTask(ctx, plain); err != nil {
		t.Fatalf("create unref'd task: %v", err)
	}
	if _, err := store.CreateTask(ctx, plain); err != nil {
		t.Fatalf("create second unref'd task: %v", err)
	}
}

func TestSQLiteStoreFindTasksByMetadata(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, claim := range []string{"CLM-1", "CLM-1", "CLM-2"} {
		_, err := store.CreateTask(ctx, models.Task{
			Title:    "Reconcile " + claim,
			TaskType: "finance_review",
			Metadata: map[string]string{"claim_id": claim},
		})
		if err != nil {
			t.Fatalf("create task: %v", err)
		}
	}

	matches, err := store.FindTasks(ctx, "claim_id", "CLM-1")
	if err != nil {
		t.Fatalf("find tasks: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches for CLM-1, got %d", len(matches))
	}
	for _, task := range matches {
		if task.Metadata["claim_id"] != "CLM-1" {
			t.Fatalf("unexpected match: %+v", task)
		}
	}
}
