package tasks

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/duramedstack/duramed-sla/internal/cache"
	"github.com/duramedstack/duramed-sla/internal/models"
)

type fakeStore struct {
	mu      sync.Mutex
	tasks   map[string]models.Task
	creates int
}

func newFakeStore() *fakeStore {
	return &fakeStore{tasks: make(map[string]models.Task)}
}

func (f *fakeStore) CreateTask(_ context.Context, draft models.Task) (models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if draft.SLARef != "" {
		for _, t := range f.tasks {
			if t.SLARef == draft.SLARef {
				return models.Task{}, ErrDuplicateTask
			}
		}
	}
	f.creates++
	task := draft
	task.ID = fmt.Sprintf("task-%d", f.creates)
	task.Status = models.TaskStatusOpen
	task.CreatedAt = time.Now().UTC()
	if task.Metadata == nil {
		task.Metadata = map[string]string{}
	}
	f.tasks[task.ID] = task
	return task, nil
}

func (f *fakeStore) GetTask(_ context.Context, id string) (models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	task, ok := f.tasks[id]
	if !ok {
		return models.Task{}, ErrTaskNotFound
	}
	return task, nil
}

func (f *fakeStore) UpdateTaskStatus(_ context.Context, id, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	task, ok := f.tasks[id]
	if !ok {
		return ErrTaskNotFound
	}
	task.Status = status
	f.tasks[id] = task
	return nil
}

func (f *fakeStore) FindBySLARef(_ context.Context, ref string) (models.Task, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tasks {
		if t.SLARef == ref {
			return t, true, nil
		}
	}
	return models.Task{}, false, nil
}

func (f *fakeStore) FindTasks(_ context.Context, key, value string) ([]models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Task
	for _, t := range f.tasks {
		if t.Metadata[key] == value {
			out = append(out, t)
		}
	}
	return out, nil
}

func firstPassBreach() models.SlaBreach {
	return models.SlaBreach{
		SpecName:   "First-Pass Approvals",
		Metric:     "first_pass_ratio",
		OrderID:    "ORD-5",
		Observed:   0.0,
		Threshold:  0.98,
		OccurredAt: time.Now().UTC(),
		Credits:    75.0,
		Details:    "Manual review required",
	}
}

func TestEnsureSLATaskEnrichesFields(t *testing.T) {
	store := newFakeStore()
	bridge := NewBridge(nil, store, cache.NoopProvider{}, 0)

	task, err := bridge.EnsureSLATask(context.Background(), firstPassBreach())
	if err != nil {
		t.Fatalf("ensure task: %v", err)
	}
	if task.SLARef == "" {
		t.Fatalf("expected stable sla_ref")
	}
	if task.BreachReason != "Manual review required" {
		t.Fatalf("unexpected breach reason: %q", task.BreachReason)
	}
	if task.FirstPassFlag {
		t.Fatalf("first_pass_flag must be false for a failed first pass")
	}
	if task.Metadata["sla_order_id"] != "ORD-5" {
		t.Fatalf("expected sla_order_id metadata, got %v", task.Metadata)
	}
	if task.TaskType != models.TaskTypeSLARemediation {
		t.Fatalf("unexpected task type: %s", task.TaskType)
	}
}

func TestEnsureSLATaskIsIdempotent(t *testing.T) {
	store := newFakeStore()
	bridge := NewBridge(nil, store, cache.NoopProvider{}, 0)
	breach := firstPassBreach()

	first, err := bridge.EnsureSLATask(context.Background(), breach)
	if err != nil {
		t.Fatalf("first ensure: %v", err)
	}
	second, err := bridge.EnsureSLATask(context.Background(), breach)
	if err != nil {
		t.Fatalf("second ensure: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("ensure created a duplicate: %s vs %s", first.ID, second.ID)
	}
	if store.creates != 1 {
		t.Fatalf("expected one create, got %d", store.creates)
	}
}

func TestEnsureSLATaskTreatsStoreDuplicateAsCanonical(t *testing.T) {
	store := newFakeStore()
	bridge := NewBridge(nil, store, cache.NoopProvider{}, 0)
	breach := firstPassBreach()

	existing, err := store.CreateTask(context.Background(), draftFor(breach, breach.Ref()))
	if err != nil {
		t.Fatalf("seed task: %v", err)
	}

	task, err := bridge.EnsureSLATask(context.Background(), breach)
	if err != nil {
		t.Fatalf("ensure task: %v", err)
	}
	if task.ID != existing.ID {
		t.Fatalf("expected existing task %s, got %s", existing.ID, task.ID)
	}
}

func TestCloseTasksForClaim(t *testing.T) {
	store := newFakeStore()
	bridge := NewBridge(nil, store, cache.NoopProvider{}, 0)
	ctx := context.Background()

	task, err := store.CreateTask(ctx, models.Task{
		Title:    "Reconcile claim",
		TaskType: "finance_review",
		Metadata: map[string]string{"claim_id": "CLM-1001"},
	})
	if err != nil {
		t.Fatalf("seed task: %v", err)
	}

	remit := &models.Remittance{
		RemitID:      "RMT-1",
		ClaimID:      "CLM-1001",
		PayerID:      "PAY-ALPHA",
		OrderID:      "ORD-200",
		AmountBilled: 125.0,
		AmountPaid:   125.0,
		Status:       DeriveRemitStatus(125.0, 125.0),
	}
	if err := bridge.CloseTasksForClaim(ctx, remit); err != nil {
		t.Fatalf("close tasks: %v", err)
	}

	if len(remit.TasksClosed) != 1 || remit.TasksClosed[0] != task.ID {
		t.Fatalf("expected task %s in tasks_closed, got %v", task.ID, remit.TasksClosed)
	}
	closed, err := store.GetTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if closed.Status != models.TaskStatusClosed {
		t.Fatalf("expected closed status, got %s", closed.Status)
	}
	if remit.Status != models.RemitStatusPaid {
		t.Fatalf("expected paid remit, got %s", remit.Status)
	}

	// Re-ingesting the same remittance must not close or report twice.
	rerun := &models.Remittance{RemitID: "RMT-1", ClaimID: "CLM-1001"}
	if err := bridge.CloseTasksForClaim(ctx, rerun); err != nil {
		t.Fatalf("re-close tasks: %v", err)
	}
	if len(rerun.TasksClosed) != 0 {
		t.Fatalf("expected no tasks closed on re-ingest, got %v", rerun.TasksClosed)
	}
}

func TestDeriveRemitStatus(t *testing.T) {
	cases := []struct {
		billed, paid float64
		want         string
	}{
		{125, 125, models.RemitStatusPaid},
		{125, 140, models.RemitStatusPaid},
		{125, 60, models.RemitStatusPartial},
		{125, 0, models.RemitStatusDenied},
	}
	for _, tc := range cases {
		if got := DeriveRemitStatus(tc.billed, tc.paid); got != tc.want {
			t.Fatalf("DeriveRemitStatus(%f, %f) = %s, want %s", tc.billed, tc.paid, got, tc.want)
		}
	}
}
