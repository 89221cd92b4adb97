package tasks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/duramedstack/duramed-sla/internal/cache"
	"github.com/duramedstack/duramed-sla/internal/models"
)

// firstPassMetric is the metric whose breaches describe first-pass denials.
const firstPassMetric = "first_pass_ratio"

// Bridge links SLA breaches to remediation tasks in the external store.
// This is the engine's only side-effecting integration point.
type Bridge struct {
	logger  *slog.Logger
	store   Store
	cache   cache.Provider
	lockTTL time.Duration
}

// NewBridge constructs a task bridge. The cache provider guards concurrent
// ensures for the same breach identity; NoopProvider is acceptable when the
// store alone serializes creation.
func NewBridge(logger *slog.Logger, store Store, cacheProvider cache.Provider, lockTTL time.Duration) *Bridge {
	if logger == nil {
		logger = slog.Default()
	}
	if cacheProvider == nil {
		cacheProvider = cache.NoopProvider{}
	}
	if lockTTL <= 0 {
		lockTTL = 30 * time.Second
	}
	return &Bridge{logger: logger, store: store, cache: cacheProvider, lockTTL: lockTTL}
}

// EnsureSLATask idempotently ensures exactly one remediation task exists for
// the breach's identity (order, metric, spec). Re-invocation for the same
// logical breach returns the existing task; an unexpected duplicate from the
// store is treated as canonical rather than an error.
func (b *Bridge) EnsureSLATask(ctx context.Context, breach models.SlaBreach) (models.Task, error) {
	ref := breach.Ref()

	if existing, ok, err := b.store.FindBySLARef(ctx, ref); err != nil {
		return models.Task{}, fmt.Errorf("lookup task for %s: %w", ref, err)
	} else if ok {
		return existing, nil
	}

	// Reservation dedupes concurrent ensures; the store's uniqueness on
	// SLARef remains the source of truth if the reservation is lost.
	won, err := b.cache.SetNX(ctx, "sla:task:lock:"+ref, []byte("1"), b.lockTTL)
	if err != nil {
		b.logger.Warn("task reservation unavailable", slog.String("ref", ref), slog.Any("error", err))
	} else if !won {
		if existing, ok, err := b.store.FindBySLARef(ctx, ref); err == nil && ok {
			return existing, nil
		}
	}

	created, err := b.store.CreateTask(ctx, draftFor(breach, ref))
	if err != nil {
		if errors.Is(err, ErrDuplicateTask) {
			if existing, ok, lookupErr := b.store.FindBySLARef(ctx, ref); lookupErr == nil && ok {
				return existing, nil
			}
		}
		return models.Task{}, fmt.Errorf("create task for %s: %w", ref, err)
	}

	b.logger.Info("remediation task created",
		slog.String("task_id", created.ID),
		slog.String("order_id", breach.OrderID),
		slog.String("metric", breach.Metric),
	)
	return created, nil
}

func draftFor(breach models.SlaBreach, ref string) models.Task {
	return models.Task{
		Title:         fmt.Sprintf("SLA breach: %s (%s)", breach.SpecName, breach.OrderID),
		TaskType:      models.TaskTypeSLARemediation,
		SLARef:        ref,
		BreachReason:  breach.Details,
		FirstPassFlag: breach.Metric == firstPassMetric && breach.Observed >= breach.Threshold,
		Metadata: map[string]string{
			"sla_order_id": breach.OrderID,
			"sla_metric":   breach.Metric,
			"sla_spec":     breach.SpecName,
		},
	}
}

// CloseTasksForClaim transitions every open task referencing the remit's
// claim id to closed and records the ids in the remit's TasksClosed list.
// Already-closed tasks are skipped, so re-ingesting a remittance does not
// fail or double-report.
func (b *Bridge) CloseTasksForClaim(ctx context.Context, remit *models.Remittance) error {
	if remit == nil || remit.ClaimID == "" {
		return fmt.Errorf("remit with claim id required")
	}

	matches, err := b.store.FindTasks(ctx, "claim_id", remit.ClaimID)
	if err != nil {
		return fmt.Errorf("find tasks for claim %s: %w", remit.ClaimID, err)
	}

	for _, task := range matches {
		if task.Status != models.TaskStatusOpen {
			continue
		}
		if err := b.store.UpdateTaskStatus(ctx, task.ID, models.TaskStatusClosed); err != nil {
			return fmt.Errorf("close task %s: %w", task.ID, err)
		}
		remit.TasksClosed = append(remit.TasksClosed, task.ID)
		b.logger.Info("task closed by remittance",
			slog.String("task_id", task.ID),
			slog.String("claim_id", remit.ClaimID),
			slog.String("remit_id", remit.RemitID),
		)
	}
	return nil
}

// DeriveRemitStatus maps billed vs paid amounts onto the remit status.
func DeriveRemitStatus(amountBilled, amountPaid float64) string {
	switch {
	case amountPaid <= 0:
		return models.RemitStatusDenied
	case amountPaid < amountBilled:
		return models.RemitStatusPartial
	default:
		return models.RemitStatusPaid
	}
}
