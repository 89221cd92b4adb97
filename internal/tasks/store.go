package tasks

import (
	"context"
	"errors"

	"github.com/duramedstack/duramed-sla/internal/models"
)

// ErrTaskNotFound signals a lookup for an unknown task id.
var ErrTaskNotFound = errors.New("task not found")

// ErrDuplicateTask signals that the store already holds a task for the
// same SLA reference. The bridge treats the existing task as canonical.
var ErrDuplicateTask = errors.New("duplicate task for sla reference")

// Store is the external task persistence the engine consumes. The store,
// not the engine, owns concurrency: CreateTask must reject a second task
// carrying the same non-empty SLARef.
type Store interface {
	CreateTask(ctx context.Context, draft models.Task) (models.Task, error)
	GetTask(ctx context.Context, id string) (models.Task, error)
	UpdateTaskStatus(ctx context.Context, id, status string) error
	FindBySLARef(ctx context.Context, ref string) (models.Task, bool, error)
	FindTasks(ctx context.Context, metaKey, metaValue string) ([]models.Task, error)
}
