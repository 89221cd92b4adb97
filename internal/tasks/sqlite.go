package tasks

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/duramedstack/duramed-sla/internal/models"
)

const taskSchema = `
CREATE TABLE IF NOT EXISTS tasks (
	id              TEXT PRIMARY KEY,
	title           TEXT NOT NULL,
	task_type       TEXT NOT NULL,
	status          TEXT NOT NULL,
	sla_ref         TEXT NOT NULL DEFAULT '',
	breach_reason   TEXT NOT NULL DEFAULT '',
	first_pass_flag INTEGER NOT NULL DEFAULT 0,
	metadata        TEXT NOT NULL DEFAULT '{}',
	created_at      TEXT NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS tasks_sla_ref ON tasks(sla_ref) WHERE sla_ref != '';
`

// SQLiteStore is the embedded reference implementation of Store, used by
// local deployments and tests. Uniqueness of sla_ref is enforced by the
// database, so lookup-or-insert races resolve inside the store.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (and if needed initialises) the store at path.
// Use ":memory:" for an ephemeral store.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open task store: %w", err)
	}
	if _, err := db.Exec(taskSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init task store schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateTask inserts a new open task, assigning id and creation time.
func (s *SQLiteStore) CreateTask(ctx context.Context, draft models.Task) (models.Task, error) {
	task := draft
	task.ID = uuid.NewString()
	task.Status = models.TaskStatusOpen
	task.CreatedAt = time.Now().UTC()
	if task.Metadata == nil {
		task.Metadata = map[string]string{}
	}

	metadata, err := json.Marshal(task.Metadata)
	if err != nil {
		return models.Task{}, fmt.Errorf("encode task metadata: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO tasks (id, title, task_type, status, sla_ref, breach_reason, first_pass_flag, metadata, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.ID, task.Title, task.TaskType, task.Status, task.SLARef, task.BreachReason,
		boolToInt(task.FirstPassFlag), string(metadata), task.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return models.Task{}, ErrDuplicateTask
		}
		return models.Task{}, fmt.Errorf("insert task: %w", err)
	}
	return task, nil
}

// GetTask fetches a task by id.
func (s *SQLiteStore) GetTask(ctx context.Context, id string) (models.Task, error) {
	row := s.db.QueryRowContext(ctx, taskSelect+` WHERE id = ?`, id)
	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, ErrTaskNotFound
	}
	return task, err
}

// UpdateTaskStatus transitions a task's status.
func (s *SQLiteStore) UpdateTaskStatus(ctx context.Context, id, status string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE tasks SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("update task status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// FindBySLARef looks up the task carrying the given SLA reference.
func (s *SQLiteStore) FindBySLARef(ctx context.Context, ref string) (models.Task, bool, error) {
	if ref == "" {
		return models.Task{}, false, nil
	}
	row := s.db.QueryRowContext(ctx, taskSelect+` WHERE sla_ref = ?`, ref)
	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, false, nil
	}
	if err != nil {
		return models.Task{}, false, err
	}
	return task, true, nil
}

// FindTasks returns tasks whose metadata carries the given key/value pair.
func (s *SQLiteStore) FindTasks(ctx context.Context, metaKey, metaValue string) ([]models.Task, error) {
	rows, err := s.db.QueryContext(ctx,
		taskSelect+` WHERE json_extract(metadata, ?) = ? ORDER BY created_at`,
		"$."+metaKey, metaValue,
	)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

const taskSelect = `SELECT id, title, task_type, status, sla_ref, breach_reason, first_pass_flag, metadata, created_at FROM tasks`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (models.Task, error) {
	var (
		task      models.Task
		flag      int
		metadata  string
		createdAt string
	)
	if err := row.Scan(&task.ID, &task.Title, &task.TaskType, &task.Status, &task.SLARef,
		&task.BreachReason, &flag, &metadata, &createdAt); err != nil {
		return models.Task{}, err
	}
	task.FirstPassFlag = flag != 0
	if err := json.Unmarshal([]byte(metadata), &task.Metadata); err != nil {
		return models.Task{}, fmt.Errorf("decode task metadata: %w", err)
	}
	if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		task.CreatedAt = ts
	}
	return task, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
