package repo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/duramedstack/duramed-sla/internal/cache"
	"github.com/duramedstack/duramed-sla/internal/models"
	"github.com/duramedstack/duramed-sla/internal/tasks"
)

// TaskStoreClient talks to the back-office task-store HTTP API. It
// implements tasks.Store, caching task reads so repeated breach ensures
// for the same order do not hammer the upstream.
type TaskStoreClient struct {
	baseURL    string
	tasksPath  string
	httpClient *http.Client
	cache      cache.Provider
	cacheTTL   time.Duration
}

// NewTaskStoreClient constructs a client targeting the configured task-store
// instance. A nil cache provider disables read caching.
func NewTaskStoreClient(baseURL, tasksPath string, timeout time.Duration, cacheProvider cache.Provider, cacheTTL time.Duration) *TaskStoreClient {
	if cacheProvider == nil {
		cacheProvider = cache.NoopProvider{}
	}
	if tasksPath == "" {
		tasksPath = "/api/v1/tasks"
	}
	return &TaskStoreClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		tasksPath: tasksPath,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cache:    cacheProvider,
		cacheTTL: cacheTTL,
	}
}

// CreateTask posts a task draft to the store. A 409 from the store maps to
// tasks.ErrDuplicateTask so callers can fall back to the canonical task.
func (c *TaskStoreClient) CreateTask(ctx context.Context, draft models.Task) (models.Task, error) {
	if c == nil {
		return models.Task{}, fmt.Errorf("task-store client not initialised")
	}
	if c.baseURL == "" {
		return models.Task{}, fmt.Errorf("task-store base URL not configured")
	}

	var created models.Task
	err := c.doJSON(ctx, http.MethodPost, c.resolvePath(c.tasksPath), draft, &created)
	if err != nil {
		var httpErr *statusError
		if errors.As(err, &httpErr) && httpErr.code == http.StatusConflict {
			return models.Task{}, tasks.ErrDuplicateTask
		}
		return models.Task{}, fmt.Errorf("task-store create request failed: %w", err)
	}

	c.storeCached(ctx, created)
	return created, nil
}

// GetTask fetches a task by id, serving from cache when possible.
func (c *TaskStoreClient) GetTask(ctx context.Context, id string) (models.Task, error) {
	if c == nil {
		return models.Task{}, fmt.Errorf("task-store client not initialised")
	}

	cacheKey := "taskstore:task:" + id
	if task, ok := c.readCached(ctx, cacheKey); ok {
		return task, nil
	}

	var task models.Task
	err := c.doJSON(ctx, http.MethodGet, c.resolvePath(path.Join(c.tasksPath, id)), nil, &task)
	if err != nil {
		var httpErr *statusError
		if errors.As(err, &httpErr) && httpErr.code == http.StatusNotFound {
			return models.Task{}, tasks.ErrTaskNotFound
		}
		return models.Task{}, fmt.Errorf("task-store get request failed: %w", err)
	}

	c.storeCached(ctx, task)
	return task, nil
}

// UpdateTaskStatus transitions a task's status and invalidates its cache
// entries.
func (c *TaskStoreClient) UpdateTaskStatus(ctx context.Context, id, status string) error {
	if c == nil {
		return fmt.Errorf("task-store client not initialised")
	}

	payload := map[string]string{"status": status}
	err := c.doJSON(ctx, http.MethodPatch, c.resolvePath(path.Join(c.tasksPath, id)), payload, nil)
	if err != nil {
		var httpErr *statusError
		if errors.As(err, &httpErr) && httpErr.code == http.StatusNotFound {
			return tasks.ErrTaskNotFound
		}
		return fmt.Errorf("task-store status update failed: %w", err)
	}

	_ = c.cache.Del(ctx, "taskstore:task:"+id)
	return nil
}

// FindBySLARef looks up the task carrying the given SLA reference.
func (c *TaskStoreClient) FindBySLARef(ctx context.Context, ref string) (models.Task, bool, error) {
	if c == nil {
		return models.Task{}, false, fmt.Errorf("task-store client not initialised")
	}
	if ref == "" {
		return models.Task{}, false, nil
	}

	cacheKey := "taskstore:ref:" + ref
	if task, ok := c.readCached(ctx, cacheKey); ok {
		return task, true, nil
	}

	endpoint := c.resolvePath(c.tasksPath) + "?sla_ref=" + url.QueryEscape(ref)
	var response struct {
		Tasks []models.Task `json:"tasks"`
	}
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &response); err != nil {
		return models.Task{}, false, fmt.Errorf("task-store lookup failed: %w", err)
	}
	if len(response.Tasks) == 0 {
		return models.Task{}, false, nil
	}

	task := response.Tasks[0]
	c.storeCached(ctx, task)
	return task, true, nil
}

// FindTasks returns tasks whose metadata carries the given key/value pair.
// Results are not cached; closure scans need the live open/closed state.
func (c *TaskStoreClient) FindTasks(ctx context.Context, metaKey, metaValue string) ([]models.Task, error) {
	if c == nil {
		return nil, fmt.Errorf("task-store client not initialised")
	}

	endpoint := c.resolvePath(c.tasksPath) +
		"?meta_key=" + url.QueryEscape(metaKey) +
		"&meta_value=" + url.QueryEscape(metaValue)
	var response struct {
		Tasks []models.Task `json:"tasks"`
	}
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &response); err != nil {
		return nil, fmt.Errorf("task-store search failed: %w", err)
	}
	return response.Tasks, nil
}

func (c *TaskStoreClient) readCached(ctx context.Context, key string) (models.Task, bool) {
	if c.cacheTTL <= 0 {
		return models.Task{}, false
	}
	data, err := c.cache.Get(ctx, key)
	if err != nil {
		return models.Task{}, false
	}
	var task models.Task
	if err := json.Unmarshal(data, &task); err != nil {
		return models.Task{}, false
	}
	return task, true
}

func (c *TaskStoreClient) storeCached(ctx context.Context, task models.Task) {
	if c.cacheTTL <= 0 || task.ID == "" {
		return
	}
	data, err := json.Marshal(task)
	if err != nil {
		return
	}
	_ = c.cache.Set(ctx, "taskstore:task:"+task.ID, data, c.cacheTTL)
	if task.SLARef != "" {
		_ = c.cache.Set(ctx, "taskstore:ref:"+task.SLARef, data, c.cacheTTL)
	}
}

func (c *TaskStoreClient) resolvePath(p string) string {
	if c.baseURL == "" {
		return ""
	}
	cleaned := "/" + strings.TrimLeft(p, "/")
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return c.baseURL + cleaned
	}
	u.Path = path.Join(u.Path, cleaned)
	return u.String()
}

// statusError carries a non-2xx upstream response code.
type statusError struct {
	code   int
	status string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("task-store returned %s", e.status)
}

func (c *TaskStoreClient) doJSON(ctx context.Context, method, endpoint string, payload any, out any) error {
	if endpoint == "" {
		return fmt.Errorf("empty endpoint")
	}

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal payload: %w", err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &statusError{code: resp.StatusCode, status: resp.Status}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
