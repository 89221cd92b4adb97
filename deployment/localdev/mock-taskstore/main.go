package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"
)

type task struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	TaskType      string            `json:"task_type"`
	Status        string            `json:"status"`
	SLARef        string            `json:"sla_ref,omitempty"`
	BreachReason  string            `json:"breach_reason,omitempty"`
	FirstPassFlag bool              `json:"first_pass_flag,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}

type store struct {
	mu    sync.Mutex
	tasks map[string]task
	seq   int
}

func newStore() *store {
	return &store{tasks: make(map[string]task)}
}

func (s *store) create(draft task) (task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if draft.SLARef != "" {
		for _, t := range s.tasks {
			if t.SLARef == draft.SLARef {
				return task{}, false
			}
		}
	}
	s.seq++
	draft.ID = fmt.Sprintf("task-%04d", s.seq)
	draft.Status = "open"
	draft.CreatedAt = time.Now().UTC()
	if draft.Metadata == nil {
		draft.Metadata = map[string]string{}
	}
	s.tasks[draft.ID] = draft
	return draft, true
}

func (s *store) get(id string) (task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	return t, ok
}

func (s *store) setStatus(id, status string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return false
	}
	t.Status = status
	s.tasks[id] = t
	return true
}

func (s *store) search(slaRef, metaKey, metaValue string) []task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []task{}
	for _, t := range s.tasks {
		if slaRef != "" && t.SLARef == slaRef {
			out = append(out, t)
			continue
		}
		if metaKey != "" && t.Metadata[metaKey] == metaValue {
			out = append(out, t)
		}
	}
	return out
}

func main() {
	db := newStore()
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/api/v1/tasks", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var draft task
			if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				writeJSON(w, map[string]string{"error": "invalid task payload"})
				return
			}
			created, ok := db.create(draft)
			if !ok {
				w.WriteHeader(http.StatusConflict)
				writeJSON(w, map[string]string{"error": "duplicate sla_ref"})
				return
			}
			writeJSON(w, created)
		case http.MethodGet:
			q := r.URL.Query()
			matches := db.search(q.Get("sla_ref"), q.Get("meta_key"), q.Get("meta_value"))
			writeJSON(w, map[string]any{"tasks": matches})
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/api/v1/tasks/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/api/v1/tasks/")
		switch r.Method {
		case http.MethodGet:
			t, ok := db.get(id)
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				writeJSON(w, map[string]string{"error": "not found"})
				return
			}
			writeJSON(w, t)
		case http.MethodPatch:
			var payload struct {
				Status string `json:"status"`
			}
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Status == "" {
				w.WriteHeader(http.StatusBadRequest)
				writeJSON(w, map[string]string{"error": "status required"})
				return
			}
			if !db.setStatus(id, payload.Status) {
				w.WriteHeader(http.StatusNotFound)
				writeJSON(w, map[string]string{"error": "not found"})
				return
			}
			writeJSON(w, map[string]string{"status": "ok"})
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	logger := log.New(log.Writer(), "taskstore-mock ", log.LstdFlags|log.Lmicroseconds)
	srv := &http.Server{
		Addr:    ":8081",
		Handler: logRequests(logger, mux),
	}

	logger.Println("listening on :8081")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("server error: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func logRequests(logger *log.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, r)
		logger.Printf("%s %s %d %s", r.Method, r.URL.Path, rw.status, time.Since(start))
	})
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}
