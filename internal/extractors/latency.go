package extractors

import (
	"time"

	"github.com/duramedstack/duramed-sla/internal/models"
)

// LatencyExtractor measures elapsed time from the fixed reference topic to
// a single terminal topic. Single-topic specs resolve their start to
// models.ReferenceTopic, so the extraction itself follows the same
// open/incomplete rules as a two-topic window.
type LatencyExtractor struct {
	window *WindowExtractor
}

// NewLatencyExtractor creates a latency-since-reference extractor.
func NewLatencyExtractor() *LatencyExtractor {
	return &LatencyExtractor{window: NewWindowExtractor()}
}

// Extract derives the reference-to-terminal elapsed time.
func (e *LatencyExtractor) Extract(events []models.Event, spec models.SlaSpec, evaluatedAt time.Time) Observation {
	return e.window.Extract(events, spec, evaluatedAt)
}
