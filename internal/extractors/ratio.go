package extractors

import (
	"fmt"
	"time"

	"github.com/duramedstack/duramed-sla/internal/models"
)

// RatioExtractor reads a success flag from a single governing event and
// maps it to 1.0 or 0.0.
type RatioExtractor struct {
	field string
}

// NewRatioExtractor creates a ratio extractor reading the "success" field.
func NewRatioExtractor() *RatioExtractor {
	return &RatioExtractor{field: "success"}
}

// Extract reads the earliest governing event for the spec's topic. An absent
// event or an event without the flag is marked incomplete.
func (e *RatioExtractor) Extract(events []models.Event, spec models.SlaSpec, _ time.Time) Observation {
	_, topic := spec.WindowTopics()

	ev, ok := earliest(events, topic, time.Time{})
	if !ok {
		return Observation{
			Incomplete: true,
			Details:    fmt.Sprintf("governing event %s not observed", topic),
		}
	}

	success, ok := ev.PayloadBool(e.field)
	if !ok {
		return Observation{
			Incomplete: true,
			Details:    fmt.Sprintf("governing event %s missing %s flag", topic, e.field),
		}
	}

	observed := 0.0
	if success {
		observed = 1.0
	}
	return Observation{Observed: &observed, ObservedAt: ev.Timestamp}
}
