package extractors

import (
	"fmt"
	"time"

	"github.com/duramedstack/duramed-sla/internal/models"
)

// Observation is what an extractor derived for one spec. Observed is nil
// when no value could be computed from the timeline. Incomplete marks
// observations where the defining events were missing, which the detector
// treats as a conservative fail.
type Observation struct {
	Observed   *float64
	ObservedAt time.Time
	Incomplete bool
	Details    string
}

// WindowExtractor derives elapsed-time observations for "A -> B" windows.
type WindowExtractor struct{}

// NewWindowExtractor creates a window duration extractor.
func NewWindowExtractor() *WindowExtractor {
	return &WindowExtractor{}
}

// Extract locates the earliest start-topic event and the earliest end-topic
// event at or after it. A still-open window yields the elapsed time up to
// evaluatedAt and is marked incomplete; a window with no start yields no
// observed value at all.
func (e *WindowExtractor) Extract(events []models.Event, spec models.SlaSpec, evaluatedAt time.Time) Observation {
	startTopic, endTopic := spec.WindowTopics()

	start, ok := earliest(events, startTopic, time.Time{})
	if !ok {
		return Observation{
			Incomplete: true,
			Details:    fmt.Sprintf("window start %s not observed", startTopic),
		}
	}

	end, ok := earliest(events, endTopic, start.Timestamp)
	if !ok {
		observed := elapsedIn(spec, start.Timestamp, evaluatedAt)
		return Observation{
			Observed:   &observed,
			Incomplete: true,
			Details:    fmt.Sprintf("window end %s not observed after %s", endTopic, startTopic),
		}
	}

	observed := elapsedIn(spec, start.Timestamp, end.Timestamp)
	return Observation{Observed: &observed, ObservedAt: end.Timestamp}
}

// earliest returns the event with the smallest timestamp for topic, at or
// after notBefore. Timelines are not assumed pre-sorted.
func earliest(events []models.Event, topic string, notBefore time.Time) (models.Event, bool) {
	var best models.Event
	found := false
	for _, ev := range events {
		if ev.Topic != topic {
			continue
		}
		if !notBefore.IsZero() && ev.Timestamp.Before(notBefore) {
			continue
		}
		if !found || ev.Timestamp.Before(best.Timestamp) {
			best = ev
			found = true
		}
	}
	return best, found
}

func elapsedIn(spec models.SlaSpec, start, end time.Time) float64 {
	return end.Sub(start).Hours() / spec.UnitDivisor()
}
