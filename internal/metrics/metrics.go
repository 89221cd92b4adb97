package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	// OutcomeSuccess labels evaluations that produced a score.
	OutcomeSuccess = "success"
	// OutcomeError labels rejected or failed evaluations.
	OutcomeError = "error"
)

var (
	evaluationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "duramed_sla",
			Name:      "evaluations_total",
			Help:      "Total number of order evaluations handled, partitioned by outcome.",
		},
		[]string{"outcome"},
	)

	breachesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "duramed_sla",
			Name:      "breaches_total",
			Help:      "Total number of SLA breaches detected, partitioned by metric.",
		},
		[]string{"metric"},
	)

	creditsIssuedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "duramed_sla",
			Name:      "credits_issued_total",
			Help:      "Total service credits attached to scores.",
		},
	)

	evaluationDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "duramed_sla",
			Name:      "evaluation_seconds",
			Help:      "Order evaluation latency in seconds.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
	)
)

// Register attaches the engine's collectors to the supplied Prometheus registerer.
func Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		evaluationsTotal,
		breachesTotal,
		creditsIssuedTotal,
		evaluationDurationSeconds,
	}

	for _, collector := range collectors {
		if err := reg.Register(collector); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return err
		}
	}
	return nil
}

// ObserveEvaluation records an evaluation duration and outcome label.
func ObserveEvaluation(duration time.Duration, outcome string) {
	label := outcome
	if label != OutcomeError {
		label = OutcomeSuccess
	}
	evaluationsTotal.WithLabelValues(label).Inc()
	if duration < 0 {
		duration = 0
	}
	evaluationDurationSeconds.Observe(duration.Seconds())
}

// ObserveBreach counts a detected breach and its credits.
func ObserveBreach(metric string, credits float64) {
	breachesTotal.WithLabelValues(metric).Inc()
	if credits > 0 {
		creditsIssuedTotal.Add(credits)
	}
}
