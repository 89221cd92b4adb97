package engine

import (
	"log/slog"
	"time"

	"github.com/duramedstack/duramed-sla/internal/extractors"
	"github.com/duramedstack/duramed-sla/internal/models"
	"github.com/duramedstack/duramed-sla/internal/policy"
	"github.com/duramedstack/duramed-sla/internal/utils"
)

// Evaluator computes SLA scores from a single order's event timeline. It is
// a pure, synchronous computation: no I/O, no wall-clock reads (the caller
// injects evaluatedAt), safe for concurrent use.
type Evaluator struct {
	logger  *slog.Logger
	window  *extractors.WindowExtractor
	ratio   *extractors.RatioExtractor
	latency *extractors.LatencyExtractor
}

// NewEvaluator constructs an evaluator.
func NewEvaluator(logger *slog.Logger) *Evaluator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Evaluator{
		logger:  logger,
		window:  extractors.NewWindowExtractor(),
		ratio:   extractors.NewRatioExtractor(),
		latency: extractors.NewLatencyExtractor(),
	}
}

// Evaluate runs every spec in policy order against the timeline and returns
// the assembled score. A nil specs slice selects the default policy, an
// empty policyVersion the default label, and a zero evaluatedAt the current
// time. The timeline must already be scoped to one order.
func (e *Evaluator) Evaluate(events []models.Event, specs []models.SlaSpec, policyVersion string, evaluatedAt time.Time) (models.SlaScore, error) {
	if specs == nil {
		specs = policy.Default()
	}
	if policyVersion == "" {
		policyVersion = policy.DefaultVersion
	}
	if evaluatedAt.IsZero() {
		evaluatedAt = time.Now().UTC()
	}

	if err := policy.Validate(specs); err != nil {
		return models.SlaScore{}, err
	}

	orderID := ""
	for i, ev := range events {
		id := ev.OrderID()
		if id == "" {
			return models.SlaScore{}, &utils.MalformedEventError{Index: i, Topic: ev.Topic, Reason: "payload missing order_id"}
		}
		if orderID == "" {
			orderID = id
		}
	}

	metrics := make([]models.MetricResult, 0, len(specs))
	breaches := make([]models.SlaBreach, 0)
	total := 0.0

	for _, spec := range specs {
		obs := e.extract(events, spec, evaluatedAt)
		result := detect(spec, obs)
		metrics = append(metrics, result)
		if result.Passed {
			continue
		}

		breach := buildBreach(spec, obs, orderID, evaluatedAt)
		total += breach.Credits
		breaches = append(breaches, breach)
		e.logger.Debug("sla breach detected",
			slog.String("order_id", orderID),
			slog.String("metric", spec.Metric),
			slog.Float64("observed", breach.Observed),
			slog.Float64("threshold", spec.Threshold),
		)
	}

	return models.SlaScore{
		OrderID:       orderID,
		Metrics:       metrics,
		Breaches:      breaches,
		TotalCredits:  total,
		PolicyVersion: policyVersion,
		VolumeTier:    DetermineVolumeTier(len(metrics), len(metrics)),
	}, nil
}

func (e *Evaluator) extract(events []models.Event, spec models.SlaSpec, evaluatedAt time.Time) extractors.Observation {
	switch spec.Kind() {
	case models.MetricKindRatio:
		return e.ratio.Extract(events, spec, evaluatedAt)
	case models.MetricKindLatency:
		return e.latency.Extract(events, spec, evaluatedAt)
	default:
		return e.window.Extract(events, spec, evaluatedAt)
	}
}

// detect compares the observation against the spec's threshold. Incomplete
// observations fail conservatively: no deadline can be proven met while the
// window is still open or its defining events are absent.
func detect(spec models.SlaSpec, obs extractors.Observation) models.MetricResult {
	result := models.MetricResult{
		Metric:    spec.Metric,
		Observed:  obs.Observed,
		Threshold: spec.Threshold,
	}
	if obs.Incomplete || obs.Observed == nil {
		return result
	}
	if spec.HigherIsBetter() {
		result.Passed = *obs.Observed >= spec.Threshold
	} else {
		result.Passed = *obs.Observed <= spec.Threshold
	}
	return result
}

// buildBreach applies the spec's credit rule to a failing metric. The
// governing timestamp is the observation's end timestamp, or evaluatedAt
// when the breach was synthesized from an incomplete metric.
func buildBreach(spec models.SlaSpec, obs extractors.Observation, orderID string, evaluatedAt time.Time) models.SlaBreach {
	observed := 0.0
	if obs.Observed != nil {
		observed = *obs.Observed
	}
	occurredAt := obs.ObservedAt
	if obs.Incomplete || occurredAt.IsZero() {
		occurredAt = evaluatedAt
	}
	credits := spec.CreditRule.PerBreach
	if credits < 0 {
		credits = 0
	}
	return models.SlaBreach{
		SpecName:   spec.Name,
		Metric:     spec.Metric,
		OrderID:    orderID,
		Observed:   observed,
		Threshold:  spec.Threshold,
		OccurredAt: occurredAt,
		Credits:    credits,
		Details:    obs.Details,
	}
}
