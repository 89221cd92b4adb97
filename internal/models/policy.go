package models

import "strings"

// MetricKind tags how a spec's observed value is derived from the timeline.
type MetricKind string

const (
	// MetricKindWindow measures elapsed time between two topics ("A -> B").
	MetricKindWindow MetricKind = "window"
	// MetricKindRatio reads a success flag from a single governing event.
	MetricKindRatio MetricKind = "ratio"
	// MetricKindLatency measures elapsed time from the reference topic to a
	// single terminal topic.
	MetricKindLatency MetricKind = "latency"
)

// WindowSeparator splits the start and end topics of a window spec.
const WindowSeparator = "->"

// ReferenceTopic anchors latency-since-reference metrics.
const ReferenceTopic = "order.approved"

// CreditRule describes the financial penalty applied when a spec breaches.
// Flat-rate is the only exercised rule; the struct leaves room for tiered
// or percentage rules without changing detector or assembler contracts.
type CreditRule struct {
	PerBreach float64 `yaml:"per_breach"`
}

// SlaSpec is one immutable metric specification inside a policy.
type SlaSpec struct {
	Name       string     `yaml:"name"`
	Metric     string     `yaml:"metric"`
	Threshold  float64    `yaml:"threshold"`
	Window     string     `yaml:"window"`
	CreditRule CreditRule `yaml:"credit_rule"`
}

// Kind classifies the spec for extractor dispatch.
func (s SlaSpec) Kind() MetricKind {
	if strings.Contains(s.Window, WindowSeparator) {
		return MetricKindWindow
	}
	if strings.HasSuffix(s.Metric, "_ratio") {
		return MetricKindRatio
	}
	return MetricKindLatency
}

// WindowTopics returns the start and end topics of the window. For the
// single-topic latency form the start is the fixed reference topic.
func (s SlaSpec) WindowTopics() (start, end string) {
	if idx := strings.Index(s.Window, WindowSeparator); idx >= 0 {
		return strings.TrimSpace(s.Window[:idx]), strings.TrimSpace(s.Window[idx+len(WindowSeparator):])
	}
	return ReferenceTopic, strings.TrimSpace(s.Window)
}

// HigherIsBetter reports the breach direction: ratio metrics breach below
// the threshold, duration metrics breach above it.
func (s SlaSpec) HigherIsBetter() bool {
	return s.Kind() == MetricKindRatio
}

// UnitDivisor converts an elapsed duration in hours into the metric's
// declared unit, inferred from the metric name suffix.
func (s SlaSpec) UnitDivisor() float64 {
	if strings.HasSuffix(s.Metric, "_days") {
		return 24
	}
	return 1
}
