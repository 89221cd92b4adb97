package models

import (
	"fmt"
	"time"
)

// MetricResult reports one spec's observation against its threshold.
// Observed is nil when the defining events are not present and no value
// could be derived.
type MetricResult struct {
	Metric    string
	Observed  *float64
	Threshold float64
	Passed    bool
}

// SlaBreach records a threshold violation with its financial credit.
type SlaBreach struct {
	SpecName   string
	Metric     string
	OrderID    string
	Observed   float64
	Threshold  float64
	OccurredAt time.Time
	Credits    float64
	Details    string
}

// Ref returns the stable reference string identifying this breach's spec
// for a given order. It is derived solely from breach identity fields so
// re-evaluation of the same timeline yields the same reference.
func (b SlaBreach) Ref() string {
	return fmt.Sprintf("sla:%s:%s:%s", b.OrderID, b.Metric, b.SpecName)
}

// VolumeTier buckets order or metric volume for reporting and pricing.
type VolumeTier string

const (
	VolumeTierStandard  VolumeTier = "standard"
	VolumeTierPreferred VolumeTier = "preferred"
	VolumeTierPremium   VolumeTier = "premium"
)

// SlaScore is the immutable result of one evaluation. Metrics holds exactly
// one entry per spec in policy order; Breaches is the failing subsequence in
// the same relative order; TotalCredits is the sum over Breaches.
type SlaScore struct {
	OrderID       string
	Metrics       []MetricResult
	Breaches      []SlaBreach
	TotalCredits  float64
	PolicyVersion string
	VolumeTier    VolumeTier
}
