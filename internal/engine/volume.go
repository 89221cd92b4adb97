package engine

import "github.com/duramedstack/duramed-sla/internal/models"

// Tier bucket boundaries as ratios of current volume to the reference
// count. Policy-configurable business parameters, not protocol guarantees.
const (
	premiumRatio   = 1.5
	preferredRatio = 0.75
)

// DetermineVolumeTier maps a volume count against a reference count to a
// named tier. Pure, deterministic, total over non-negative integers, and
// monotonic in its first argument.
func DetermineVolumeTier(current, reference int) models.VolumeTier {
	if current < 0 {
		current = 0
	}
	if reference <= 0 {
		if current == 0 {
			return models.VolumeTierStandard
		}
		return models.VolumeTierPremium
	}

	ratio := float64(current) / float64(reference)
	switch {
	case ratio >= premiumRatio:
		return models.VolumeTierPremium
	case ratio >= preferredRatio:
		return models.VolumeTierPreferred
	default:
		return models.VolumeTierStandard
	}
}
