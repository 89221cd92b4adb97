package engine

import (
	"testing"

	"github.com/duramedstack/duramed-sla/internal/models"
)

func TestDetermineVolumeTierBuckets(t *testing.T) {
	cases := []struct {
		current   int
		reference int
		want      models.VolumeTier
	}{
		{0, 10, models.VolumeTierStandard},
		{7, 10, models.VolumeTierStandard},
		{8, 10, models.VolumeTierPreferred},
		{10, 10, models.VolumeTierPreferred},
		{15, 10, models.VolumeTierPremium},
		{0, 0, models.VolumeTierStandard},
		{3, 0, models.VolumeTierPremium},
		{-2, 10, models.VolumeTierStandard},
	}
	for _, tc := range cases {
		if got := DetermineVolumeTier(tc.current, tc.reference); got != tc.want {
			t.Fatalf("DetermineVolumeTier(%d, %d) = %s, want %s", tc.current, tc.reference, got, tc.want)
		}
	}
}

func TestDetermineVolumeTierMonotonic(t *testing.T) {
	rank := map[models.VolumeTier]int{
		models.VolumeTierStandard:  0,
		models.VolumeTierPreferred: 1,
		models.VolumeTierPremium:   2,
	}
	prev := DetermineVolumeTier(0, 12)
	for current := 1; current <= 30; current++ {
		tier := DetermineVolumeTier(current, 12)
		if rank[tier] < rank[prev] {
			t.Fatalf("tier regressed from %s to %s at count %d", prev, tier, current)
		}
		prev = tier
	}
}
