package impl

import (
	"sort"

	"lifeline/internal/domain/entity"
	"lifeline/internal/usecase"
)

type geoMatcher struct{}

// NewGeoMatcher creates a new geo matcher instance
func NewGeoMatcher() usecase.GeoMatcher {
	return &geoMatcher{}
}

// FindCandidates returns the hospitals within the radius passing every
// filter, sorted by rounded distance ascending with hospital ID breaking
// ties. Hospitals without a valid location are skipped rather than
// failing the whole scan.
func (m *geoMatcher) FindCandidates(origin entity.Coordinate, hospitals []*entity.Hospital, opts usecase.MatchOptions) []*entity.Hospital {
	if !origin.IsValid() {
		return []*entity.Hospital{}
	}

	candidates := make([]*entity.Hospital, 0, len(hospitals))

	for _, hospital := range hospitals {
		if hospital == nil || !hospital.Location().IsValid() {
			continue
		}
		if opts.EmergencyServicesOnly && !hospital.HasEmergencyServices {
			continue
		}
		if opts.AvailableAmbulanceOnly && !hospital.HasAvailableAmbulance() {
			continue
		}
		if !hospital.HasAnySpecialization(opts.RequiredSpecializations) {
			continue
		}

		// DistanceKm rounds to two decimals, and the radius comparison
		// uses the rounded value so results are reproducible.
		distance := origin.DistanceKm(hospital.Location())
		if opts.RadiusKm > 0 && distance > opts.RadiusKm {
			continue
		}

		matched := *hospital
		matched.DistanceKm = distance
		candidates = append(candidates, &matched)
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].DistanceKm != candidates[j].DistanceKm {
			return candidates[i].DistanceKm < candidates[j].DistanceKm
		}

		return candidates[i].ID.String() < candidates[j].ID.String()
	})

	if opts.Limit > 0 && len(candidates) > opts.Limit {
		candidates = candidates[:opts.Limit]
	}

	return candidates
}
