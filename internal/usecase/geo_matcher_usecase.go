package usecase

import (
	"lifeline/internal/domain/entity"
)

// MatchOptions control how hospital candidates are selected.
type MatchOptions struct {
	// RadiusKm is the search radius. Distances are rounded to two decimal
	// places before comparison, so a hospital at 15.004 km matches a 15 km
	// radius while one at 15.005 km does not.
	RadiusKm float64

	// EmergencyServicesOnly keeps only hospitals that accept emergency cases.
	EmergencyServicesOnly bool

	// AvailableAmbulanceOnly keeps only hospitals with a free ambulance.
	AvailableAmbulanceOnly bool

	// RequiredSpecializations keeps only hospitals offering at least one
	// of the listed specializations. Matching ignores case.
	RequiredSpecializations []string

	// Limit caps the number of results after sorting. Zero means no cap.
	Limit int
}

// GeoMatcher selects and orders hospital candidates around an origin.
// Implementations are pure: no I/O, no clock, no randomness, so results
// are reproducible for the same inputs.
type GeoMatcher interface {
	// FindCandidates returns the hospitals within opts.RadiusKm of origin
	// that pass every filter, sorted by distance ascending with ID as the
	// tie-breaker. Each returned hospital has DistanceKm populated. The
	// input slice is never mutated.
	FindCandidates(origin entity.Coordinate, hospitals []*entity.Hospital, opts MatchOptions) []*entity.Hospital
}
