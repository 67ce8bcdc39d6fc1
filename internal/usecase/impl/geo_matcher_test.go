package impl

import (
	"testing"

	"lifeline/internal/domain/entity"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHospital(name string, lat, lon float64, available int, emergencyServices bool, specializations ...string) *entity.Hospital {
	return &entity.Hospital{
		ID:                   uuid.New(),
		Name:                 name,
		Latitude:             lat,
		Longitude:            lon,
		TotalAmbulances:      available,
		AvailableAmbulances:  available,
		HasEmergencyServices: emergencyServices,
		Specializations:      specializations,
	}
}

func TestGeoMatcher_FindCandidates_SortsByDistance(t *testing.T) {
	matcher := NewGeoMatcher()
	origin := entity.Coordinate{Lat: 40.0, Lon: -74.0}

	far := testHospital("Far General", 40.05, -74.0, 1, true)
	near := testHospital("Near General", 40.01, -74.0, 1, true)

	candidates := matcher.FindCandidates(origin, []*entity.Hospital{far, near}, usecase.MatchOptions{
		RadiusKm:               15,
		EmergencyServicesOnly:  true,
		AvailableAmbulanceOnly: true,
	})

	require.Len(t, candidates, 2)
	assert.Equal(t, "Near General", candidates[0].Name)
	assert.Equal(t, "Far General", candidates[1].Name)
	// One hundredth of a degree of latitude is about 1.11 km.
	assert.InDelta(t, 1.11, candidates[0].DistanceKm, 0.01)
	assert.Less(t, candidates[0].DistanceKm, candidates[1].DistanceKm)
}

func TestGeoMatcher_FindCandidates_RadiusBoundary(t *testing.T) {
	matcher := NewGeoMatcher()
	origin := entity.Coordinate{Lat: 40.0, Lon: -74.0}

	inside := testHospital("Inside", 40.01, -74.0, 1, true)
	outside := testHospital("Outside", 41.0, -74.0, 1, true)

	candidates := matcher.FindCandidates(origin, []*entity.Hospital{inside, outside}, usecase.MatchOptions{
		RadiusKm: 15,
	})

	require.Len(t, candidates, 1)
	assert.Equal(t, "Inside", candidates[0].Name)
}

func TestGeoMatcher_FindCandidates_ExactRadiusIncluded(t *testing.T) {
	matcher := NewGeoMatcher()
	origin := entity.Coordinate{Lat: 40.0, Lon: -74.0}
	hospital := testHospital("Edge", 40.01, -74.0, 1, true)

	distance := origin.DistanceKm(hospital.Location())

	candidates := matcher.FindCandidates(origin, []*entity.Hospital{hospital}, usecase.MatchOptions{
		RadiusKm: distance,
	})

	require.Len(t, candidates, 1, "a hospital exactly on the radius must match")
	assert.Equal(t, distance, candidates[0].DistanceKm)
}

func TestGeoMatcher_FindCandidates_EmergencyServicesFilter(t *testing.T) {
	matcher := NewGeoMatcher()
	origin := entity.Coordinate{Lat: 40.0, Lon: -74.0}

	clinic := testHospital("Clinic", 40.005, -74.0, 1, false)
	er := testHospital("ER", 40.01, -74.0, 1, true)

	candidates := matcher.FindCandidates(origin, []*entity.Hospital{clinic, er}, usecase.MatchOptions{
		RadiusKm:              15,
		EmergencyServicesOnly: true,
	})

	require.Len(t, candidates, 1)
	assert.Equal(t, "ER", candidates[0].Name)
}

func TestGeoMatcher_FindCandidates_AvailableAmbulanceFilter(t *testing.T) {
	matcher := NewGeoMatcher()
	origin := entity.Coordinate{Lat: 40.0, Lon: -74.0}

	drained := testHospital("Drained", 40.005, -74.0, 0, true)
	stocked := testHospital("Stocked", 40.01, -74.0, 2, true)

	candidates := matcher.FindCandidates(origin, []*entity.Hospital{drained, stocked}, usecase.MatchOptions{
		RadiusKm:               15,
		AvailableAmbulanceOnly: true,
	})

	require.Len(t, candidates, 1)
	assert.Equal(t, "Stocked", candidates[0].Name)
}

func TestGeoMatcher_FindCandidates_SpecializationFilterIgnoresCase(t *testing.T) {
	matcher := NewGeoMatcher()
	origin := entity.Coordinate{Lat: 40.0, Lon: -74.0}

	cardio := testHospital("Cardio Center", 40.01, -74.0, 1, true, "Cardiology", "Trauma")
	general := testHospital("General", 40.005, -74.0, 1, true, "Pediatrics")

	candidates := matcher.FindCandidates(origin, []*entity.Hospital{cardio, general}, usecase.MatchOptions{
		RadiusKm:                15,
		RequiredSpecializations: []string{"cardiology", "TRAUMA"},
	})

	require.Len(t, candidates, 1)
	assert.Equal(t, "Cardio Center", candidates[0].Name)
}

func TestGeoMatcher_FindCandidates_SpecializationAnyMatch(t *testing.T) {
	matcher := NewGeoMatcher()
	origin := entity.Coordinate{Lat: 40.0, Lon: -74.0}

	// Offers only one of the two requested specializations and must
	// still be kept.
	cardioOnly := testHospital("Cardio Only", 40.01, -74.0, 1, true, "Cardiology")
	unrelated := testHospital("Unrelated", 40.005, -74.0, 1, true, "Dermatology")

	candidates := matcher.FindCandidates(origin, []*entity.Hospital{cardioOnly, unrelated}, usecase.MatchOptions{
		RadiusKm:                15,
		RequiredSpecializations: []string{"cardiology", "neurology"},
	})

	require.Len(t, candidates, 1)
	assert.Equal(t, "Cardio Only", candidates[0].Name)
}

func TestGeoMatcher_FindCandidates_EmptySpecializationRequestMatchesAll(t *testing.T) {
	matcher := NewGeoMatcher()
	origin := entity.Coordinate{Lat: 40.0, Lon: -74.0}

	hospitals := []*entity.Hospital{
		testHospital("A", 40.01, -74.0, 1, true, "Cardiology"),
		testHospital("B", 40.02, -74.0, 1, true),
	}

	candidates := matcher.FindCandidates(origin, hospitals, usecase.MatchOptions{
		RadiusKm:                15,
		RequiredSpecializations: nil,
	})

	assert.Len(t, candidates, 2)
}

func TestGeoMatcher_FindCandidates_Limit(t *testing.T) {
	matcher := NewGeoMatcher()
	origin := entity.Coordinate{Lat: 40.0, Lon: -74.0}

	hospitals := []*entity.Hospital{
		testHospital("A", 40.03, -74.0, 1, true),
		testHospital("B", 40.01, -74.0, 1, true),
		testHospital("C", 40.02, -74.0, 1, true),
	}

	candidates := matcher.FindCandidates(origin, hospitals, usecase.MatchOptions{
		RadiusKm: 15,
		Limit:    2,
	})

	require.Len(t, candidates, 2)
	assert.Equal(t, "B", candidates[0].Name)
	assert.Equal(t, "C", candidates[1].Name)
}

func TestGeoMatcher_FindCandidates_TieBrokenByID(t *testing.T) {
	matcher := NewGeoMatcher()
	origin := entity.Coordinate{Lat: 40.0, Lon: -74.0}

	first := testHospital("Twin A", 40.01, -74.0, 1, true)
	second := testHospital("Twin B", 40.01, -74.0, 1, true)

	candidates := matcher.FindCandidates(origin, []*entity.Hospital{first, second}, usecase.MatchOptions{
		RadiusKm: 15,
	})

	require.Len(t, candidates, 2)
	assert.Equal(t, candidates[0].DistanceKm, candidates[1].DistanceKm)
	assert.Less(t, candidates[0].ID.String(), candidates[1].ID.String())
}

func TestGeoMatcher_FindCandidates_InvalidOrigin(t *testing.T) {
	matcher := NewGeoMatcher()

	candidates := matcher.FindCandidates(entity.Coordinate{Lat: 95, Lon: 0}, []*entity.Hospital{
		testHospital("Anywhere", 40.0, -74.0, 1, true),
	}, usecase.MatchOptions{RadiusKm: 15})

	assert.Empty(t, candidates)
}

func TestGeoMatcher_FindCandidates_SkipsInvalidHospitalLocation(t *testing.T) {
	matcher := NewGeoMatcher()
	origin := entity.Coordinate{Lat: 40.0, Lon: -74.0}

	broken := testHospital("Broken", 120.0, -74.0, 1, true)
	good := testHospital("Good", 40.01, -74.0, 1, true)

	candidates := matcher.FindCandidates(origin, []*entity.Hospital{broken, nil, good}, usecase.MatchOptions{
		RadiusKm: 15,
	})

	require.Len(t, candidates, 1)
	assert.Equal(t, "Good", candidates[0].Name)
}

func TestGeoMatcher_FindCandidates_DoesNotMutateInput(t *testing.T) {
	matcher := NewGeoMatcher()
	origin := entity.Coordinate{Lat: 40.0, Lon: -74.0}
	hospital := testHospital("Immutable", 40.01, -74.0, 1, true)

	candidates := matcher.FindCandidates(origin, []*entity.Hospital{hospital}, usecase.MatchOptions{
		RadiusKm: 15,
	})

	require.Len(t, candidates, 1)
	assert.NotZero(t, candidates[0].DistanceKm)
	assert.Zero(t, hospital.DistanceKm, "source hospital must not be annotated in place")
}
