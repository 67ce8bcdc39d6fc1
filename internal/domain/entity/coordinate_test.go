package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinate_DistanceKm_Symmetric(t *testing.T) {
	points := []struct {
		a Coordinate
		b Coordinate
	}{
		{Coordinate{Lat: 40.0, Lon: -74.0}, Coordinate{Lat: 40.01, Lon: -74.0}},
		{Coordinate{Lat: 40.7128, Lon: -74.006}, Coordinate{Lat: 34.0522, Lon: -118.2437}},
		{Coordinate{Lat: -33.8688, Lon: 151.2093}, Coordinate{Lat: 51.5074, Lon: -0.1278}},
		{Coordinate{Lat: 0, Lon: 0}, Coordinate{Lat: 0, Lon: 0}},
	}

	for _, p := range points {
		assert.Equal(t, p.a.DistanceKm(p.b), p.b.DistanceKm(p.a))
	}
}

func TestCoordinate_DistanceKm_RoundedToTwoDecimals(t *testing.T) {
	a := Coordinate{Lat: 40.0, Lon: -74.0}
	b := Coordinate{Lat: 40.01, Lon: -74.0}

	d := a.DistanceKm(b)

	// 0.01 degrees of latitude is about 1.11 km.
	assert.InDelta(t, 1.11, d, 0.01)
	assert.Equal(t, d, math.Round(d*100)/100)
}

func TestCoordinate_DistanceKm_ZeroForSamePoint(t *testing.T) {
	p := Coordinate{Lat: 40.0, Lon: -74.0}

	assert.Zero(t, p.DistanceKm(p))
}

func TestCoordinate_IsValid(t *testing.T) {
	assert.True(t, Coordinate{Lat: 40.0, Lon: -74.0}.IsValid())
	assert.True(t, Coordinate{Lat: -90, Lon: 180}.IsValid())
	assert.False(t, Coordinate{Lat: 90.01, Lon: 0}.IsValid())
	assert.False(t, Coordinate{Lat: 0, Lon: -180.5}.IsValid())
	assert.False(t, Coordinate{Lat: math.NaN(), Lon: 0}.IsValid())
	assert.False(t, Coordinate{Lat: 0, Lon: math.Inf(1)}.IsValid())
}
