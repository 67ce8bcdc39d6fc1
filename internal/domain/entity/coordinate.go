// Package entity contains the core business objects of the project.
package entity

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// Coordinate is a geographic point in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// IsValid reports whether the coordinate is a real point on Earth.
func (c Coordinate) IsValid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lon) ||
		math.IsInf(c.Lat, 0) || math.IsInf(c.Lon, 0) {
		return false
	}

	return c.Lat >= -90 && c.Lat <= 90 &&
		c.Lon >= -180 && c.Lon <= 180
}

// DistanceKm returns the great-circle distance to other in kilometers,
// rounded to two decimal places. The rounded value is what every caller
// compares against radii, so results stay reproducible.
func (c Coordinate) DistanceKm(other Coordinate) float64 {
	meters := geo.DistanceHaversine(
		orb.Point{c.Lon, c.Lat},
		orb.Point{other.Lon, other.Lat},
	)

	return math.Round(meters/1000*100) / 100
}
