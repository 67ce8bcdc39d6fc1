package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Hospital is a facility that can receive emergency notifications and
// dispatch ambulances.
type Hospital struct {
	ID      uuid.UUID `json:"id"`      // The Global Unique Identifier (GUID) for the hospital.
	Name    string    `json:"name"`    // Display name of the facility.
	Address string    `json:"address"` // Street address.
	Phone   string    `json:"phone"`   // Contact phone, included in dispatch notifications.

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	TotalAmbulances     int `json:"total_ambulances"`     // Fleet size, the upper bound for AvailableAmbulances.
	AvailableAmbulances int `json:"available_ambulances"` // Ambulances currently free to dispatch.

	HasEmergencyServices bool `json:"has_emergency_services"` // Whether the facility accepts emergency cases at all.

	// Specializations is the list of medical specializations offered,
	// e.g. "cardiology". Matching against it is case-insensitive.
	Specializations []string `json:"specializations"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// DistanceKm is populated by candidate searches and is not persisted.
	DistanceKm float64 `json:"distance_km,omitempty"`
}

// Location returns the hospital's coordinates.
func (h *Hospital) Location() Coordinate {
	return Coordinate{Lat: h.Latitude, Lon: h.Longitude}
}

// HasAvailableAmbulance reports whether at least one ambulance is free.
func (h *Hospital) HasAvailableAmbulance() bool {
	return h.AvailableAmbulances > 0
}

// HasSpecialization reports whether the hospital offers the given
// specialization. Comparison ignores case and surrounding whitespace.
func (h *Hospital) HasSpecialization(name string) bool {
	want := strings.ToLower(strings.TrimSpace(name))
	if want == "" {
		return true
	}
	for _, s := range h.Specializations {
		if strings.ToLower(strings.TrimSpace(s)) == want {
			return true
		}
	}

	return false
}

// HasAnySpecialization reports whether at least one of the requested
// specializations is offered. An empty request always matches.
func (h *Hospital) HasAnySpecialization(names []string) bool {
	if len(names) == 0 {
		return true
	}
	for _, name := range names {
		if h.HasSpecialization(name) {
			return true
		}
	}

	return false
}
