package entity

import (
	"time"

	"github.com/google/uuid"
)

// AmbulanceStatus is the operational state of a single vehicle.
type AmbulanceStatus string

const (
	AmbulanceAvailable   AmbulanceStatus = "AVAILABLE"
	AmbulanceDispatched  AmbulanceStatus = "DISPATCHED"
	AmbulanceMaintenance AmbulanceStatus = "MAINTENANCE"
)

// IsValid checks if the AmbulanceStatus is a valid value.
func (s AmbulanceStatus) IsValid() bool {
	switch s {
	case AmbulanceAvailable, AmbulanceDispatched, AmbulanceMaintenance:
		return true
	default:
		return false
	}
}

// Ambulance is a vehicle in a hospital's fleet. The per-row status is
// tracked alongside the hospital's aggregate availability counter; the
// counter is the authoritative gate for dispatch decisions.
type Ambulance struct {
	ID           uuid.UUID       `json:"id"`
	HospitalID   uuid.UUID       `json:"hospital_id"`
	VehicleNumber string         `json:"vehicle_number"` // Registration plate or fleet number, unique per hospital.
	Status       AmbulanceStatus `json:"status"`

	CurrentEmergencyID *uuid.UUID `json:"current_emergency_id,omitempty"` // Set while the vehicle is dispatched.

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
