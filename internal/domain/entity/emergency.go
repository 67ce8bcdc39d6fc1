package entity

import (
	"time"

	"github.com/google/uuid"
)

// Priority classifies how urgent an emergency request is.
type Priority string

const (
	PriorityLow      Priority = "LOW"
	PriorityMedium   Priority = "MEDIUM"
	PriorityHigh     Priority = "HIGH"
	PriorityCritical Priority = "CRITICAL"
)

// IsValid checks if the Priority is a valid value.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	default:
		return false
	}
}

// Score maps the priority to a numeric urgency used for queue ordering.
// Higher means more urgent.
func (p Priority) Score() int {
	switch p {
	case PriorityCritical:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	default:
		return 1
	}
}

// EmergencyStatus is the lifecycle state of an emergency request.
type EmergencyStatus string

const (
	EmergencyPending      EmergencyStatus = "PENDING"
	EmergencyAcknowledged EmergencyStatus = "ACKNOWLEDGED"
	EmergencyDispatched   EmergencyStatus = "DISPATCHED"
	EmergencyInProgress   EmergencyStatus = "IN_PROGRESS"
	EmergencyCompleted    EmergencyStatus = "COMPLETED"
	EmergencyCancelled    EmergencyStatus = "CANCELLED"
)

// IsValid checks if the EmergencyStatus is a valid value.
func (s EmergencyStatus) IsValid() bool {
	switch s {
	case EmergencyPending, EmergencyAcknowledged, EmergencyDispatched,
		EmergencyInProgress, EmergencyCompleted, EmergencyCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are allowed out of s.
func (s EmergencyStatus) IsTerminal() bool {
	return s == EmergencyCompleted || s == EmergencyCancelled
}

// Emergency represents a patient-initiated request for ambulance response,
// tracked through its lifecycle. Emergencies are never physically deleted;
// completed and cancelled records are retained for audit.
type Emergency struct {
	ID          uuid.UUID       `json:"id"`          // The Global Unique Identifier (GUID) for the emergency.
	PatientID   uuid.UUID       `json:"patient_id"`  // The patient who raised the request.
	Priority    Priority        `json:"priority"`    // Urgency of the request.
	Status      EmergencyStatus `json:"status"`      // Current lifecycle state.
	Description string          `json:"description"` // Free-text description of the emergency.

	// Location of the incident. Nil coordinates mean "fall back to the
	// patient's registered location" at fan-out time.
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Address   string   `json:"address,omitempty"`

	AssignedHospitalID    *uuid.UUID `json:"assigned_hospital_id,omitempty"` // Set on dispatch, together with AmbulanceDispatchedAt.
	AmbulanceDispatchedAt *time.Time `json:"ambulance_dispatched_at,omitempty"`
	EstimatedArrivalAt    *time.Time `json:"estimated_arrival_at,omitempty"`
	CompletedAt           *time.Time `json:"completed_at,omitempty"` // Set iff Status is COMPLETED.

	ResponseNotes string `json:"response_notes,omitempty"` // Operator notes, stored verbatim.

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ExplicitLocation returns the coordinates recorded on the emergency
// itself, if both are present and valid.
func (e *Emergency) ExplicitLocation() (Coordinate, bool) {
	if e.Latitude == nil || e.Longitude == nil {
		return Coordinate{}, false
	}

	coord := Coordinate{Lat: *e.Latitude, Lon: *e.Longitude}

	return coord, coord.IsValid()
}

// ResolveLocation returns the incident location, falling back to the
// patient's registered location when the emergency carries none.
func (e *Emergency) ResolveLocation(patient *Patient) (Coordinate, bool) {
	if coord, ok := e.ExplicitLocation(); ok {
		return coord, true
	}
	if patient == nil {
		return Coordinate{}, false
	}

	return patient.RegisteredLocation()
}
