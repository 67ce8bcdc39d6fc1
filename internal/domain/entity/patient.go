package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Patient is a registered user who can raise emergencies.
type Patient struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone"`
	Email string    `json:"email,omitempty"`

	// Registered home location, used as the incident location when an
	// emergency carries no coordinates of its own.
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Address   string   `json:"address,omitempty"`

	// Primary emergency contact, stored inline on the patient record.
	// Additional contacts live in EmergencyContact rows.
	EmergencyContactName  string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string `json:"emergency_contact_phone,omitempty"`

	BloodType         string `json:"blood_type,omitempty"`
	MedicalConditions string `json:"medical_conditions,omitempty"`

	PushToken string `json:"-"` // Device token for push delivery, never exposed.

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RegisteredLocation returns the patient's home coordinates if present
// and valid.
func (p *Patient) RegisteredLocation() (Coordinate, bool) {
	if p.Latitude == nil || p.Longitude == nil {
		return Coordinate{}, false
	}

	coord := Coordinate{Lat: *p.Latitude, Lon: *p.Longitude}

	return coord, coord.IsValid()
}

// HasPrimaryContact reports whether an inline primary contact with a
// usable phone number is recorded.
func (p *Patient) HasPrimaryContact() bool {
	return strings.TrimSpace(p.EmergencyContactPhone) != ""
}

// EmergencyContact is an additional person to notify when the patient
// raises an emergency. Only contacts flagged IsPrimary are notified.
type EmergencyContact struct {
	ID        uuid.UUID `json:"id"`
	PatientID uuid.UUID `json:"patient_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Relation  string    `json:"relation,omitempty"`
	IsPrimary bool      `json:"is_primary"`

	CreatedAt time.Time `json:"created_at"`
}
