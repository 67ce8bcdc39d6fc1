package model

import (
	"time"

	"github.com/google/uuid"
)

// EmergencyModel is the GORM-specific struct for the 'emergencies' table.
// It represents a patient-initiated emergency request.
type EmergencyModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PatientID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Priority    string    `gorm:"type:text;not null"`
	Status      string    `gorm:"type:text;not null;index;default:'PENDING'"`
	Description string    `gorm:"type:text"`

	Latitude  *float64 `gorm:"type:decimal(10,8)"`
	Longitude *float64 `gorm:"type:decimal(11,8)"`
	Address   string   `gorm:"type:text"`

	AssignedHospitalID    *uuid.UUID `gorm:"type:uuid;index"`
	AmbulanceDispatchedAt *time.Time
	EstimatedArrivalAt    *time.Time
	CompletedAt           *time.Time

	ResponseNotes string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (EmergencyModel) TableName() string {
	return "emergencies"
}
