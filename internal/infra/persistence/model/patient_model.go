package model

import (
	"time"

	"github.com/google/uuid"
)

// PatientModel is the GORM-specific struct for the 'patients' table.
type PatientModel struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name  string    `gorm:"type:text;not null"`
	Phone string    `gorm:"type:text;not null"`
	Email string    `gorm:"type:text"`

	Latitude  *float64 `gorm:"type:decimal(10,8)"`
	Longitude *float64 `gorm:"type:decimal(11,8)"`
	Address   string   `gorm:"type:text"`

	EmergencyContactName  string `gorm:"type:text"`
	EmergencyContactPhone string `gorm:"type:text"`

	BloodType         string `gorm:"type:text"`
	MedicalConditions string `gorm:"type:text"`

	PushToken string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PatientModel) TableName() string {
	return "patients"
}

// EmergencyContactModel is the GORM-specific struct for the 'emergency_contacts' table.
// It holds a patient's supplementary emergency contacts.
type EmergencyContactModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PatientID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:text;not null"`
	Phone     string    `gorm:"type:text;not null"`
	Relation  string    `gorm:"type:text"`
	IsPrimary bool      `gorm:"not null;default:false"`

	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (EmergencyContactModel) TableName() string {
	return "emergency_contacts"
}
