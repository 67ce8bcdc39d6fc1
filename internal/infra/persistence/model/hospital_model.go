package model

import (
	"time"

	"github.com/google/uuid"
)

// HospitalModel is the GORM-specific struct for the 'hospitals' table.
type HospitalModel struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name    string    `gorm:"type:text;not null"`
	Address string    `gorm:"type:text"`
	Phone   string    `gorm:"type:text"`

	Latitude  float64 `gorm:"type:decimal(10,8);not null"`
	Longitude float64 `gorm:"type:decimal(11,8);not null"`

	TotalAmbulances     int `gorm:"not null;default:0"`
	AvailableAmbulances int `gorm:"not null;default:0;check:available_ambulances >= 0"`

	HasEmergencyServices bool `gorm:"not null;default:false"`

	// Comma-separated list of specialization tags.
	Specializations string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (HospitalModel) TableName() string {
	return "hospitals"
}

// AmbulanceModel is the GORM-specific struct for the 'ambulances' table.
type AmbulanceModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	HospitalID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_ambulances_hospital_vehicle"`
	VehicleNumber string    `gorm:"type:text;not null;uniqueIndex:idx_ambulances_hospital_vehicle"`
	Status        string    `gorm:"type:text;not null;index;default:'AVAILABLE'"`

	CurrentEmergencyID *uuid.UUID `gorm:"type:uuid;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AmbulanceModel) TableName() string {
	return "ambulances"
}
