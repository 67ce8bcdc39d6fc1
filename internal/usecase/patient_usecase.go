package usecase

import (
	"context"

	"lifeline/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterPatientInput carries the fields needed to register a patient.
type RegisterPatientInput struct {
	Name                  string
	Phone                 string
	Email                 string
	Latitude              *float64
	Longitude             *float64
	Address               string
	EmergencyContactName  string
	EmergencyContactPhone string
	BloodType             string
	MedicalConditions     string
}

// PatientUsecase defines the interface for patient management use cases
type PatientUsecase interface {
	// RegisterPatient persists a new patient.
	RegisterPatient(ctx context.Context, input RegisterPatientInput) (*entity.Patient, error)

	// GetPatient retrieves a patient by ID.
	GetPatient(ctx context.Context, id uuid.UUID) (*entity.Patient, error)

	// AddEmergencyContact records an additional emergency contact.
	AddEmergencyContact(ctx context.Context, contact *entity.EmergencyContact) (*entity.EmergencyContact, error)

	// UpdatePushToken stores the patient's current device token for push
	// delivery.
	UpdatePushToken(ctx context.Context, patientID uuid.UUID, token string) error
}
