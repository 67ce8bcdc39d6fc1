package repository

import (
	"context"

	"lifeline/internal/domain/entity"
	"lifeline/internal/errors"

	"github.com/google/uuid"
)

// ErrPatientNotFound is returned when a patient is not found.
var ErrPatientNotFound = errors.New("patient not found")

// PatientRepository defines the interface for patient-related database operations.
type PatientRepository interface {
	// CreatePatient persists a new patient.
	CreatePatient(ctx context.Context, patient *entity.Patient) error

	// FindPatientByID retrieves a patient by its unique ID.
	FindPatientByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)

	// UpdatePatient persists the mutable fields of an existing patient.
	UpdatePatient(ctx context.Context, patient *entity.Patient) error

	// FindPrimaryContacts retrieves the patient's additional emergency
	// contacts flagged as primary.
	FindPrimaryContacts(ctx context.Context, patientID uuid.UUID) ([]*entity.EmergencyContact, error)

	// CreateEmergencyContact persists an additional emergency contact.
	CreateEmergencyContact(ctx context.Context, contact *entity.EmergencyContact) error
}
