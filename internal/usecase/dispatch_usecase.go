package usecase

import (
	"context"

	"lifeline/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateEmergencyInput carries the fields a patient submits when raising
// an emergency. Coordinates are optional; when absent the patient's
// registered location is used for hospital notification.
type CreateEmergencyInput struct {
	PatientID   uuid.UUID
	Priority    entity.Priority
	Description string
	Latitude    *float64
	Longitude   *float64
	Address     string
}

// RespondToEmergencyInput carries a hospital's commitment to respond.
type RespondToEmergencyInput struct {
	EmergencyID             uuid.UUID
	HospitalID              uuid.UUID
	EstimatedArrivalMinutes *int
	ResponseNotes           string
}

// DispatchUsecase defines the interface for emergency lifecycle use cases
type DispatchUsecase interface {
	// CreateEmergency records a new PENDING emergency and fans out alert
	// notifications to nearby hospitals and the patient's contacts. The
	// returned count is how many notifications were recorded; fan-out
	// failures do not roll back the created emergency.
	CreateEmergency(ctx context.Context, input CreateEmergencyInput) (*entity.Emergency, int, error)

	// RespondToEmergency lets a hospital claim a PENDING emergency. Exactly
	// one responder wins; the claim, ambulance allocation, and dispatch
	// notifications commit together or not at all.
	RespondToEmergency(ctx context.Context, input RespondToEmergencyInput) (*entity.Emergency, error)

	// UpdateEmergencyStatus moves an emergency to the given status and
	// notifies the patient of the change. Transitions that skip
	// intermediate states are allowed; terminal emergencies are rejected.
	UpdateEmergencyStatus(ctx context.Context, emergencyID uuid.UUID, status entity.EmergencyStatus, notes string, etaMinutes *int) (*entity.Emergency, error)

	// CompleteEmergency marks the emergency COMPLETED and returns its
	// ambulance to the assigned hospital's pool. Completing an already
	// completed emergency is a no-op.
	CompleteEmergency(ctx context.Context, emergencyID uuid.UUID, notes string) (*entity.Emergency, error)

	// GetEmergency retrieves a single emergency by ID.
	GetEmergency(ctx context.Context, id uuid.UUID) (*entity.Emergency, error)

	// ListEmergenciesByPatient retrieves a patient's emergencies, newest first.
	ListEmergenciesByPatient(ctx context.Context, patientID uuid.UUID) ([]*entity.Emergency, error)

	// ListEmergenciesByStatus retrieves emergencies in the given state,
	// most urgent first.
	ListEmergenciesByStatus(ctx context.Context, status entity.EmergencyStatus) ([]*entity.Emergency, error)
}
