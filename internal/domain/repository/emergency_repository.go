// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"lifeline/internal/domain/entity"
	"lifeline/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for emergency persistence.
var (
	// ErrEmergencyNotFound is returned when an emergency is not found.
	ErrEmergencyNotFound = errors.New("emergency not found")
	// ErrEmergencyNotClaimable is returned when a conditional claim matches no
	// row, meaning the emergency is missing or a responder got there first.
	ErrEmergencyNotClaimable = errors.New("emergency not claimable")
)

// EmergencyRepository defines the interface for emergency-related database operations.
type EmergencyRepository interface {
	// CreateEmergency persists a new emergency request.
	CreateEmergency(ctx context.Context, emergency *entity.Emergency) error

	// FindEmergencyByID retrieves an emergency by its unique ID.
	FindEmergencyByID(ctx context.Context, id uuid.UUID) (*entity.Emergency, error)

	// FindEmergenciesByPatient retrieves all emergencies raised by a patient,
	// newest first.
	FindEmergenciesByPatient(ctx context.Context, patientID uuid.UUID) ([]*entity.Emergency, error)

	// FindEmergenciesByStatus retrieves all emergencies in the given state,
	// ordered by priority score descending then creation time.
	FindEmergenciesByStatus(ctx context.Context, status entity.EmergencyStatus) ([]*entity.Emergency, error)

	// ClaimPendingEmergency atomically transitions an emergency out of
	// PENDING with the given updated fields. The update is conditional on
	// the current status so that concurrent responders cannot both win.
	// Returns ErrEmergencyNotClaimable when no PENDING row matched.
	ClaimPendingEmergency(ctx context.Context, emergency *entity.Emergency) error

	// UpdateEmergency persists the mutable fields of an existing emergency.
	UpdateEmergency(ctx context.Context, emergency *entity.Emergency) error
}
