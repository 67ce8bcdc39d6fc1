package repository

import (
	"context"

	"lifeline/internal/domain/entity"
	"lifeline/internal/errors"

	"github.com/google/uuid"
)

// ErrAmbulanceNotFound is returned when an ambulance is not found.
var ErrAmbulanceNotFound = errors.New("ambulance not found")

// AmbulanceRepository defines the interface for ambulance-related database operations.
//
// Per-vehicle rows are bookkeeping alongside the hospital's aggregate
// availability counter. The counter gates dispatch; a missing free row does
// not, so callers treat FindFirstAvailableByHospital's not-found result as
// counter-only dispatch rather than a failure.
type AmbulanceRepository interface {
	// CreateAmbulance persists a new ambulance.
	CreateAmbulance(ctx context.Context, ambulance *entity.Ambulance) error

	// FindAmbulanceByID retrieves an ambulance by its unique ID.
	FindAmbulanceByID(ctx context.Context, id uuid.UUID) (*entity.Ambulance, error)

	// FindAmbulancesByHospital retrieves the full fleet of a hospital.
	FindAmbulancesByHospital(ctx context.Context, hospitalID uuid.UUID) ([]*entity.Ambulance, error)

	// FindFirstAvailableByHospital locks and returns one AVAILABLE ambulance
	// of the hospital, ordered by vehicle number for determinism. The row is
	// locked for the remainder of the surrounding transaction. Returns
	// ErrAmbulanceNotFound when the fleet has no free row.
	FindFirstAvailableByHospital(ctx context.Context, hospitalID uuid.UUID) (*entity.Ambulance, error)

	// UpdateAmbulance persists the mutable fields of an existing ambulance.
	UpdateAmbulance(ctx context.Context, ambulance *entity.Ambulance) error

	// FindDispatchedByEmergency locks and returns the ambulance currently
	// dispatched to the given emergency. Returns ErrAmbulanceNotFound when
	// none is bound.
	FindDispatchedByEmergency(ctx context.Context, emergencyID uuid.UUID) (*entity.Ambulance, error)
}
