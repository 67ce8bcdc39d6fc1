package repository

import (
	"context"

	"lifeline/internal/domain/entity"
	"lifeline/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for hospital persistence.
var (
	// ErrHospitalNotFound is returned when a hospital is not found.
	ErrHospitalNotFound = errors.New("hospital not found")
	// ErrNoAmbulanceAvailable is returned when a conditional decrement of the
	// availability counter matches no row because the counter is zero.
	ErrNoAmbulanceAvailable = errors.New("no ambulance available")
	// ErrAmbulanceCapacityFull is returned when a conditional increment of the
	// availability counter matches no row because the fleet is already idle.
	ErrAmbulanceCapacityFull = errors.New("all ambulances already available")
)

// HospitalRepository defines the interface for hospital-related database operations.
type HospitalRepository interface {
	// CreateHospital persists a new hospital.
	CreateHospital(ctx context.Context, hospital *entity.Hospital) error

	// FindHospitalByID retrieves a hospital by its unique ID.
	FindHospitalByID(ctx context.Context, id uuid.UUID) (*entity.Hospital, error)

	// FindAllHospitals retrieves every registered hospital.
	FindAllHospitals(ctx context.Context) ([]*entity.Hospital, error)

	// UpdateHospital persists the mutable fields of an existing hospital.
	UpdateHospital(ctx context.Context, hospital *entity.Hospital) error

	// DecrementAvailableAmbulances atomically reserves one ambulance from the
	// hospital's availability counter. The update is conditional on the
	// counter being positive; ErrNoAmbulanceAvailable is returned when zero.
	DecrementAvailableAmbulances(ctx context.Context, hospitalID uuid.UUID) error

	// IncrementAvailableAmbulances atomically returns one ambulance to the
	// hospital's availability counter. The update is conditional on the
	// counter being below the fleet size; ErrAmbulanceCapacityFull is
	// returned when it is already at the ceiling.
	IncrementAvailableAmbulances(ctx context.Context, hospitalID uuid.UUID) error
}
