package impl

import (
	"context"
	"fmt"
	"time"

	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/repository"
	"lifeline/internal/errors"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
)

type resourceLedger struct{}

// NewResourceLedger creates a new resource ledger instance
func NewResourceLedger() usecase.ResourceLedger {
	return &resourceLedger{}
}

// Allocate reserves one ambulance from the hospital for the emergency.
// The conditional counter decrement is the allocation gate; the vehicle
// row binding is bookkeeping on top of it. A positive counter with no
// free row still consumes the counter, matching the ledger's recorded
// behavior, and returns a nil ambulance.
func (l *resourceLedger) Allocate(ctx context.Context, repos repository.RepositoryFactory, hospitalID, emergencyID uuid.UUID) (*entity.Ambulance, error) {
	hospitalRepo := repos.NewHospitalRepository()

	if err := hospitalRepo.DecrementAvailableAmbulances(ctx, hospitalID); err != nil {
		if errors.Is(err, repository.ErrNoAmbulanceAvailable) {
			return nil, err
		}

		return nil, fmt.Errorf("failed to reserve ambulance: %w", err)
	}

	ambulanceRepo := repos.NewAmbulanceRepository()

	ambulance, err := ambulanceRepo.FindFirstAvailableByHospital(ctx, hospitalID)
	if err != nil {
		if errors.Is(err, repository.ErrAmbulanceNotFound) {
			// Counter said yes but the fleet has no free row. The counter
			// stays decremented and dispatch proceeds without a binding.
			return nil, nil
		}

		return nil, fmt.Errorf("failed to select ambulance: %w", err)
	}

	ambulance.Status = entity.AmbulanceDispatched
	ambulance.CurrentEmergencyID = &emergencyID
	ambulance.UpdatedAt = time.Now()

	if err := ambulanceRepo.UpdateAmbulance(ctx, ambulance); err != nil {
		return nil, fmt.Errorf("failed to bind ambulance: %w", err)
	}

	return ambulance, nil
}

// Release returns the ambulance to the hospital's pool. Releasing a row
// that is not currently dispatched is a no-op, so re-running a completion
// never double-increments the counter.
func (l *resourceLedger) Release(ctx context.Context, repos repository.RepositoryFactory, hospitalID, ambulanceID uuid.UUID) error {
	ambulanceRepo := repos.NewAmbulanceRepository()

	ambulance, err := ambulanceRepo.FindAmbulanceByID(ctx, ambulanceID)
	if err != nil {
		if errors.Is(err, repository.ErrAmbulanceNotFound) {
			return nil
		}

		return fmt.Errorf("failed to fetch ambulance: %w", err)
	}

	if ambulance.Status != entity.AmbulanceDispatched {
		return nil
	}

	ambulance.Status = entity.AmbulanceAvailable
	ambulance.CurrentEmergencyID = nil
	ambulance.UpdatedAt = time.Now()

	if err := ambulanceRepo.UpdateAmbulance(ctx, ambulance); err != nil {
		return fmt.Errorf("failed to free ambulance: %w", err)
	}

	err = repos.NewHospitalRepository().IncrementAvailableAmbulances(ctx, hospitalID)
	if err != nil && !errors.Is(err, repository.ErrAmbulanceCapacityFull) {
		return fmt.Errorf("failed to return ambulance to pool: %w", err)
	}

	return nil
}
