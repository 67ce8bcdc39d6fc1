package usecase

import (
	"context"

	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/repository"

	"github.com/google/uuid"
)

// ResourceLedger manages a hospital's ambulance availability counter and
// the per-vehicle rows behind it. Both methods operate on repositories
// bound to the caller's transaction, so a failed allocation rolls back
// together with whatever the caller was doing. The ledger is the only
// legal mutator of these counters.
type ResourceLedger interface {
	// Allocate reserves one ambulance from the hospital for the emergency.
	// The counter is decremented under a conditional update; when it is
	// already zero, repository.ErrNoAmbulanceAvailable is returned and
	// nothing changes. A free vehicle row, when one exists, is flipped to
	// DISPATCHED, bound to the emergency, and returned. A nil ambulance
	// with a nil error means the counter was decremented but the fleet had
	// no free row to bind.
	Allocate(ctx context.Context, repos repository.RepositoryFactory, hospitalID, emergencyID uuid.UUID) (*entity.Ambulance, error)

	// Release returns the ambulance to the hospital's pool: the row is set
	// AVAILABLE with its assignment cleared, and the counter is incremented
	// once, capped at the fleet size. Releasing an ambulance that is not
	// currently dispatched does nothing and does not touch the counter.
	Release(ctx context.Context, repos repository.RepositoryFactory, hospitalID, ambulanceID uuid.UUID) error
}
