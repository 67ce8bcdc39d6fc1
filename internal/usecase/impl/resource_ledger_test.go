package impl

import (
	"context"
	"testing"

	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/repository"
	mockRepo "lifeline/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createLedgerFactory(t *testing.T) (*mockRepo.MockRepositoryFactory, *mockRepo.MockHospitalRepository, *mockRepo.MockAmbulanceRepository) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	hospitalRepo := mockRepo.NewMockHospitalRepository(t)
	ambulanceRepo := mockRepo.NewMockAmbulanceRepository(t)

	factory.EXPECT().NewHospitalRepository().Return(hospitalRepo).Maybe()
	factory.EXPECT().NewAmbulanceRepository().Return(ambulanceRepo).Maybe()

	return factory, hospitalRepo, ambulanceRepo
}

func TestResourceLedger_Allocate_Success(t *testing.T) {
	ledger := NewResourceLedger()
	factory, hospitalRepo, ambulanceRepo := createLedgerFactory(t)

	ctx := context.Background()
	hospitalID := uuid.New()
	emergencyID := uuid.New()
	free := &entity.Ambulance{
		ID:            uuid.New(),
		HospitalID:    hospitalID,
		VehicleNumber: "AMB-001",
		Status:        entity.AmbulanceAvailable,
	}

	hospitalRepo.EXPECT().DecrementAvailableAmbulances(ctx, hospitalID).Return(nil)
	ambulanceRepo.EXPECT().FindFirstAvailableByHospital(ctx, hospitalID).Return(free, nil)
	ambulanceRepo.EXPECT().UpdateAmbulance(ctx, mock.Anything).Return(nil)

	ambulance, err := ledger.Allocate(ctx, factory, hospitalID, emergencyID)

	require.NoError(t, err)
	require.NotNil(t, ambulance)
	assert.Equal(t, entity.AmbulanceDispatched, ambulance.Status)
	require.NotNil(t, ambulance.CurrentEmergencyID)
	assert.Equal(t, emergencyID, *ambulance.CurrentEmergencyID)
}

func TestResourceLedger_Allocate_CounterExhausted(t *testing.T) {
	ledger := NewResourceLedger()
	factory, hospitalRepo, _ := createLedgerFactory(t)

	ctx := context.Background()
	hospitalID := uuid.New()

	hospitalRepo.EXPECT().DecrementAvailableAmbulances(ctx, hospitalID).
		Return(repository.ErrNoAmbulanceAvailable)

	ambulance, err := ledger.Allocate(ctx, factory, hospitalID, uuid.New())

	assert.Nil(t, ambulance)
	assert.ErrorIs(t, err, repository.ErrNoAmbulanceAvailable)
}

func TestResourceLedger_Allocate_CounterWithoutFreeRow(t *testing.T) {
	ledger := NewResourceLedger()
	factory, hospitalRepo, ambulanceRepo := createLedgerFactory(t)

	ctx := context.Background()
	hospitalID := uuid.New()

	hospitalRepo.EXPECT().DecrementAvailableAmbulances(ctx, hospitalID).Return(nil)
	ambulanceRepo.EXPECT().FindFirstAvailableByHospital(ctx, hospitalID).
		Return(nil, repository.ErrAmbulanceNotFound)

	// The counter gates dispatch. A missing vehicle row means counter-only
	// dispatch, not a failure.
	ambulance, err := ledger.Allocate(ctx, factory, hospitalID, uuid.New())

	require.NoError(t, err)
	assert.Nil(t, ambulance)
}

func TestResourceLedger_Allocate_BindFailure(t *testing.T) {
	ledger := NewResourceLedger()
	factory, hospitalRepo, ambulanceRepo := createLedgerFactory(t)

	ctx := context.Background()
	hospitalID := uuid.New()
	free := &entity.Ambulance{ID: uuid.New(), HospitalID: hospitalID, Status: entity.AmbulanceAvailable}

	hospitalRepo.EXPECT().DecrementAvailableAmbulances(ctx, hospitalID).Return(nil)
	ambulanceRepo.EXPECT().FindFirstAvailableByHospital(ctx, hospitalID).Return(free, nil)
	ambulanceRepo.EXPECT().UpdateAmbulance(ctx, mock.Anything).Return(errors.New("write failed"))

	_, err := ledger.Allocate(ctx, factory, hospitalID, uuid.New())

	assert.ErrorContains(t, err, "failed to bind ambulance")
}

func TestResourceLedger_Release_Success(t *testing.T) {
	ledger := NewResourceLedger()
	factory, hospitalRepo, ambulanceRepo := createLedgerFactory(t)

	ctx := context.Background()
	hospitalID := uuid.New()
	emergencyID := uuid.New()
	dispatched := &entity.Ambulance{
		ID:                 uuid.New(),
		HospitalID:         hospitalID,
		Status:             entity.AmbulanceDispatched,
		CurrentEmergencyID: &emergencyID,
	}

	ambulanceRepo.EXPECT().FindAmbulanceByID(ctx, dispatched.ID).Return(dispatched, nil)
	ambulanceRepo.EXPECT().UpdateAmbulance(ctx, mock.MatchedBy(func(a *entity.Ambulance) bool {
		return a.Status == entity.AmbulanceAvailable && a.CurrentEmergencyID == nil
	})).Return(nil)
	hospitalRepo.EXPECT().IncrementAvailableAmbulances(ctx, hospitalID).Return(nil)

	err := ledger.Release(ctx, factory, hospitalID, dispatched.ID)

	require.NoError(t, err)
}

func TestResourceLedger_Release_NotDispatchedIsNoop(t *testing.T) {
	ledger := NewResourceLedger()
	factory, _, ambulanceRepo := createLedgerFactory(t)

	ctx := context.Background()
	hospitalID := uuid.New()
	idle := &entity.Ambulance{ID: uuid.New(), HospitalID: hospitalID, Status: entity.AmbulanceAvailable}

	ambulanceRepo.EXPECT().FindAmbulanceByID(ctx, idle.ID).Return(idle, nil)

	// No update, no counter increment. Re-running a completion must not
	// double-count the pool.
	err := ledger.Release(ctx, factory, hospitalID, idle.ID)

	require.NoError(t, err)
}

func TestResourceLedger_Release_MissingAmbulanceIsNoop(t *testing.T) {
	ledger := NewResourceLedger()
	factory, _, ambulanceRepo := createLedgerFactory(t)

	ctx := context.Background()
	missing := uuid.New()

	ambulanceRepo.EXPECT().FindAmbulanceByID(ctx, missing).
		Return(nil, repository.ErrAmbulanceNotFound)

	err := ledger.Release(ctx, factory, uuid.New(), missing)

	require.NoError(t, err)
}

func TestResourceLedger_Release_CapacityFullSwallowed(t *testing.T) {
	ledger := NewResourceLedger()
	factory, hospitalRepo, ambulanceRepo := createLedgerFactory(t)

	ctx := context.Background()
	hospitalID := uuid.New()
	emergencyID := uuid.New()
	dispatched := &entity.Ambulance{
		ID:                 uuid.New(),
		HospitalID:         hospitalID,
		Status:             entity.AmbulanceDispatched,
		CurrentEmergencyID: &emergencyID,
	}

	ambulanceRepo.EXPECT().FindAmbulanceByID(ctx, dispatched.ID).Return(dispatched, nil)
	ambulanceRepo.EXPECT().UpdateAmbulance(ctx, mock.Anything).Return(nil)
	hospitalRepo.EXPECT().IncrementAvailableAmbulances(ctx, hospitalID).
		Return(repository.ErrAmbulanceCapacityFull)

	// The counter is already at the fleet ceiling; the row still frees.
	err := ledger.Release(ctx, factory, hospitalID, dispatched.ID)

	require.NoError(t, err)
}
