package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	mockRepo "lifeline/internal/mocks/repository"
	mockSvc "lifeline/internal/mocks/service"
	mockUC "lifeline/internal/mocks/usecase"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dispatchTestMocks struct {
	factory          *mockRepo.MockRepositoryFactory
	emergencyRepo    *mockRepo.MockEmergencyRepository
	hospitalRepo     *mockRepo.MockHospitalRepository
	ambulanceRepo    *mockRepo.MockAmbulanceRepository
	patientRepo      *mockRepo.MockPatientRepository
	notificationRepo *mockRepo.MockNotificationRepository
	fanout           *mockUC.MockNotificationFanout
	ledger           *mockUC.MockResourceLedger
	publisher        *mockSvc.MockEventPublisher
}

func createTestDispatchService(t *testing.T) (usecase.DispatchUsecase, *dispatchTestMocks) {
	m := &dispatchTestMocks{
		factory:          mockRepo.NewMockRepositoryFactory(t),
		emergencyRepo:    mockRepo.NewMockEmergencyRepository(t),
		hospitalRepo:     mockRepo.NewMockHospitalRepository(t),
		ambulanceRepo:    mockRepo.NewMockAmbulanceRepository(t),
		patientRepo:      mockRepo.NewMockPatientRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		fanout:           mockUC.NewMockNotificationFanout(t),
		ledger:           mockUC.NewMockResourceLedger(t),
		publisher:        mockSvc.NewMockEventPublisher(t),
	}

	m.factory.EXPECT().NewEmergencyRepository().Return(m.emergencyRepo).Maybe()
	m.factory.EXPECT().NewHospitalRepository().Return(m.hospitalRepo).Maybe()
	m.factory.EXPECT().NewAmbulanceRepository().Return(m.ambulanceRepo).Maybe()
	m.factory.EXPECT().NewPatientRepository().Return(m.patientRepo).Maybe()
	m.factory.EXPECT().NewNotificationRepository().Return(m.notificationRepo).Maybe()

	// Each Execute call runs its body against the shared mock factory, so a
	// test observes all repository traffic regardless of transaction count.
	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		}).Maybe()

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
	service := NewDispatchService(DispatchServiceParams{
		TxManager:      txManager,
		Fanout:         m.fanout,
		Ledger:         m.ledger,
		EventPublisher: m.publisher,
		Logger:         logger,
	})

	return service, m
}

func dispatchTestPatient() *entity.Patient {
	lat, lon := 40.0, -74.0

	return &entity.Patient{
		ID:        uuid.New(),
		Name:      "Alex Chen",
		Phone:     "+15550100",
		Latitude:  &lat,
		Longitude: &lon,
	}
}

func TestDispatchService_CreateEmergency_Success(t *testing.T) {
	service, m := createTestDispatchService(t)

	ctx := context.Background()
	patient := dispatchTestPatient()

	m.patientRepo.EXPECT().FindPatientByID(ctx, patient.ID).Return(patient, nil)
	m.emergencyRepo.EXPECT().CreateEmergency(ctx, mock.Anything).Return(nil)

	created := []*entity.Notification{
		{ID: uuid.New(), Status: entity.DeliveryPending},
		{ID: uuid.New(), Status: entity.DeliveryPending},
	}
	m.fanout.EXPECT().OnEmergencyCreated(ctx, m.factory, mock.Anything, patient).Return(created, nil)
	m.publisher.EXPECT().PublishDispatchEvent(ctx, mock.Anything).Return(nil)

	emergency, notified, err := service.CreateEmergency(ctx, usecase.CreateEmergencyInput{
		PatientID:   patient.ID,
		Priority:    entity.PriorityCritical,
		Description: "severe bleeding",
	})

	require.NoError(t, err)
	require.NotNil(t, emergency)
	assert.Equal(t, entity.EmergencyPending, emergency.Status)
	assert.Equal(t, patient.ID, emergency.PatientID)
	assert.Equal(t, 2, notified)
}

func TestDispatchService_CreateEmergency_InvalidPriority(t *testing.T) {
	service, _ := createTestDispatchService(t)

	_, _, err := service.CreateEmergency(context.Background(), usecase.CreateEmergencyInput{
		PatientID: uuid.New(),
		Priority:  entity.Priority("URGENT"),
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestDispatchService_CreateEmergency_HalfCoordinatesRejected(t *testing.T) {
	service, _ := createTestDispatchService(t)

	lat := 40.0
	_, _, err := service.CreateEmergency(context.Background(), usecase.CreateEmergencyInput{
		PatientID: uuid.New(),
		Priority:  entity.PriorityHigh,
		Latitude:  &lat,
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_LOCATION", appErr.ErrorCode())
}

func TestDispatchService_CreateEmergency_PatientNotFound(t *testing.T) {
	service, m := createTestDispatchService(t)

	ctx := context.Background()
	patientID := uuid.New()

	m.patientRepo.EXPECT().FindPatientByID(ctx, patientID).
		Return(nil, repository.ErrPatientNotFound)

	_, _, err := service.CreateEmergency(ctx, usecase.CreateEmergencyInput{
		PatientID: patientID,
		Priority:  entity.PriorityLow,
	})

	assert.ErrorIs(t, err, domainerrors.ErrPatientNotFound)
}

func TestDispatchService_CreateEmergency_FanoutFailureDoesNotUnwind(t *testing.T) {
	service, m := createTestDispatchService(t)

	ctx := context.Background()
	patient := dispatchTestPatient()

	m.patientRepo.EXPECT().FindPatientByID(ctx, patient.ID).Return(patient, nil)
	m.emergencyRepo.EXPECT().CreateEmergency(ctx, mock.Anything).Return(nil)
	m.fanout.EXPECT().OnEmergencyCreated(ctx, m.factory, mock.Anything, patient).
		Return(nil, assert.AnError)

	emergency, notified, err := service.CreateEmergency(ctx, usecase.CreateEmergencyInput{
		PatientID: patient.ID,
		Priority:  entity.PriorityMedium,
	})

	require.NoError(t, err, "the created emergency must survive a fan-out failure")
	assert.NotNil(t, emergency)
	assert.Zero(t, notified)
}

func TestDispatchService_RespondToEmergency_Success(t *testing.T) {
	service, m := createTestDispatchService(t)

	ctx := context.Background()
	patient := dispatchTestPatient()
	hospital := &entity.Hospital{ID: uuid.New(), Name: "City General", Phone: "+15550200"}
	pending := &entity.Emergency{
		ID:        uuid.New(),
		PatientID: patient.ID,
		Priority:  entity.PriorityHigh,
		Status:    entity.EmergencyPending,
	}
	eta := 12

	m.hospitalRepo.EXPECT().FindHospitalByID(ctx, hospital.ID).Return(hospital, nil)
	m.emergencyRepo.EXPECT().FindEmergencyByID(ctx, pending.ID).Return(pending, nil)
	m.emergencyRepo.EXPECT().ClaimPendingEmergency(ctx, mock.MatchedBy(func(e *entity.Emergency) bool {
		return e.Status == entity.EmergencyDispatched && e.AssignedHospitalID != nil
	})).Return(nil)
	m.ledger.EXPECT().Allocate(ctx, m.factory, hospital.ID, pending.ID).
		Return(&entity.Ambulance{ID: uuid.New(), HospitalID: hospital.ID}, nil)
	m.patientRepo.EXPECT().FindPatientByID(ctx, patient.ID).Return(patient, nil)
	m.fanout.EXPECT().OnStatusChanged(ctx, m.factory, mock.Anything, patient, mock.Anything).
		Return([]*entity.Notification{{ID: uuid.New()}}, nil)
	m.publisher.EXPECT().PublishDispatchEvent(ctx, mock.Anything).Return(nil)

	emergency, err := service.RespondToEmergency(ctx, usecase.RespondToEmergencyInput{
		EmergencyID:             pending.ID,
		HospitalID:              hospital.ID,
		EstimatedArrivalMinutes: &eta,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.EmergencyDispatched, emergency.Status)
	require.NotNil(t, emergency.AssignedHospitalID)
	assert.Equal(t, hospital.ID, *emergency.AssignedHospitalID)
	assert.NotNil(t, emergency.AmbulanceDispatchedAt)
	assert.NotNil(t, emergency.EstimatedArrivalAt)
}

func TestDispatchService_RespondToEmergency_ETAOutOfRange(t *testing.T) {
	service, _ := createTestDispatchService(t)

	eta := 121
	_, err := service.RespondToEmergency(context.Background(), usecase.RespondToEmergencyInput{
		EmergencyID:             uuid.New(),
		HospitalID:              uuid.New(),
		EstimatedArrivalMinutes: &eta,
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "between 1 and 120")
}

func TestDispatchService_RespondToEmergency_AlreadyClaimed(t *testing.T) {
	service, m := createTestDispatchService(t)

	ctx := context.Background()
	hospital := &entity.Hospital{ID: uuid.New(), Name: "City General"}
	pending := &entity.Emergency{
		ID:        uuid.New(),
		PatientID: uuid.New(),
		Status:    entity.EmergencyPending,
	}

	m.hospitalRepo.EXPECT().FindHospitalByID(ctx, hospital.ID).Return(hospital, nil)
	m.emergencyRepo.EXPECT().FindEmergencyByID(ctx, pending.ID).Return(pending, nil)
	m.emergencyRepo.EXPECT().ClaimPendingEmergency(ctx, mock.Anything).
		Return(repository.ErrEmergencyNotClaimable)

	_, err := service.RespondToEmergency(ctx, usecase.RespondToEmergencyInput{
		EmergencyID: pending.ID,
		HospitalID:  hospital.ID,
	})

	assert.ErrorIs(t, err, domainerrors.ErrEmergencyNotFoundOrHandled)
}

func TestDispatchService_RespondToEmergency_NoAmbulanceRollsBack(t *testing.T) {
	service, m := createTestDispatchService(t)

	ctx := context.Background()
	hospital := &entity.Hospital{ID: uuid.New(), Name: "City General"}
	pending := &entity.Emergency{
		ID:        uuid.New(),
		PatientID: uuid.New(),
		Status:    entity.EmergencyPending,
	}

	m.hospitalRepo.EXPECT().FindHospitalByID(ctx, hospital.ID).Return(hospital, nil)
	m.emergencyRepo.EXPECT().FindEmergencyByID(ctx, pending.ID).Return(pending, nil)
	m.emergencyRepo.EXPECT().ClaimPendingEmergency(ctx, mock.Anything).Return(nil)
	m.ledger.EXPECT().Allocate(ctx, m.factory, hospital.ID, pending.ID).
		Return(nil, repository.ErrNoAmbulanceAvailable)

	_, err := service.RespondToEmergency(ctx, usecase.RespondToEmergencyInput{
		EmergencyID: pending.ID,
		HospitalID:  hospital.ID,
	})

	// The transaction body fails, so the claim rolls back with it and the
	// emergency stays PENDING for the next responder.
	assert.ErrorIs(t, err, domainerrors.ErrNoAmbulanceAvailable)
}

func TestDispatchService_UpdateEmergencyStatus_Success(t *testing.T) {
	service, m := createTestDispatchService(t)

	ctx := context.Background()
	patient := dispatchTestPatient()
	emergency := &entity.Emergency{
		ID:        uuid.New(),
		PatientID: patient.ID,
		Status:    entity.EmergencyDispatched,
	}

	m.emergencyRepo.EXPECT().FindEmergencyByID(ctx, emergency.ID).Return(emergency, nil)
	m.emergencyRepo.EXPECT().UpdateEmergency(ctx, mock.Anything).Return(nil)
	m.patientRepo.EXPECT().FindPatientByID(ctx, patient.ID).Return(patient, nil)
	m.fanout.EXPECT().OnStatusChanged(ctx, m.factory, mock.Anything, patient, mock.Anything).
		Return([]*entity.Notification{{ID: uuid.New()}}, nil)
	m.publisher.EXPECT().PublishDispatchEvent(ctx, mock.Anything).Return(nil)

	updated, err := service.UpdateEmergencyStatus(ctx, emergency.ID, entity.EmergencyInProgress, "crew on site", nil)

	require.NoError(t, err)
	assert.Equal(t, entity.EmergencyInProgress, updated.Status)
	assert.Equal(t, "crew on site", updated.ResponseNotes)
}

func TestDispatchService_UpdateEmergencyStatus_InvalidStatus(t *testing.T) {
	service, _ := createTestDispatchService(t)

	_, err := service.UpdateEmergencyStatus(context.Background(), uuid.New(), entity.EmergencyStatus("DONE"), "", nil)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_STATUS", appErr.ErrorCode())
}

func TestDispatchService_UpdateEmergencyStatus_TerminalRejected(t *testing.T) {
	service, m := createTestDispatchService(t)

	ctx := context.Background()
	closed := &entity.Emergency{
		ID:        uuid.New(),
		PatientID: uuid.New(),
		Status:    entity.EmergencyCompleted,
	}

	m.emergencyRepo.EXPECT().FindEmergencyByID(ctx, closed.ID).Return(closed, nil)

	_, err := service.UpdateEmergencyStatus(ctx, closed.ID, entity.EmergencyInProgress, "", nil)

	assert.ErrorIs(t, err, domainerrors.ErrEmergencyAlreadyClosed)
}

func TestDispatchService_CompleteEmergency_ReleasesAmbulance(t *testing.T) {
	service, m := createTestDispatchService(t)

	ctx := context.Background()
	patient := dispatchTestPatient()
	hospitalID := uuid.New()
	emergency := &entity.Emergency{
		ID:        uuid.New(),
		PatientID: patient.ID,
		Status:    entity.EmergencyInProgress,
	}
	dispatched := &entity.Ambulance{
		ID:         uuid.New(),
		HospitalID: hospitalID,
		Status:     entity.AmbulanceDispatched,
	}

	m.emergencyRepo.EXPECT().FindEmergencyByID(ctx, emergency.ID).Return(emergency, nil)
	m.emergencyRepo.EXPECT().UpdateEmergency(ctx, mock.Anything).Return(nil)
	m.ambulanceRepo.EXPECT().FindDispatchedByEmergency(ctx, emergency.ID).Return(dispatched, nil)
	m.ledger.EXPECT().Release(ctx, m.factory, hospitalID, dispatched.ID).Return(nil)
	m.patientRepo.EXPECT().FindPatientByID(ctx, patient.ID).Return(patient, nil)
	m.fanout.EXPECT().OnStatusChanged(ctx, m.factory, mock.Anything, patient, mock.Anything).
		Return([]*entity.Notification{{ID: uuid.New()}}, nil)
	m.publisher.EXPECT().PublishDispatchEvent(ctx, mock.Anything).Return(nil)

	completed, err := service.CompleteEmergency(ctx, emergency.ID, "patient stable")

	require.NoError(t, err)
	assert.Equal(t, entity.EmergencyCompleted, completed.Status)
	assert.NotNil(t, completed.CompletedAt)
	assert.Equal(t, "patient stable", completed.ResponseNotes)
}

func TestDispatchService_CompleteEmergency_NoDispatchedAmbulance(t *testing.T) {
	service, m := createTestDispatchService(t)

	ctx := context.Background()
	patient := dispatchTestPatient()
	emergency := &entity.Emergency{
		ID:        uuid.New(),
		PatientID: patient.ID,
		Status:    entity.EmergencyCompleted,
	}

	m.emergencyRepo.EXPECT().FindEmergencyByID(ctx, emergency.ID).Return(emergency, nil)
	m.emergencyRepo.EXPECT().UpdateEmergency(ctx, mock.Anything).Return(nil)
	m.ambulanceRepo.EXPECT().FindDispatchedByEmergency(ctx, emergency.ID).
		Return(nil, repository.ErrAmbulanceNotFound)
	m.patientRepo.EXPECT().FindPatientByID(ctx, patient.ID).Return(patient, nil)
	m.fanout.EXPECT().OnStatusChanged(ctx, m.factory, mock.Anything, patient, mock.Anything).
		Return(nil, nil)

	// A second completion finds no dispatched ambulance and releases nothing.
	_, err := service.CompleteEmergency(ctx, emergency.ID, "")

	require.NoError(t, err)
}

func TestDispatchService_GetEmergency_NotFound(t *testing.T) {
	service, m := createTestDispatchService(t)

	ctx := context.Background()
	missing := uuid.New()

	m.emergencyRepo.EXPECT().FindEmergencyByID(ctx, missing).
		Return(nil, repository.ErrEmergencyNotFound)

	_, err := service.GetEmergency(ctx, missing)

	assert.ErrorIs(t, err, domainerrors.ErrEmergencyNotFound)
}

func TestDispatchService_ListEmergenciesByStatus_InvalidStatus(t *testing.T) {
	service, _ := createTestDispatchService(t)

	_, err := service.ListEmergenciesByStatus(context.Background(), entity.EmergencyStatus("OPEN"))

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_STATUS", appErr.ErrorCode())
}
