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
	"lifeline/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPatientService(t *testing.T) (usecase.PatientUsecase, *mockRepo.MockPatientRepository) {
	patientRepo := mockRepo.NewMockPatientRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewPatientService(patientRepo, logger), patientRepo
}

func TestPatientService_RegisterPatient_Success(t *testing.T) {
	service, patientRepo := createTestPatientService(t)

	ctx := context.Background()
	patientRepo.EXPECT().CreatePatient(ctx, mock.Anything).Return(nil)

	lat, lon := 40.0, -74.0
	patient, err := service.RegisterPatient(ctx, usecase.RegisterPatientInput{
		Name:                  "Alex Chen",
		Phone:                 "+15550100",
		Latitude:              &lat,
		Longitude:             &lon,
		EmergencyContactName:  "Morgan Chen",
		EmergencyContactPhone: "+15550101",
		BloodType:             "O+",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, patient.ID)
	assert.Equal(t, "Alex Chen", patient.Name)
	assert.True(t, patient.HasPrimaryContact())
}

func TestPatientService_RegisterPatient_MissingRequiredFields(t *testing.T) {
	service, _ := createTestPatientService(t)

	_, err := service.RegisterPatient(context.Background(), usecase.RegisterPatientInput{
		Name: "No Phone",
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestPatientService_RegisterPatient_HalfCoordinatesRejected(t *testing.T) {
	service, _ := createTestPatientService(t)

	lon := -74.0
	_, err := service.RegisterPatient(context.Background(), usecase.RegisterPatientInput{
		Name:      "Alex Chen",
		Phone:     "+15550100",
		Longitude: &lon,
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_LOCATION", appErr.ErrorCode())
}

func TestPatientService_GetPatient_NotFound(t *testing.T) {
	service, patientRepo := createTestPatientService(t)

	ctx := context.Background()
	missing := uuid.New()
	patientRepo.EXPECT().FindPatientByID(ctx, missing).
		Return(nil, repository.ErrPatientNotFound)

	_, err := service.GetPatient(ctx, missing)

	assert.ErrorIs(t, err, domainerrors.ErrPatientNotFound)
}

func TestPatientService_AddEmergencyContact_Success(t *testing.T) {
	service, patientRepo := createTestPatientService(t)

	ctx := context.Background()
	patient := &entity.Patient{ID: uuid.New(), Name: "Alex Chen", Phone: "+15550100"}

	patientRepo.EXPECT().FindPatientByID(ctx, patient.ID).Return(patient, nil)
	patientRepo.EXPECT().CreateEmergencyContact(ctx, mock.Anything).Return(nil)

	contact, err := service.AddEmergencyContact(ctx, &entity.EmergencyContact{
		PatientID: patient.ID,
		Name:      "Sam Chen",
		Phone:     "+15550102",
		Relation:  "sibling",
		IsPrimary: true,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, contact.ID)
	assert.False(t, contact.CreatedAt.IsZero())
}

func TestPatientService_AddEmergencyContact_MissingFields(t *testing.T) {
	service, _ := createTestPatientService(t)

	_, err := service.AddEmergencyContact(context.Background(), &entity.EmergencyContact{
		PatientID: uuid.New(),
		Name:      "No Phone",
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestPatientService_AddEmergencyContact_PatientNotFound(t *testing.T) {
	service, patientRepo := createTestPatientService(t)

	ctx := context.Background()
	missing := uuid.New()
	patientRepo.EXPECT().FindPatientByID(ctx, missing).
		Return(nil, repository.ErrPatientNotFound)

	_, err := service.AddEmergencyContact(ctx, &entity.EmergencyContact{
		PatientID: missing,
		Name:      "Sam Chen",
		Phone:     "+15550102",
	})

	assert.ErrorIs(t, err, domainerrors.ErrPatientNotFound)
}

func TestPatientService_UpdatePushToken(t *testing.T) {
	service, patientRepo := createTestPatientService(t)

	ctx := context.Background()
	patient := &entity.Patient{ID: uuid.New(), Name: "Alex Chen", Phone: "+15550100"}

	patientRepo.EXPECT().FindPatientByID(ctx, patient.ID).Return(patient, nil)
	patientRepo.EXPECT().UpdatePatient(ctx, mock.MatchedBy(func(p *entity.Patient) bool {
		return p.PushToken == "fcm-token-1"
	})).Return(nil)

	err := service.UpdatePushToken(ctx, patient.ID, "fcm-token-1")

	require.NoError(t, err)
}
