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

func createTestHospitalService(t *testing.T) (
	usecase.HospitalUsecase,
	*mockRepo.MockRepositoryFactory,
	*mockRepo.MockHospitalRepository,
	*mockRepo.MockAmbulanceRepository,
) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	hospitalRepo := mockRepo.NewMockHospitalRepository(t)
	ambulanceRepo := mockRepo.NewMockAmbulanceRepository(t)

	factory.EXPECT().NewHospitalRepository().Return(hospitalRepo).Maybe()
	factory.EXPECT().NewAmbulanceRepository().Return(ambulanceRepo).Maybe()

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).Maybe()

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
	service := NewHospitalService(HospitalServiceParams{
		TxManager:     txManager,
		HospitalRepo:  hospitalRepo,
		AmbulanceRepo: ambulanceRepo,
		GeoMatcher:    NewGeoMatcher(),
		Logger:        logger,
	})

	return service, factory, hospitalRepo, ambulanceRepo
}

func TestHospitalService_RegisterHospital_Success(t *testing.T) {
	service, _, hospitalRepo, _ := createTestHospitalService(t)

	ctx := context.Background()
	hospitalRepo.EXPECT().CreateHospital(ctx, mock.Anything).Return(nil)

	hospital, err := service.RegisterHospital(ctx, usecase.RegisterHospitalInput{
		Name:                 "City General",
		Address:              "1 Main Street",
		Phone:                "+15550200",
		Latitude:             40.0,
		Longitude:            -74.0,
		TotalAmbulances:      3,
		HasEmergencyServices: true,
		Specializations:      []string{"cardiology"},
	})

	require.NoError(t, err)
	assert.Equal(t, 3, hospital.TotalAmbulances)
	assert.Equal(t, 3, hospital.AvailableAmbulances, "a new hospital starts with its full fleet available")
}

func TestHospitalService_RegisterHospital_InvalidLocation(t *testing.T) {
	service, _, _, _ := createTestHospitalService(t)

	_, err := service.RegisterHospital(context.Background(), usecase.RegisterHospitalInput{
		Name:      "Nowhere",
		Latitude:  91.0,
		Longitude: 0,
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_LOCATION", appErr.ErrorCode())
}

func TestHospitalService_RegisterHospital_NegativeFleet(t *testing.T) {
	service, _, _, _ := createTestHospitalService(t)

	_, err := service.RegisterHospital(context.Background(), usecase.RegisterHospitalInput{
		Name:            "City General",
		Latitude:        40.0,
		Longitude:       -74.0,
		TotalAmbulances: -1,
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestHospitalService_GetHospital_NotFound(t *testing.T) {
	service, _, hospitalRepo, _ := createTestHospitalService(t)

	ctx := context.Background()
	missing := uuid.New()
	hospitalRepo.EXPECT().FindHospitalByID(ctx, missing).
		Return(nil, repository.ErrHospitalNotFound)

	_, err := service.GetHospital(ctx, missing)

	assert.ErrorIs(t, err, domainerrors.ErrHospitalNotFound)
}

func TestHospitalService_FindNearbyHospitals_DefaultRadius(t *testing.T) {
	service, _, hospitalRepo, _ := createTestHospitalService(t)

	ctx := context.Background()
	near := testHospital("Near", 40.01, -74.0, 1, true)
	// Beyond the 10 km default radius but inside an explicit larger one.
	far := testHospital("Far", 40.11, -74.0, 1, true)

	hospitalRepo.EXPECT().FindAllHospitals(ctx).Return([]*entity.Hospital{near, far}, nil)

	hospitals, err := service.FindNearbyHospitals(ctx, entity.Coordinate{Lat: 40.0, Lon: -74.0}, usecase.MatchOptions{})

	require.NoError(t, err)
	require.Len(t, hospitals, 1)
	assert.Equal(t, "Near", hospitals[0].Name)
}

func TestHospitalService_FindNearbyHospitals_RadiusOutOfRange(t *testing.T) {
	service, _, _, _ := createTestHospitalService(t)

	_, err := service.FindNearbyHospitals(context.Background(),
		entity.Coordinate{Lat: 40.0, Lon: -74.0}, usecase.MatchOptions{RadiusKm: 51})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "between 1 and 50")
}

func TestHospitalService_FindNearbyHospitals_InvalidOrigin(t *testing.T) {
	service, _, _, _ := createTestHospitalService(t)

	_, err := service.FindNearbyHospitals(context.Background(),
		entity.Coordinate{Lat: 0, Lon: 181}, usecase.MatchOptions{})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_LOCATION", appErr.ErrorCode())
}

func TestHospitalService_AddAmbulance_GrowsFleetAndCounter(t *testing.T) {
	service, _, hospitalRepo, ambulanceRepo := createTestHospitalService(t)

	ctx := context.Background()
	hospital := &entity.Hospital{
		ID:                  uuid.New(),
		Name:                "City General",
		TotalAmbulances:     2,
		AvailableAmbulances: 1,
	}

	hospitalRepo.EXPECT().FindHospitalByID(ctx, hospital.ID).Return(hospital, nil)
	ambulanceRepo.EXPECT().CreateAmbulance(ctx, mock.Anything).Return(nil)
	hospitalRepo.EXPECT().UpdateHospital(ctx, mock.MatchedBy(func(h *entity.Hospital) bool {
		return h.TotalAmbulances == 3 && h.AvailableAmbulances == 2
	})).Return(nil)

	ambulance, err := service.AddAmbulance(ctx, hospital.ID, "AMB-042")

	require.NoError(t, err)
	assert.Equal(t, "AMB-042", ambulance.VehicleNumber)
	assert.Equal(t, entity.AmbulanceAvailable, ambulance.Status)
}

func TestHospitalService_AddAmbulance_EmptyVehicleNumber(t *testing.T) {
	service, _, _, _ := createTestHospitalService(t)

	_, err := service.AddAmbulance(context.Background(), uuid.New(), "")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestHospitalService_AddAmbulance_HospitalNotFound(t *testing.T) {
	service, _, hospitalRepo, _ := createTestHospitalService(t)

	ctx := context.Background()
	missing := uuid.New()
	hospitalRepo.EXPECT().FindHospitalByID(ctx, missing).
		Return(nil, repository.ErrHospitalNotFound)

	_, err := service.AddAmbulance(ctx, missing, "AMB-001")

	assert.ErrorIs(t, err, domainerrors.ErrHospitalNotFound)
}

func TestHospitalService_ListAmbulances(t *testing.T) {
	service, _, _, ambulanceRepo := createTestHospitalService(t)

	ctx := context.Background()
	hospitalID := uuid.New()
	fleet := []*entity.Ambulance{
		{ID: uuid.New(), HospitalID: hospitalID, VehicleNumber: "AMB-001"},
		{ID: uuid.New(), HospitalID: hospitalID, VehicleNumber: "AMB-002"},
	}

	ambulanceRepo.EXPECT().FindAmbulancesByHospital(ctx, hospitalID).Return(fleet, nil)

	ambulances, err := service.ListAmbulances(ctx, hospitalID)

	require.NoError(t, err)
	assert.Len(t, ambulances, 2)
}
