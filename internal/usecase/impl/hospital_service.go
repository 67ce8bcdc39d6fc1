package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"lifeline/config"
	deliverycontext "lifeline/internal/delivery/context"
	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultSearchRadiusKm = 10.0
	defaultMinRadiusKm    = 1.0
	defaultMaxRadiusKm    = 50.0
)

// hospitalService implements the HospitalUsecase interface.
type hospitalService struct {
	txManager      repository.TransactionManager
	hospitalRepo   repository.HospitalRepository
	ambulanceRepo  repository.AmbulanceRepository
	geoMatcher     usecase.GeoMatcher
	searchRadiusKm float64
	minRadiusKm    float64
	maxRadiusKm    float64
	logger         *slog.Logger
}

// HospitalServiceParams holds dependencies for hospitalService, injected by Fx.
type HospitalServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	HospitalRepo  repository.HospitalRepository
	AmbulanceRepo repository.AmbulanceRepository
	GeoMatcher    usecase.GeoMatcher
	Config        *config.Config
	Logger        *slog.Logger
}

// NewHospitalService is the constructor for hospitalService.
func NewHospitalService(params HospitalServiceParams) usecase.HospitalUsecase {
	searchRadiusKm := defaultSearchRadiusKm
	minRadiusKm := defaultMinRadiusKm
	maxRadiusKm := defaultMaxRadiusKm
	if params.Config != nil && params.Config.Dispatch != nil {
		if params.Config.Dispatch.SearchRadiusKm > 0 {
			searchRadiusKm = params.Config.Dispatch.SearchRadiusKm
		}
		if params.Config.Dispatch.MinRadiusKm > 0 {
			minRadiusKm = params.Config.Dispatch.MinRadiusKm
		}
		if params.Config.Dispatch.MaxRadiusKm > 0 {
			maxRadiusKm = params.Config.Dispatch.MaxRadiusKm
		}
	}

	return &hospitalService{
		txManager:      params.TxManager,
		hospitalRepo:   params.HospitalRepo,
		ambulanceRepo:  params.AmbulanceRepo,
		geoMatcher:     params.GeoMatcher,
		searchRadiusKm: searchRadiusKm,
		minRadiusKm:    minRadiusKm,
		maxRadiusKm:    maxRadiusKm,
		logger:         params.Logger,
	}
}

func (srv *hospitalService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterHospital persists a new hospital with its full fleet available.
func (srv *hospitalService) RegisterHospital(ctx context.Context, input usecase.RegisterHospitalInput) (*entity.Hospital, error) {
	location := entity.Coordinate{Lat: input.Latitude, Lon: input.Longitude}
	if !location.IsValid() {
		return nil, domainerrors.ErrInvalidLocation
	}
	if input.TotalAmbulances < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("total ambulances must not be negative")
	}

	now := time.Now()
	hospital := &entity.Hospital{
		ID:                   uuid.New(),
		Name:                 input.Name,
		Address:              input.Address,
		Phone:                input.Phone,
		Latitude:             input.Latitude,
		Longitude:            input.Longitude,
		TotalAmbulances:      input.TotalAmbulances,
		AvailableAmbulances:  input.TotalAmbulances,
		HasEmergencyServices: input.HasEmergencyServices,
		Specializations:      input.Specializations,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := srv.hospitalRepo.CreateHospital(ctx, hospital); err != nil {
		return nil, errors.Wrap(err, "failed to create hospital")
	}

	srv.log(ctx).Info("Hospital registered",
		slog.String("hospital_id", hospital.ID.String()),
		slog.String("name", hospital.Name),
	)

	return hospital, nil
}

// GetHospital retrieves a hospital by ID.
func (srv *hospitalService) GetHospital(ctx context.Context, id uuid.UUID) (*entity.Hospital, error) {
	hospital, err := srv.hospitalRepo.FindHospitalByID(ctx, id)
	if errors.Is(err, repository.ErrHospitalNotFound) {
		return nil, domainerrors.ErrHospitalNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find hospital")
	}

	return hospital, nil
}

// ListHospitals retrieves every registered hospital.
func (srv *hospitalService) ListHospitals(ctx context.Context) ([]*entity.Hospital, error) {
	hospitals, err := srv.hospitalRepo.FindAllHospitals(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list hospitals")
	}

	return hospitals, nil
}

// FindNearbyHospitals returns hospitals around the origin matching the given
// options, sorted by distance. A zero radius falls back to the configured
// default; out-of-range radii are rejected.
func (srv *hospitalService) FindNearbyHospitals(ctx context.Context, origin entity.Coordinate, opts usecase.MatchOptions) ([]*entity.Hospital, error) {
	if !origin.IsValid() {
		return nil, domainerrors.ErrInvalidLocation
	}

	if opts.RadiusKm == 0 {
		opts.RadiusKm = srv.searchRadiusKm
	}
	if opts.RadiusKm < srv.minRadiusKm || opts.RadiusKm > srv.maxRadiusKm {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf(
			"radius must be between %.0f and %.0f km", srv.minRadiusKm, srv.maxRadiusKm))
	}

	hospitals, err := srv.hospitalRepo.FindAllHospitals(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load hospitals")
	}

	return srv.geoMatcher.FindCandidates(origin, hospitals, opts), nil
}

// AddAmbulance registers a vehicle in a hospital's fleet. The fleet size and
// the availability counter grow together in one transaction.
func (srv *hospitalService) AddAmbulance(ctx context.Context, hospitalID uuid.UUID, vehicleNumber string) (*entity.Ambulance, error) {
	if vehicleNumber == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("vehicle number is required")
	}

	now := time.Now()
	ambulance := &entity.Ambulance{
		ID:            uuid.New(),
		HospitalID:    hospitalID,
		VehicleNumber: vehicleNumber,
		Status:        entity.AmbulanceAvailable,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		hospitalRepo := repos.NewHospitalRepository()

		hospital, err := hospitalRepo.FindHospitalByID(ctx, hospitalID)
		if errors.Is(err, repository.ErrHospitalNotFound) {
			return domainerrors.ErrHospitalNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find hospital")
		}

		if err := repos.NewAmbulanceRepository().CreateAmbulance(ctx, ambulance); err != nil {
			return errors.Wrap(err, "failed to create ambulance")
		}

		hospital.TotalAmbulances++
		hospital.AvailableAmbulances++
		hospital.UpdatedAt = now

		if err := hospitalRepo.UpdateHospital(ctx, hospital); err != nil {
			return errors.Wrap(err, "failed to grow hospital fleet")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return ambulance, nil
}

// ListAmbulances retrieves a hospital's full fleet.
func (srv *hospitalService) ListAmbulances(ctx context.Context, hospitalID uuid.UUID) ([]*entity.Ambulance, error) {
	ambulances, err := srv.ambulanceRepo.FindAmbulancesByHospital(ctx, hospitalID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ambulances")
	}

	return ambulances, nil
}
