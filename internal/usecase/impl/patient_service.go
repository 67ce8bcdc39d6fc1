package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "lifeline/internal/delivery/context"
	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// patientService implements the PatientUsecase interface.
type patientService struct {
	patientRepo repository.PatientRepository
	logger      *slog.Logger
}

// NewPatientService creates a new patient service instance
func NewPatientService(patientRepo repository.PatientRepository, logger *slog.Logger) usecase.PatientUsecase {
	return &patientService{
		patientRepo: patientRepo,
		logger:      logger,
	}
}

func (srv *patientService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterPatient persists a new patient.
func (srv *patientService) RegisterPatient(ctx context.Context, input usecase.RegisterPatientInput) (*entity.Patient, error) {
	if input.Name == "" || input.Phone == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name and phone are required")
	}
	if input.Latitude != nil || input.Longitude != nil {
		if input.Latitude == nil || input.Longitude == nil {
			return nil, domainerrors.ErrInvalidLocation.WithDetails("latitude and longitude must be provided together")
		}
		coord := entity.Coordinate{Lat: *input.Latitude, Lon: *input.Longitude}
		if !coord.IsValid() {
			return nil, domainerrors.ErrInvalidLocation
		}
	}

	now := time.Now()
	patient := &entity.Patient{
		ID:                    uuid.New(),
		Name:                  input.Name,
		Phone:                 input.Phone,
		Email:                 input.Email,
		Latitude:              input.Latitude,
		Longitude:             input.Longitude,
		Address:               input.Address,
		EmergencyContactName:  input.EmergencyContactName,
		EmergencyContactPhone: input.EmergencyContactPhone,
		BloodType:             input.BloodType,
		MedicalConditions:     input.MedicalConditions,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if err := srv.patientRepo.CreatePatient(ctx, patient); err != nil {
		return nil, errors.Wrap(err, "failed to create patient")
	}

	srv.log(ctx).Info("Patient registered", slog.String("patient_id", patient.ID.String()))

	return patient, nil
}

// GetPatient retrieves a patient by ID.
func (srv *patientService) GetPatient(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	patient, err := srv.patientRepo.FindPatientByID(ctx, id)
	if errors.Is(err, repository.ErrPatientNotFound) {
		return nil, domainerrors.ErrPatientNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find patient")
	}

	return patient, nil
}

// AddEmergencyContact records an additional emergency contact.
func (srv *patientService) AddEmergencyContact(ctx context.Context, contact *entity.EmergencyContact) (*entity.EmergencyContact, error) {
	if contact.Name == "" || contact.Phone == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("contact name and phone are required")
	}

	if _, err := srv.GetPatient(ctx, contact.PatientID); err != nil {
		return nil, err
	}

	contact.ID = uuid.New()
	contact.CreatedAt = time.Now()

	if err := srv.patientRepo.CreateEmergencyContact(ctx, contact); err != nil {
		return nil, errors.Wrap(err, "failed to create emergency contact")
	}

	return contact, nil
}

// UpdatePushToken stores the patient's current device token.
func (srv *patientService) UpdatePushToken(ctx context.Context, patientID uuid.UUID, token string) error {
	patient, err := srv.GetPatient(ctx, patientID)
	if err != nil {
		return err
	}

	patient.PushToken = token
	patient.UpdatedAt = time.Now()

	if err := srv.patientRepo.UpdatePatient(ctx, patient); err != nil {
		return errors.Wrap(err, "failed to update push token")
	}

	return nil
}
