// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// emergencyRepository implements the repository.EmergencyRepository interface.
type emergencyRepository struct {
	db *gorm.DB
}

// NewEmergencyRepository is the constructor for emergencyRepository.
func NewEmergencyRepository(db *gorm.DB) repository.EmergencyRepository {
	return &emergencyRepository{
		db: db,
	}
}

// CreateEmergency persists a new emergency request.
func (repo *emergencyRepository) CreateEmergency(ctx context.Context, emergency *entity.Emergency) error {
	emergencyM := fromEmergencyDomain(emergency)

	if err := repo.db.WithContext(ctx).Create(emergencyM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrEmergencyCreationFailed.WrapMessage("invalid patient reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrEmergencyCreationFailed.WrapMessage("missing required emergency information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create emergency")
	}

	// Update the entity with generated values
	emergency.ID = emergencyM.ID
	emergency.CreatedAt = emergencyM.CreatedAt
	emergency.UpdatedAt = emergencyM.UpdatedAt

	return nil
}

// FindEmergencyByID retrieves an emergency by its unique ID.
func (repo *emergencyRepository) FindEmergencyByID(ctx context.Context, id uuid.UUID) (*entity.Emergency, error) {
	var emergencyM model.EmergencyModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&emergencyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEmergencyNotFound
		}

		return nil, errors.Wrap(err, "failed to find emergency by ID")
	}

	return toEmergencyDomain(&emergencyM), nil
}

// FindEmergenciesByPatient retrieves all emergencies raised by a patient, newest first.
func (repo *emergencyRepository) FindEmergenciesByPatient(ctx context.Context, patientID uuid.UUID) ([]*entity.Emergency, error) {
	var emergencyModels []*model.EmergencyModel

	if err := repo.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&emergencyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find emergencies by patient")
	}

	return toEmergencyDomainSlice(emergencyModels), nil
}

// FindEmergenciesByStatus retrieves all emergencies in the given state,
// most urgent first, oldest first within the same priority.
func (repo *emergencyRepository) FindEmergenciesByStatus(ctx context.Context, status entity.EmergencyStatus) ([]*entity.Emergency, error) {
	var emergencyModels []*model.EmergencyModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", status).
		Order("CASE priority WHEN 'CRITICAL' THEN 4 WHEN 'HIGH' THEN 3 WHEN 'MEDIUM' THEN 2 ELSE 1 END DESC").
		Order("created_at ASC").
		Find(&emergencyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find emergencies by status")
	}

	return toEmergencyDomainSlice(emergencyModels), nil
}

// ClaimPendingEmergency atomically transitions an emergency out of PENDING.
// The WHERE clause carries the status guard, so of two racing responders
// exactly one update matches a row and the other observes zero rows.
func (repo *emergencyRepository) ClaimPendingEmergency(ctx context.Context, emergency *entity.Emergency) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EmergencyModel{}).
		Where("id = ? AND status = ?", emergency.ID, entity.EmergencyPending).
		Updates(map[string]any{
			"status":                  string(emergency.Status),
			"assigned_hospital_id":    emergency.AssignedHospitalID,
			"ambulance_dispatched_at": emergency.AmbulanceDispatchedAt,
			"estimated_arrival_at":    emergency.EstimatedArrivalAt,
			"response_notes":          emergency.ResponseNotes,
			"updated_at":              emergency.UpdatedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to claim emergency")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEmergencyNotClaimable
	}

	return nil
}

// UpdateEmergency persists the mutable fields of an existing emergency.
func (repo *emergencyRepository) UpdateEmergency(ctx context.Context, emergency *entity.Emergency) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EmergencyModel{}).
		Where("id = ?", emergency.ID).
		Updates(map[string]any{
			"priority":                string(emergency.Priority),
			"status":                  string(emergency.Status),
			"description":             emergency.Description,
			"assigned_hospital_id":    emergency.AssignedHospitalID,
			"ambulance_dispatched_at": emergency.AmbulanceDispatchedAt,
			"estimated_arrival_at":    emergency.EstimatedArrivalAt,
			"completed_at":            emergency.CompletedAt,
			"response_notes":          emergency.ResponseNotes,
			"updated_at":              emergency.UpdatedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update emergency")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEmergencyNotFound
	}

	return nil
}

// toEmergencyDomain converts a GORM EmergencyModel to a domain Emergency entity.
func toEmergencyDomain(data *model.EmergencyModel) *entity.Emergency {
	if data == nil {
		return nil
	}

	return &entity.Emergency{
		ID:                    data.ID,
		PatientID:             data.PatientID,
		Priority:              entity.Priority(data.Priority),
		Status:                entity.EmergencyStatus(data.Status),
		Description:           data.Description,
		Latitude:              data.Latitude,
		Longitude:             data.Longitude,
		Address:               data.Address,
		AssignedHospitalID:    data.AssignedHospitalID,
		AmbulanceDispatchedAt: data.AmbulanceDispatchedAt,
		EstimatedArrivalAt:    data.EstimatedArrivalAt,
		CompletedAt:           data.CompletedAt,
		ResponseNotes:         data.ResponseNotes,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

func toEmergencyDomainSlice(models []*model.EmergencyModel) []*entity.Emergency {
	emergencies := make([]*entity.Emergency, 0, len(models))
	for _, emergencyM := range models {
		emergencies = append(emergencies, toEmergencyDomain(emergencyM))
	}

	return emergencies
}

// fromEmergencyDomain converts a domain Emergency entity to a GORM EmergencyModel.
func fromEmergencyDomain(data *entity.Emergency) *model.EmergencyModel {
	if data == nil {
		return nil
	}

	return &model.EmergencyModel{
		ID:                    data.ID,
		PatientID:             data.PatientID,
		Priority:              string(data.Priority),
		Status:                string(data.Status),
		Description:           data.Description,
		Latitude:              data.Latitude,
		Longitude:             data.Longitude,
		Address:               data.Address,
		AssignedHospitalID:    data.AssignedHospitalID,
		AmbulanceDispatchedAt: data.AmbulanceDispatchedAt,
		EstimatedArrivalAt:    data.EstimatedArrivalAt,
		CompletedAt:           data.CompletedAt,
		ResponseNotes:         data.ResponseNotes,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}
