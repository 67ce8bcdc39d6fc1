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
	"gorm.io/gorm/clause"
)

// ambulanceRepository implements the repository.AmbulanceRepository interface.
type ambulanceRepository struct {
	db *gorm.DB
}

// NewAmbulanceRepository is the constructor for ambulanceRepository.
func NewAmbulanceRepository(db *gorm.DB) repository.AmbulanceRepository {
	return &ambulanceRepository{
		db: db,
	}
}

// CreateAmbulance persists a new ambulance.
func (repo *ambulanceRepository) CreateAmbulance(ctx context.Context, ambulance *entity.Ambulance) error {
	ambulanceM := fromAmbulanceDomain(ambulance)

	if err := repo.db.WithContext(ctx).Create(ambulanceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("vehicle number already registered for this hospital")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrHospitalNotFound.WrapMessage("invalid hospital reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create ambulance")
	}

	ambulance.ID = ambulanceM.ID
	ambulance.CreatedAt = ambulanceM.CreatedAt
	ambulance.UpdatedAt = ambulanceM.UpdatedAt

	return nil
}

// FindAmbulanceByID retrieves an ambulance by its unique ID.
func (repo *ambulanceRepository) FindAmbulanceByID(ctx context.Context, id uuid.UUID) (*entity.Ambulance, error) {
	var ambulanceM model.AmbulanceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ambulanceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAmbulanceNotFound
		}

		return nil, errors.Wrap(err, "failed to find ambulance by ID")
	}

	return toAmbulanceDomain(&ambulanceM), nil
}

// FindAmbulancesByHospital retrieves the full fleet of a hospital.
func (repo *ambulanceRepository) FindAmbulancesByHospital(ctx context.Context, hospitalID uuid.UUID) ([]*entity.Ambulance, error) {
	var ambulanceModels []*model.AmbulanceModel

	if err := repo.db.WithContext(ctx).
		Where("hospital_id = ?", hospitalID).
		Order("vehicle_number ASC").
		Find(&ambulanceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find ambulances by hospital")
	}

	ambulances := make([]*entity.Ambulance, 0, len(ambulanceModels))
	for _, ambulanceM := range ambulanceModels {
		ambulances = append(ambulances, toAmbulanceDomain(ambulanceM))
	}

	return ambulances, nil
}

// FindFirstAvailableByHospital locks and returns one AVAILABLE ambulance.
// The row lock holds until the surrounding transaction finishes, so two
// allocations cannot bind the same vehicle.
func (repo *ambulanceRepository) FindFirstAvailableByHospital(ctx context.Context, hospitalID uuid.UUID) (*entity.Ambulance, error) {
	var ambulanceM model.AmbulanceModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("hospital_id = ? AND status = ?", hospitalID, entity.AmbulanceAvailable).
		Order("vehicle_number ASC").
		First(&ambulanceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAmbulanceNotFound
		}

		return nil, errors.Wrap(err, "failed to find available ambulance")
	}

	return toAmbulanceDomain(&ambulanceM), nil
}

// FindDispatchedByEmergency locks and returns the ambulance currently
// dispatched to the given emergency.
func (repo *ambulanceRepository) FindDispatchedByEmergency(ctx context.Context, emergencyID uuid.UUID) (*entity.Ambulance, error) {
	var ambulanceM model.AmbulanceModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("current_emergency_id = ? AND status = ?", emergencyID, entity.AmbulanceDispatched).
		First(&ambulanceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAmbulanceNotFound
		}

		return nil, errors.Wrap(err, "failed to find dispatched ambulance")
	}

	return toAmbulanceDomain(&ambulanceM), nil
}

// UpdateAmbulance persists the mutable fields of an existing ambulance.
func (repo *ambulanceRepository) UpdateAmbulance(ctx context.Context, ambulance *entity.Ambulance) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AmbulanceModel{}).
		Where("id = ?", ambulance.ID).
		Updates(map[string]any{
			"status":               string(ambulance.Status),
			"current_emergency_id": ambulance.CurrentEmergencyID,
			"updated_at":           ambulance.UpdatedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update ambulance")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAmbulanceNotFound
	}

	return nil
}

// toAmbulanceDomain converts a GORM AmbulanceModel to a domain Ambulance entity.
func toAmbulanceDomain(data *model.AmbulanceModel) *entity.Ambulance {
	if data == nil {
		return nil
	}

	return &entity.Ambulance{
		ID:                 data.ID,
		HospitalID:         data.HospitalID,
		VehicleNumber:      data.VehicleNumber,
		Status:             entity.AmbulanceStatus(data.Status),
		CurrentEmergencyID: data.CurrentEmergencyID,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromAmbulanceDomain converts a domain Ambulance entity to a GORM AmbulanceModel.
func fromAmbulanceDomain(data *entity.Ambulance) *model.AmbulanceModel {
	if data == nil {
		return nil
	}

	return &model.AmbulanceModel{
		ID:                 data.ID,
		HospitalID:         data.HospitalID,
		VehicleNumber:      data.VehicleNumber,
		Status:             string(data.Status),
		CurrentEmergencyID: data.CurrentEmergencyID,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
