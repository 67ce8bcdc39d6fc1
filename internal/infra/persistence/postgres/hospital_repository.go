package postgres

import (
	"context"
	"strings"

	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// hospitalRepository implements the repository.HospitalRepository interface.
type hospitalRepository struct {
	db *gorm.DB
}

// NewHospitalRepository is the constructor for hospitalRepository.
func NewHospitalRepository(db *gorm.DB) repository.HospitalRepository {
	return &hospitalRepository{
		db: db,
	}
}

// CreateHospital persists a new hospital.
func (repo *hospitalRepository) CreateHospital(ctx context.Context, hospital *entity.Hospital) error {
	hospitalM := fromHospitalDomain(hospital)

	if err := repo.db.WithContext(ctx).Create(hospitalM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrHospitalCreationFailed.WrapMessage("missing required hospital information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create hospital")
	}

	// Update the entity with generated values
	hospital.ID = hospitalM.ID
	hospital.CreatedAt = hospitalM.CreatedAt
	hospital.UpdatedAt = hospitalM.UpdatedAt

	return nil
}

// FindHospitalByID retrieves a hospital by its unique ID.
func (repo *hospitalRepository) FindHospitalByID(ctx context.Context, id uuid.UUID) (*entity.Hospital, error) {
	var hospitalM model.HospitalModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&hospitalM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHospitalNotFound
		}

		return nil, errors.Wrap(err, "failed to find hospital by ID")
	}

	return toHospitalDomain(&hospitalM), nil
}

// FindAllHospitals retrieves every registered hospital.
func (repo *hospitalRepository) FindAllHospitals(ctx context.Context) ([]*entity.Hospital, error) {
	var hospitalModels []*model.HospitalModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&hospitalModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find hospitals")
	}

	hospitals := make([]*entity.Hospital, 0, len(hospitalModels))
	for _, hospitalM := range hospitalModels {
		hospitals = append(hospitals, toHospitalDomain(hospitalM))
	}

	return hospitals, nil
}

// UpdateHospital persists the mutable fields of an existing hospital.
func (repo *hospitalRepository) UpdateHospital(ctx context.Context, hospital *entity.Hospital) error {
	result := repo.db.WithContext(ctx).
		Model(&model.HospitalModel{}).
		Where("id = ?", hospital.ID).
		Updates(map[string]any{
			"name":                   hospital.Name,
			"address":                hospital.Address,
			"phone":                  hospital.Phone,
			"latitude":               hospital.Latitude,
			"longitude":              hospital.Longitude,
			"total_ambulances":       hospital.TotalAmbulances,
			"available_ambulances":   hospital.AvailableAmbulances,
			"has_emergency_services": hospital.HasEmergencyServices,
			"specializations":        strings.Join(hospital.Specializations, ","),
			"updated_at":             hospital.UpdatedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update hospital")
	}
	if result.RowsAffected == 0 {
		return repository.ErrHospitalNotFound
	}

	return nil
}

// DecrementAvailableAmbulances atomically reserves one ambulance. The guard
// lives in the WHERE clause, so two concurrent decrements on a counter of
// one cannot both match the row.
func (repo *hospitalRepository) DecrementAvailableAmbulances(ctx context.Context, hospitalID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.HospitalModel{}).
		Where("id = ? AND available_ambulances > 0", hospitalID).
		UpdateColumn("available_ambulances", gorm.Expr("available_ambulances - 1"))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to decrement available ambulances")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNoAmbulanceAvailable
	}

	return nil
}

// IncrementAvailableAmbulances atomically returns one ambulance, capped at
// the fleet size.
func (repo *hospitalRepository) IncrementAvailableAmbulances(ctx context.Context, hospitalID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.HospitalModel{}).
		Where("id = ? AND available_ambulances < total_ambulances", hospitalID).
		UpdateColumn("available_ambulances", gorm.Expr("available_ambulances + 1"))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment available ambulances")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAmbulanceCapacityFull
	}

	return nil
}

// toHospitalDomain converts a GORM HospitalModel to a domain Hospital entity.
func toHospitalDomain(data *model.HospitalModel) *entity.Hospital {
	if data == nil {
		return nil
	}

	return &entity.Hospital{
		ID:                   data.ID,
		Name:                 data.Name,
		Address:              data.Address,
		Phone:                data.Phone,
		Latitude:             data.Latitude,
		Longitude:            data.Longitude,
		TotalAmbulances:      data.TotalAmbulances,
		AvailableAmbulances:  data.AvailableAmbulances,
		HasEmergencyServices: data.HasEmergencyServices,
		Specializations:      splitSpecializations(data.Specializations),
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

// fromHospitalDomain converts a domain Hospital entity to a GORM HospitalModel.
func fromHospitalDomain(data *entity.Hospital) *model.HospitalModel {
	if data == nil {
		return nil
	}

	return &model.HospitalModel{
		ID:                   data.ID,
		Name:                 data.Name,
		Address:              data.Address,
		Phone:                data.Phone,
		Latitude:             data.Latitude,
		Longitude:            data.Longitude,
		TotalAmbulances:      data.TotalAmbulances,
		AvailableAmbulances:  data.AvailableAmbulances,
		HasEmergencyServices: data.HasEmergencyServices,
		Specializations:      strings.Join(data.Specializations, ","),
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

func splitSpecializations(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	specializations := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			specializations = append(specializations, trimmed)
		}
	}

	return specializations
}
