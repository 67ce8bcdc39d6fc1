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

// patientRepository implements the repository.PatientRepository interface.
type patientRepository struct {
	db *gorm.DB
}

// NewPatientRepository is the constructor for patientRepository.
func NewPatientRepository(db *gorm.DB) repository.PatientRepository {
	return &patientRepository{
		db: db,
	}
}

// CreatePatient persists a new patient record.
func (repo *patientRepository) CreatePatient(ctx context.Context, patient *entity.Patient) error {
	patientM := fromPatientDomain(patient)

	if err := repo.db.WithContext(ctx).Create(patientM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("patient with this phone already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required patient information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create patient")
	}

	patient.ID = patientM.ID
	patient.CreatedAt = patientM.CreatedAt
	patient.UpdatedAt = patientM.UpdatedAt

	return nil
}

// FindPatientByID retrieves a patient by their unique ID.
func (repo *patientRepository) FindPatientByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	var patientM model.PatientModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&patientM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPatientNotFound
		}

		return nil, errors.Wrap(err, "failed to find patient by ID")
	}

	return toPatientDomain(&patientM), nil
}

// UpdatePatient persists changes to an existing patient.
func (repo *patientRepository) UpdatePatient(ctx context.Context, patient *entity.Patient) error {
	patientM := fromPatientDomain(patient)

	result := repo.db.WithContext(ctx).
		Model(&model.PatientModel{}).
		Where("id = ?", patient.ID).
		Updates(patientM)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update patient")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPatientNotFound
	}

	return nil
}

// FindPrimaryContacts retrieves the supplementary contacts flagged as primary for a patient.
func (repo *patientRepository) FindPrimaryContacts(ctx context.Context, patientID uuid.UUID) ([]*entity.EmergencyContact, error) {
	var contactModels []*model.EmergencyContactModel

	if err := repo.db.WithContext(ctx).
		Where("patient_id = ? AND is_primary = ?", patientID, true).
		Order("created_at ASC").
		Find(&contactModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find primary contacts")
	}

	contacts := make([]*entity.EmergencyContact, 0, len(contactModels))
	for _, contactM := range contactModels {
		contacts = append(contacts, toEmergencyContactDomain(contactM))
	}

	return contacts, nil
}

// CreateEmergencyContact persists a supplementary emergency contact for a patient.
func (repo *patientRepository) CreateEmergencyContact(ctx context.Context, contact *entity.EmergencyContact) error {
	contactM := fromEmergencyContactDomain(contact)

	if err := repo.db.WithContext(ctx).Create(contactM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPatientNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required contact information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create emergency contact")
	}

	contact.ID = contactM.ID
	contact.CreatedAt = contactM.CreatedAt

	return nil
}

// toPatientDomain converts a GORM PatientModel to a domain Patient entity.
func toPatientDomain(data *model.PatientModel) *entity.Patient {
	if data == nil {
		return nil
	}

	return &entity.Patient{
		ID:                    data.ID,
		Name:                  data.Name,
		Phone:                 data.Phone,
		Email:                 data.Email,
		Address:               data.Address,
		Latitude:              data.Latitude,
		Longitude:             data.Longitude,
		EmergencyContactName:  data.EmergencyContactName,
		EmergencyContactPhone: data.EmergencyContactPhone,
		BloodType:             data.BloodType,
		MedicalConditions:     data.MedicalConditions,
		PushToken:             data.PushToken,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

// fromPatientDomain converts a domain Patient entity to a GORM PatientModel.
func fromPatientDomain(data *entity.Patient) *model.PatientModel {
	if data == nil {
		return nil
	}

	return &model.PatientModel{
		ID:                    data.ID,
		Name:                  data.Name,
		Phone:                 data.Phone,
		Email:                 data.Email,
		Address:               data.Address,
		Latitude:              data.Latitude,
		Longitude:             data.Longitude,
		EmergencyContactName:  data.EmergencyContactName,
		EmergencyContactPhone: data.EmergencyContactPhone,
		BloodType:             data.BloodType,
		MedicalConditions:     data.MedicalConditions,
		PushToken:             data.PushToken,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

func toEmergencyContactDomain(data *model.EmergencyContactModel) *entity.EmergencyContact {
	if data == nil {
		return nil
	}

	return &entity.EmergencyContact{
		ID:        data.ID,
		PatientID: data.PatientID,
		Name:      data.Name,
		Phone:     data.Phone,
		Relation:  data.Relation,
		IsPrimary: data.IsPrimary,
		CreatedAt: data.CreatedAt,
	}
}

func fromEmergencyContactDomain(data *entity.EmergencyContact) *model.EmergencyContactModel {
	if data == nil {
		return nil
	}

	return &model.EmergencyContactModel{
		ID:        data.ID,
		PatientID: data.PatientID,
		Name:      data.Name,
		Phone:     data.Phone,
		Relation:  data.Relation,
		IsPrimary: data.IsPrimary,
		CreatedAt: data.CreatedAt,
	}
}
