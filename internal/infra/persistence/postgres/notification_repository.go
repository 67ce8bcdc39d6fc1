package postgres

import (
	"context"
	"time"

	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotifications persists a batch of notifications in one statement.
func (repo *notificationRepository) CreateNotifications(ctx context.Context, notifications []*entity.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	notificationModels := make([]*model.NotificationModel, 0, len(notifications))
	for _, notification := range notifications {
		notificationModels = append(notificationModels, fromNotificationDomain(notification))
	}

	if err := repo.db.WithContext(ctx).Create(&notificationModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotificationCreationFailed.WrapMessage("invalid emergency or recipient reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrNotificationCreationFailed.WrapMessage("missing required notification information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notifications")
	}

	// Update the entities with generated values
	for idx, notificationM := range notificationModels {
		notifications[idx].ID = notificationM.ID
		notifications[idx].CreatedAt = notificationM.CreatedAt
		notifications[idx].UpdatedAt = notificationM.UpdatedAt
	}

	return nil
}

// FindNotificationByID retrieves a notification by its unique ID.
func (repo *notificationRepository) FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM), nil
}

// FindNotificationsByEmergency retrieves all notifications for an emergency, oldest first.
func (repo *notificationRepository) FindNotificationsByEmergency(ctx context.Context, emergencyID uuid.UUID) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("emergency_id = ?", emergencyID).
		Order("created_at ASC").
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by emergency")
	}

	return toNotificationDomainSlice(notificationModels), nil
}

// FindNotificationsByRecipient retrieves notifications addressed to the recipient, newest first.
func (repo *notificationRepository) FindNotificationsByRecipient(ctx context.Context, recipientType entity.RecipientType, recipientID uuid.UUID) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("recipient_type = ? AND recipient_id = ?", recipientType, recipientID).
		Order("created_at DESC").
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by recipient")
	}

	return toNotificationDomainSlice(notificationModels), nil
}

// CountUnreadByRecipient returns how many notifications for the recipient are not read yet.
func (repo *notificationRepository) CountUnreadByRecipient(ctx context.Context, recipientType entity.RecipientType, recipientID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("recipient_type = ? AND recipient_id = ? AND status <> ?", recipientType, recipientID, entity.DeliveryRead).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// MarkNotificationRead stamps the read time of a single notification.
func (repo *notificationRepository) MarkNotificationRead(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(entity.DeliveryRead),
			"read_at":    now,
			"updated_at": now,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification read")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// UpdateDeliveryStatus records the outcome of a delivery attempt.
func (repo *notificationRepository) UpdateDeliveryStatus(ctx context.Context, id uuid.UUID, status entity.DeliveryStatus) error {
	now := time.Now()
	updates := map[string]any{
		"status":     string(status),
		"updated_at": now,
	}
	if status == entity.DeliverySent || status == entity.DeliveryDelivered {
		updates["sent_at"] = now
	}

	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update delivery status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// toNotificationDomain converts a GORM NotificationModel to a domain Notification entity.
func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:             data.ID,
		EmergencyID:    data.EmergencyID,
		Type:           entity.NotificationType(data.Type),
		RecipientType:  entity.RecipientType(data.RecipientType),
		RecipientID:    data.RecipientID,
		RecipientPhone: data.RecipientPhone,
		Title:          data.Title,
		Message:        data.Message,
		Status:         entity.DeliveryStatus(data.Status),
		SentAt:         data.SentAt,
		ReadAt:         data.ReadAt,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toNotificationDomainSlice(models []*model.NotificationModel) []*entity.Notification {
	notifications := make([]*entity.Notification, 0, len(models))
	for _, notificationM := range models {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications
}

// fromNotificationDomain converts a domain Notification entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:             data.ID,
		EmergencyID:    data.EmergencyID,
		Type:           string(data.Type),
		RecipientType:  string(data.RecipientType),
		RecipientID:    data.RecipientID,
		RecipientPhone: data.RecipientPhone,
		Title:          data.Title,
		Message:        data.Message,
		Status:         string(data.Status),
		SentAt:         data.SentAt,
		ReadAt:         data.ReadAt,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
