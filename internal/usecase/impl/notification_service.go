package impl

import (
	"context"
	"log/slog"

	deliverycontext "lifeline/internal/delivery/context"
	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(notificationRepo repository.NotificationRepository, logger *slog.Logger) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetEmergencyNotifications retrieves every notification recorded for an
// emergency, oldest first.
func (srv *notificationService) GetEmergencyNotifications(ctx context.Context, emergencyID uuid.UUID) ([]*entity.Notification, error) {
	notifications, err := srv.notificationRepo.FindNotificationsByEmergency(ctx, emergencyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list emergency notifications")
	}

	return notifications, nil
}

// ListRecipientNotifications retrieves notifications addressed to the
// recipient, newest first.
func (srv *notificationService) ListRecipientNotifications(ctx context.Context, recipientType entity.RecipientType, recipientID uuid.UUID) ([]*entity.Notification, error) {
	if !recipientType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown recipient type")
	}

	notifications, err := srv.notificationRepo.FindNotificationsByRecipient(ctx, recipientType, recipientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipient notifications")
	}

	return notifications, nil
}

// CountUnread returns the recipient's unread notification count.
func (srv *notificationService) CountUnread(ctx context.Context, recipientType entity.RecipientType, recipientID uuid.UUID) (int64, error) {
	if !recipientType.IsValid() {
		return 0, domainerrors.ErrValidationFailed.WithDetails("unknown recipient type")
	}

	count, err := srv.notificationRepo.CountUnreadByRecipient(ctx, recipientType, recipientID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// MarkRead stamps the notification as read.
func (srv *notificationService) MarkRead(ctx context.Context, id uuid.UUID) error {
	err := srv.notificationRepo.MarkNotificationRead(ctx, id)
	if errors.Is(err, repository.ErrNotificationNotFound) {
		return domainerrors.ErrNotificationNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to mark notification read")
	}

	return nil
}

// RecordDeliveryResult records the outcome of a push delivery attempt.
func (srv *notificationService) RecordDeliveryResult(ctx context.Context, id uuid.UUID, delivered bool) error {
	status := entity.DeliverySent
	if !delivered {
		status = entity.DeliveryFailed
	}

	err := srv.notificationRepo.UpdateDeliveryStatus(ctx, id, status)
	if errors.Is(err, repository.ErrNotificationNotFound) {
		return domainerrors.ErrNotificationNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to record delivery result")
	}

	srv.log(ctx).Debug("Recorded delivery result",
		slog.String("notification_id", id.String()),
		slog.String("status", string(status)),
	)

	return nil
}
