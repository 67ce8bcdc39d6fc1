package usecase

import (
	"context"

	"lifeline/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase defines the interface for notification query and
// read-tracking use cases
type NotificationUsecase interface {
	// GetEmergencyNotifications retrieves every notification recorded for
	// an emergency, oldest first.
	GetEmergencyNotifications(ctx context.Context, emergencyID uuid.UUID) ([]*entity.Notification, error)

	// ListRecipientNotifications retrieves notifications addressed to the
	// recipient, newest first.
	ListRecipientNotifications(ctx context.Context, recipientType entity.RecipientType, recipientID uuid.UUID) ([]*entity.Notification, error)

	// CountUnread returns the recipient's unread notification count.
	CountUnread(ctx context.Context, recipientType entity.RecipientType, recipientID uuid.UUID) (int64, error)

	// MarkRead stamps the notification as read.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// RecordDeliveryResult records the outcome of a push delivery attempt,
	// moving the notification to SENT or FAILED.
	RecordDeliveryResult(ctx context.Context, id uuid.UUID, delivered bool) error
}
