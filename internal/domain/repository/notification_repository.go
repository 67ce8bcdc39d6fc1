package repository

import (
	"context"

	"lifeline/internal/domain/entity"
	"lifeline/internal/errors"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// CreateNotifications persists a batch of notifications in one statement.
	// Duplicate recipients within the batch are stored as written.
	CreateNotifications(ctx context.Context, notifications []*entity.Notification) error

	// FindNotificationByID retrieves a notification by its unique ID.
	FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// FindNotificationsByEmergency retrieves all notifications recorded for an
	// emergency, oldest first.
	FindNotificationsByEmergency(ctx context.Context, emergencyID uuid.UUID) ([]*entity.Notification, error)

	// FindNotificationsByRecipient retrieves notifications addressed to the
	// given recipient, newest first.
	FindNotificationsByRecipient(ctx context.Context, recipientType entity.RecipientType, recipientID uuid.UUID) ([]*entity.Notification, error)

	// CountUnreadByRecipient returns how many notifications for the recipient
	// have not been read yet.
	CountUnreadByRecipient(ctx context.Context, recipientType entity.RecipientType, recipientID uuid.UUID) (int64, error)

	// MarkNotificationRead stamps the read time of a single notification.
	MarkNotificationRead(ctx context.Context, id uuid.UUID) error

	// UpdateDeliveryStatus records the outcome of a delivery attempt.
	UpdateDeliveryStatus(ctx context.Context, id uuid.UUID, status entity.DeliveryStatus) error
}
