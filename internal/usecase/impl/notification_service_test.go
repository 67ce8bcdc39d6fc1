package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	mockRepo "lifeline/internal/mocks/repository"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (usecase.NotificationUsecase, *mockRepo.MockNotificationRepository) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewNotificationService(notificationRepo, logger), notificationRepo
}

func TestNotificationService_GetEmergencyNotifications(t *testing.T) {
	service, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	emergencyID := uuid.New()
	rows := []*entity.Notification{
		{ID: uuid.New(), EmergencyID: emergencyID},
		{ID: uuid.New(), EmergencyID: emergencyID},
	}

	notificationRepo.EXPECT().FindNotificationsByEmergency(ctx, emergencyID).Return(rows, nil)

	notifications, err := service.GetEmergencyNotifications(ctx, emergencyID)

	require.NoError(t, err)
	assert.Len(t, notifications, 2)
}

func TestNotificationService_ListRecipientNotifications_UnknownType(t *testing.T) {
	service, _ := createTestNotificationService(t)

	_, err := service.ListRecipientNotifications(context.Background(), entity.RecipientType("DOCTOR"), uuid.New())

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestNotificationService_CountUnread(t *testing.T) {
	service, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	recipientID := uuid.New()

	notificationRepo.EXPECT().CountUnreadByRecipient(ctx, entity.RecipientUser, recipientID).
		Return(int64(4), nil)

	count, err := service.CountUnread(ctx, entity.RecipientUser, recipientID)

	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestNotificationService_MarkRead_NotFound(t *testing.T) {
	service, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	missing := uuid.New()

	notificationRepo.EXPECT().MarkNotificationRead(ctx, missing).
		Return(repository.ErrNotificationNotFound)

	err := service.MarkRead(ctx, missing)

	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}

func TestNotificationService_RecordDeliveryResult(t *testing.T) {
	service, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	delivered := uuid.New()
	failed := uuid.New()

	notificationRepo.EXPECT().UpdateDeliveryStatus(ctx, delivered, entity.DeliverySent).Return(nil)
	notificationRepo.EXPECT().UpdateDeliveryStatus(ctx, failed, entity.DeliveryFailed).Return(nil)

	require.NoError(t, service.RecordDeliveryResult(ctx, delivered, true))
	require.NoError(t, service.RecordDeliveryResult(ctx, failed, false))
}
