package handler

import (
	"log/slog"
	"net/http"

	"lifeline/internal/delivery/http/response"
	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for notification query handlers
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListEmergencyNotifications handles retrieving all notifications for an emergency
func (h *NotificationHandler) ListEmergencyNotifications(c echo.Context) error {
	emergencyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid emergency ID")
	}

	notifications, err := h.uc.GetEmergencyNotifications(c.Request().Context(), emergencyID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications)
}

// ListRecipientNotifications handles retrieving a recipient's notifications
func (h *NotificationHandler) ListRecipientNotifications(c echo.Context) error {
	recipientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid recipient ID")
	}

	recipientType, err := h.parseRecipientType(c)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid recipient type")
	}

	notifications, err := h.uc.ListRecipientNotifications(c.Request().Context(), recipientType, recipientID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications)
}

// UnreadCountResponse carries a recipient's unread notification count
type UnreadCountResponse struct {
	UnreadCount int64 `json:"unread_count"`
}

// CountUnread handles retrieving a recipient's unread notification count
func (h *NotificationHandler) CountUnread(c echo.Context) error {
	recipientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid recipient ID")
	}

	recipientType, err := h.parseRecipientType(c)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid recipient type")
	}

	count, err := h.uc.CountUnread(c.Request().Context(), recipientType, recipientID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, UnreadCountResponse{UnreadCount: count})
}

// MarkRead handles stamping a notification as read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid notification ID")
	}

	if err := h.uc.MarkRead(c.Request().Context(), notificationID); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "read"})
}

// parseRecipientType reads the recipient type query param, defaulting to USER
func (h *NotificationHandler) parseRecipientType(c echo.Context) (entity.RecipientType, error) {
	recipientType := entity.RecipientType(c.QueryParam("recipient_type"))
	if recipientType == "" {
		recipientType = entity.RecipientUser
	}
	if !recipientType.IsValid() {
		return "", errors.Errorf("invalid recipient type: %s", recipientType)
	}

	return recipientType, nil
}

// handleAppError handles application errors
func (h *NotificationHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
