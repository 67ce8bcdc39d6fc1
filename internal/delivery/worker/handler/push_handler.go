package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"lifeline/config"
	deliverycontext "lifeline/internal/delivery/context"
	"lifeline/internal/domain/constants"
	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/repository"
	"lifeline/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler handles Pub/Sub push messages for dispatch event delivery
type PushHandler struct {
	verifyPushAuth   bool
	logger           *slog.Logger
	pushSvc          service.PushService
	notificationRepo repository.NotificationRepository
	patientRepo      repository.PatientRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config           *config.Config
	Logger           *slog.Logger
	PushSvc          service.PushService
	NotificationRepo repository.NotificationRepository
	PatientRepo      repository.PatientRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth:   verifyPushAuth,
		logger:           params.Logger,
		pushSvc:          params.PushSvc,
		notificationRepo: params.NotificationRepo,
		patientRepo:      params.PatientRepo,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse dispatch event
	var event service.DispatchEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse dispatch event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	// Update context with request_id and logger
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing dispatch event",
		slog.String("emergency_id", event.EmergencyID),
		slog.String("status", event.Status),
		slog.Int("notification_count", len(event.NotificationIDs)),
	)

	// Deliver the notifications
	if err := h.processDispatchEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process dispatch event",
			slog.String("emergency_id", event.EmergencyID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Dispatch event processed successfully",
		slog.String("emergency_id", event.EmergencyID),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.DispatchEvent) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// processDispatchEvent pushes each pending notification of the event to its recipient device
func (h *PushHandler) processDispatchEvent(ctx context.Context, event *service.DispatchEvent) error {
	notificationIDs := h.parseNotificationIDs(event)
	if len(notificationIDs) == 0 {
		h.logger.Info("[Worker] No notifications to deliver",
			slog.String("emergency_id", event.EmergencyID),
		)

		return nil
	}

	totalSent := 0
	totalFailed := 0
	totalSkipped := 0

	for _, notificationID := range notificationIDs {
		notification, err := h.notificationRepo.FindNotificationByID(ctx, notificationID)
		if err != nil {
			if errors.Is(err, repository.ErrNotificationNotFound) {
				h.logger.Warn("[Worker] Notification not found, skipping",
					slog.String("notification_id", notificationID.String()),
				)
				totalSkipped++

				continue
			}

			return newRetryableError(errors.WithStack(err))
		}

		// Only deliver rows that are still pending; redelivered events are no-ops
		if notification.Status != entity.DeliveryPending {
			totalSkipped++

			continue
		}

		token, patient, err := h.resolvePushToken(ctx, notification)
		if err != nil {
			return err
		}
		if token == "" {
			// Recipient has no device token (hospital consoles and phone
			// contacts are reached through other channels)
			totalSkipped++

			continue
		}

		delivered := h.sendNotification(ctx, token, patient, notification, event)
		if delivered {
			totalSent++
		} else {
			totalFailed++
		}
	}

	h.logger.Info("[Worker] Notification delivery completed",
		slog.String("emergency_id", event.EmergencyID),
		slog.Int("total_sent", totalSent),
		slog.Int("total_failed", totalFailed),
		slog.Int("total_skipped", totalSkipped),
	)

	return nil
}

// parseNotificationIDs parses the notification IDs from the event, dropping malformed entries
func (h *PushHandler) parseNotificationIDs(event *service.DispatchEvent) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(event.NotificationIDs))
	for _, idStr := range event.NotificationIDs {
		id, err := uuid.Parse(idStr)
		if err == nil {
			ids = append(ids, id)
		}
	}

	return ids
}

// resolvePushToken looks up the device token for the notification's recipient.
// Returns an empty token for recipient kinds that have no registered device.
func (h *PushHandler) resolvePushToken(ctx context.Context, notification *entity.Notification) (string, *entity.Patient, error) {
	if notification.RecipientType != entity.RecipientUser || notification.RecipientID == nil {
		return "", nil, nil
	}

	patient, err := h.patientRepo.FindPatientByID(ctx, *notification.RecipientID)
	if err != nil {
		if errors.Is(err, repository.ErrPatientNotFound) {
			return "", nil, nil
		}

		return "", nil, newRetryableError(errors.WithStack(err))
	}

	return patient.PushToken, patient, nil
}

// sendNotification pushes a single notification and records the delivery outcome
func (h *PushHandler) sendNotification(ctx context.Context, token string, patient *entity.Patient, notification *entity.Notification, event *service.DispatchEvent) bool {
	data := map[string]string{
		"notification_id": notification.ID.String(),
		"emergency_id":    event.EmergencyID,
		"type":            string(notification.Type),
		"status":          event.Status,
	}

	// Batch send with a single token so invalid tokens are reported back
	_, failureCount, invalidTokens, err := h.pushSvc.SendBatchPush(
		ctx, []string{token}, notification.Title, notification.Message, data,
	)

	delivered := err == nil && failureCount == 0

	if err != nil {
		h.logger.Error("[Worker] Failed to send push",
			slog.String("notification_id", notification.ID.String()),
			slog.Any("error", err),
		)
	}

	// Clear stale device tokens so we stop pushing to them
	if slices.Contains(invalidTokens, token) && patient != nil {
		patient.PushToken = ""
		if updateErr := h.patientRepo.UpdatePatient(ctx, patient); updateErr != nil {
			h.logger.Warn("[Worker] Failed to clear invalid push token",
				slog.String("patient_id", patient.ID.String()),
				slog.Any("error", updateErr),
			)
		}
	}

	status := entity.DeliverySent
	if !delivered {
		status = entity.DeliveryFailed
	}

	if updateErr := h.notificationRepo.UpdateDeliveryStatus(ctx, notification.ID, status); updateErr != nil {
		h.logger.Error("[Worker] Failed to record delivery status",
			slog.String("notification_id", notification.ID.String()),
			slog.Any("error", updateErr),
		)
	}

	return delivered
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Construct the expected audience (the push endpoint URL)
	// The audience should be the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	// Validate the token using Google's ID token validator
	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// Verify the token is from Google Pub/Sub
	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
