package handler

import (
	"log/slog"
	"net/http"

	"lifeline/internal/delivery/http/response"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/entity"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EmergencyHandler holds dependencies for emergency lifecycle handlers
type EmergencyHandler struct {
	uc     usecase.DispatchUsecase
	logger *slog.Logger
}

// NewEmergencyHandler is the constructor for EmergencyHandler
func NewEmergencyHandler(uc usecase.DispatchUsecase, logger *slog.Logger) *EmergencyHandler {
	return &EmergencyHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateEmergencyRequest represents the request body for raising an emergency
type CreateEmergencyRequest struct {
	PatientID   uuid.UUID `json:"patient_id" validate:"required"`
	Priority    string    `json:"priority" validate:"required"`
	Description string    `json:"description"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Address     string    `json:"address,omitempty"`
}

// CreateEmergencyResponse wraps the created emergency with the fan-out count
type CreateEmergencyResponse struct {
	Emergency         *entity.Emergency `json:"emergency"`
	NotificationsSent int               `json:"notifications_sent"`
}

// CreateEmergency handles raising a new emergency request
func (h *EmergencyHandler) CreateEmergency(c echo.Context) error {
	var req CreateEmergencyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid emergency input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "patient_id and priority are required")
	}

	emergency, notified, err := h.uc.CreateEmergency(c.Request().Context(), usecase.CreateEmergencyInput{
		PatientID:   req.PatientID,
		Priority:    entity.Priority(req.Priority),
		Description: req.Description,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Address:     req.Address,
	})
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, CreateEmergencyResponse{
		Emergency:         emergency,
		NotificationsSent: notified,
	})
}

// GetEmergency handles retrieving a single emergency
func (h *EmergencyHandler) GetEmergency(c echo.Context) error {
	emergencyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid emergency ID")
	}

	emergency, err := h.uc.GetEmergency(c.Request().Context(), emergencyID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, emergency)
}

// ListPatientEmergencies handles retrieving a patient's emergency history
func (h *EmergencyHandler) ListPatientEmergencies(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid patient ID")
	}

	emergencies, err := h.uc.ListEmergenciesByPatient(c.Request().Context(), patientID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, emergencies)
}

// ListEmergenciesByStatus handles retrieving the emergency queue for a state
func (h *EmergencyHandler) ListEmergenciesByStatus(c echo.Context) error {
	status := entity.EmergencyStatus(c.QueryParam("status"))
	if status == "" {
		status = entity.EmergencyPending
	}
	if !status.IsValid() {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid emergency status")
	}

	emergencies, err := h.uc.ListEmergenciesByStatus(c.Request().Context(), status)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, emergencies)
}

// RespondToEmergencyRequest represents a hospital's commitment to respond
type RespondToEmergencyRequest struct {
	EmergencyID             uuid.UUID `json:"emergency_id" validate:"required"`
	EstimatedArrivalMinutes *int      `json:"estimated_arrival_minutes,omitempty"`
	Notes                   string    `json:"notes,omitempty"`
}

// RespondToEmergency handles a hospital claiming a pending emergency
func (h *EmergencyHandler) RespondToEmergency(c echo.Context) error {
	hospitalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid hospital ID")
	}

	var req RespondToEmergencyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid respond input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "emergency_id is required")
	}

	emergency, err := h.uc.RespondToEmergency(c.Request().Context(), usecase.RespondToEmergencyInput{
		EmergencyID:             req.EmergencyID,
		HospitalID:              hospitalID,
		EstimatedArrivalMinutes: req.EstimatedArrivalMinutes,
		ResponseNotes:           req.Notes,
	})
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, emergency)
}

// UpdateStatusRequest represents a status transition request
type UpdateStatusRequest struct {
	Status                  string `json:"status" validate:"required"`
	Notes                   string `json:"notes,omitempty"`
	EstimatedArrivalMinutes *int   `json:"estimated_arrival_minutes,omitempty"`
}

// UpdateStatus handles moving an emergency to a new lifecycle state
func (h *EmergencyHandler) UpdateStatus(c echo.Context) error {
	emergencyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid emergency ID")
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "status is required")
	}

	emergency, err := h.uc.UpdateEmergencyStatus(
		c.Request().Context(),
		emergencyID,
		entity.EmergencyStatus(req.Status),
		req.Notes,
		req.EstimatedArrivalMinutes,
	)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, emergency)
}

// CompleteEmergencyRequest represents a completion request
type CompleteEmergencyRequest struct {
	Notes string `json:"notes,omitempty"`
}

// CompleteEmergency handles closing out an emergency
func (h *EmergencyHandler) CompleteEmergency(c echo.Context) error {
	emergencyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid emergency ID")
	}

	var req CompleteEmergencyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid completion input")
	}

	emergency, err := h.uc.CompleteEmergency(c.Request().Context(), emergencyID, req.Notes)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, emergency)
}

// handleAppError handles application errors
func (h *EmergencyHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
