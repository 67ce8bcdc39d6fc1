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

// PatientHandler holds dependencies for patient management handlers
type PatientHandler struct {
	uc     usecase.PatientUsecase
	logger *slog.Logger
}

// NewPatientHandler is the constructor for PatientHandler
func NewPatientHandler(uc usecase.PatientUsecase, logger *slog.Logger) *PatientHandler {
	return &PatientHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterPatientRequest represents the request body for registering a patient
type RegisterPatientRequest struct {
	Name                  string   `json:"name" validate:"required"`
	Phone                 string   `json:"phone" validate:"required"`
	Email                 string   `json:"email,omitempty" validate:"omitempty,email"`
	Latitude              *float64 `json:"latitude,omitempty"`
	Longitude             *float64 `json:"longitude,omitempty"`
	Address               string   `json:"address,omitempty"`
	EmergencyContactName  string   `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string   `json:"emergency_contact_phone,omitempty"`
	BloodType             string   `json:"blood_type,omitempty"`
	MedicalConditions     string   `json:"medical_conditions,omitempty"`
}

// RegisterPatient handles registering a new patient
func (h *PatientHandler) RegisterPatient(c echo.Context) error {
	var req RegisterPatientRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid patient input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "name and phone are required")
	}

	patient, err := h.uc.RegisterPatient(c.Request().Context(), usecase.RegisterPatientInput{
		Name:                  req.Name,
		Phone:                 req.Phone,
		Email:                 req.Email,
		Latitude:              req.Latitude,
		Longitude:             req.Longitude,
		Address:               req.Address,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
		BloodType:             req.BloodType,
		MedicalConditions:     req.MedicalConditions,
	})
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, patient)
}

// GetPatient handles retrieving a single patient
func (h *PatientHandler) GetPatient(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid patient ID")
	}

	patient, err := h.uc.GetPatient(c.Request().Context(), patientID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, patient)
}

// AddEmergencyContactRequest represents the request body for adding a contact
type AddEmergencyContactRequest struct {
	Name      string `json:"name" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Relation  string `json:"relation,omitempty"`
	IsPrimary bool   `json:"is_primary"`
}

// AddEmergencyContact handles adding a supplementary emergency contact
func (h *PatientHandler) AddEmergencyContact(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid patient ID")
	}

	var req AddEmergencyContactRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "name and phone are required")
	}

	contact, err := h.uc.AddEmergencyContact(c.Request().Context(), &entity.EmergencyContact{
		PatientID: patientID,
		Name:      req.Name,
		Phone:     req.Phone,
		Relation:  req.Relation,
		IsPrimary: req.IsPrimary,
	})
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, contact)
}

// UpdatePushTokenRequest represents the request body for registering a device token
type UpdatePushTokenRequest struct {
	PushToken string `json:"push_token" validate:"required"`
}

// UpdatePushToken handles registering the patient's current device token
func (h *PatientHandler) UpdatePushToken(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid patient ID")
	}

	var req UpdatePushTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "push_token is required")
	}

	if err := h.uc.UpdatePushToken(c.Request().Context(), patientID, req.PushToken); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "updated"})
}

// handleAppError handles application errors
func (h *PatientHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
