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

// HospitalHandler holds dependencies for hospital management handlers
type HospitalHandler struct {
	uc     usecase.HospitalUsecase
	logger *slog.Logger
}

// NewHospitalHandler is the constructor for HospitalHandler
func NewHospitalHandler(uc usecase.HospitalUsecase, logger *slog.Logger) *HospitalHandler {
	return &HospitalHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterHospitalRequest represents the request body for registering a hospital
type RegisterHospitalRequest struct {
	Name                 string   `json:"name" validate:"required"`
	Address              string   `json:"address"`
	Phone                string   `json:"phone"`
	Latitude             float64  `json:"latitude" validate:"min=-90,max=90"`
	Longitude            float64  `json:"longitude" validate:"min=-180,max=180"`
	TotalAmbulances      int      `json:"total_ambulances" validate:"min=0"`
	HasEmergencyServices bool     `json:"has_emergency_services"`
	Specializations      []string `json:"specializations,omitempty"`
}

// RegisterHospital handles registering a new hospital
func (h *HospitalHandler) RegisterHospital(c echo.Context) error {
	var req RegisterHospitalRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid hospital input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid hospital fields")
	}

	hospital, err := h.uc.RegisterHospital(c.Request().Context(), usecase.RegisterHospitalInput{
		Name:                 req.Name,
		Address:              req.Address,
		Phone:                req.Phone,
		Latitude:             req.Latitude,
		Longitude:            req.Longitude,
		TotalAmbulances:      req.TotalAmbulances,
		HasEmergencyServices: req.HasEmergencyServices,
		Specializations:      req.Specializations,
	})
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, hospital)
}

// GetHospital handles retrieving a single hospital
func (h *HospitalHandler) GetHospital(c echo.Context) error {
	hospitalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid hospital ID")
	}

	hospital, err := h.uc.GetHospital(c.Request().Context(), hospitalID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, hospital)
}

// ListHospitals handles retrieving all registered hospitals
func (h *HospitalHandler) ListHospitals(c echo.Context) error {
	hospitals, err := h.uc.ListHospitals(c.Request().Context())
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, hospitals)
}

// NearbyHospitalsRequest represents the request body for a proximity search
type NearbyHospitalsRequest struct {
	Latitude                float64  `json:"latitude" validate:"min=-90,max=90"`
	Longitude               float64  `json:"longitude" validate:"min=-180,max=180"`
	RadiusKm                float64  `json:"radius_km,omitempty"`
	EmergencyServicesOnly   *bool    `json:"emergency_services_only,omitempty"`
	AvailableAmbulanceOnly  *bool    `json:"available_ambulance_only,omitempty"`
	RequiredSpecializations []string `json:"required_specializations,omitempty"`
}

// FindNearbyHospitals handles a proximity search around a coordinate
func (h *HospitalHandler) FindNearbyHospitals(c echo.Context) error {
	var req NearbyHospitalsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid coordinates")
	}

	// Filters default to on for the dispatch search surface
	opts := usecase.MatchOptions{
		RadiusKm:                req.RadiusKm,
		EmergencyServicesOnly:   true,
		AvailableAmbulanceOnly:  true,
		RequiredSpecializations: req.RequiredSpecializations,
	}
	if req.EmergencyServicesOnly != nil {
		opts.EmergencyServicesOnly = *req.EmergencyServicesOnly
	}
	if req.AvailableAmbulanceOnly != nil {
		opts.AvailableAmbulanceOnly = *req.AvailableAmbulanceOnly
	}

	origin := entity.Coordinate{Lat: req.Latitude, Lon: req.Longitude}
	hospitals, err := h.uc.FindNearbyHospitals(c.Request().Context(), origin, opts)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, hospitals)
}

// AddAmbulanceRequest represents the request body for registering a vehicle
type AddAmbulanceRequest struct {
	VehicleNumber string `json:"vehicle_number" validate:"required"`
}

// AddAmbulance handles registering a new vehicle in a hospital's fleet
func (h *HospitalHandler) AddAmbulance(c echo.Context) error {
	hospitalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid hospital ID")
	}

	var req AddAmbulanceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid ambulance input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "vehicle_number is required")
	}

	ambulance, err := h.uc.AddAmbulance(c.Request().Context(), hospitalID, req.VehicleNumber)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, ambulance)
}

// ListAmbulances handles retrieving a hospital's ambulance roster
func (h *HospitalHandler) ListAmbulances(c echo.Context) error {
	hospitalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid hospital ID")
	}

	ambulances, err := h.uc.ListAmbulances(c.Request().Context(), hospitalID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ambulances)
}

// handleAppError handles application errors
func (h *HospitalHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
