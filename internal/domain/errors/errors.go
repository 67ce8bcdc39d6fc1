package errors

import (
	"net/http"

	"lifeline/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Emergency-related errors
	ErrEmergencyNotFoundOrHandled = NewBaseError(
		http.StatusNotFound,
		"EMERGENCY_NOT_FOUND_OR_HANDLED",
		"Emergency not found or already handled",
		"",
	)

	ErrEmergencyNotFound = NewBaseError(
		http.StatusNotFound,
		"EMERGENCY_NOT_FOUND",
		"Emergency not found",
		"",
	)

	ErrEmergencyAlreadyClosed = NewBaseError(
		http.StatusConflict,
		"EMERGENCY_ALREADY_CLOSED",
		"Emergency is already completed or cancelled",
		"",
	)

	ErrEmergencyCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"EMERGENCY_CREATION_FAILED",
		"Failed to create emergency",
		"",
	)

	ErrEmergencyUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"EMERGENCY_UPDATE_FAILED",
		"Failed to update emergency",
		"",
	)

	// Dispatch-related errors
	ErrNoAmbulanceAvailable = NewBaseError(
		http.StatusConflict,
		"NO_AMBULANCE_AVAILABLE",
		"No ambulance available at this hospital",
		"",
	)

	ErrDispatchFailed = NewBaseError(
		http.StatusInternalServerError,
		"DISPATCH_FAILED",
		"Failed to dispatch ambulance",
		"",
	)

	// Hospital-related errors
	ErrHospitalNotFound = NewBaseError(
		http.StatusNotFound,
		"HOSPITAL_NOT_FOUND",
		"Hospital not found",
		"",
	)

	ErrHospitalCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"HOSPITAL_CREATION_FAILED",
		"Failed to create hospital",
		"",
	)

	// Patient-related errors
	ErrPatientNotFound = NewBaseError(
		http.StatusNotFound,
		"PATIENT_NOT_FOUND",
		"Patient not found",
		"",
	)

	// Notification-related errors
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"Notification not found",
		"",
	)

	ErrNotificationCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"NOTIFICATION_CREATION_FAILED",
		"Failed to record notifications",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)

	ErrInvalidLocation = NewBaseError(
		http.StatusBadRequest,
		"INVALID_LOCATION",
		"Location coordinates are out of range",
		"",
	)

	ErrInvalidStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STATUS",
		"Unknown emergency status",
		"",
	)

	// System-related errors
	ErrInternalServer = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		"",
	)

	ErrDatabaseOperation = NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_OPERATION_FAILED",
		"Database operation failed",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
