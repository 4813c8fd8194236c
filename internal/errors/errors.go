// Package errors provides custom error types for the vendstock API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Machine errors.
var (
	ErrMachineNotFound      = &AppError{Code: "MACHINE_NOT_FOUND", Message: "Machine not found", StatusCode: http.StatusNotFound}
	ErrDuplicateMachineName = &AppError{Code: "DUPLICATE_NAME", Message: "A machine with this name already exists", StatusCode: http.StatusConflict}
	ErrMachineInUse         = &AppError{Code: "MACHINE_IN_USE", Message: "Machine still has products stocked in it", StatusCode: http.StatusConflict}
)

// Product and stock errors.
var (
	ErrProductNotFound   = &AppError{Code: "PRODUCT_NOT_FOUND", Message: "Product not found", StatusCode: http.StatusNotFound}
	ErrInsufficientStock = &AppError{Code: "INSUFFICIENT_STOCK", Message: "Requested quantity exceeds available stock", StatusCode: http.StatusBadRequest}
)

// Transaction errors.
var (
	// ErrTransactionFailure is returned when a storage transaction could not
	// commit after the bounded retry budget was exhausted.
	ErrTransactionFailure = &AppError{Code: "TRANSACTION_FAILURE", Message: "Operation could not be completed due to concurrent updates", StatusCode: http.StatusServiceUnavailable}
)
