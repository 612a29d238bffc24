package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// Error codes.
const (
	CodeNotFound       = "TXN_001"
	CodeInvalidQuery   = "QRY_001"
	CodeRateLimited    = "RATE_001"
	CodeStorageFailure = "SYS_001"
	CodeInternal       = "SYS_000"
)

// ---- Lookup (TXN) ----

func ErrNotFound(entity string, id any) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found with ID: %v", entity, id), http.StatusNotFound)
}

// ---- Query composition (QRY) ----

func ErrInvalidQuery(message string) *AppError {
	return New(CodeInvalidQuery, message, http.StatusBadRequest)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(CodeRateLimited, "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// ErrStorageFailure wraps a transaction store failure.
func ErrStorageFailure(err error) *AppError {
	return Wrap(CodeStorageFailure, "Transaction store failure", http.StatusInternalServerError, err)
}

// HasCode reports whether err is, or wraps, an AppError with the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsNotFound reports whether err is a NotFound AppError.
func IsNotFound(err error) bool {
	return HasCode(err, CodeNotFound)
}
