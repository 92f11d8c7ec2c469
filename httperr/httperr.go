package httperr

import (
	"errors"
	"net/http"
)

// Error is an API-level error carrying a stable code, a caller-safe message
// and the HTTP status it maps to.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (e *Error) Error() string {
	return e.Message
}

func New(code, message string, status int) *Error {
	return &Error{Code: code, Message: message, Status: status}
}

var (
	ErrUnauthenticated = New("UNAUTHENTICATED", "Unauthorized Access", http.StatusUnauthorized)
	ErrForbidden       = New("FORBIDDEN", "forbidden access", http.StatusForbidden)
	ErrInvalidID       = New("INVALID_ARGUMENT", "invalid id", http.StatusBadRequest)
	ErrInvalidInput    = New("INVALID_ARGUMENT", "invalid input", http.StatusBadRequest)
	ErrNotFound        = New("NOT_FOUND", "resource not found", http.StatusNotFound)
	ErrUpstream        = New("UPSTREAM_ERROR", "Internal Server Error", http.StatusInternalServerError)
	ErrInternal        = New("INTERNAL", "Internal server error", http.StatusInternalServerError)
)

// Status returns the HTTP status for err, defaulting to 500 for anything
// that is not an *Error.
func Status(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return http.StatusInternalServerError
}
