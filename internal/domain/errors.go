package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")

	// ErrBackendNotConfigured is returned when a request selects a backend
	// whose credentials were absent at startup, so no adapter was built.
	ErrBackendNotConfigured = errors.New("backend not configured")
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// APIError is a non-success response from a backend's REST API. It carries
// the HTTP status code and the raw response body so callers see exactly what
// the backend said. External API calls are never retried; an APIError is the
// final outcome of the call.
type APIError struct {
	Backend    Backend
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s API error: status %d: %s", e.Backend, e.StatusCode, e.Body)
}

// Unwrap maps server-side failures to ErrUnavailable and auth failures to
// ErrForbidden so handlers can pick a response status with errors.Is.
func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode >= 500:
		return ErrUnavailable
	case e.StatusCode == 401 || e.StatusCode == 403:
		return ErrForbidden
	case e.StatusCode == 404:
		return ErrNotFound
	default:
		return ErrValidation
	}
}
