package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorResponse is the structured error body the backend returns. Some
// endpoints send a single message, validation endpoints send a list.
type ErrorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// APIError is an HTTP error response from the backend, decoded where the
// body had the expected shape.
type APIError struct {
	StatusCode int
	Message    string
	Errors     []string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if len(e.Errors) > 0 {
		return strings.Join(e.Errors, "; ")
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// IsAuthError reports whether err is a backend rejection of the bearer
// token. Callers drop the session when they see this.
func IsAuthError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}
	return false
}

// UserMessage returns a short human-readable notice for any client error,
// preferring the backend-supplied message.
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Error() != "" {
		return apiErr.Error()
	}
	if fallback != "" {
		return fallback
	}
	return "Something went wrong."
}
