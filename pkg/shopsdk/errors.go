package shopsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError represents an error response from the Sweet Shop backend. The
// backend reports errors as `{"msg": "..."}` (occasionally `{"message"}`),
// so both shapes are parsed.
type APIError struct {
	// StatusCode is the HTTP status code of the failed response.
	StatusCode int

	// Message is the server-supplied, user-presentable error message.
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

// IsUnauthorized reports whether err is an APIError with status 401.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// IsForbidden reports whether err is an APIError with status 403, which the
// backend returns for admin-only operations attempted by a regular user.
func IsForbidden(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusForbidden
}

// ErrorMessage extracts the server-supplied message from err, or falls back
// to the provided generic message when none is available.
func ErrorMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// parseErrorResponse turns a non-success HTTP response into a typed error.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var payload struct {
		Msg     string `json:"msg"`
		Message string `json:"message"`
	}

	message := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		message = payload.Msg
		if message == "" {
			message = payload.Message
		}
	}

	if message == "" {
		message = fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    message,
	}
}
