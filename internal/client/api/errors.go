package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrRequestAborted reports that a call was canceled through the abort
// registry: either superseded by a newer call under the same key, or
// canceled explicitly via AbortRequest/AbortAllRequests.
var ErrRequestAborted = errors.New("request aborted")

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the normalized failure every dispatcher call settles with. It is
// built from one of three sources: a structured server error response, a
// transport-level failure, or a malformed body on an otherwise successful
// response.
type Error struct {
	// Status is the HTTP status code, or a synthetic one for transport
	// failures: 408 for timeouts, 503 for refused/unresolved connections,
	// 0 for unclassified network errors.
	Status  int          `json:"status"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
	Code    string       `json:"code,omitempty"`

	// Diagnostic context for logging; not part of the wire shape.
	RequestedURL string `json:"-"`
	BaseURL      string `json:"-"`

	cause error
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error: status=%d code=%s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api error: status=%d: %s", e.Status, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// AsError unwraps err into *Error when possible.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func hasStatus(err error, status int) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.Status == status
}

func IsUnauthorized(err error) bool { return hasStatus(err, http.StatusUnauthorized) }
func IsForbidden(err error) bool    { return hasStatus(err, http.StatusForbidden) }
func IsNotFound(err error) bool     { return hasStatus(err, http.StatusNotFound) }
func IsTimeout(err error) bool      { return hasStatus(err, http.StatusRequestTimeout) }
