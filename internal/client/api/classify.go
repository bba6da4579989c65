package api

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"syscall"
)

const (
	fallbackErrorMessage   = "an error occurred"
	invalidResponseMessage = "invalid response format from server"
	timeoutMessage         = "request timeout, please try again"
	refusedMessage         = "connection refused, the server may not be running"
	unresolvedMessage      = "host not found, check the API base URL"
	networkMessage         = "network error, check your connection"
)

// classifyStatus turns a >=400 response into *Error and applies the two
// status-specific side effects: 401 clears the session, 403 notifies the
// hosting application. First matching rule wins; nothing is retried.
func (d *Dispatcher) classifyStatus(ctx context.Context, status int, raw []byte) error {
	var env envelope
	_ = json.Unmarshal(raw, &env)

	apiErr := &Error{Status: status, Message: env.Message, Errors: env.Errors, Code: env.Code}
	if apiErr.Message == "" {
		apiErr.Message = fallbackErrorMessage
	}

	switch status {
	case http.StatusUnauthorized:
		// The session is invalid: wipe it so the next call goes out
		// unauthenticated instead of replaying a rejected token.
		if err := d.tokens.ClearAuth(ctx); err != nil {
			d.log.Error(ctx, "clearing session after 401", "error", err)
		}
		if d.onSessionInvalidated != nil {
			d.onSessionInvalidated()
		}
	case http.StatusForbidden:
		if d.onForbidden != nil {
			d.onForbidden()
		}
	case http.StatusInternalServerError:
		if !d.production {
			d.log.Error(ctx, "server error", "status", status, "message", apiErr.Message)
		}
	}

	return apiErr
}

// classifyTransport maps a failure that produced no usable response: aborts,
// caller cancellations, timeouts, and network-level errors. The subclassing
// of network causes feeds diagnostic messaging only, never behavior.
func (d *Dispatcher) classifyTransport(ctx context.Context, err error, requestedURL string) error {
	if cause := context.Cause(ctx); errors.Is(cause, ErrRequestAborted) {
		return ErrRequestAborted
	}
	if errors.Is(err, context.Canceled) {
		// The caller canceled its own context; pass that through unchanged.
		return err
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return d.networkError(ctx, &Error{Status: http.StatusRequestTimeout, Message: timeoutMessage}, err, requestedURL)
	}

	apiErr := &Error{Status: 0, Message: networkMessage}
	var dnsErr *net.DNSError
	switch {
	case errors.Is(err, syscall.ECONNREFUSED):
		apiErr = &Error{Status: http.StatusServiceUnavailable, Code: "ECONNREFUSED", Message: refusedMessage}
	case errors.As(err, &dnsErr):
		apiErr = &Error{Status: http.StatusServiceUnavailable, Code: "ENOTFOUND", Message: unresolvedMessage}
	}

	return d.networkError(ctx, apiErr, err, requestedURL)
}

func (d *Dispatcher) networkError(ctx context.Context, apiErr *Error, cause error, requestedURL string) error {
	apiErr.cause = cause
	apiErr.RequestedURL = requestedURL
	apiErr.BaseURL = d.baseURL

	d.log.Error(ctx, "network failure",
		"url", requestedURL, "base_url", d.baseURL, "status", apiErr.Status, "error", cause)

	return apiErr
}
