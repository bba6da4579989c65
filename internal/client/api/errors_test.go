package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestError_String(t *testing.T) {
	err := &Error{Status: 503, Code: "ECONNREFUSED", Message: refusedMessage}
	require.Contains(t, err.Error(), "status=503")
	require.Contains(t, err.Error(), "ECONNREFUSED")

	err = &Error{Status: 404, Message: "not found"}
	require.Equal(t, "api error: status=404: not found", err.Error())
}

func TestAsError_UnwrapsThroughWrapping(t *testing.T) {
	inner := &Error{Status: http.StatusUnauthorized, Message: "token expired"}
	wrapped := fmt.Errorf("login: %w", inner)

	got, ok := AsError(wrapped)
	require.True(t, ok)
	require.Same(t, inner, got)
	require.True(t, IsUnauthorized(wrapped))

	_, ok = AsError(errors.New("plain"))
	require.False(t, ok)
}

func TestError_UnwrapExposesCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := &Error{Status: 503, Message: refusedMessage, cause: cause}
	require.ErrorIs(t, err, cause)
}
