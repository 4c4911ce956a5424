package reddit

import (
	"errors"
	"fmt"
	"net/http"
)

// AuthError means no usable credential could be obtained: the token exchange
// failed or the API rejected a freshly refreshed token.
type AuthError struct {
	Status int
	Body   string
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth error: %v", e.Err)
	}
	return fmt.Sprintf("auth error (%d): %s", e.Status, e.Body)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// UpstreamError is any non-2xx response other than a retried 401.
type UpstreamError struct {
	Status int
	Body   string
	Method string
	Path   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("API error (%d): %s - endpoint: %s - method: %s", e.Status, e.Body, e.Path, e.Method)
}

// Retryable reports whether a later attempt may succeed.
func (e *UpstreamError) Retryable() bool {
	return e.Status >= http.StatusInternalServerError || e.Status == http.StatusTooManyRequests
}

// DecodeError is a 2xx response whose body is not the expected JSON.
type DecodeError struct {
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// PublicMessage returns a message safe to show to end users. Upstream bodies
// are never included.
func PublicMessage(err error) string {
	var authErr *AuthError
	var upErr *UpstreamError
	var decErr *DecodeError
	switch {
	case errors.As(err, &authErr):
		return "upstream authentication failed"
	case errors.As(err, &upErr):
		return "upstream request failed"
	case errors.As(err, &decErr):
		return "upstream returned an invalid response"
	default:
		return "internal error"
	}
}
