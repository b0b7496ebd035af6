package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// RateLimitMessage is the user-facing text for an HTTP 429 from the API.
const RateLimitMessage = "Too many requests. Please try again later."

var (
	ErrInvalidBaseURL  = errors.New("apiclient: invalid base URL")
	ErrTooManyRequests = errors.New("apiclient: too many requests")
	ErrNotFound        = errors.New("apiclient: not found")
	ErrUnauthorized    = errors.New("apiclient: unauthorized")
	ErrTimeout         = errors.New("apiclient: request timeout")
	ErrTransport       = errors.New("apiclient: transport failure")
	ErrDecode          = errors.New("apiclient: malformed response")
)

// Error is a non-2xx response from the API. Detail holds the server's
// human-readable message when the body carried one.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	if e.StatusCode == http.StatusTooManyRequests {
		return RateLimitMessage
	}
	if e.Detail != "" {
		return fmt.Sprintf("api returned status %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("api returned status %d", e.StatusCode)
}

// Is maps well-known statuses onto the package sentinels so callers can use
// errors.Is(err, ErrTooManyRequests) and friends.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrTooManyRequests:
		return e.StatusCode == http.StatusTooManyRequests
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	}
	return false
}

// IsRateLimited reports whether err is, or wraps, a 429 response.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrTooManyRequests)
}

// Detail returns the server-provided message carried by err, if any.
func Detail(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	return ""
}
