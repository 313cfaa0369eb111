package youtube

import (
	"errors"
	"fmt"
)

var (
	// Sentinel errors for errors.Is checks at the boundary.
	ErrDisabled            = errors.New("youtube: client disabled (no API key)")
	ErrNotFound            = errors.New("youtube: resource not found")
	ErrUpstreamUnavailable = errors.New("youtube: host unreachable or transport failure")
	ErrUpstreamError       = errors.New("youtube: internal error (5xx)")
	ErrBadResponse         = errors.New("youtube: invalid response format or malformed data")
	ErrTimeout             = errors.New("youtube: request timed out")
)

// APIError is a rich error type that wraps the sentinel errors with context.
type APIError struct {
	Sentinel  error
	Operation string
	Status    int
	Err       error
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("youtube: %s: %v", e.Operation, e.Sentinel)
	if e.Status > 0 {
		msg = fmt.Sprintf("%s (HTTP %d)", msg, e.Status)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *APIError) Unwrap() error {
	return e.Sentinel
}
