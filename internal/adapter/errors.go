package adapter

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrQuotaExceeded means the blob is larger than the server accepts.
	ErrQuotaExceeded = errors.New("backup exceeds the storage quota")
	// ErrRateLimited is matched by every [*RateLimitError].
	ErrRateLimited        = errors.New("rate limited")
	ErrServiceUnavailable = errors.New("backup service unavailable")
	ErrMalformedRequest   = errors.New("malformed request")
	ErrBlobNotFound       = errors.New("no backup stored under this key")
	// ErrNetwork wraps connection failures and timeouts.
	ErrNetwork = errors.New("network error")
	// ErrUnexpectedResponse covers any other non-success reply.
	ErrUnexpectedResponse = errors.New("unexpected response from backup service")
)

// RateLimitError is returned when the server throttles the client.
type RateLimitError struct {
	// RetryAfter is zero when the server did not say how long to wait.
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter <= 0 {
		return ErrRateLimited.Error()
	}
	return fmt.Sprintf("%s: retry after %s", ErrRateLimited, e.RetryAfter)
}

func (e *RateLimitError) Is(target error) bool {
	return target == ErrRateLimited
}
