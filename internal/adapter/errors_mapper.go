package adapter

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-backup-keeper/internal/rpc"
	"github.com/MKhiriev/go-backup-keeper/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrMalformedRequest, body)
	case http.StatusNotFound:
		return ErrBlobNotFound
	case http.StatusRequestEntityTooLarge:
		return ErrQuotaExceeded
	case http.StatusTooManyRequests:
		return &RateLimitError{RetryAfter: parseRetryAfter(resp.Header().Get(models.HeaderRetryAfter), time.Now())}
	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: http %d", ErrServiceUnavailable, resp.StatusCode())
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedResponse, resp.StatusCode(), body)
	}
}

// parseRetryAfter accepts both forms allowed by RFC 9110: delay in seconds
// or an HTTP date. Anything unparsable yields zero.
func parseRetryAfter(value string, now time.Time) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		if seconds < 0 {
			return 0
		}
		return time.Duration(seconds) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil {
		if d := at.Sub(now); d > 0 {
			return d
		}
	}
	return 0
}

func mapGRPCError(err error, trailer metadata.MD) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	switch st.Code() {
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrMalformedRequest, st.Message())
	case codes.NotFound:
		return ErrBlobNotFound
	case codes.FailedPrecondition:
		return ErrQuotaExceeded
	case codes.ResourceExhausted:
		return &RateLimitError{RetryAfter: parseRetryAfter(firstValue(trailer, rpc.RetryAfterTrailer), time.Now())}
	case codes.Unavailable:
		if firstValue(trailer, rpc.StatusTrailer) == rpc.StatusStorageUnavailable {
			return fmt.Errorf("%w: %s", ErrServiceUnavailable, st.Message())
		}
		// the connection itself failed
		return fmt.Errorf("%w: %s", ErrNetwork, st.Message())
	case codes.DeadlineExceeded, codes.Canceled:
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	default:
		return fmt.Errorf("%w: %s: %s", ErrUnexpectedResponse, st.Code(), st.Message())
	}
}

func firstValue(md metadata.MD, key string) string {
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}

// wrapTransportError marks errors raised before any response arrived.
func wrapTransportError(err error) error {
	return fmt.Errorf("%w: %w", ErrNetwork, err)
}
