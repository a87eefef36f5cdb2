package adapter

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-backup-keeper/internal/rpc"
)

func TestParseRetryAfter(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{name: "empty", value: "", want: 0},
		{name: "seconds", value: "90", want: 90 * time.Second},
		{name: "negative", value: "-5", want: 0},
		{name: "http date", value: now.Add(2 * time.Minute).Format(http.TimeFormat), want: 2 * time.Minute},
		{name: "date in the past", value: now.Add(-time.Minute).Format(http.TimeFormat), want: 0},
		{name: "garbage", value: "soon", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRetryAfter(tt.value, now))
		})
	}
}

func TestRateLimitError(t *testing.T) {
	err := error(&RateLimitError{RetryAfter: time.Minute})

	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Contains(t, err.Error(), "1m0s")
	assert.Equal(t, ErrRateLimited.Error(), (&RateLimitError{}).Error())
}

func TestMapGRPCError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		trailer metadata.MD
		wantErr error
	}{
		{name: "invalid argument", err: status.Error(codes.InvalidArgument, "bad key"), wantErr: ErrMalformedRequest},
		{name: "not found", err: status.Error(codes.NotFound, "nope"), wantErr: ErrBlobNotFound},
		{name: "quota", err: status.Error(codes.FailedPrecondition, "too big"), wantErr: ErrQuotaExceeded},
		{name: "rate limited", err: status.Error(codes.ResourceExhausted, "slow down"), trailer: metadata.Pairs(rpc.RetryAfterTrailer, "30"), wantErr: ErrRateLimited},
		{
			name:    "storage outage",
			err:     status.Error(codes.Unavailable, "db down"),
			trailer: metadata.Pairs(rpc.StatusTrailer, rpc.StatusStorageUnavailable),
			wantErr: ErrServiceUnavailable,
		},
		{name: "connection refused", err: status.Error(codes.Unavailable, "connection refused"), wantErr: ErrNetwork},
		{name: "deadline", err: status.Error(codes.DeadlineExceeded, "timeout"), wantErr: ErrNetwork},
		{name: "internal", err: status.Error(codes.Internal, "boom"), wantErr: ErrUnexpectedResponse},
		{name: "not a status", err: errors.New("plain"), wantErr: ErrNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapGRPCError(tt.err, tt.trailer), tt.wantErr)
		})
	}
}

func TestMapGRPCError_RetryAfterTrailer(t *testing.T) {
	err := mapGRPCError(status.Error(codes.ResourceExhausted, "slow down"), metadata.Pairs(rpc.RetryAfterTrailer, "30"))

	var rateErr *RateLimitError
	assert.True(t, errors.As(err, &rateErr))
	assert.Equal(t, 30*time.Second, rateErr.RetryAfter)
}
