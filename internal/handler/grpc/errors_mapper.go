package grpc

import (
	"context"
	"errors"
	"strconv"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-backup-keeper/internal/app"
	"github.com/MKhiriev/go-backup-keeper/internal/logger"
	"github.com/MKhiriev/go-backup-keeper/internal/rpc"
	"github.com/MKhiriev/go-backup-keeper/internal/store"
	"github.com/MKhiriev/go-backup-keeper/internal/validators"
)

type statusReply struct {
	code    codes.Code
	message string
}

var errorCodeMap = map[error]statusReply{
	validators.ErrInvalidStorageKey:   {codes.InvalidArgument, app.MsgInvalidStorageKeyProvided},
	validators.ErrBlobTooShort:        {codes.InvalidArgument, app.MsgBlobTooShort},
	validators.ErrInvalidOriginalSize: {codes.InvalidArgument, app.MsgInvalidUploadMetadata},
	validators.ErrInvalidBackupTime:   {codes.InvalidArgument, app.MsgInvalidUploadMetadata},
	validators.ErrBlobTooLarge:        {codes.FailedPrecondition, app.MsgBlobTooLarge},

	store.ErrBlobNotFound:       {codes.NotFound, app.MsgBlobNotFound},
	store.ErrStorageUnavailable: {codes.Unavailable, app.MsgStorageUnavailable},
}

// toStatus converts a service error into a gRPC status. A storage outage
// also sets the backup-status trailer so clients can tell it apart from a
// broken connection.
func toStatus(ctx context.Context, err error) error {
	for target, reply := range errorCodeMap {
		if !errors.Is(err, target) {
			continue
		}
		if reply.code == codes.Unavailable {
			setTrailer(ctx, metadata.Pairs(rpc.StatusTrailer, rpc.StatusStorageUnavailable))
			logger.FromContext(ctx).Err(err).Msg("storage unavailable")
		}
		return status.Error(reply.code, reply.message)
	}

	logger.FromContext(ctx).Err(err).Msg("request failed")
	return status.Error(codes.Internal, app.MsgInternalServerError)
}

func rateLimitedStatus(ctx context.Context, retryAfter time.Duration) error {
	setTrailer(ctx, metadata.Pairs(rpc.RetryAfterTrailer, strconv.Itoa(retryAfterSeconds(retryAfter))))
	return status.Error(codes.ResourceExhausted, app.MsgTooManyRequests)
}

func setTrailer(ctx context.Context, md metadata.MD) {
	if err := grpc.SetTrailer(ctx, md); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("failed to set trailer")
	}
}

func retryAfterSeconds(d time.Duration) int {
	seconds := int(d / time.Second)
	if d%time.Second != 0 {
		seconds++
	}
	return max(seconds, 1)
}
