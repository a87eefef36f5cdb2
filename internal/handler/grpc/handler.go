package grpc

import (
	"google.golang.org/grpc"

	"github.com/MKhiriev/go-backup-keeper/internal/config"
	"github.com/MKhiriev/go-backup-keeper/internal/logger"
	"github.com/MKhiriev/go-backup-keeper/internal/ratelimit"
	"github.com/MKhiriev/go-backup-keeper/internal/rpc"
	"github.com/MKhiriev/go-backup-keeper/internal/service"
	"github.com/MKhiriev/go-backup-keeper/internal/utils"
)

// Handler is the root gRPC transport handler.
//
// It implements [rpc.BlobStoreServer] on top of the blob service and carries
// the unary interceptors the server installs in front of it. A handler
// instance is created once at startup and shared by the gRPC server.
type Handler struct {
	services *service.Services
	limiter  ratelimit.Limiter

	// hasher verifies UploadRequest.Hash; nil disables the check.
	hasher *utils.Hasher

	logger *logger.Logger
}

var _ rpc.BlobStoreServer = (*Handler)(nil)

// NewHandler constructs a [Handler]. A nil limiter means no rate limiting.
func NewHandler(services *service.Services, limiter ratelimit.Limiter, cfg *config.ServerConfig, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	if limiter == nil {
		limiter = ratelimit.Unlimited{}
	}
	return &Handler{
		services: services,
		limiter:  limiter,
		hasher:   utils.NewHasher(cfg.App.HashKey),
		logger:   logger,
	}
}

// Register attaches the blob store service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	rpc.RegisterBlobStoreServer(s, h)
}

// UnaryInterceptors returns the interceptor chain in execution order.
func (h *Handler) UnaryInterceptors() []grpc.UnaryServerInterceptor {
	return []grpc.UnaryServerInterceptor{
		h.withTraceID,
		h.withLogging,
		withMetrics,
		h.withRateLimit,
	}
}
