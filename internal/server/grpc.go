package server

import (
	"context"
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-backup-keeper/internal/config"
	myGRPC "github.com/MKhiriev/go-backup-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-backup-keeper/internal/logger"
)

// grpcMessageOverhead leaves room for the JSON framing around a blob.
const grpcMessageOverhead = 1 << 20

type grpcServer struct {
	server *grpc.Server
	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg *config.ServerConfig, logger *logger.Logger) *grpcServer {
	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(handler.UnaryInterceptors()...),
	}
	if cfg.Limits.MaxBlobSize > 0 {
		// blobs travel base64 encoded inside JSON
		opts = append(opts, grpc.MaxRecvMsgSize(int(cfg.Limits.MaxBlobSize)*4/3+grpcMessageOverhead))
	}
	if cfg.Server.RequestTimeout > 0 {
		opts = append(opts, grpc.ConnectionTimeout(cfg.Server.RequestTimeout))
	}

	srv := grpc.NewServer(opts...)
	handler.Register(srv)

	return &grpcServer{server: srv, logger: logger}
}

func (g *grpcServer) serve(lis net.Listener) error {
	if err := g.server.Serve(lis); err != nil {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

// Shutdown waits for in-flight calls until ctx expires, then stops hard.
func (g *grpcServer) Shutdown(ctx context.Context) {
	g.logger.Info().Msg("GRPC server Shutdown")

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		g.server.Stop()
	}
}
