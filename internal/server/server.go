// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-backup-keeper/internal/config"
	"github.com/MKhiriev/go-backup-keeper/internal/handler"
	"github.com/MKhiriev/go-backup-keeper/internal/logger"
	"github.com/MKhiriev/go-backup-keeper/internal/workers"
)

const shutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	workers    *workers.Workers

	httpAddress string
	grpcAddress string

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, backgroundWorkers *workers.Workers, cfg *config.ServerConfig, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{
		workers:     backgroundWorkers,
		httpAddress: cfg.Server.HTTPAddress,
		grpcAddress: cfg.Server.GRPCAddress,
		logger:      logger,
	}

	if cfg.Server.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg.Server, logger)
	}
	if cfg.Server.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer serves until ctx is cancelled or SIGTERM, SIGINT or SIGQUIT
// arrives, then shuts the listeners down gracefully.
func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	listeners, err := s.listen()
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)

	if s.httpServer != nil {
		s.logger.Info().Str("address", listeners.http.Addr().String()).Msg("Launching HTTP server")
		g.Go(func() error { return s.httpServer.serve(listeners.http) })
	}
	if s.gRPCServer != nil {
		s.logger.Info().Str("address", listeners.grpc.Addr().String()).Msg("Launching GRPC server")
		g.Go(func() error { return s.gRPCServer.serve(listeners.grpc) })
	}
	if s.workers != nil {
		g.Go(func() error { return s.workers.Run(ctx) })
	}

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		s.Shutdown(shutdownCtx)
		return nil
	})

	err = g.Wait()
	s.logger.Info().Msg("server Shutdown gracefully")
	return err
}

func (s *server) Shutdown(ctx context.Context) {
	if s.httpServer != nil {
		s.httpServer.Shutdown(ctx)
	}
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown(ctx)
	}
}

type listeners struct {
	http net.Listener
	grpc net.Listener
}

func (s *server) listen() (listeners, error) {
	var l listeners
	var err error

	if s.httpServer != nil {
		if l.http, err = net.Listen("tcp", s.httpAddress); err != nil {
			return l, fmt.Errorf("listen HTTP on %s: %w", s.httpAddress, err)
		}
	}
	if s.gRPCServer != nil {
		if l.grpc, err = net.Listen("tcp", s.grpcAddress); err != nil {
			if l.http != nil {
				l.http.Close()
			}
			return l, fmt.Errorf("listen gRPC on %s: %w", s.grpcAddress, err)
		}
	}
	return l, nil
}
