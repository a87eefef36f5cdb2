// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/MKhiriev/go-backup-keeper/internal/config"
	"github.com/MKhiriev/go-backup-keeper/internal/crypto"
	"github.com/MKhiriev/go-backup-keeper/internal/logger"
	"github.com/MKhiriev/go-backup-keeper/internal/rpc"
	"github.com/MKhiriev/go-backup-keeper/internal/utils"
	"github.com/MKhiriev/go-backup-keeper/models"
)

type grpcTransport struct {
	conn    *grpc.ClientConn
	client  rpc.BlobStoreClient
	hasher  *utils.Hasher
	timeout time.Duration

	logger *logger.Logger
}

// NewGRPCTransport dials adapterCfg.GRPCAddress lazily and returns the gRPC
// implementation of [Transport]. Extra dial options are appended after the
// defaults (plaintext credentials).
func NewGRPCTransport(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger, opts ...grpc.DialOption) (Transport, error) {
	if adapterCfg.GRPCAddress == "" {
		return nil, fmt.Errorf("invalid adapter grpc address: empty address")
	}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, opts...)

	conn, err := grpc.NewClient(adapterCfg.GRPCAddress, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("create grpc client: %w", err)
	}

	return &grpcTransport{
		conn:    conn,
		client:  rpc.NewBlobStoreClient(conn),
		hasher:  utils.NewHasher(appCfg.HashKey),
		timeout: adapterCfg.RequestTimeout,
		logger:  logger,
	}, nil
}

func (g *grpcTransport) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, g.timeout)
}

// Upload implements [Transport].
func (g *grpcTransport) Upload(ctx context.Context, blob []byte, storageKey string, meta models.UploadMetadata) (models.UploadResult, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	var trailer metadata.MD
	resp, err := g.client.Upload(ctx, &rpc.UploadRequest{
		StorageKey:   storageKey,
		Blob:         blob,
		BackupTime:   meta.Timestamp,
		OriginalSize: meta.OriginalSize,
		Hash:         g.hasher.SumHex(blob),
	}, grpc.Trailer(&trailer))
	if err != nil {
		g.logger.Err(err).
			Str("func", "grpcTransport.Upload").
			Str("storage_key_hash", crypto.StorageKeyHash(storageKey)).
			Msg("upload call failed")
		return models.UploadResult{}, mapGRPCError(err, trailer)
	}

	return *resp, nil
}

// Download implements [Transport].
func (g *grpcTransport) Download(ctx context.Context, storageKey string) ([]byte, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	var trailer metadata.MD
	resp, err := g.client.Download(ctx, &rpc.DownloadRequest{StorageKey: storageKey}, grpc.Trailer(&trailer))
	if err != nil {
		g.logger.Err(err).
			Str("func", "grpcTransport.Download").
			Str("storage_key_hash", crypto.StorageKeyHash(storageKey)).
			Msg("download call failed")
		return nil, mapGRPCError(err, trailer)
	}

	return resp.Blob, nil
}

func (g *grpcTransport) Close() error {
	return g.conn.Close()
}
