// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerStorage selects where blobs are kept. DSN takes precedence over
// BinaryDataDir.
type ServerStorage struct {
	DSN           string
	BinaryDataDir string
}

// ServerLimits configures quota and rate limiting of the blob store.
type ServerLimits struct {
	MaxBlobSize  int64
	RateRequests int
	RateWindow   time.Duration
	RedisAddress string
}

// ServerWorkers configures the background janitor.
type ServerWorkers struct {
	BlobTTL         time.Duration
	JanitorInterval time.Duration
}

// ServerConfig is the configuration of the blob store server.
type ServerConfig struct {
	App     App
	Server  Server
	Storage ServerStorage
	Limits  ServerLimits
	Workers ServerWorkers
}

// GetServerConfig builds and validates the server config view.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := cfg.serverView()
	return serverCfg, serverCfg.validate()
}

func (cfg *StructuredConfig) serverView() *ServerConfig {
	return &ServerConfig{
		App:    cfg.App,
		Server: cfg.Server,
		Storage: ServerStorage{
			DSN:           cfg.Storage.DB.DSN,
			BinaryDataDir: cfg.Storage.Files.BinaryDataDir,
		},
		Limits: ServerLimits{
			MaxBlobSize:  cfg.Limits.MaxBlobSize,
			RateRequests: cfg.Limits.RateRequests,
			RateWindow:   cfg.Limits.RateWindow,
			RedisAddress: cfg.Limits.RedisAddress,
		},
		Workers: ServerWorkers{
			BlobTTL:         cfg.Workers.BlobTTL,
			JanitorInterval: cfg.Workers.JanitorInterval,
		},
	}
}
