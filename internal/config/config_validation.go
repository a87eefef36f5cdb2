// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.SafetyBackupPath == "" || cfg.Storage.SafetyBackupRetention < 1 {
		return ErrInvalidStorageConfigs
	}

	switch cfg.Adapter.Protocol {
	case ProtocolHTTP:
		if cfg.Adapter.HTTPAddress == "" {
			return ErrInvalidAdapterConfigs
		}
	case ProtocolGRPC:
		if cfg.Adapter.GRPCAddress == "" {
			return ErrInvalidAdapterConfigs
		}
	default:
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DSN == "" && cfg.Storage.BinaryDataDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Limits.MaxBlobSize <= 0 || cfg.Limits.RateRequests < 0 {
		return ErrInvalidLimitsConfigs
	}
	if cfg.Limits.RateRequests > 0 && cfg.Limits.RateWindow <= 0 {
		return ErrInvalidLimitsConfigs
	}

	if cfg.Workers.BlobTTL < 0 || (cfg.Workers.BlobTTL > 0 && cfg.Workers.JanitorInterval <= 0) {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
