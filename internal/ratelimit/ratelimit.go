// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ratelimit throttles blob store clients. The in-memory limiter is a
// per-client token bucket; the Redis limiter is a fixed window shared by all
// server instances.
package ratelimit

import (
	"context"
	"time"

	"github.com/MKhiriev/go-backup-keeper/internal/config"
	"github.com/MKhiriev/go-backup-keeper/internal/logger"
)

// Limiter decides whether a request from key may proceed.
type Limiter interface {
	// Allow reports whether the request may proceed. When it may not,
	// retryAfter is how long the client should wait.
	Allow(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error)
	Close() error
}

// New picks the limiter from cfg: none when RateRequests is not positive,
// Redis when an address is set, in-memory otherwise.
func New(ctx context.Context, cfg config.ServerLimits, logger *logger.Logger) (Limiter, error) {
	switch {
	case cfg.RateRequests <= 0:
		logger.Info().Msg("rate limiting is disabled")
		return Unlimited{}, nil
	case cfg.RedisAddress != "":
		logger.Info().Str("redis", cfg.RedisAddress).Msg("using redis rate limiter")
		return NewRedisLimiter(ctx, cfg.RedisAddress, cfg.RateRequests, cfg.RateWindow)
	default:
		logger.Info().Int("requests", cfg.RateRequests).Dur("window", cfg.RateWindow).Msg("using in-memory rate limiter")
		return NewMemoryLimiter(cfg.RateRequests, cfg.RateWindow), nil
	}
}

// Unlimited lets everything through.
type Unlimited struct{}

func (Unlimited) Allow(context.Context, string) (bool, time.Duration, error) { return true, 0, nil }

func (Unlimited) Close() error { return nil }
