// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"math"
	"net"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-backup-keeper/internal/app"
	"github.com/MKhiriev/go-backup-keeper/internal/logger"
	"github.com/MKhiriev/go-backup-keeper/internal/metrics"
	"github.com/MKhiriev/go-backup-keeper/internal/utils"
	"github.com/MKhiriev/go-backup-keeper/models"
)

// withRateLimit rejects callers that exhausted their quota with 429 and a
// Retry-After header in whole seconds. A failing limiter lets the request
// through.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientKey(r)

		allowed, retryAfter, err := h.limiter.Allow(r.Context(), key)
		if err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.withRateLimit").Msg("rate limiter failed, request allowed")
			next.ServeHTTP(w, r)
			return
		}
		if !allowed {
			metrics.RateLimitedTotal.WithLabelValues("http").Inc()
			w.Header().Set(models.HeaderRetryAfter, strconv.Itoa(retryAfterSeconds(retryAfter.Seconds())))
			utils.WriteError(w, app.MsgTooManyRequests, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func retryAfterSeconds(seconds float64) int {
	return max(int(math.Ceil(seconds)), 1)
}
