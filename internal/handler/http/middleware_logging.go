package http

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-backup-keeper/internal/logger"
)

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		method := r.Method
		// path only: the storage key is a secret-derived value
		path := r.URL.Path

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		log.WithLevel(levelForStatus(lw.status)).
			Str("method", method).
			Str("path", redactStorageKey(path)).
			Int("status", lw.status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}

func levelForStatus(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

const backupsPrefix = "/api/backups/"

// redactStorageKey keeps the first eight characters of a storage key in
// backup paths, the same prefix the client shows as its key hash.
func redactStorageKey(path string) string {
	if len(path) <= len(backupsPrefix) || path[:len(backupsPrefix)] != backupsPrefix {
		return path
	}
	key := path[len(backupsPrefix):]
	if len(key) > 8 {
		key = key[:8] + "..."
	}
	return backupsPrefix + key
}
