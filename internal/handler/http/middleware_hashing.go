package http

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-backup-keeper/internal/app"
	"github.com/MKhiriev/go-backup-keeper/internal/logger"
	"github.com/MKhiriev/go-backup-keeper/internal/utils"
	"github.com/MKhiriev/go-backup-keeper/models"
)

// withIntegrityCheck compares the HashSHA256 header with the HMAC of the
// request body. It is a no-op when the server has no hash key.
func (h *Handler) withIntegrityCheck(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hasher == nil {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)
		log.Debug().Str("func", "*Handler.withIntegrityCheck").Msg("checking hash begins")

		body, err := io.ReadAll(r.Body)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				utils.WriteError(w, app.MsgBlobTooLarge, http.StatusRequestEntityTooLarge)
				return
			}
			log.Err(err).Str("func", "*Handler.withIntegrityCheck").Msg("failed to read request body")
			utils.WriteError(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		signature := r.Header.Get(models.HeaderHash)
		if signature == "" || !h.hasher.Verify(body, signature) {
			log.Warn().Str("func", "*Handler.withIntegrityCheck").
				Str("hash from request", signature).
				Msg("hashes are not equal")
			utils.WriteError(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withBodyLimit caps the request body at maxBlobSize. Reads past the cap
// fail with *http.MaxBytesError.
func (h *Handler) withBodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.maxBlobSize > 0 {
			if r.ContentLength > h.maxBlobSize {
				utils.WriteError(w, app.MsgBlobTooLarge, http.StatusRequestEntityTooLarge)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, h.maxBlobSize)
		}
		next.ServeHTTP(w, r)
	})
}
