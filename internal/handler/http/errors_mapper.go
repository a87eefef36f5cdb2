package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-backup-keeper/internal/app"
	"github.com/MKhiriev/go-backup-keeper/internal/store"
	"github.com/MKhiriev/go-backup-keeper/internal/validators"
)

type errorReply struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorReply{
	ErrInvalidBackupTimestamp: {http.StatusBadRequest, app.MsgInvalidUploadMetadata},
	ErrInvalidOriginalSize:    {http.StatusBadRequest, app.MsgInvalidUploadMetadata},

	validators.ErrInvalidStorageKey:   {http.StatusBadRequest, app.MsgInvalidStorageKeyProvided},
	validators.ErrBlobTooShort:        {http.StatusBadRequest, app.MsgBlobTooShort},
	validators.ErrInvalidOriginalSize: {http.StatusBadRequest, app.MsgInvalidUploadMetadata},
	validators.ErrInvalidBackupTime:   {http.StatusBadRequest, app.MsgInvalidUploadMetadata},
	validators.ErrBlobTooLarge:        {http.StatusRequestEntityTooLarge, app.MsgBlobTooLarge},

	store.ErrBlobNotFound:       {http.StatusNotFound, app.MsgBlobNotFound},
	store.ErrStorageUnavailable: {http.StatusServiceUnavailable, app.MsgStorageUnavailable},
}

func replyFromError(err error) errorReply {
	for target, reply := range errorStatusMap {
		if errors.Is(err, target) {
			return reply
		}
	}
	return errorReply{http.StatusInternalServerError, app.MsgInternalServerError}
}
