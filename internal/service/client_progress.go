package service

import (
	"github.com/MKhiriev/go-backup-keeper/internal/logger"
	"github.com/MKhiriev/go-backup-keeper/models"
)

// progressEmitter forwards events to a ProgressFunc, clamping percent so the
// sequence seen by the caller never goes backwards or past 100.
type progressEmitter struct {
	onProgress ProgressFunc
	last       int
	logger     *logger.Logger
}

func newProgressEmitter(onProgress ProgressFunc, logger *logger.Logger) *progressEmitter {
	return &progressEmitter{onProgress: onProgress, logger: logger}
}

func (p *progressEmitter) emit(stage models.Stage, percent int, message string) {
	if p.onProgress == nil {
		return
	}

	percent = min(max(percent, p.last), 100)
	p.last = percent

	defer func() {
		if r := recover(); r != nil {
			p.logger.Error().
				Str("func", "progressEmitter.emit").
				Str("stage", string(stage)).
				Interface("panic", r).
				Msg("progress callback panicked")
		}
	}()

	p.onProgress(models.ProgressEvent{Stage: stage, Percent: percent, Message: message})
}
