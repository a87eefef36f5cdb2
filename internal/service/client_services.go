package service

import (
	"github.com/MKhiriev/go-backup-keeper/internal/adapter"
	"github.com/MKhiriev/go-backup-keeper/internal/crypto"
	"github.com/MKhiriev/go-backup-keeper/internal/logger"
	"github.com/MKhiriev/go-backup-keeper/internal/store"
	"github.com/MKhiriev/go-backup-keeper/internal/utils"
	"github.com/MKhiriev/go-backup-keeper/internal/validators"
)

type ClientServices struct {
	BackupService  ClientBackupService
	RestoreService ClientRestoreService
	StatusService  ClientStatusService

	// PassphraseValidator enforces the passphrase policy in the forms
	// before an operation is started.
	PassphraseValidator validators.Validator
}

func NewClientServices(storages *store.ClientStorages, transport adapter.Transport, logger *logger.Logger) *ClientServices {
	cipher := crypto.NewCipherEngine()

	return &ClientServices{
		BackupService: NewClientBackupService(storages.LocalData, storages.SyncMetadata, cipher, transport, logger),
		RestoreService: NewClientRestoreService(
			storages.LocalData,
			storages.SyncMetadata,
			storages.SafetyBackups,
			cipher,
			transport,
			utils.NewUUIDGenerator(),
			logger,
		),
		StatusService:       NewClientStatusService(storages.SyncMetadata, storages.SafetyBackups),
		PassphraseValidator: validators.NewPassphraseValidator(validators.DefaultMinPassphraseLength),
	}
}
