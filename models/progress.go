package models

// Stage identifies a step of the backup or restore pipeline.
type Stage string

const (
	StageExport      Stage = "export"
	StageEncrypt     Stage = "encrypt"
	StageUpload      Stage = "upload"
	StageDownload    Stage = "download"
	StageDecrypt     Stage = "decrypt"
	StageValidate    Stage = "validate"
	StageBackupLocal Stage = "backup_local"
	StageRestore     Stage = "restore"
)

// ProgressEvent is reported to the UI while a pipeline runs. Percent is in
// [0, 100] and never decreases within one run.
type ProgressEvent struct {
	Stage   Stage
	Percent int
	Message string
}
