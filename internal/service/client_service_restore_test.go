package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-backup-keeper/internal/adapter"
	"github.com/MKhiriev/go-backup-keeper/internal/app"
	"github.com/MKhiriev/go-backup-keeper/internal/crypto"
	"github.com/MKhiriev/go-backup-keeper/internal/envelope"
	"github.com/MKhiriev/go-backup-keeper/internal/logger"
	"github.com/MKhiriev/go-backup-keeper/internal/mock"
	"github.com/MKhiriev/go-backup-keeper/internal/store"
	"github.com/MKhiriev/go-backup-keeper/internal/utils"
	"github.com/MKhiriev/go-backup-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type staticIDs string

func (s staticIDs) Generate() string { return string(s) }

// restoreEnv wires the real SQLite and bbolt stores with an in-memory server.
type restoreEnv struct {
	storages  *store.ClientStorages
	transport *memTransport
	backup    ClientBackupService
	restore   ClientRestoreService
}

func newRestoreEnv(t *testing.T) *restoreEnv {
	t.Helper()
	storages := newTestClientStorages(t)
	transport := newMemTransport()
	cipher := crypto.NewCipherEngine()

	return &restoreEnv{
		storages:  storages,
		transport: transport,
		backup:    NewClientBackupService(storages.LocalData, storages.SyncMetadata, cipher, transport, logger.Nop()),
		restore: NewClientRestoreService(
			storages.LocalData, storages.SyncMetadata, storages.SafetyBackups,
			cipher, transport, utils.NewUUIDGenerator(), logger.Nop(),
		),
	}
}

// uploadPayload encrypts raw as a backup under passphrase, bypassing export.
func (e *restoreEnv) uploadPayload(t *testing.T, passphrase string, raw []byte) {
	t.Helper()
	secret := crypto.NewSecret(passphrase)
	blob, err := crypto.NewCipherEngine().Encrypt(raw, secret)
	require.NoError(t, err)
	e.transport.blobs[crypto.DeriveStorageKey(secret)] = blob
}

func (e *restoreEnv) lastMeta(t *testing.T) models.SyncMetadata {
	t.Helper()
	meta, err := e.storages.SyncMetadata.GetSyncMetadata(context.Background())
	require.NoError(t, err)
	return meta
}

func TestClientRestoreService_RoundTrip(t *testing.T) {
	env := newRestoreEnv(t)
	ctx := context.Background()
	passphrase := "correct-horse-battery"

	seedTables(t, env.storages.LocalData, aliceTables())
	_, err := env.backup.CreateBackup(ctx, passphrase, nil)
	require.NoError(t, err)

	seedTables(t, env.storages.LocalData, bobTables())

	progress := &progressRecorder{}
	res, err := env.restore.RestoreBackup(ctx, passphrase, progress.record)
	require.NoError(t, err)

	assert.Equal(t, aliceTables(), exportTables(t, env.storages.LocalData))
	assert.Equal(t, 3, res.TablesRestored)
	assert.Equal(t, 2, res.RowsRestored)
	assert.Equal(t, 2, res.SchemaVersion)
	assert.NotEmpty(t, res.SafetyBackupID)

	assertMonotonic(t, progress.events)
	assert.Equal(t, []models.Stage{
		models.StageDownload,
		models.StageDecrypt,
		models.StageValidate,
		models.StageBackupLocal,
		models.StageRestore,
	}, stagesOf(progress.events))
	last := progress.events[len(progress.events)-1]
	assert.Equal(t, models.StageRestore, last.Stage)
	assert.Equal(t, 100, last.Percent)

	snapshot, err := env.storages.SafetyBackups.GetSafetyBackup(ctx, res.SafetyBackupID)
	require.NoError(t, err)
	assert.Equal(t, "Bob", snapshot.Tables["users"][0]["name"])

	meta := env.lastMeta(t)
	assert.Equal(t, models.OperationRestore, meta.Operation)
	assert.True(t, meta.LastAttemptSuccess)
	assert.Positive(t, meta.BlobSizeBytes)
	assert.Equal(t, res.StorageKeyHash, meta.StorageKeyHash)
}

func TestClientRestoreService_WrongPassphraseLeavesDataUntouched(t *testing.T) {
	env := newRestoreEnv(t)
	ctx := context.Background()

	seedTables(t, env.storages.LocalData, aliceTables())
	_, err := env.backup.CreateBackup(ctx, "alpha-beta-gamma-12", nil)
	require.NoError(t, err)

	// Same storage slot, different passphrase: the blob is found but cannot
	// be opened.
	env.transport.blobs[crypto.DeriveStorageKey(crypto.NewSecret("wrong-passphrase-xx"))] =
		env.transport.blobs[crypto.DeriveStorageKey(crypto.NewSecret("alpha-beta-gamma-12"))]

	seedTables(t, env.storages.LocalData, bobTables())

	_, err = env.restore.RestoreBackup(ctx, "wrong-passphrase-xx", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, crypto.ErrWrongPassphraseOrCorruptBlob)
	assert.Equal(t, app.MsgWrongPassphrase, UserMessage(err))

	assert.Equal(t, bobTables(), exportTables(t, env.storages.LocalData))

	snapshots, err := env.storages.SafetyBackups.ListSafetyBackups(ctx)
	require.NoError(t, err)
	assert.Empty(t, snapshots, "no safety backup before decryption succeeds")

	meta := env.lastMeta(t)
	assert.False(t, meta.LastAttemptSuccess)
	require.NotNil(t, meta.ErrorMessage)
	assert.Equal(t, app.MsgWrongPassphrase, *meta.ErrorMessage)
}

func TestClientRestoreService_RateLimited(t *testing.T) {
	env := newRestoreEnv(t)
	env.transport.downloadErr = &adapter.RateLimitError{RetryAfter: 3600 * time.Second}

	_, err := env.restore.RestoreBackup(context.Background(), "correct-horse-battery", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrRateLimited)
	assert.Equal(t, "too many requests, try again in 60 minutes", UserMessage(err))

	meta := env.lastMeta(t)
	require.NotNil(t, meta.ErrorMessage)
	assert.Equal(t, "too many requests, try again in 60 minutes", *meta.ErrorMessage)
}

func TestClientRestoreService_ValidationGate(t *testing.T) {
	missingSymptoms := `{"version":1,"timestamp":"2026-01-01T00:00:00Z","schemaVersion":2,"data":{"users":[]}}`
	futureVersion := `{"version":2,"timestamp":"2026-01-01T00:00:00Z","schemaVersion":2,"data":{"users":[],"symptoms":[]}}`
	noVersion := `{"timestamp":"2026-01-01T00:00:00Z","schemaVersion":2,"data":{"users":[],"symptoms":[]}}`

	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{name: "missing critical table", raw: missingSymptoms, wantErr: envelope.ErrMissingCriticalTable},
		{name: "unsupported version", raw: futureVersion, wantErr: envelope.ErrUnsupportedEnvelopeVersion},
		{name: "missing version", raw: noVersion, wantErr: envelope.ErrUnsupportedEnvelopeVersion},
		{name: "not json", raw: "definitely not json", wantErr: envelope.ErrMalformedPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newRestoreEnv(t)
			seedTables(t, env.storages.LocalData, bobTables())
			env.uploadPayload(t, "correct-horse-battery", []byte(tt.raw))

			_, err := env.restore.RestoreBackup(context.Background(), "correct-horse-battery", nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, app.MsgBackupIncompatible, UserMessage(err))

			assert.Equal(t, bobTables(), exportTables(t, env.storages.LocalData))
		})
	}
}

func TestClientRestoreService_MalformedBlob(t *testing.T) {
	env := newRestoreEnv(t)
	passphrase := "correct-horse-battery"
	env.transport.blobs[crypto.DeriveStorageKey(crypto.NewSecret(passphrase))] = make([]byte, 27)

	_, err := env.restore.RestoreBackup(context.Background(), passphrase, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, envelope.ErrMalformedBlob)
	assert.Equal(t, app.MsgBackupCorrupted, UserMessage(err))
}

func TestClientRestoreService_NotFound(t *testing.T) {
	env := newRestoreEnv(t)

	_, err := env.restore.RestoreBackup(context.Background(), "correct-horse-battery", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrBlobNotFound)
	assert.Equal(t, app.MsgBackupNotFound, UserMessage(err))
}

func TestClientRestoreService_ApplyFailureRollsBack(t *testing.T) {
	env := newRestoreEnv(t)
	seedTables(t, env.storages.LocalData, bobTables())

	// severity 42 violates the CHECK constraint, so the apply transaction
	// fails half-way through the inserts.
	payload := map[string]any{
		"version":       1,
		"timestamp":     "2026-01-01T00:00:00Z",
		"schemaVersion": 2,
		"data": map[string]any{
			"users": []map[string]any{
				{"id": 1, "name": "Alice", "birth_date": nil, "created_at": "2026-01-01T00:00:00Z"},
			},
			"symptoms": []map[string]any{
				{"id": 1, "user_id": 1, "name": "fever", "severity": 42, "noted_at": "2026-01-01T00:00:00Z", "notes": nil},
			},
		},
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	env.uploadPayload(t, "correct-horse-battery", raw)

	_, err = env.restore.RestoreBackup(context.Background(), "correct-horse-battery", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRestoreFailedRolledBack)
	assert.Equal(t, app.MsgRestoreFailedRolledBack, UserMessage(err))

	assert.Equal(t, bobTables(), exportTables(t, env.storages.LocalData))

	latest, err := env.storages.SafetyBackups.LatestSafetyBackup(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bob", latest.Tables["users"][0]["name"])
}

// ── rollback paths with mocks ────────────────────────────────────────────────

type restoreMocks struct {
	local     *mock.MockLocalDataStore
	meta      *mock.MockSyncMetadataRepository
	snapshots *mock.MockSafetyBackupStore
	cipher    *mock.MockCipherEngine
	transport *mock.MockTransport
}

func newTestRestoreSvc(t *testing.T, ctrl *gomock.Controller) (*clientRestoreService, restoreMocks) {
	t.Helper()
	m := restoreMocks{
		local:     mock.NewMockLocalDataStore(ctrl),
		meta:      mock.NewMockSyncMetadataRepository(ctrl),
		snapshots: mock.NewMockSafetyBackupStore(ctrl),
		cipher:    mock.NewMockCipherEngine(ctrl),
		transport: mock.NewMockTransport(ctrl),
	}

	svc := NewClientRestoreService(m.local, m.meta, m.snapshots, m.cipher, m.transport, staticIDs("snap-1"), logger.Nop()).(*clientRestoreService)
	svc.now = func() time.Time { return fixedNow }
	svc.recorder.now = svc.now

	return svc, m
}

func validPlaintext(t *testing.T) []byte {
	t.Helper()
	raw, err := envelope.SerializePayload(aliceTables(), 2, fixedNow)
	require.NoError(t, err)
	return raw
}

// expectUpToApply sets up a successful download, decrypt and snapshot.
func expectUpToApply(t *testing.T, m restoreMocks) {
	t.Helper()
	m.transport.EXPECT().Download(gomock.Any(), gomock.Any()).Return(make([]byte, 64), nil)
	m.cipher.EXPECT().Decrypt(gomock.Any(), gomock.Any()).Return(validPlaintext(t), nil)
	m.local.EXPECT().ExportAllTables(gomock.Any()).Return(bobTables(), nil)
	m.local.EXPECT().CurrentSchemaVersion(gomock.Any()).Return(2, nil)
	m.snapshots.EXPECT().
		SaveSafetyBackup(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, snapshot models.SafetyBackup) error {
			assert.Equal(t, "snap-1", snapshot.ID)
			assert.Equal(t, fixedNow, snapshot.CreatedAt)
			assert.Equal(t, bobTables(), snapshot.Tables)
			return nil
		})
}

func TestClientRestoreService_RollbackSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestRestoreSvc(t, ctrl)
	applyErr := errors.New("constraint failed")

	expectUpToApply(t, m)
	gomock.InOrder(
		m.local.EXPECT().RestoreTransaction(gomock.Any(), gomock.Any()).Return(applyErr),
		m.local.EXPECT().RestoreTransaction(gomock.Any(), bobTables()).Return(nil),
	)
	m.meta.EXPECT().
		SaveSyncMetadata(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, meta models.SyncMetadata) error {
			assert.False(t, meta.LastAttemptSuccess)
			require.NotNil(t, meta.ErrorMessage)
			assert.Equal(t, app.MsgRestoreFailedRolledBack, *meta.ErrorMessage)
			return nil
		})

	_, err := svc.RestoreBackup(context.Background(), "correct-horse-battery", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRestoreFailedRolledBack)
	assert.ErrorIs(t, err, applyErr)
	assert.NotErrorIs(t, err, ErrRestoreFailed)
}

func TestClientRestoreService_RollbackFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestRestoreSvc(t, ctrl)
	applyErr := errors.New("constraint failed")
	rollbackErr := errors.New("disk full")

	expectUpToApply(t, m)
	gomock.InOrder(
		m.local.EXPECT().RestoreTransaction(gomock.Any(), gomock.Any()).Return(applyErr),
		m.local.EXPECT().RestoreTransaction(gomock.Any(), bobTables()).Return(rollbackErr),
	)
	m.meta.EXPECT().SaveSyncMetadata(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.RestoreBackup(context.Background(), "correct-horse-battery", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRestoreFailed)
	assert.ErrorIs(t, err, applyErr)
	assert.ErrorIs(t, err, rollbackErr)
	assert.Equal(t, app.MsgRestoreFailed, UserMessage(err))
}

func TestClientRestoreService_SnapshotFailureAbortsBeforeApply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestRestoreSvc(t, ctrl)
	boltErr := errors.New("bolt: database not open")

	m.transport.EXPECT().Download(gomock.Any(), gomock.Any()).Return(make([]byte, 64), nil)
	m.cipher.EXPECT().Decrypt(gomock.Any(), gomock.Any()).Return(validPlaintext(t), nil)
	m.local.EXPECT().ExportAllTables(gomock.Any()).Return(bobTables(), nil)
	m.local.EXPECT().CurrentSchemaVersion(gomock.Any()).Return(2, nil)
	m.snapshots.EXPECT().SaveSafetyBackup(gomock.Any(), gomock.Any()).Return(boltErr)
	m.local.EXPECT().RestoreTransaction(gomock.Any(), gomock.Any()).Times(0)
	m.meta.EXPECT().SaveSyncMetadata(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.RestoreBackup(context.Background(), "correct-horse-battery", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, boltErr)
}

func TestClientRestoreService_ApplyIgnoresCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestRestoreSvc(t, ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expectUpToApply(t, m)
	m.local.EXPECT().
		RestoreTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(applyCtx context.Context, _ models.TableSet) error {
			cancel()
			assert.NoError(t, applyCtx.Err(), "apply must not observe caller cancellation")
			return nil
		})
	m.meta.EXPECT().SaveSyncMetadata(gomock.Any(), gomock.Any()).Return(nil)

	res, err := svc.RestoreBackup(ctx, "correct-horse-battery", nil)
	require.NoError(t, err)
	assert.Equal(t, "snap-1", res.SafetyBackupID)
}

func TestClientRestoreService_PanickingProgressCallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestRestoreSvc(t, ctrl)

	expectUpToApply(t, m)
	m.local.EXPECT().RestoreTransaction(gomock.Any(), gomock.Any()).Return(nil)
	m.meta.EXPECT().SaveSyncMetadata(gomock.Any(), gomock.Any()).Return(nil)

	calls := 0
	_, err := svc.RestoreBackup(context.Background(), "correct-horse-battery", func(models.ProgressEvent) {
		calls++
		panic("ui went away")
	})
	require.NoError(t, err)
	assert.Greater(t, calls, 1, "callback keeps being called after a panic")
}

func TestClientRestoreService_EmptyPassphrase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestRestoreSvc(t, ctrl)
	m.transport.EXPECT().Download(gomock.Any(), gomock.Any()).Times(0)
	m.meta.EXPECT().SaveSyncMetadata(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.RestoreBackup(context.Background(), "", nil)
	assert.ErrorIs(t, err, crypto.ErrEmptyPassphrase)
}
