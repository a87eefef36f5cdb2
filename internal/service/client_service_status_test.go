package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-backup-keeper/internal/mock"
	"github.com/MKhiriev/go-backup-keeper/internal/store"
	"github.com/MKhiriev/go-backup-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClientStatusService_LastAttempt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	meta := mock.NewMockSyncMetadataRepository(ctrl)
	svc := NewClientStatusService(meta, mock.NewMockSafetyBackupStore(ctrl))
	ctx := context.Background()

	want := models.SyncMetadata{ID: models.SyncMetadataID, Operation: models.OperationBackup, LastAttemptSuccess: true}
	meta.EXPECT().GetSyncMetadata(ctx).Return(want, nil)

	got, found, err := svc.LastAttempt(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, want, got)
}

func TestClientStatusService_LastAttempt_NeverAttempted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	meta := mock.NewMockSyncMetadataRepository(ctrl)
	svc := NewClientStatusService(meta, mock.NewMockSafetyBackupStore(ctrl))

	meta.EXPECT().GetSyncMetadata(gomock.Any()).Return(models.SyncMetadata{}, store.ErrSyncMetadataNotFound)

	_, found, err := svc.LastAttempt(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestClientStatusService_LastAttempt_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	meta := mock.NewMockSyncMetadataRepository(ctrl)
	svc := NewClientStatusService(meta, mock.NewMockSafetyBackupStore(ctrl))
	dbErr := errors.New("database is locked")

	meta.EXPECT().GetSyncMetadata(gomock.Any()).Return(models.SyncMetadata{}, dbErr)

	_, found, err := svc.LastAttempt(context.Background())
	assert.ErrorIs(t, err, dbErr)
	assert.False(t, found)
}

func TestClientStatusService_SafetyBackups(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snapshots := mock.NewMockSafetyBackupStore(ctrl)
	svc := NewClientStatusService(mock.NewMockSyncMetadataRepository(ctrl), snapshots)

	want := []models.SafetyBackup{{ID: "b"}, {ID: "a"}}
	snapshots.EXPECT().ListSafetyBackups(gomock.Any()).Return(want, nil)

	got, err := svc.SafetyBackups(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
