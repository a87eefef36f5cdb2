// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/MKhiriev/go-backup-keeper/internal/logger"
	"github.com/MKhiriev/go-backup-keeper/models"
)

var bucketSafetyBackups = []byte("safety_backups")

// boltSafetyBackupStore keeps snapshots in a bbolt file next to the main
// database. Keys are UUIDv7 strings, so byte order is creation order and the
// first key is always the oldest.
type boltSafetyBackupStore struct {
	db        *bolt.DB
	retention int
	logger    *logger.Logger
}

// NewBoltSafetyBackupStore opens (or creates) the snapshot file at path with
// 0600 permissions. At most retention snapshots are kept.
func NewBoltSafetyBackupStore(path string, retention int, logger *logger.Logger) (SafetyBackupStore, error) {
	if retention < 1 {
		return nil, fmt.Errorf("safety backup retention must be positive, got %d", retention)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create safety backup dir: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt db: %w", err)
	}

	if err = db.Update(func(tx *bolt.Tx) error {
		_, bErr := tx.CreateBucketIfNotExists(bucketSafetyBackups)
		return bErr
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("init buckets: %w", err)
	}

	return &boltSafetyBackupStore{db: db, retention: retention, logger: logger}, nil
}

func (s *boltSafetyBackupStore) Close() error {
	return s.db.Close()
}

// SaveSafetyBackup implements [SafetyBackupStore]. The write and the
// eviction happen in one bbolt transaction.
func (s *boltSafetyBackupStore) SaveSafetyBackup(ctx context.Context, snapshot models.SafetyBackup) error {
	log := logger.FromContext(ctx)

	if snapshot.ID == "" {
		return fmt.Errorf("safety backup id is empty")
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal safety backup: %w", err)
	}

	var evicted int
	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSafetyBackups)
		if err := b.Put([]byte(snapshot.ID), data); err != nil {
			return err
		}

		var keys [][]byte
		c := b.Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			keys = append(keys, bytes.Clone(k))
		}
		if len(keys) <= s.retention {
			return nil
		}

		stale := keys[:len(keys)-s.retention]
		for _, k := range stale {
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		evicted = len(stale)
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "boltSafetyBackupStore.SaveSafetyBackup").Msg("failed to store safety backup")
		return fmt.Errorf("store safety backup: %w", err)
	}

	log.Debug().
		Str("func", "boltSafetyBackupStore.SaveSafetyBackup").
		Str("id", snapshot.ID).
		Int("evicted", evicted).
		Msg("safety backup stored")
	return nil
}

func (s *boltSafetyBackupStore) GetSafetyBackup(ctx context.Context, id string) (models.SafetyBackup, error) {
	var snapshot models.SafetyBackup
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketSafetyBackups).Get([]byte(id))
		if v == nil {
			return ErrSafetyBackupNotFound
		}
		return decodeSafetyBackup(v, &snapshot)
	})
	return snapshot, err
}

func (s *boltSafetyBackupStore) LatestSafetyBackup(ctx context.Context) (models.SafetyBackup, error) {
	var snapshot models.SafetyBackup
	err := s.db.View(func(tx *bolt.Tx) error {
		_, v := tx.Bucket(bucketSafetyBackups).Cursor().Last()
		if v == nil {
			return ErrSafetyBackupNotFound
		}
		return decodeSafetyBackup(v, &snapshot)
	})
	return snapshot, err
}

// ListSafetyBackups implements [SafetyBackupStore].
func (s *boltSafetyBackupStore) ListSafetyBackups(ctx context.Context) ([]models.SafetyBackup, error) {
	var list []models.SafetyBackup
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketSafetyBackups).Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			var snapshot models.SafetyBackup
			if err := decodeSafetyBackup(v, &snapshot); err != nil {
				return err
			}
			snapshot.Tables = nil
			list = append(list, snapshot)
		}
		return nil
	})
	return list, err
}

// decodeSafetyBackup keeps numbers as json.Number so integer ids survive.
func decodeSafetyBackup(data []byte, snapshot *models.SafetyBackup) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(snapshot); err != nil {
		return fmt.Errorf("decode safety backup: %w", err)
	}
	return nil
}
