package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// HashKey is the HMAC key used by the client for payload integrity checks.
	HashKey string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	HTTPAddress    string
	GRPCAddress    string
	Protocol       string
	RequestTimeout time.Duration
}

// ClientDB contains the local SQLite settings.
type ClientDB struct {
	// DSN is the path of the SQLite database file.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
	// SafetyBackupPath is the bbolt file with pre-restore snapshots.
	SafetyBackupPath string
	// SafetyBackupRetention is how many snapshots are kept.
	SafetyBackupRetention int
}

// ClientConfig is the configuration of the backup client, assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.clientView()
	return clientCfg, clientCfg.validate()
}

func (cfg *StructuredConfig) clientView() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			HashKey: cfg.App.HashKey,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			GRPCAddress:    cfg.Adapter.GRPCAddress,
			Protocol:       cfg.Adapter.Protocol,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
			SafetyBackupPath:      cfg.Storage.SafetyBackupPath,
			SafetyBackupRetention: cfg.Storage.SafetyBackupRetention,
		},
	}
}
