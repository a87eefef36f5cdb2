package config

import "time"

const (
	defaultSafetyBackupRetention = 3
	defaultRequestTimeout        = 30 * time.Second
	defaultMaxBlobSize           = 64 << 20
	defaultRateWindow            = time.Hour
	defaultJanitorInterval       = time.Hour
	defaultProtocol              = ProtocolHTTP
)

// Transport protocols understood by the client adapter.
const (
	ProtocolHTTP = "http"
	ProtocolGRPC = "grpc"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			SafetyBackupRetention: defaultSafetyBackupRetention,
		},
		Server: Server{
			RequestTimeout: defaultRequestTimeout,
		},
		Adapter: Adapter{
			Protocol:       defaultProtocol,
			RequestTimeout: defaultRequestTimeout,
		},
		Workers: Workers{
			JanitorInterval: defaultJanitorInterval,
		},
		Limits: Limits{
			MaxBlobSize: defaultMaxBlobSize,
			RateWindow:  defaultRateWindow,
		},
	}
}
