package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (unknown protocol, missing address for the chosen protocol, or a
	// non-positive request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings (for
	// example, an empty or in-memory DSN on the client, or neither DSN nor
	// blob directory on the server).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidLimitsConfigs indicates a non-positive blob size limit or an
	// inconsistent rate limit.
	ErrInvalidLimitsConfigs = errors.New("invalid limits configuration")
	// ErrInvalidWorkerConfigs indicates a negative TTL or a TTL without a
	// janitor interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
