package config

import "errors"

// Validation errors returned by the client and server config views when
// required configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero queue interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidGatewayConfigs indicates a negative cache freshness window.
	ErrInvalidGatewayConfigs = errors.New("invalid gateway configuration")
	// ErrInvalidPathConfigs indicates overlapping or empty cache keys and
	// remote paths.
	ErrInvalidPathConfigs = errors.New("invalid path configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAuthConfigs indicates missing token signing settings.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
)
