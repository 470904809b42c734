package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid. All of them are
// startup-fatal: the caller is expected to log and exit.
var (
	// ErrInvalidAuthConfigs indicates missing or invalid security settings
	// (empty password secret, empty token sign key, or a non-positive
	// token duration).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, an empty listen address or zero request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
