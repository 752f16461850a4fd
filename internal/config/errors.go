package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are absent from every source.
var (
	// ErrMissingTokenSignKey indicates that no token signing key was
	// provided. The server never falls back to a built-in secret.
	ErrMissingTokenSignKey = errors.New("token sign key is not configured")

	// ErrMissingDatabaseDSN indicates that no database connection string
	// was provided.
	ErrMissingDatabaseDSN = errors.New("database DSN is not configured")
)
