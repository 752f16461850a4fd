package utils

import "github.com/google/uuid"

// NewTraceID returns a time-ordered UUID suitable for request tracing.
// Falls back to a random v4 UUID if v7 generation fails.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
