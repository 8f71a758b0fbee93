// Package uid generates string identifiers.
package uid

import "github.com/google/uuid"

// StringID generates string identifiers.
type StringID interface {
	Generate() string
}

// UUID yields time-ordered v7 UUIDs, or random v4 ones if the v7 clock
// sequence cannot be read.
type UUID struct{}

// NewUUID returns a UUID generator.
func NewUUID() *UUID { return &UUID{} }

// Generate returns a new UUID string.
func (*UUID) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
