package idgen

import "github.com/google/uuid"

// UUID generates random (v4) identifiers for new sessions.
type UUID struct{}

// NewUUID creates a UUID generator.
func NewUUID() UUID {
	return UUID{}
}

// NewID returns a fresh unique identifier.
func (UUID) NewID() string {
	return uuid.New().String()
}
