package model

import "github.com/google/uuid"

// NewID generates an opaque identifier for a new entity.
func NewID() string {
	return uuid.NewString()
}
