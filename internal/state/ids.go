package state

import "github.com/google/uuid"

// NewID returns a fresh object identifier.
func NewID() string {
	return uuid.NewString()
}
