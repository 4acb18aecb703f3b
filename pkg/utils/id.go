package utils

import "github.com/google/uuid"

// NewID generates the opaque entity id used across users, jobs and
// applications.
func NewID() string { return uuid.NewString() }
