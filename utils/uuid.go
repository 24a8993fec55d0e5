package utils

import (
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// GenerateID returns a new unique identifier string
func GenerateID() string {
	return uuid.New().String()
}

// GenerateOrderID returns a lexically sortable order reference such as
// "ORD-01J9Z3...".
func GenerateOrderID() string {
	return "ORD-" + ulid.Make().String()
}
