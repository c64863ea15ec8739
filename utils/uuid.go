package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier
func GenerateID() uuid.UUID {
	return uuid.New()
}

// ParseID parses an identifier from request input; the zero UUID is reported
// as invalid
func ParseID(s string) (uuid.UUID, bool) {
	id, err := uuid.Parse(s)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
