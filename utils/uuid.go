package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string
func GenerateID() string {
	return uuid.New().String()
}

// ShortID returns the first n hex characters of a UUID, ignoring dashes.
func ShortID(id string, n int) string {
	compact := strings.ReplaceAll(id, "-", "")
	if len(compact) <= n {
		return compact
	}
	return compact[:n]
}
