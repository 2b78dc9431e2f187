package store

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns prefix-XXXXXXXX where X are the first eight hex digits of a random UUID.
func NewID(prefix string) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "-" + hex[:8]
}
