package service

import "github.com/google/uuid"

// newID returns a prefixed identifier, unique even for calls landing on
// the same clock tick.
func newID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}
