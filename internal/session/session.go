// Package session issues the opaque identifiers that browser clients echo
// back on every IVR request. Identifiers are never stored and have no
// bearing on classification.
package session

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	prefix = "session-"

	// MaxLen is the longest session id accepted from a client.
	MaxLen = 128
)

// New returns a fresh session id.
func New() string {
	return prefix + uuid.NewString()
}

// Valid reports whether id is acceptable as a client-supplied session id.
// Clients may mint their own ids, so any short printable string passes.
func Valid(id string) bool {
	if id == "" || utf8.RuneCountInString(id) > MaxLen {
		return false
	}
	return !strings.ContainsFunc(id, func(r rune) bool {
		return r < 32 || r == 127
	})
}

// Issued reports whether id has the shape produced by New.
func Issued(id string) bool {
	rest, ok := strings.CutPrefix(id, prefix)
	if !ok {
		return false
	}
	_, err := uuid.Parse(rest)
	return err == nil
}
