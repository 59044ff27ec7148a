package id

import (
	"crypto/rand"
	"encoding/hex"
)

// Generator creates opaque task identifiers.
type Generator interface {
	New() string
}

// RandomHex yields 32 hex characters of randomness; collisions are not a
// concern at personal-tracker scale.
type RandomHex struct{}

func (RandomHex) New() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
