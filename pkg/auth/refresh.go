package auth

import (
	"crypto/rand"
	"encoding/hex"
)

// NewRefreshToken returns an opaque 256-bit token. It carries no claims;
// the server-side token store is the source of truth.
func NewRefreshToken() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		// rand.Read only fails when the OS entropy source is broken.
		panic(err)
	}
	return hex.EncodeToString(buf)
}
