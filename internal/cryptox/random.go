package cryptox

import (
	"crypto/rand"
	"encoding/hex"
)

// RandomHex returns size random bytes encoded as a hex string of length
// 2*size.
func RandomHex(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
