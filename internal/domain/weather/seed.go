package weather

import (
	"crypto/sha256"
	"encoding/binary"
)

// DeriveSeed maps a location key to a stable seed. The seed equals the first eight hex
// digits of the SHA-256 digest of the key, read as an unsigned integer. An empty key
// yields 0.
func DeriveSeed(location string) uint32 {
	if location == "" {
		return 0
	}
	sum := sha256.Sum256([]byte(location))
	return binary.BigEndian.Uint32(sum[:4])
}
