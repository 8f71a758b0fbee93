package hash

import (
	"crypto/subtle"
	"encoding/hex"
	gohash "hash"
)

// Hash produces and verifies digests of a string input.
type Hash interface {
	// Hash returns the hex-encoded digest of str.
	Hash(str string) ([]byte, error)
	// Verify reports whether hashed is the digest of str.
	Verify(hashed, str string) bool
}

func hexSum(h gohash.Hash, data []byte) []byte {
	h.Write(data)
	sum := h.Sum(nil)

	out := make([]byte, hex.EncodedLen(len(sum)))
	hex.Encode(out, sum)
	return out
}

func verifyHex(hashed string, expected []byte) bool {
	return subtle.ConstantTimeCompare([]byte(hashed), expected) == 1
}
