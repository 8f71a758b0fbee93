package hash

import (
	"crypto/hmac"
	"crypto/sha256"
)

// HMACSHA256 implements Hash using HMAC with SHA-256.
type HMACSHA256 struct {
	secret []byte
}

// NewHMACSHA256 creates a new hasher keyed with secret.
func NewHMACSHA256(secret string) *HMACSHA256 {
	return &HMACSHA256{secret: []byte(secret)}
}

// Hash returns the hex-encoded HMAC-SHA256 of str.
func (s *HMACSHA256) Hash(str string) ([]byte, error) {
	return hexSum(hmac.New(sha256.New, s.secret), []byte(str)), nil
}

// Verify checks in constant time whether hashed is the HMAC of str.
func (s *HMACSHA256) Verify(hashed, str string) bool {
	return verifyHex(hashed, hexSum(hmac.New(sha256.New, s.secret), []byte(str)))
}
