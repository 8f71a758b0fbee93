package hash

import (
	"crypto/md5" //nolint:gosec // md5 is required for compatibility, not security
	gohash "hash"
)

// MD5 implements Hash using unkeyed MD5.
type MD5 struct{}

// newMD5 is the single construction point of the md5 state.
func newMD5() gohash.Hash {
	return md5.New() //nolint:gosec // compatibility digest, never used for integrity
}

// NewMD5 returns an MD5 hasher.
func NewMD5() *MD5 {
	return &MD5{}
}

// Hash returns the 32-char lowercase hex MD5 digest of str.
func (*MD5) Hash(str string) ([]byte, error) {
	return hexSum(newMD5(), []byte(str)), nil
}

// Verify reports whether hashed equals the MD5 hex digest of str.
func (*MD5) Verify(hashed, str string) bool {
	return verifyHex(hashed, hexSum(newMD5(), []byte(str)))
}

// MD5Hex returns the lowercase hex MD5 digest of input.
func MD5Hex(input []byte) string {
	return string(hexSum(newMD5(), input))
}

// MD5HexString returns the lowercase hex MD5 digest of s.
func MD5HexString(s string) string {
	return MD5Hex([]byte(s))
}
