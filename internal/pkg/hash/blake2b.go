package hash

import (
	"golang.org/x/crypto/blake2b"
)

// BLAKE2b256 implements Hash using unkeyed BLAKE2b with a 32-byte digest.
type BLAKE2b256 struct{}

// NewBLAKE2b256 returns a BLAKE2b-256 hasher.
func NewBLAKE2b256() *BLAKE2b256 {
	return &BLAKE2b256{}
}

// Hash returns the 64-char lowercase hex BLAKE2b-256 digest of str.
func (*BLAKE2b256) Hash(str string) ([]byte, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return nil, err
	}

	return hexSum(h, []byte(str)), nil
}

// Verify reports in constant time whether hashed is the digest of str.
func (b *BLAKE2b256) Verify(hashed, str string) bool {
	sum, err := b.Hash(str)
	if err != nil {
		return false
	}

	return verifyHex(hashed, sum)
}
