package random

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrInvalidByteCount indicates a negative byte count.
	ErrInvalidByteCount = errors.New("random: byte count must not be negative")
	// ErrRandomSource indicates the random source could not supply enough bytes.
	ErrRandomSource = errors.New("random: source unavailable")
)

// HexGenerator produces hex strings from random bytes.
type HexGenerator interface {
	// Hex returns byteCount random bytes encoded as lowercase hex.
	Hex(byteCount int) (string, error)
}

// Generator reads random bytes from an io.Reader.
type Generator struct {
	reader io.Reader
}

// New returns a Generator backed by crypto/rand.
func New() *Generator {
	return &Generator{reader: rand.Reader}
}

// NewWithReader returns a Generator that reads from r.
//
// A nil reader falls back to crypto/rand.
func NewWithReader(r io.Reader) *Generator {
	if r == nil {
		r = rand.Reader
	}
	return &Generator{reader: r}
}

// Hex returns byteCount random bytes encoded as lowercase hex.
// The result is always 2*byteCount characters long.
func (g *Generator) Hex(byteCount int) (string, error) {
	if byteCount < 0 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidByteCount, byteCount)
	}
	if byteCount == 0 {
		return "", nil
	}

	buf := make([]byte, byteCount)
	if _, err := io.ReadFull(g.reader, buf); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRandomSource, err)
	}

	return hex.EncodeToString(buf), nil
}

var defaultGenerator = New()

// Hex returns byteCount bytes from crypto/rand encoded as lowercase hex.
func Hex(byteCount int) (string, error) {
	return defaultGenerator.Hex(byteCount)
}
