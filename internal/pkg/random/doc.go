// Package random produces hex-encoded random tokens.
//
// Bytes come from crypto/rand by default. A Generator can be built over any
// io.Reader so tests can assert exact output from a fixed byte source.
package random
