// Package hash provides hex-encoded digests behind a small interface.
//
// MD5 is kept for compatibility with existing producers of MD5 identifiers
// and checksums. It is broken for collision resistance and must not be used
// where integrity or secrecy matters; use HMACSHA256 for keyed digests.
package hash
