// Package config reads typed configuration values.
package config

import (
	"io"
	"time"
)

// Config retrieves configuration values by dotted key (for example
// "app.server.http.address"). Missing keys yield the zero value.
type Config interface {
	io.Closer

	// GetBool returns the value for key as a bool.
	GetBool(key string) bool
	// GetInt returns the value for key as an int.
	GetInt(key string) int
	// GetFloat64 returns the value for key as a float64.
	GetFloat64(key string) float64
	// GetString returns the value for key as a string.
	GetString(key string) string
	// GetSecond reads an integer value for key and returns it as seconds.
	GetSecond(key string) time.Duration
	// GetArray returns the value for key as a string slice. The value may be a
	// list or a comma separated string; blank elements are dropped.
	GetArray(key string) []string
}
