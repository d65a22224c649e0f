// Package env provides environment variable providers.
package env

import (
	"os"

	"go.trai.ch/cargo-open/internal/core/ports"
)

// OS implements ports.Environment using the process environment.
type OS struct{}

// NewOS creates a new OS environment provider.
func NewOS() *OS {
	return &OS{}
}

// Getenv returns the value of the environment variable named by key.
func (OS) Getenv(key string) string {
	return os.Getenv(key)
}

// Map implements ports.Environment over a fixed set of variables.
type Map map[string]string

// Getenv returns the value stored for key, or "" if there is none.
func (m Map) Getenv(key string) string {
	return m[key]
}

var (
	_ ports.Environment = OS{}
	_ ports.Environment = Map{}
)
