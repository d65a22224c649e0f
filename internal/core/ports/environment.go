// Package ports defines the core interfaces for the application.
package ports

// Environment provides read access to environment variables.
// It is injected wherever process environment is consulted so that callers
// can be tested without mutating the real environment.
//
//go:generate mockgen -source=environment.go -destination=mocks/mock_environment.go -package=mocks
type Environment interface {
	// Getenv returns the value of the variable named by key, or "" if unset.
	Getenv(key string) string
}
