package ports

import "go.trai.ch/cargo-open/internal/core/domain"

// SourceLocator maps resolved packages to their unpacked sources in the cargo cache.
//
// Cargo does not record where it unpacks sources. Implementations reproduce
// cargo's directory naming convention, so their output silently diverges
// when cargo changes that convention.
//
//go:generate mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type SourceLocator interface {
	// CacheRoot returns the cargo home directory.
	CacheRoot() (string, error)

	// SourcePath derives the directory holding the sources of pkg below cacheRoot.
	// It performs no filesystem access.
	SourcePath(pkg domain.PackageIdentity, cacheRoot string) (string, error)

	// Probe returns existing directories below cacheRoot that hold the sources
	// of pkg under any registry directory of the same host, sorted.
	Probe(pkg domain.PackageIdentity, cacheRoot string) ([]string, error)
}
