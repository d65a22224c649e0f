package ports

import "go.trai.ch/cargo-open/internal/core/domain"

// LockfileLoader loads the persisted dependency graph of a cargo project.
//
//go:generate mockgen -source=lockfile.go -destination=mocks/mock_lockfile.go -package=mocks
type LockfileLoader interface {
	// Load reads the lockfile located directly in root.
	// It returns domain.ErrNotAProject if root holds no lockfile.
	Load(root string) (LockGraph, error)

	// DiscoverRoot walks up from cwd to the first directory holding a lockfile.
	DiscoverRoot(cwd string) (string, error)
}

// LockGraph is a read-only view of one loaded lockfile.
type LockGraph interface {
	// Query returns the single package matching spec.
	// The spec is a package name, optionally followed by "@version" or ":version".
	// It returns domain.ErrPackageNotFound if nothing matches and
	// domain.ErrAmbiguousPackage if several packages match.
	Query(spec string) (domain.PackageIdentity, error)

	// Packages returns every package of the lockfile in file order.
	Packages() []domain.PackageIdentity
}
