package domain

// PackageIdentity is a fully qualified package entry of a lockfile.
type PackageIdentity struct {
	// Name is the package name (e.g., "serde").
	Name string `json:"name" yaml:"name"`

	// Version is the exact locked version (e.g., "1.0.197").
	Version string `json:"version" yaml:"version"`

	// Source is the lockfile source string
	// (e.g., "registry+https://github.com/rust-lang/crates.io-index").
	// It is empty for workspace members and path dependencies.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
}

// DirName returns the name of the directory the package is unpacked into.
func (p PackageIdentity) DirName() string {
	return p.Name + "-" + p.Version
}

// Spec returns the unambiguous "name@version" specification of the package.
func (p PackageIdentity) Spec() string {
	return p.Name + "@" + p.Version
}

// Location is the result of resolving a package and deriving its source path.
type Location struct {
	// Package is the resolved lockfile entry.
	Package PackageIdentity `json:"package" yaml:"package"`

	// ProjectRoot is the directory holding the lockfile.
	ProjectRoot string `json:"project_root" yaml:"project_root"`

	// CacheRoot is the cargo home the path was derived from.
	CacheRoot string `json:"cache_root" yaml:"cache_root"`

	// Derived is the path computed from the cargo naming convention.
	Derived string `json:"derived" yaml:"derived"`

	// Path is the directory to open. It equals Derived unless the derived
	// directory was missing and an existing sibling was found instead.
	Path string `json:"path" yaml:"path"`
}
