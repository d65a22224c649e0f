package lockfile

// Lockfile is the on-disk structure of Cargo.lock.
// Tables cargo-open does not need, such as [metadata] and [patch], are ignored.
type Lockfile struct {
	Version  int       `toml:"version"`
	Packages []Package `toml:"package"`
}

// Package is one [[package]] entry of Cargo.lock.
type Package struct {
	Name         string   `toml:"name"`
	Version      string   `toml:"version"`
	Source       string   `toml:"source"`
	Checksum     string   `toml:"checksum"`
	Dependencies []string `toml:"dependencies"`
}

// MaxKnownVersion is the newest lockfile format version this loader was written against.
// Lockfiles without a version field are version 1 or 2.
const MaxKnownVersion = 4
