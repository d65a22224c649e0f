package domain

import (
	"net/url"
	"strings"

	"go.trai.ch/zerr"
)

// SourceKind identifies where a package was fetched from.
// The values match the declaration order of cargo's SourceKind, which takes
// part in the hash cargo uses to name its cache directories.
type SourceKind uint64

const (
	// SourceGit is a git repository dependency.
	SourceGit SourceKind = iota
	// SourcePath is a local path dependency.
	SourcePath
	// SourceRegistry is a git index registry such as the crates.io index on GitHub.
	SourceRegistry
	// SourceSparseRegistry is an HTTP sparse index registry.
	SourceSparseRegistry
	// SourceLocalRegistry is a registry on the local filesystem.
	SourceLocalRegistry
	// SourceDirectory is a vendored directory source.
	SourceDirectory
)

var sourceKindPrefixes = map[string]SourceKind{
	"git":            SourceGit,
	"path":           SourcePath,
	"registry":       SourceRegistry,
	"sparse":         SourceSparseRegistry,
	"local-registry": SourceLocalRegistry,
	"directory":      SourceDirectory,
}

// String returns the lockfile prefix of the kind.
func (k SourceKind) String() string {
	for prefix, kind := range sourceKindPrefixes {
		if kind == k {
			return prefix
		}
	}
	return "unknown"
}

// IsRegistry reports whether packages of this kind are unpacked into registry/src.
func (k SourceKind) IsRegistry() bool {
	return k == SourceRegistry || k == SourceSparseRegistry
}

// SourceID is a parsed lockfile source string.
type SourceID struct {
	// Kind is the kind of the source.
	Kind SourceKind

	// URL is the source URL as cargo records it. Sparse registries keep their
	// "sparse+" prefix; git sources drop the query and fragment.
	URL string

	// Reference is the git branch, tag or rev the lockfile was generated from, if any.
	Reference string

	// Precise is the locked git commit.
	Precise string

	parsed *url.URL
}

// Host returns the host component of the source URL, without port.
func (s SourceID) Host() string {
	if s.parsed == nil {
		return ""
	}
	return s.parsed.Hostname()
}

// Path returns the path component of the source URL.
func (s SourceID) Path() string {
	if s.parsed == nil {
		return ""
	}
	return s.parsed.Path
}

// ParseSourceID parses a lockfile source string such as
// "registry+https://github.com/rust-lang/crates.io-index" or
// "git+https://github.com/foo/bar?branch=main#0123abcd".
func ParseSourceID(source string) (SourceID, error) {
	prefix, rest, ok := strings.Cut(source, "+")
	if !ok {
		return SourceID{}, zerr.With(zerr.Wrap(ErrInvalidSource, "missing source kind"), "source", source)
	}

	kind, known := sourceKindPrefixes[prefix]
	if !known {
		return SourceID{}, zerr.With(zerr.Wrap(ErrInvalidSource, "unknown source kind "+prefix), "source", source)
	}

	id := SourceID{Kind: kind}

	switch kind {
	case SourceSparseRegistry:
		// cargo keeps the scheme prefix for sparse registries.
		rest = source
	case SourceGit:
		rest, id.Precise, _ = strings.Cut(rest, "#")
		var query string
		rest, query, _ = strings.Cut(rest, "?")
		if query != "" {
			values, err := url.ParseQuery(query)
			if err != nil {
				return SourceID{}, zerr.With(
					zerr.Wrap(WithCategory(err, ErrInvalidSource), ErrInvalidSource.Error()),
					"source", source,
				)
			}
			for _, key := range []string{"branch", "tag", "rev"} {
				if v := values.Get(key); v != "" {
					id.Reference = key + "=" + v
					break
				}
			}
		}
	default:
	}

	u, err := url.Parse(rest)
	if err != nil {
		return SourceID{}, zerr.With(
			zerr.Wrap(WithCategory(err, ErrInvalidSource), ErrInvalidSource.Error()),
			"source", source,
		)
	}
	if u.Host == "" && kind != SourcePath && kind != SourceLocalRegistry && kind != SourceDirectory {
		return SourceID{}, zerr.With(zerr.Wrap(ErrInvalidSource, "source URL has no host"), "source", source)
	}

	// Parsed URLs always carry a path, "https://host" becomes "https://host/".
	if u.Path == "" && u.Opaque == "" {
		u.Path = "/"
		rest += "/"
	}

	id.URL = rest
	id.parsed = u
	return id, nil
}
