// Package cargohome maps lockfile packages to their unpacked sources in the cargo home.
package cargohome

import (
	"fmt"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/cargo-open/internal/adapters/fs"
	"go.trai.ch/cargo-open/internal/core/domain"
	"go.trai.ch/cargo-open/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceLocator = (*Locator)(nil)

const (
	githubHost      = "github.com"
	shortRevLength  = 7
	emptyIdentifier = "_empty"
)

// Locator implements ports.SourceLocator using cargo's directory naming convention.
type Locator struct {
	env ports.Environment
	fs  fs.FileSystem
}

// NewLocator creates a new Locator.
func NewLocator(env ports.Environment, fsys fs.FileSystem) *Locator {
	return &Locator{env: env, fs: fsys}
}

// CacheRoot returns CARGO_HOME, falling back to ~/.cargo.
func (l *Locator) CacheRoot() (string, error) {
	if cargoHome := l.env.Getenv(domain.EnvCargoHome); cargoHome != "" {
		abs, err := filepath.Abs(cargoHome)
		if err != nil {
			return "", zerr.With(
				zerr.Wrap(domain.WithCategory(err, domain.ErrCacheRootUnknown), domain.ErrCacheRootUnknown.Error()),
				"cargo_home", cargoHome,
			)
		}
		return abs, nil
	}

	home := l.env.Getenv(domain.EnvHome)
	if home == "" {
		home = l.env.Getenv(domain.EnvUserProfile)
	}
	if home == "" {
		return "", domain.ErrCacheRootUnknown
	}
	return filepath.Join(home, domain.CargoDirName), nil
}

// SourcePath derives the source directory of pkg below cacheRoot.
// It never touches the filesystem, so the result may not exist.
func (l *Locator) SourcePath(pkg domain.PackageIdentity, cacheRoot string) (string, error) {
	if pkg.Source == "" {
		return "", unsupported(pkg, "workspace members and path dependencies live in the project")
	}

	id, err := domain.ParseSourceID(pkg.Source)
	if err != nil {
		return "", zerr.With(err, "package", pkg.Spec())
	}

	switch {
	case id.Kind.IsRegistry():
		return filepath.Join(domain.RegistrySrcPath(cacheRoot), registryDirName(id), pkg.DirName()), nil
	case id.Kind == domain.SourceGit:
		if id.Precise == "" {
			return "", unsupported(pkg, "git source has no locked revision")
		}
		return filepath.Join(domain.GitCheckoutsPath(cacheRoot), checkoutDirName(id), shortRev(id.Precise)), nil
	default:
		return "", unsupported(pkg, fmt.Sprintf("%s sources are not unpacked into the cargo home", id.Kind))
	}
}

// Probe lists the existing source directories of pkg in every registry
// directory of the same host. The derived directory comes first when present,
// the rest follow in lexical order.
func (l *Locator) Probe(pkg domain.PackageIdentity, cacheRoot string) ([]string, error) {
	derived, err := l.SourcePath(pkg, cacheRoot)
	if err != nil {
		return nil, err
	}

	id, err := domain.ParseSourceID(pkg.Source)
	if err != nil {
		return nil, zerr.With(err, "package", pkg.Spec())
	}

	var found []string
	if ok, _ := l.fs.IsDir(derived); ok {
		found = append(found, derived)
	}
	if !id.Kind.IsRegistry() {
		return found, nil
	}

	pattern := filepath.Join(
		escapeGlob(domain.RegistrySrcPath(cacheRoot)),
		escapeGlob(id.Host())+"-*",
		escapeGlob(pkg.DirName()),
	)
	matches, err := l.fs.Glob(pattern)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to search cargo registry"), "pattern", pattern)
	}
	slices.Sort(matches)

	for _, match := range matches {
		if match != derived {
			found = append(found, match)
		}
	}
	return found, nil
}

// escapeGlob quotes the pattern metacharacters of s so that filepath.Match
// treats them literally.
func escapeGlob(s string) string {
	if !strings.ContainsAny(s, `*?[\`) {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '*' || r == '?' || r == '[':
			b.WriteString("[" + string(r) + "]")
		case r == '\\' && filepath.Separator != '\\':
			b.WriteString(`\\`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func unsupported(pkg domain.PackageIdentity, reason string) error {
	err := zerr.With(zerr.Wrap(domain.ErrUnsupportedSource, reason), "package", pkg.Spec())
	if pkg.Source != "" {
		err = zerr.With(err, "source", pkg.Source)
	}
	return err
}

// registryDirName returns "<host>-<hash>", the directory cargo unpacks the
// registry's crates into.
func registryDirName(id domain.SourceID) string {
	return id.Host() + "-" + sourceHash(id.Kind, id.URL)
}

// checkoutDirName returns "<repo>-<hash>" for a git source, hashing the
// canonical form of its URL.
func checkoutDirName(id domain.SourceID) string {
	canonical, ident := canonicalGitURL(id)
	return ident + "-" + stringHash(canonical)
}

// canonicalGitURL normalizes a git URL the way cargo does before hashing it
// and returns it along with the repository name.
func canonicalGitURL(id domain.SourceID) (canonical, ident string) {
	canonical = strings.TrimSuffix(id.URL, "/")

	if id.Host() == githubHost {
		scheme, rest, _ := strings.Cut(canonical, "://")
		if scheme != "https" {
			canonical = "https://" + rest
		}
		host, repoPath, _ := strings.Cut(strings.TrimPrefix(canonical, "https://"), "/")
		canonical = "https://" + host + "/" + strings.ToLower(repoPath)
	}
	canonical = strings.TrimSuffix(canonical, ".git")

	_, after, _ := strings.Cut(canonical, "://")
	if i := strings.Index(after, "/"); i >= 0 {
		ident = path.Base(after[i:])
	}
	if ident == "" || ident == "/" || ident == "." {
		ident = emptyIdentifier
	}
	return canonical, ident
}

func shortRev(rev string) string {
	if len(rev) > shortRevLength {
		return rev[:shortRevLength]
	}
	return rev
}
