package lockfile

import (
	"fmt"
	"regexp"
	"strings"

	"go.trai.ch/cargo-open/internal/core/domain"
	"go.trai.ch/cargo-open/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/mod/semver"
)

var _ ports.LockGraph = (*Graph)(nil)

var validPackageNameRegex = regexp.MustCompile("^[a-zA-Z0-9_-]+$")

type entry struct {
	name    domain.InternedString
	version domain.InternedString
	source  domain.InternedString
}

func (e entry) identity() domain.PackageIdentity {
	return domain.PackageIdentity{
		Name:    e.name.String(),
		Version: e.version.String(),
		Source:  e.source.String(),
	}
}

// Graph implements ports.LockGraph over the packages of one lockfile.
type Graph struct {
	entries []entry
}

// NewGraph builds a Graph from lockfile packages.
func NewGraph(packages []Package) (*Graph, error) {
	return newGraph(domain.LockfileName, packages)
}

func newGraph(path string, packages []Package) (*Graph, error) {
	g := &Graph{entries: make([]entry, 0, len(packages))}
	for i, pkg := range packages {
		if pkg.Name == "" || pkg.Version == "" {
			err := fmt.Errorf("package entry %d has no name or version", i+1)
			return nil, parseFailed(err, path)
		}
		if pkg.Source != "" {
			if _, err := domain.ParseSourceID(pkg.Source); err != nil {
				return nil, zerr.With(parseFailed(err, path), "package", pkg.Name+"@"+pkg.Version)
			}
		}
		g.entries = append(g.entries, entry{
			name:    domain.NewInternedString(pkg.Name),
			version: domain.NewInternedString(pkg.Version),
			source:  domain.NewInternedString(pkg.Source),
		})
	}
	return g, nil
}

func parseFailed(err error, path string) error {
	err = zerr.Wrap(domain.WithCategory(err, domain.ErrLockfileParseFailed), domain.ErrLockfileParseFailed.Error())
	return zerr.With(err, "path", path)
}

// Packages returns every package of the lockfile in file order.
func (g *Graph) Packages() []domain.PackageIdentity {
	pkgs := make([]domain.PackageIdentity, len(g.entries))
	for i, e := range g.entries {
		pkgs[i] = e.identity()
	}
	return pkgs
}

// Query returns the single package matching spec.
// A spec is "name", "name@version" or "name:version", where version may be
// partial ("1" or "1.2").
func (g *Graph) Query(spec string) (domain.PackageIdentity, error) {
	name, version, err := parseSpec(spec)
	if err != nil {
		return domain.PackageIdentity{}, err
	}

	var matches []entry
	for _, e := range g.entries {
		if e.name.String() != name {
			continue
		}
		if version != "" && !versionMatches(version, e.version.String()) {
			continue
		}
		matches = append(matches, e)
	}

	switch len(matches) {
	case 0:
		return domain.PackageIdentity{}, zerr.With(
			zerr.Wrap(domain.ErrPackageNotFound,
				fmt.Sprintf("no package in %s matches %q", domain.LockfileName, spec)),
			"spec", spec,
		)
	case 1:
		return matches[0].identity(), nil
	default:
		return domain.PackageIdentity{}, zerr.With(
			zerr.Wrap(domain.ErrAmbiguousPackage, ambiguityMessage(spec, matches)),
			"spec", spec,
		)
	}
}

func parseSpec(spec string) (name, version string, err error) {
	name, version, found := strings.Cut(spec, "@")
	if !found {
		name, version, found = strings.Cut(spec, ":")
	}
	if found && version == "" {
		return "", "", zerr.With(zerr.Wrap(domain.ErrInvalidPackageSpec, "missing version after separator"), "spec", spec)
	}
	if !validPackageNameRegex.MatchString(name) {
		return "", "", zerr.With(zerr.Wrap(domain.ErrInvalidPackageSpec, fmt.Sprintf("invalid package name %q", name)), "spec", spec)
	}
	return name, version, nil
}

// versionMatches reports whether have satisfies the possibly partial version want.
// A partial version ("1" or "1.2") matches every release with the same major
// or major and minor components, pre-releases included.
func versionMatches(want, have string) bool {
	if want == have {
		return true
	}

	v := "v" + have
	if !semver.IsValid(v) {
		return false
	}

	switch strings.Count(want, ".") {
	case 0:
		return semver.Major(v) == "v"+want
	case 1:
		return semver.MajorMinor(v) == "v"+want
	default:
		return false
	}
}

func ambiguityMessage(spec string, matches []entry) string {
	specs := make(map[string]int, len(matches))
	for _, m := range matches {
		specs[m.identity().Spec()]++
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%q matches %d packages, re-run with one of the following specifications:", spec, len(matches))
	for _, m := range matches {
		id := m.identity()
		b.WriteString("\n  ")
		b.WriteString(id.Spec())
		if specs[id.Spec()] > 1 {
			b.WriteString(" (" + id.Source + ")")
		}
	}
	return b.String()
}
