package cargohome_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cargo-open/internal/adapters/cargohome"
	"go.trai.ch/cargo-open/internal/adapters/env"
	"go.trai.ch/cargo-open/internal/adapters/fs"
	"go.trai.ch/cargo-open/internal/core/domain"
)

const (
	cacheRoot       = "/home/u/.cache"
	exampleRegistry = "registry+https://example.com/registry"
	cratesIO        = "registry+https://github.com/rust-lang/crates.io-index"
	sparseCratesIO  = "sparse+https://index.crates.io/"
)

func newLocator(vars env.Map, files fstest.MapFS) *cargohome.Locator {
	if files == nil {
		files = fstest.MapFS{}
	}
	return cargohome.NewLocator(vars, fs.NewMapFSAdapter(cacheRoot, files))
}

func TestLocator_CacheRoot(t *testing.T) {
	tests := []struct {
		name    string
		vars    env.Map
		want    string
		wantErr error
	}{
		{
			name: "CARGO_HOME wins",
			vars: env.Map{"CARGO_HOME": "/opt/cargo", "HOME": "/home/u"},
			want: "/opt/cargo",
		},
		{
			name: "HOME fallback",
			vars: env.Map{"HOME": "/home/u"},
			want: "/home/u/.cargo",
		},
		{
			name: "empty CARGO_HOME falls through",
			vars: env.Map{"CARGO_HOME": "", "HOME": "/home/u"},
			want: "/home/u/.cargo",
		},
		{
			name: "USERPROFILE fallback",
			vars: env.Map{"USERPROFILE": "/users/u"},
			want: "/users/u/.cargo",
		},
		{
			name:    "nothing set",
			vars:    env.Map{},
			wantErr: domain.ErrCacheRootUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newLocator(tt.vars, nil).CacheRoot()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, filepath.FromSlash(tt.want), got)
		})
	}
}

func TestLocator_CacheRoot_RelativeCargoHome(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	got, err := newLocator(env.Map{"CARGO_HOME": "cargo"}, nil).CacheRoot()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cargo"), got)
}

func TestLocator_SourcePath(t *testing.T) {
	tests := []struct {
		name string
		pkg  domain.PackageIdentity
		want string
	}{
		{
			name: "alternate registry",
			pkg:  domain.PackageIdentity{Name: "foo", Version: "1.2.3", Source: exampleRegistry},
			want: "/home/u/.cache/registry/src/example.com-bd999b40ddde963e/foo-1.2.3",
		},
		{
			name: "crates.io git index",
			pkg:  domain.PackageIdentity{Name: "serde", Version: "1.0.197", Source: cratesIO},
			want: "/home/u/.cache/registry/src/github.com-1ecc6299db9ec823/serde-1.0.197",
		},
		{
			name: "crates.io sparse index",
			pkg:  domain.PackageIdentity{Name: "serde", Version: "1.0.197", Source: sparseCratesIO},
			want: "/home/u/.cache/registry/src/index.crates.io-6f17d22bba15001f/serde-1.0.197",
		},
		{
			name: "pre-release version",
			pkg:  domain.PackageIdentity{Name: "tokio", Version: "1.36.0-rc.1", Source: cratesIO},
			want: "/home/u/.cache/registry/src/github.com-1ecc6299db9ec823/tokio-1.36.0-rc.1",
		},
		{
			name: "git checkout",
			pkg: domain.PackageIdentity{
				Name:    "cargo",
				Version: "0.80.0",
				Source:  "git+https://github.com/rust-lang/cargo?branch=master#0123456789abcdef0123456789abcdef01234567",
			},
			want: "/home/u/.cache/git/checkouts/cargo-e7ff1db891893a9e/0123456",
		},
		{
			name: "git checkout with mixed case github URL",
			pkg: domain.PackageIdentity{
				Name:    "bar",
				Version: "0.1.0",
				Source:  "git+https://github.com/Foo/Bar.git#fedcba9876543210",
			},
			want: "/home/u/.cache/git/checkouts/bar-4fc3680f5fea3613/fedcba9",
		},
	}

	locator := newLocator(env.Map{}, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := locator.SourcePath(tt.pkg, cacheRoot)
			require.NoError(t, err)
			assert.Equal(t, filepath.FromSlash(tt.want), got)
		})
	}
}

func TestLocator_SourcePath_JoinOrder(t *testing.T) {
	pkg := domain.PackageIdentity{Name: "foo", Version: "1.2.3", Source: exampleRegistry}

	got, err := newLocator(env.Map{}, nil).SourcePath(pkg, "root")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("root", "registry", "src", "example.com-bd999b40ddde963e", "foo-1.2.3"), got)
}

func TestLocator_SourcePath_Idempotent(t *testing.T) {
	locator := newLocator(env.Map{}, nil)
	pkg := domain.PackageIdentity{Name: "foo", Version: "1.2.3", Source: exampleRegistry}

	first, err := locator.SourcePath(pkg, cacheRoot)
	require.NoError(t, err)
	second, err := locator.SourcePath(pkg, cacheRoot)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLocator_SourcePath_Unsupported(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		wantErr error
	}{
		{name: "workspace member", source: "", wantErr: domain.ErrUnsupportedSource},
		{name: "path dependency", source: "path+file:///work/foo", wantErr: domain.ErrUnsupportedSource},
		{name: "local registry", source: "local-registry+file:///srv/registry", wantErr: domain.ErrUnsupportedSource},
		{name: "directory", source: "directory+file:///srv/vendor", wantErr: domain.ErrUnsupportedSource},
		{name: "git without revision", source: "git+https://github.com/foo/bar", wantErr: domain.ErrUnsupportedSource},
		{name: "unknown kind", source: "svn+https://example.com/repo", wantErr: domain.ErrInvalidSource},
	}

	locator := newLocator(env.Map{}, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg := domain.PackageIdentity{Name: "foo", Version: "1.0.0", Source: tt.source}
			_, err := locator.SourcePath(pkg, cacheRoot)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLocator_Probe(t *testing.T) {
	pkg := domain.PackageIdentity{Name: "foo", Version: "1.2.3", Source: exampleRegistry}
	derived := filepath.FromSlash("/home/u/.cache/registry/src/example.com-bd999b40ddde963e/foo-1.2.3")

	t.Run("derived directory first", func(t *testing.T) {
		files := fstest.MapFS{
			"registry/src/example.com-0000000000000000/foo-1.2.3/Cargo.toml": {},
			"registry/src/example.com-bd999b40ddde963e/foo-1.2.3/Cargo.toml": {},
			"registry/src/example.com-bd999b40ddde963e/foo-1.2.4/Cargo.toml": {},
			"registry/src/other.org-bd999b40ddde963e/foo-1.2.3/Cargo.toml":   {},
		}

		got, err := newLocator(env.Map{}, files).Probe(pkg, cacheRoot)
		require.NoError(t, err)
		assert.Equal(t, []string{
			derived,
			filepath.FromSlash("/home/u/.cache/registry/src/example.com-0000000000000000/foo-1.2.3"),
		}, got)
	})

	t.Run("sibling directories only", func(t *testing.T) {
		files := fstest.MapFS{
			"registry/src/example.com-ffffffffffffffff/foo-1.2.3/Cargo.toml": {},
			"registry/src/example.com-1111111111111111/foo-1.2.3/Cargo.toml": {},
		}

		got, err := newLocator(env.Map{}, files).Probe(pkg, cacheRoot)
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.FromSlash("/home/u/.cache/registry/src/example.com-1111111111111111/foo-1.2.3"),
			filepath.FromSlash("/home/u/.cache/registry/src/example.com-ffffffffffffffff/foo-1.2.3"),
		}, got)
	})

	t.Run("nothing unpacked", func(t *testing.T) {
		got, err := newLocator(env.Map{}, fstest.MapFS{}).Probe(pkg, cacheRoot)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("git checkout", func(t *testing.T) {
		gitPkg := domain.PackageIdentity{
			Name:    "bar",
			Version: "0.1.0",
			Source:  "git+https://github.com/foo/bar#fedcba9876543210",
		}
		files := fstest.MapFS{
			"git/checkouts/bar-4fc3680f5fea3613/fedcba9/Cargo.toml": {},
		}

		got, err := newLocator(env.Map{}, files).Probe(gitPkg, cacheRoot)
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.FromSlash("/home/u/.cache/git/checkouts/bar-4fc3680f5fea3613/fedcba9")}, got)
	})

	t.Run("unsupported source", func(t *testing.T) {
		_, err := newLocator(env.Map{}, nil).Probe(domain.PackageIdentity{Name: "app", Version: "0.1.0"}, cacheRoot)
		assert.ErrorIs(t, err, domain.ErrUnsupportedSource)
	})
}

func TestLocator_Probe_PatternCharactersInCacheRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "cargo[1]*?")
	pkg := domain.PackageIdentity{Name: "foo", Version: "1.2.3", Source: exampleRegistry}
	locator := cargohome.NewLocator(env.Map{}, fs.NewOSFS())

	derived, err := locator.SourcePath(pkg, root)
	require.NoError(t, err)
	sibling := filepath.Join(root, "registry", "src", "example.com-0000000000000000", "foo-1.2.3")
	require.NoError(t, os.MkdirAll(derived, 0o750))
	require.NoError(t, os.MkdirAll(sibling, 0o750))

	got, err := locator.Probe(pkg, root)
	require.NoError(t, err)
	assert.Equal(t, []string{derived, sibling}, got)
}
