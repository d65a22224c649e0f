package lockfile_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cargo-open/internal/adapters/fs"
	"go.trai.ch/cargo-open/internal/adapters/lockfile"
	"go.trai.ch/cargo-open/internal/core/domain"
	"go.trai.ch/cargo-open/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const sampleLockfile = `# This file is automatically @generated by Cargo.
# It is not intended for manual editing.
version = 3

[[package]]
name = "app"
version = "0.1.0"
dependencies = [
 "foo",
 "serde",
]

[[package]]
name = "foo"
version = "1.2.3"
source = "registry+https://example.com/registry"
checksum = "0000000000000000000000000000000000000000000000000000000000000000"

[[package]]
name = "serde"
version = "1.0.197"
source = "registry+https://github.com/rust-lang/crates.io-index"
checksum = "3fb1c873e1b9b056a4dc4c0c198b24c3ffa059243875552b2bd0933b1aee4ce2"
`

const v1Lockfile = `[[package]]
name = "libc"
version = "0.2.40"
source = "registry+https://github.com/rust-lang/crates.io-index"

[metadata]
"checksum libc 0.2.40 (registry+https://github.com/rust-lang/crates.io-index)" = "6fd41f331ac7c5b8ac259b8bf82c75c0fb2e469bbf37d2becbba9a6a2221965b"
`

func writeLockfile(t *testing.T, dir, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, domain.LockfileName), []byte(content), 0o600)
	require.NoError(t, err)
}

func newLoader(t *testing.T) *lockfile.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	return lockfile.NewLoader(fs.NewOSFS(), mocks.NewMockLogger(ctrl))
}

func TestLoader_Load(t *testing.T) {
	root := t.TempDir()
	writeLockfile(t, root, sampleLockfile)

	graph, err := newLoader(t).Load(root)
	require.NoError(t, err)

	pkg, err := graph.Query("foo")
	require.NoError(t, err)
	assert.Equal(t, domain.PackageIdentity{
		Name:    "foo",
		Version: "1.2.3",
		Source:  "registry+https://example.com/registry",
	}, pkg)

	assert.Len(t, graph.Packages(), 3)
}

func TestLoader_Load_RelativeRoot(t *testing.T) {
	root := t.TempDir()
	writeLockfile(t, root, sampleLockfile)
	t.Chdir(root)

	graph, err := newLoader(t).Load(".")
	require.NoError(t, err)

	_, err = graph.Query("serde")
	require.NoError(t, err)
}

func TestLoader_Load_VersionOneMetadata(t *testing.T) {
	root := t.TempDir()
	writeLockfile(t, root, v1Lockfile)

	graph, err := newLoader(t).Load(root)
	require.NoError(t, err)

	pkg, err := graph.Query("libc")
	require.NoError(t, err)
	assert.Equal(t, "0.2.40", pkg.Version)
}

func TestLoader_Load_NotAProject(t *testing.T) {
	root := t.TempDir()

	graph, err := newLoader(t).Load(root)
	require.Error(t, err)
	assert.Nil(t, graph)
	assert.ErrorIs(t, err, domain.ErrNotAProject)
	assert.ErrorContains(t, err, "could not find Cargo.lock in "+root)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, root, zErr.Metadata()["root"])
}

func TestLoader_Load_ParseError(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		errContains string
	}{
		{
			name:        "invalid toml",
			content:     "version = 3\n[[package]\nname = \"foo\"\n",
			errContains: domain.ErrLockfileParseFailed.Error(),
		},
		{
			name:        "wrong type",
			content:     "version = \"three\"\n",
			errContains: domain.ErrLockfileParseFailed.Error(),
		},
		{
			name:        "package without version",
			content:     "version = 3\n\n[[package]]\nname = \"foo\"\n",
			errContains: "package entry 1 has no name or version",
		},
		{
			name:        "unknown source kind",
			content:     "version = 3\n\n[[package]]\nname = \"foo\"\nversion = \"1.0.0\"\nsource = \"svn+https://example.com/repo\"\n",
			errContains: "unknown source kind svn",
		},
		{
			name:        "source without host",
			content:     "version = 3\n\n[[package]]\nname = \"foo\"\nversion = \"1.0.0\"\nsource = \"registry+file-index\"\n",
			errContains: "source URL has no host",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeLockfile(t, root, tt.content)

			graph, err := newLoader(t).Load(root)
			require.Error(t, err)
			assert.Nil(t, graph)
			assert.ErrorIs(t, err, domain.ErrLockfileParseFailed)
			assert.ErrorContains(t, err, tt.errContains)
			assert.False(t, domain.IsExpected(err))
		})
	}
}

func TestLoader_Load_NewerVersionWarns(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	root := filepath.Join(string(filepath.Separator), "work")
	mapFS := fstest.MapFS{
		"Cargo.lock": {Data: []byte("version = 9\n")},
	}
	loader := lockfile.NewLoader(fs.NewMapFSAdapter(root, mapFS), mockLogger)

	graph, err := loader.Load(root)
	require.NoError(t, err)
	assert.Empty(t, graph.Packages())
}

func TestLoader_DiscoverRoot(t *testing.T) {
	root := t.TempDir()
	writeLockfile(t, root, sampleLockfile)
	nested := filepath.Join(root, "crates", "app", "src")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	t.Run("from nested directory", func(t *testing.T) {
		got, err := newLoader(t).DiscoverRoot(nested)
		require.NoError(t, err)
		assert.Equal(t, root, got)
	})

	t.Run("from root", func(t *testing.T) {
		got, err := newLoader(t).DiscoverRoot(root)
		require.NoError(t, err)
		assert.Equal(t, root, got)
	})
}

func TestLoader_DiscoverRoot_NotFound(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "work")
	mapFS := fstest.MapFS{
		"crates/app/Cargo.toml": {Data: []byte("[package]")},
	}
	ctrl := gomock.NewController(t)
	loader := lockfile.NewLoader(fs.NewMapFSAdapter(root, mapFS), mocks.NewMockLogger(ctrl))

	_, err := loader.DiscoverRoot(filepath.Join(root, "crates", "app"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotAProject)
	assert.True(t, domain.IsExpected(err))
}
