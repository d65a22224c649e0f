// Package lockfile loads Cargo.lock files and answers package queries against them.
package lockfile

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/cargo-open/internal/adapters/fs"
	"go.trai.ch/cargo-open/internal/core/domain"
	"go.trai.ch/cargo-open/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LockfileLoader = (*Loader)(nil)

// Loader implements ports.LockfileLoader for Cargo.lock files.
type Loader struct {
	fs     fs.FileSystem
	logger ports.Logger
}

// NewLoader creates a new Loader reading through the given filesystem.
func NewLoader(fsys fs.FileSystem, logger ports.Logger) *Loader {
	return &Loader{fs: fsys, logger: logger}
}

// Load reads the Cargo.lock located directly in root.
func (l *Loader) Load(root string) (ports.LockGraph, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(
			zerr.Wrap(domain.WithCategory(err, domain.ErrFailedToGetRoot), domain.ErrFailedToGetRoot.Error()),
			"root", root,
		)
	}

	path := domain.LockfilePath(absRoot)
	data, err := l.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, zerr.With(
				zerr.Wrap(domain.ErrNotAProject, fmt.Sprintf("could not find %s in %s", domain.LockfileName, absRoot)),
				"root", absRoot,
			)
		}
		return nil, zerr.With(
			zerr.Wrap(domain.WithCategory(err, domain.ErrLockfileReadFailed), domain.ErrLockfileReadFailed.Error()),
			"path", path,
		)
	}

	var lf Lockfile
	if err := toml.Unmarshal(data, &lf); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			err = zerr.With(zerr.With(err, "line", row), "column", col)
		}
		return nil, zerr.With(
			zerr.Wrap(domain.WithCategory(err, domain.ErrLockfileParseFailed), domain.ErrLockfileParseFailed.Error()),
			"path", path,
		)
	}

	if lf.Version > MaxKnownVersion {
		l.logger.Warn(fmt.Sprintf("%s uses format version %d, newer than the supported version %d",
			path, lf.Version, MaxKnownVersion))
	}

	g, err := newGraph(path, lf.Packages)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// DiscoverRoot walks up from cwd to the first directory holding a Cargo.lock.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	absCwd, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.With(
			zerr.Wrap(domain.WithCategory(err, domain.ErrFailedToGetRoot), domain.ErrFailedToGetRoot.Error()),
			"cwd", cwd,
		)
	}

	currentDir := absCwd
	for {
		if _, err := l.fs.Stat(domain.LockfilePath(currentDir)); err == nil {
			return currentDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(
		zerr.Wrap(domain.ErrNotAProject, fmt.Sprintf("could not find %s in %s or any parent directory",
			domain.LockfileName, absCwd)),
		"cwd", absCwd,
	)
}
