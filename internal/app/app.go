// Package app implements the application layer for cargo-open.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/cargo-open/internal/core/domain"
	"go.trai.ch/cargo-open/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader  ports.LockfileLoader
	locator ports.SourceLocator
	editor  ports.Editor
	logger  ports.Logger
	stdout  io.Writer
}

// New creates a new App instance.
func New(
	loader ports.LockfileLoader,
	locator ports.SourceLocator,
	editor ports.Editor,
	log ports.Logger,
) *App {
	return &App{
		loader:  loader,
		locator: locator,
		editor:  editor,
		logger:  log,
		stdout:  os.Stdout,
	}
}

// WithStdout sets the writer that printed paths go to.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// LocateOptions configures how a package is resolved.
type LocateOptions struct {
	// Root is the project root. When empty, it is discovered by walking up
	// from the working directory.
	Root string

	// Spec names the package: "name", "name@version" or "name:version".
	Spec string

	// Verify checks that the derived directory exists and falls back to
	// sibling registry directories when it does not.
	Verify bool
}

// OpenOptions configures the Open method.
type OpenOptions struct {
	LocateOptions

	// PrintOnly prints the path instead of launching the editor.
	PrintOnly bool
}

// Locate resolves a package from the lockfile and derives its source directory.
func (a *App) Locate(_ context.Context, opts LocateOptions) (domain.Location, error) {
	root, err := a.projectRoot(opts.Root)
	if err != nil {
		return domain.Location{}, err
	}

	graph, err := a.loader.Load(root)
	if err != nil {
		return domain.Location{}, err
	}

	pkg, err := graph.Query(opts.Spec)
	if err != nil {
		return domain.Location{}, err
	}

	cacheRoot, err := a.locator.CacheRoot()
	if err != nil {
		return domain.Location{}, err
	}

	derived, err := a.locator.SourcePath(pkg, cacheRoot)
	if err != nil {
		return domain.Location{}, err
	}

	loc := domain.Location{
		Package:     pkg,
		ProjectRoot: root,
		CacheRoot:   cacheRoot,
		Derived:     derived,
		Path:        derived,
	}

	if !opts.Verify {
		return loc, nil
	}

	candidates, err := a.locator.Probe(pkg, cacheRoot)
	if err != nil {
		return domain.Location{}, err
	}
	if len(candidates) == 0 {
		return domain.Location{}, zerr.With(
			zerr.Wrap(domain.ErrSourceNotFound,
				fmt.Sprintf("sources of %s are not in %s, try running `cargo fetch`", pkg.Spec(), cacheRoot)),
			"path", derived,
		)
	}
	if candidates[0] != derived {
		a.logger.Warn(fmt.Sprintf("%s does not exist, using %s", derived, candidates[0]))
		loc.Path = candidates[0]
	}

	return loc, nil
}

// Open locates a package and opens its source directory in the configured editor.
func (a *App) Open(ctx context.Context, opts OpenOptions) error {
	loc, err := a.Locate(ctx, opts.LocateOptions)
	if err != nil {
		return err
	}

	if opts.PrintOnly {
		_, err := fmt.Fprintln(a.stdout, loc.Path)
		return err
	}

	command, err := a.editor.Select()
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("Opening %s in %s", loc.Package.Spec(), command))
	return a.editor.Launch(ctx, command, loc.Path)
}

// Info locates a package and writes its location to w in the given format.
func (a *App) Info(ctx context.Context, opts LocateOptions, w io.Writer, format Format) error {
	if err := format.Validate(); err != nil {
		return err
	}

	loc, err := a.Locate(ctx, opts)
	if err != nil {
		return err
	}

	return Render(w, loc, format)
}

func (a *App) projectRoot(root string) (string, error) {
	if root != "" {
		abs, err := filepath.Abs(root)
		if err != nil {
			return "", zerr.With(
				zerr.Wrap(domain.WithCategory(err, domain.ErrFailedToGetRoot), domain.ErrFailedToGetRoot.Error()),
				"root", root,
			)
		}
		return abs, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", zerr.Wrap(domain.WithCategory(err, domain.ErrFailedToGetRoot), domain.ErrFailedToGetRoot.Error())
	}
	return a.loader.DiscoverRoot(cwd)
}
