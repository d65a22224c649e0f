package domain

import "path/filepath"

const (
	// LockfileName is the name of the lockfile at the root of a cargo project.
	LockfileName = "Cargo.lock"

	// CargoDirName is the name of the cargo home directory below the user's home.
	CargoDirName = ".cargo"

	// RegistryDirName is the cargo home subdirectory holding registry data.
	RegistryDirName = "registry"

	// SrcDirName is the registry subdirectory holding unpacked crate sources.
	SrcDirName = "src"

	// GitDirName is the cargo home subdirectory holding git dependencies.
	GitDirName = "git"

	// CheckoutsDirName is the git subdirectory holding checked out revisions.
	CheckoutsDirName = "checkouts"
)

// Environment variables consulted by cargo-open.
const (
	EnvCargoEditor = "CARGO_EDITOR"
	EnvVisual      = "VISUAL"
	EnvEditor      = "EDITOR"
	EnvCargoHome   = "CARGO_HOME"
	EnvHome        = "HOME"
	EnvUserProfile = "USERPROFILE"
	EnvLogFormat   = "CARGO_OPEN_LOG"
	EnvNoColor     = "NO_COLOR"
	EnvCI          = "CI"
)

// EditorEnvVars lists the editor variables in order of precedence.
var EditorEnvVars = []string{EnvCargoEditor, EnvVisual, EnvEditor}

// RegistrySrcPath returns the directory holding unpacked sources for all registries.
// It joins root, registry and src.
func RegistrySrcPath(cacheRoot string) string {
	return filepath.Join(cacheRoot, RegistryDirName, SrcDirName)
}

// GitCheckoutsPath returns the directory holding git checkouts.
// It joins root, git and checkouts.
func GitCheckoutsPath(cacheRoot string) string {
	return filepath.Join(cacheRoot, GitDirName, CheckoutsDirName)
}

// LockfilePath returns the path of the lockfile in the given project root.
func LockfilePath(projectRoot string) string {
	return filepath.Join(projectRoot, LockfileName)
}
