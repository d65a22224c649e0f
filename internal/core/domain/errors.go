package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrNotAProject is returned when the project root holds no Cargo.lock.
	ErrNotAProject = zerr.New("not a cargo project")

	// ErrLockfileReadFailed is returned when Cargo.lock exists but cannot be read.
	ErrLockfileReadFailed = zerr.New("failed to read lockfile")

	// ErrLockfileParseFailed is returned when Cargo.lock is not a valid lockfile.
	ErrLockfileParseFailed = zerr.New("failed to parse lockfile")

	// ErrPackageNotFound is returned when no lockfile entry matches the requested package.
	ErrPackageNotFound = zerr.New("package not found")

	// ErrAmbiguousPackage is returned when more than one lockfile entry matches the requested package.
	ErrAmbiguousPackage = zerr.New("package specification is ambiguous")

	// ErrInvalidPackageSpec is returned when a package specification cannot be parsed.
	ErrInvalidPackageSpec = zerr.New("invalid package specification")

	// ErrInvalidSource is returned when a lockfile source string cannot be parsed.
	ErrInvalidSource = zerr.New("invalid package source")

	// ErrUnsupportedSource is returned when a package source has no location in the cargo cache.
	ErrUnsupportedSource = zerr.New("unsupported package source")

	// ErrCacheRootUnknown is returned when neither CARGO_HOME nor a home directory is set.
	ErrCacheRootUnknown = zerr.New("could not determine cargo home, set CARGO_HOME or HOME")

	// ErrSourceNotFound is returned when the unpacked package sources are missing from the cache.
	ErrSourceNotFound = zerr.New("package sources not found in cargo cache, try running `cargo fetch`")

	// ErrNoEditorConfigured is returned when none of the editor variables is set.
	ErrNoEditorConfigured = zerr.New("no editor configured, set one of " +
		EnvCargoEditor + ", " + EnvVisual + " or " + EnvEditor)

	// ErrEditorLaunchFailed is returned when the editor process cannot be started.
	ErrEditorLaunchFailed = zerr.New("failed to launch editor")

	// ErrEditorExited is returned when the editor exits with a non-zero status.
	ErrEditorExited = zerr.New("editor exited with non-zero status")

	// ErrFailedToGetRoot is returned when the project root path cannot be determined.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of project root")

	// ErrUnknownOutputFormat is returned when an unsupported output format is requested.
	ErrUnknownOutputFormat = zerr.New("unknown output format")
)

// expectedErrors are outcomes caused by the user's input or environment rather
// than by a fault in cargo-open. They are reported without a cause chain.
var expectedErrors = []error{
	ErrNotAProject,
	ErrPackageNotFound,
	ErrAmbiguousPackage,
	ErrInvalidPackageSpec,
	ErrSourceNotFound,
	ErrNoEditorConfigured,
	ErrUnsupportedSource,
	ErrCacheRootUnknown,
	ErrUnknownOutputFormat,
}

// IsExpected reports whether err is an expected, user-facing outcome.
func IsExpected(err error) bool {
	for _, target := range expectedErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// ExitCode returns the exit code recorded in the "exit_code" metadata of any
// error in the chain of err.
func ExitCode(err error) (int, bool) {
	for err != nil {
		var z *zerr.Error
		if !errors.As(err, &z) {
			return 0, false
		}
		if code, ok := z.Metadata()["exit_code"].(int); ok {
			return code, true
		}
		err = z.Unwrap()
	}
	return 0, false
}

// Message returns the outermost message of err without its cause chain.
func Message(err error) string {
	var z *zerr.Error
	if errors.As(err, &z) && z.Message() != "" {
		return z.Message()
	}
	return err.Error()
}

// WithCategory marks err as an instance of the category sentinel, so that
// errors.Is(err, category) holds while the chain of err stays unchanged.
func WithCategory(err, category error) error {
	if err == nil {
		return nil
	}
	return &categoryError{cause: err, category: category}
}

type categoryError struct {
	cause    error
	category error
}

func (e *categoryError) Error() string {
	return e.cause.Error()
}

func (e *categoryError) Unwrap() error {
	return e.cause
}

func (e *categoryError) Is(target error) bool {
	return target == e.category
}
