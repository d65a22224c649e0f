// Package editor selects the user's editor from the environment and runs it.
package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"go.trai.ch/cargo-open/internal/core/domain"
	"go.trai.ch/cargo-open/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Editor = (*Launcher)(nil)

// Launcher implements ports.Editor using os/exec.
type Launcher struct {
	env ports.Environment

	// Stdin, Stdout and Stderr are handed to the editor process.
	// They default to the streams of the current process.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewLauncher creates a new Launcher attached to the process's standard streams.
func NewLauncher(env ports.Environment) *Launcher {
	return &Launcher{
		env:    env,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Select returns the first non-empty of CARGO_EDITOR, VISUAL and EDITOR.
// The value is used as a single program name, it is not split into arguments.
func (l *Launcher) Select() (string, error) {
	for _, key := range domain.EditorEnvVars {
		if command := l.env.Getenv(key); command != "" {
			return command, nil
		}
	}
	return "", domain.ErrNoEditorConfigured
}

// Launch runs command with path as its only argument and blocks until it exits.
// Cancelling ctx does not stop the editor, it keeps running until the user
// closes it.
func (l *Launcher) Launch(ctx context.Context, command, path string) error {
	cmd := exec.CommandContext(context.WithoutCancel(ctx), command, path) //nolint:gosec // the editor is chosen by the user
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr

	if err := cmd.Start(); err != nil {
		return launchFailed(err, command)
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return launchFailed(err, command)
		}

		// Terminated by a signal.
		exitCode := exitErr.ExitCode()
		if exitCode < 0 {
			exitCode = 1
		}

		err = zerr.Wrap(domain.ErrEditorExited, fmt.Sprintf("%s exited with status %d", command, exitCode))
		return zerr.With(zerr.With(err, "editor", command), "exit_code", exitCode)
	}

	return nil
}

func launchFailed(err error, command string) error {
	err = zerr.Wrap(domain.WithCategory(err, domain.ErrEditorLaunchFailed), domain.ErrEditorLaunchFailed.Error())
	return zerr.With(err, "editor", command)
}
