package ports

import "context"

// Editor selects and runs the user's editor.
//
//go:generate mockgen -source=editor.go -destination=mocks/mock_editor.go -package=mocks
type Editor interface {
	// Select returns the editor command configured in the environment.
	// It returns domain.ErrNoEditorConfigured if none is set.
	Select() (string, error)

	// Launch runs command with path as its sole argument and waits for it to exit.
	// A non-zero exit is reported as domain.ErrEditorExited carrying the
	// "exit_code" metadata.
	Launch(ctx context.Context, command, path string) error
}
