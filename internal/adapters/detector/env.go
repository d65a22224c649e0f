// Package detector provides environment detection for output mode selection.
package detector

import (
	"os"

	"go.trai.ch/cargo-open/internal/core/domain"
	"go.trai.ch/cargo-open/internal/core/ports"
	"golang.org/x/term"
)

// OutputMode represents how diagnostics are rendered.
type OutputMode int

const (
	// ModePretty renders colored, human-readable diagnostics.
	ModePretty OutputMode = iota
	// ModePlain renders human-readable diagnostics without color.
	ModePlain
	// ModeJSON renders diagnostics as JSON lines.
	ModeJSON
)

// String returns the name of the mode.
func (m OutputMode) String() string {
	switch m {
	case ModePlain:
		return "plain"
	case ModeJSON:
		return "json"
	default:
		return "pretty"
	}
}

// Detector chooses the output mode from the environment.
type Detector struct {
	env        ports.Environment
	isTerminal func() bool
}

// New creates a Detector that checks whether stderr is a terminal.
func New(env ports.Environment) *Detector {
	return &Detector{
		env: env,
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stderr.Fd())) //nolint:gosec // file descriptors fit in int
		},
	}
}

// NewWithTerminal creates a Detector with a custom terminal check.
func NewWithTerminal(env ports.Environment, isTerminal func() bool) *Detector {
	return &Detector{env: env, isTerminal: isTerminal}
}

// Detect returns the output mode for the current environment.
// CARGO_OPEN_LOG=json selects JSON. Otherwise NO_COLOR, a CI environment or
// a non-terminal stderr select plain output.
func (d *Detector) Detect() OutputMode {
	if d.env.Getenv(domain.EnvLogFormat) == "json" {
		return ModeJSON
	}

	ci := d.env.Getenv(domain.EnvCI)
	isCI := ci == "true" || ci == "1"

	if d.env.Getenv(domain.EnvNoColor) != "" || isCI || !d.isTerminal() {
		return ModePlain
	}
	return ModePretty
}
