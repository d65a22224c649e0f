// Package main is the entry point for cargo-open.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/cargo-open/cmd/cargo-open/commands"
	"go.trai.ch/cargo-open/internal/app"
	"go.trai.ch/cargo-open/internal/core/domain"
	_ "go.trai.ch/cargo-open/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	// The editor shares the terminal and handles interrupts itself, cargo-open
	// keeps waiting for it.
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, cleanup, err := provider(ctx)
	if err != nil {
		// The logger is not available if initialization failed.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	components.App.WithStdout(stdout)
	for _, opt := range opts {
		opt(components.App)
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		// The editor reports its own failure, only its status is noted here.
		if code, ok := domain.ExitCode(err); ok {
			components.Logger.Warn(domain.Message(err))
			return code
		}
		if domain.IsExpected(err) {
			components.Logger.Error(errors.New(domain.Message(err)))
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
