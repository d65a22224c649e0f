// Package commands implements the CLI commands for cargo-open.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/cargo-open/internal/app"
	"go.trai.ch/cargo-open/internal/build"
)

// CLI represents the command line interface for cargo-open.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Open(ctx context.Context, opts app.OpenOptions) error
	Info(ctx context.Context, opts app.LocateOptions, w io.Writer, format app.Format) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:   "cargo-open",
		Short: "Open the source of a Cargo dependency in your editor",
		Long: "cargo-open looks up a package in Cargo.lock, derives where cargo unpacked\n" +
			"its sources and opens that directory with $CARGO_EDITOR, $VISUAL or $EDITOR.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newOpenCmd())
	rootCmd.AddCommand(c.newInfoCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// addLocateFlags registers the flags shared by every command that resolves a package.
func addLocateFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("root", "r", "", "Project root holding Cargo.lock (default: search upwards from the working directory)")
	cmd.Flags().Bool("no-verify", false, "Skip checking that the sources exist in the cargo cache")
}

func locateOptions(cmd *cobra.Command, spec string) app.LocateOptions {
	root, _ := cmd.Flags().GetString("root")
	noVerify, _ := cmd.Flags().GetBool("no-verify")
	return app.LocateOptions{
		Root:   root,
		Spec:   spec,
		Verify: !noVerify,
	}
}
