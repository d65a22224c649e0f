package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cargo-open/internal/app"
)

func (c *CLI) newOpenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open <crate>[@version]",
		Short: "Open a dependency's source directory in your editor",
		Example: "  cargo open serde\n" +
			"  cargo open syn@2\n" +
			"  cargo-open open --print tokio",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printOnly, _ := cmd.Flags().GetBool("print")

			return c.app.Open(cmd.Context(), app.OpenOptions{
				LocateOptions: locateOptions(cmd, args[0]),
				PrintOnly:     printOnly,
			})
		},
	}
	addLocateFlags(cmd)
	cmd.Flags().Bool("print", false, "Print the source directory instead of opening it")
	return cmd
}
