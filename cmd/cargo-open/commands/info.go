package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cargo-open/internal/app"
)

func (c *CLI) newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <crate>[@version]",
		Short: "Show where a dependency's sources are located",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")

			return c.app.Info(cmd.Context(), locateOptions(cmd, args[0]), cmd.OutOrStdout(), app.Format(format))
		},
	}
	addLocateFlags(cmd)
	cmd.Flags().StringP("format", "f", string(app.FormatText), "Output format: text, json or yaml")
	return cmd
}
