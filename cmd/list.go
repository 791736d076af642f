package cmd

import (
	"github.com/spf13/cobra"

	"github.com/narasux/elements/pkg/periodic"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list shows all chemical elements with their subshells.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return renderElements(cmd.OutOrStdout(), opts.output, periodic.All())
		},
	}
}
