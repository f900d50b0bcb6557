package cmd

import (
	"fmt"

	"github.com/cottand/tyra/registry"
	"github.com/spf13/cobra"
)

var PackagesCmd = &cobra.Command{
	Use:          "packages",
	Short:        "List the packages of the builtin classes",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, pkg := range registry.Standard().Packages() {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), pkg)
		}
		return nil
	},
}
