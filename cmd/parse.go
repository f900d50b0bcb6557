package cmd

import (
	"fmt"

	"github.com/cottand/tyra/types"
	"github.com/spf13/cobra"
)

var ParseCmd = &cobra.Command{
	Use:          "parse TERM",
	Short:        "Print a term in canonical form, along with its erasure",
	Args:         cobra.ExactArgs(1),
	RunE:         runParse,
	SilenceUsage: true,
}

func runParse(cmd *cobra.Command, args []string) error {
	t, err := NewEvaluator().Term(args[0])
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t(raw %s)\n", t, types.Raw(t))
	return nil
}
