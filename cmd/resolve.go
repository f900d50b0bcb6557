package cmd

import (
	"fmt"

	"github.com/cottand/tyra/types"
	"github.com/spf13/cobra"
)

var ResolveCmd = &cobra.Command{
	Use:   "resolve TYPE REFERENCE",
	Short: "Print the type arguments TYPE supplies to its supertype REFERENCE",
	Example: `  tyra resolve 'java.util.HashMap<String, Integer>' java.util.Map
  tyra resolve java.lang.String java.lang.Comparable`,
	Args:         cobra.ExactArgs(2),
	RunE:         runResolve,
	SilenceUsage: true,
}

func runResolve(cmd *cobra.Command, args []string) error {
	e := NewEvaluator()
	t, err := e.Term(args[0])
	if err != nil {
		return err
	}
	reference, err := e.Universe.Lookup(args[1])
	if err != nil {
		return err
	}
	found, err := types.FindParameterized(t, reference)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), found)
	return nil
}
