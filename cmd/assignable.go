package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var AssignableCmd = &cobra.Command{
	Use:   "assignable LEFT RIGHT",
	Short: "Report whether a value of type RIGHT can be stored where LEFT is expected",
	Long: `Report whether a value of type RIGHT can be stored where LEFT is expected.

Either side is a type expression like 'java.util.List<? extends java.lang.Number>',
or 'Class#member' for the generic type of a method or field of Class.`,
	Example: `  tyra assignable 'java.util.Collection<?>' 'java.util.ArrayList<String>'
  tyra assignable --capture 'java.util.Collections#singleton' 'java.util.Set<String>'`,
	Args:         cobra.ExactArgs(2),
	RunE:         runAssignable,
	SilenceUsage: true,
}

var showCaptures *bool

func init() {
	showCaptures = AssignableCmd.Flags().BoolP("capture", "c", false, "print the type variables bound by the check")
}

func runAssignable(cmd *cobra.Command, args []string) error {
	e := NewEvaluator()
	q, err := e.Query(args[0] + " := " + args[1])
	if err != nil {
		return err
	}
	result := q.Eval()
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), result.Assignable)
	if *showCaptures {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), result.CapturesString())
	}
	return nil
}
