package cmd

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/cottand/tyra/types"
	"github.com/cottand/tyra/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var CheckCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Answer every `LEFT := RIGHT` query of FILE, one per line",
	Long: `Answer every 'LEFT := RIGHT' query of FILE, one per line.

Blank lines and lines starting with '//' are skipped. Queries are answered
concurrently but printed in the order of FILE.`,
	Args:         cobra.ExactArgs(1),
	RunE:         runCheck,
	SilenceUsage: true,
}

var (
	checkJobs     *int
	checkCaptures *bool
)

func init() {
	checkJobs = CheckCmd.Flags().IntP("jobs", "j", runtime.GOMAXPROCS(0), "number of queries answered at once")
	checkCaptures = CheckCmd.Flags().BoolP("capture", "c", false, "print the type variables bound by each query")
}

// CheckedLine is the outcome of the query on Line, which is either a Result or an
// error reading the query
type CheckedLine struct {
	Line   int
	Result Result
	Err    error
}

func (l CheckedLine) String() string {
	if l.Err != nil {
		return fmt.Sprintf("%d: error: %s", l.Line, types.FormatWithCode(l.Err))
	}
	return fmt.Sprintf("%d: %s\t%t", l.Line, l.Result.Text, l.Result.Assignable)
}

func runCheck(cmd *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrap(err, "could not read queries")
	}
	checked, err := Check(cmd.Context(), NewEvaluator(), string(source), *checkJobs)
	if err != nil {
		return err
	}
	failed := 0
	out := cmd.OutOrStdout()
	for _, line := range checked {
		_, _ = fmt.Fprintln(out, line)
		if line.Err != nil {
			failed++
			continue
		}
		if *checkCaptures {
			_, _ = fmt.Fprint(out, line.Result.CapturesString())
		}
	}
	if failed > 0 {
		return errors.Errorf("%d of %d queries could not be read", failed, len(checked))
	}
	return nil
}

// queryLines returns the 1-based line numbers and text of the queries of source
func queryLines(source string) []util.Pair[int, string] {
	var queries []util.Pair[int, string]
	for i, line := range strings.Split(source, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		queries = append(queries, util.NewPair(i+1, line))
	}
	return queries
}

// Check answers the queries of source with at most jobs of them in flight.
// Malformed queries are reported in their CheckedLine, so that the others still run.
func Check(ctx context.Context, e *Evaluator, source string, jobs int) ([]CheckedLine, error) {
	queries := queryLines(source)
	checked := make([]CheckedLine, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(jobs, 1))
	for i, query := range queries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			checked[i] = CheckedLine{Line: query.Fst}
			q, err := e.Query(query.Snd)
			if err != nil {
				checked[i].Err = err
				return nil
			}
			checked[i].Result = q.Eval()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	logger.Info("checked queries", "count", len(checked))
	return checked, nil
}
