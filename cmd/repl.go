package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cottand/tyra/types"
	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const historyFile = ".tyra_history"

var ReplCmd = &cobra.Command{
	Use:          "repl",
	Short:        "Answer queries interactively",
	Args:         cobra.NoArgs,
	RunE:         runRepl,
	SilenceUsage: true,
}

const replHelp = `  LEFT := RIGHT               whether RIGHT is assignable to LEFT, and the captures
  TERM                        the canonical form and erasure of TERM
  :resolve REFERENCE TERM     the arguments TERM supplies to REFERENCE
  :packages                   the packages of the builtin classes
  :help                       this message
  :quit                       leave
`

func runRepl(cmd *cobra.Command, _ []string) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}

	e := NewEvaluator()
	out := cmd.OutOrStdout()
	for {
		line, err := ln.Prompt("tyra> ")
		if errors.Is(err, io.EOF) {
			_, _ = fmt.Fprintln(out)
			break
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return errors.Wrap(err, "could not read input")
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		if exit := e.handleReplLine(line, out); exit {
			break
		}
	}

	if histPath != "" {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}
	return nil
}

// handleReplLine answers one line of input, and reports whether the session is over
func (e *Evaluator) handleReplLine(line string, out io.Writer) (exit bool) {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return false
	case line == ":quit" || line == ":q":
		return true
	case line == ":help":
		_, _ = fmt.Fprint(out, replHelp)
	case line == ":packages":
		for _, pkg := range e.Universe.Packages() {
			_, _ = fmt.Fprintln(out, pkg)
		}
	case strings.HasPrefix(line, ":resolve"):
		fields := strings.Fields(line)
		if len(fields) < 3 {
			_, _ = fmt.Fprintln(out, "usage: :resolve REFERENCE TERM")
			return false
		}
		e.printResolved(out, fields[1], strings.Join(fields[2:], " "))
	case strings.HasPrefix(line, ":"):
		_, _ = fmt.Fprintf(out, "unknown command %s, try :help\n", strings.Fields(line)[0])
	case strings.Contains(line, ":="):
		q, err := e.Query(line)
		if err != nil {
			_, _ = fmt.Fprintln(out, types.FormatWithCode(err))
			return false
		}
		result := q.Eval()
		_, _ = fmt.Fprintln(out, result.Assignable)
		_, _ = fmt.Fprint(out, result.CapturesString())
	default:
		t, err := e.Term(line)
		if err != nil {
			_, _ = fmt.Fprintln(out, types.FormatWithCode(err))
			return false
		}
		_, _ = fmt.Fprintf(out, "%s\t(raw %s)\n", t, types.Raw(t))
	}
	return false
}

func (e *Evaluator) printResolved(out io.Writer, referenceName, term string) {
	reference, err := e.Universe.Lookup(referenceName)
	if err != nil {
		_, _ = fmt.Fprintln(out, types.FormatWithCode(err))
		return
	}
	t, err := e.Term(term)
	if err != nil {
		_, _ = fmt.Fprintln(out, types.FormatWithCode(err))
		return
	}
	found, err := types.FindParameterized(t, reference)
	if err != nil {
		_, _ = fmt.Fprintln(out, types.FormatWithCode(err))
		return
	}
	_, _ = fmt.Fprintln(out, found)
}
