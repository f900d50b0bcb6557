package cmd

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/cottand/tyra/internal/log"
	"github.com/cottand/tyra/parser"
	"github.com/cottand/tyra/registry"
	"github.com/cottand/tyra/types"
	"github.com/cottand/tyra/util"
	"github.com/hashicorp/go-set/v3"
	"github.com/pkg/errors"
)

var logger = log.Section("cli")

// Evaluator reads and answers queries against a Universe.
//
// A term is either a type expression, or `Class#member` for the generic type of a
// member of Class: the return type of a method or the type of a field. Inherited
// members are expanded relative to Class, so that `java.util.ArrayList#get` is the
// E of ArrayList rather than the E of List.
//
// A query is `LEFT := RIGHT`, asking whether RIGHT is assignable to LEFT.
type Evaluator struct {
	Universe *registry.Universe
}

func NewEvaluator() *Evaluator {
	return &Evaluator{Universe: registry.Standard()}
}

// Term reads a single term
func (e *Evaluator) Term(text string) (types.Type, error) {
	owner, member, isMember := strings.Cut(text, "#")
	if !isMember {
		return parser.Parse(text, e.Universe)
	}
	class, err := e.Universe.Lookup(owner)
	if err != nil {
		return nil, err
	}
	m, err := findMember(class, strings.TrimSpace(member))
	if err != nil {
		return nil, err
	}
	return types.ExpandMember(m, class)
}

// findMember looks for a method, then a field, by name on class and its supertypes,
// breadth first
func findMember(class *types.Class, name string) (types.Member, error) {
	visited := set.New[*types.Class](8)
	queue := []*types.Class{class}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if !visited.Insert(c) {
			continue
		}
		for _, m := range c.Methods() {
			if m.Name() == name {
				return m, nil
			}
		}
		queue = slices.AppendSeq(queue, util.MapIter(supertypes(c), types.Raw))
	}
	return class.Field(name)
}

func supertypes(c *types.Class) iter.Seq[types.Type] {
	super := util.FilterIter(util.SingleIter(c.Super()), func(t types.Type) bool { return t != nil })
	return util.ConcatIter(super, slices.Values(c.Interfaces()))
}

type Query struct {
	Text        string
	Left, Right types.Type
}

// Query reads `LEFT := RIGHT`
func (e *Evaluator) Query(text string) (Query, error) {
	left, right, ok := strings.Cut(text, ":=")
	if !ok {
		return Query{}, errors.Errorf("expected `LEFT := RIGHT` but got %q", text)
	}
	leftT, err := e.Term(strings.TrimSpace(left))
	if err != nil {
		return Query{}, errors.Wrap(err, "left hand side")
	}
	rightT, err := e.Term(strings.TrimSpace(right))
	if err != nil {
		return Query{}, errors.Wrap(err, "right hand side")
	}
	return Query{Text: strings.TrimSpace(text), Left: leftT, Right: rightT}, nil
}

type Result struct {
	Query
	Assignable bool
	Captures   types.Captures
}

// Eval answers q with captures of its own, so that queries can run concurrently
func (q Query) Eval() Result {
	captures := types.Captures{}
	assignable := types.IsAssignableWith(q.Left, q.Right, captures)
	logger.Debug("evaluated query", "query", q.Text, "assignable", assignable)
	return Result{Query: q, Assignable: assignable, Captures: captures}
}

// CapturesString renders the captures of r one per line, sorted by variable
func (r Result) CapturesString() string {
	sb := strings.Builder{}
	for _, key := range r.Captures.Sorted() {
		_, _ = fmt.Fprintf(&sb, "  %s = %s\n", key, r.Captures[key])
	}
	return sb.String()
}
