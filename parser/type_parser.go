package parser

import (
	"fmt"
	"unicode"

	"github.com/antlr4-go/antlr/v4"
	"github.com/cottand/tyra/types"
	"github.com/cottand/tyra/util"
	"github.com/pkg/errors"
)

type boundKind uint8

const (
	exact boundKind = iota
	upper
	lower
)

// openArguments is a type argument list whose '>' was not read yet
type openArguments struct {
	raw    *types.Class
	offset int
	args   []types.Type
	// bound of the wildcard whose bound is being parsed
	bound boundKind
}

// typeParser keeps the argument lists it is inside of on a stack, so that nested
// arguments do not recurse
type typeParser struct {
	text     string
	input    *antlr.InputStream
	resolver Resolver
	open     util.Stack[*openArguments]
}

func (p *typeParser) parse() (types.Type, error) {
	for {
		if top, ok := p.open.Peek(); ok && top.bound == exact && p.accept('?') {
			bound, err := p.wildcardBound()
			if err != nil {
				return nil, err
			}
			if bound == exact {
				result, done, err := p.complete(types.Unbounded)
				if err != nil || done {
					return result, err
				}
				continue
			}
			top.bound = bound
		}

		p.skipSpace()
		offset := p.input.Index()
		name := p.name()
		if name == "" {
			return nil, p.errorf(offset, "expected a type name")
		}
		raw, err := p.resolver.Lookup(name)
		if err != nil {
			return nil, errors.Wrapf(err, "at offset %d", offset)
		}
		if p.accept('<') {
			p.open.Push(&openArguments{raw: raw, offset: offset})
			continue
		}
		t, err := p.dimensions(raw)
		if err != nil {
			return nil, err
		}
		result, done, err := p.complete(t)
		if err != nil || done {
			return result, err
		}
	}
}

// complete adds t to the innermost open argument list, and closes as many lists as
// the input closes. It is done when no list is left open.
func (p *typeParser) complete(t types.Type) (result types.Type, done bool, err error) {
	for {
		top, ok := p.open.Peek()
		if !ok {
			if next := p.peek(); next != antlr.TokenEOF {
				return nil, true, p.errorf(p.input.Index(), "unexpected %q", rune(next))
			}
			return t, true, nil
		}
		switch top.bound {
		case upper:
			t = types.Extends(t)
		case lower:
			t = types.Super(t)
		}
		top.bound = exact
		top.args = append(top.args, t)

		if p.accept(',') {
			return nil, false, nil
		}
		if !p.accept('>') {
			return nil, true, p.errorf(p.input.Index(), "expected ',' or '>'")
		}
		p.open.Pop()
		if want := len(top.raw.TypeParams()); want != len(top.args) {
			return nil, true, errors.Wrapf(
				&types.ArityMismatchError{Raw: top.raw, Want: want, Got: len(top.args)},
				"at offset %d", top.offset,
			)
		}
		t, err = p.dimensions(types.NewParameterized(top.raw, nil, top.args...))
		if err != nil {
			return nil, true, err
		}
	}
}

// wildcardBound reads the keyword after a '?', if any
func (p *typeParser) wildcardBound() (boundKind, error) {
	p.skipSpace()
	offset := p.input.Index()
	switch keyword := p.name(); keyword {
	case "":
		return exact, nil
	case "extends":
		return upper, nil
	case "super":
		return lower, nil
	default:
		return exact, p.errorf(offset, "expected 'extends' or 'super' but found %q", keyword)
	}
}

// dimensions reads trailing '[]' pairs and makes t an array of that rank
func (p *typeParser) dimensions(t types.Type) (types.Type, error) {
	rank := 0
	for p.accept('[') {
		if !p.accept(']') {
			return nil, p.errorf(p.input.Index(), "expected ']'")
		}
		rank++
	}
	return types.ArrayOf(t, rank)
}

func isNameRune(r int) bool {
	return r == '.' || r == '_' || r == '$' || r < unicode.MaxRune && r >= 0 && (unicode.IsLetter(rune(r)) || unicode.IsDigit(rune(r)))
}

func (p *typeParser) name() string {
	start := p.input.Index()
	for isNameRune(p.input.LA(1)) {
		p.input.Consume()
	}
	if p.input.Index() == start {
		return ""
	}
	return p.input.GetText(start, p.input.Index()-1)
}

func (p *typeParser) skipSpace() {
	for r := p.input.LA(1); r != antlr.TokenEOF && unicode.IsSpace(rune(r)); r = p.input.LA(1) {
		p.input.Consume()
	}
}

func (p *typeParser) peek() int {
	p.skipSpace()
	return p.input.LA(1)
}

func (p *typeParser) accept(r rune) bool {
	if p.peek() != int(r) {
		return false
	}
	p.input.Consume()
	return true
}

func (p *typeParser) errorf(offset int, format string, args ...any) error {
	return errors.WithStack(&ParseError{Input: p.text, Offset: offset, Message: fmt.Sprintf(format, args...)})
}
