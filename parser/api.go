// Package parser reads type expressions written the way they are rendered, such as
// `java.util.Map<? super java.lang.Number[], java.util.Set<?>>[]`.
//
// Type variables cannot be written: they need a declaration the text cannot name.
package parser

import (
	"github.com/antlr4-go/antlr/v4"
	"github.com/cottand/tyra/internal/log"
	"github.com/cottand/tyra/types"
)

var logger = log.Section("parser")

// Resolver finds classes by name, see registry.Universe
type Resolver interface {
	Lookup(name string) (*types.Class, error)
}

// Parse reads a single type expression from text, resolving class names with
// resolver. Whitespace between tokens is ignored.
//
// Generic classes may be used raw, but arguments, when given, must match the
// number of type parameters of the class.
func Parse(text string, resolver Resolver) (types.Type, error) {
	p := &typeParser{
		text:     text,
		input:    antlr.NewInputStream(text),
		resolver: resolver,
	}
	t, err := p.parse()
	if err != nil {
		logger.Debug("failed to parse type", "text", text, "error", err)
		return nil, err
	}
	logger.Debug("parsed type", "text", text, "type", t)
	return t, nil
}
