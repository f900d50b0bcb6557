package parser

import (
	"fmt"

	"github.com/cottand/tyra/types"
)

// ParseError reports malformed input at Offset, a rune index into Input
type ParseError struct {
	Input   string
	Offset  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at offset %d of %q", e.Message, e.Offset, e.Input)
}

func (e *ParseError) Code() types.ErrCode { return types.Parse }
