package template

import (
	"fmt"

	"github.com/pkg/errors"
)

var ErrParse = fmt.Errorf("template parse error")

// ParseError describes a syntax problem at a rune position of a template.
type ParseError struct {
	Pos int
	Msg string
}

func NewParseError(pos int, msg string, args ...interface{}) error {
	return &ParseError{Pos: pos, Msg: fmt.Sprintf(msg, args...)}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("template position %d: %s", e.Pos, e.Msg)
}

func (e *ParseError) Is(err error) bool {
	return err == ErrParse
}

// IsParseError reports whether err is or wraps a ParseError.
func IsParseError(err error) bool {
	return errors.Is(err, ErrParse)
}
