package models

import (
	"errors"
	"fmt"
)

// ErrUnknownPlace marks an update-section reference to an abbreviation that
// was never declared. It is a hard parse error.
var ErrUnknownPlace = errors.New("unknown place abbreviation")

// ParseError identifies the file and line of a malformed input row. Every
// parse error is fatal at load time; a bad line in the hand-curated logs is a
// data-entry mistake to fix, not tolerate.
type ParseError struct {
	File string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Msg)
}

func parseErrorf(file string, line int, format string, args ...any) *ParseError {
	return &ParseError{File: file, Line: line, Msg: fmt.Sprintf(format, args...)}
}
