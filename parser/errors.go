package parser

import "fmt"

// SyntaxError is a load-time fault. Parsing stops at the first one.
type SyntaxError struct {
	Line   int
	Column int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("[%d:%d] syntax error: %s", e.Line, e.Column, e.Msg)
}

func errorAt(tok Token, format string, args ...any) error {
	return &SyntaxError{Line: tok.Line, Column: tok.Column, Msg: fmt.Sprintf(format, args...)}
}
