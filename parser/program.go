package parser

import (
	"strings"

	"github.com/gosuda/linebasic/ast"
)

// ParseProgram lexes and parses every physical line of source. Lines are
// keyed by their declared number; a later duplicate replaces an earlier
// one. Trailing empty lines are ignored, any other line must be numbered.
func ParseProgram(source string) (*ast.Program, error) {
	program := ast.NewProgram()
	for i, text := range strings.Split(strings.TrimRight(source, "\n"), "\n") {
		line, err := ParseLine(Tokenize(text, i+1))
		if err != nil {
			return nil, err
		}
		program.Set(line)
	}
	return program, nil
}
