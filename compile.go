package linebasic

import (
	"github.com/gosuda/linebasic/ast"
	"github.com/gosuda/linebasic/parser"
	lbruntime "github.com/gosuda/linebasic/runtime"
)

// Compile parses a complete source text (physical lines joined by "\n")
// and builds a VM for it.
func Compile(source string) (*lbruntime.VM, error) {
	program, err := parser.ParseProgram(source)
	if err != nil {
		return nil, err
	}
	return lbruntime.New(program)
}

// Parse only returns the line table for tooling use.
func Parse(source string) (*ast.Program, error) {
	return parser.ParseProgram(source)
}
