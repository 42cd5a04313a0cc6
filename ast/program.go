package ast

import (
	"github.com/google/btree"
)

const programDegree = 8

// Program is the line table of a loaded source, ordered by declared line
// number. It is filled once by the parser and only read afterwards.
type Program struct {
	lines *btree.BTreeG[Line]
}

func lineLess(a, b Line) bool {
	return a.Number < b.Number
}

func NewProgram() *Program {
	return &Program{lines: btree.NewG(programDegree, lineLess)}
}

// Set stores line, replacing any earlier line with the same number.
func (p *Program) Set(line Line) {
	p.lines.ReplaceOrInsert(line)
}

func (p *Program) Get(number int) (Line, bool) {
	return p.lines.Get(Line{Number: number})
}

func (p *Program) Len() int {
	return p.lines.Len()
}

// First returns the smallest declared line number.
func (p *Program) First() (int, bool) {
	line, ok := p.lines.Min()
	if !ok {
		return 0, false
	}
	return line.Number, true
}

// After returns the smallest declared line number strictly greater than
// number. Line numbers are sparse, so this is not number+1.
func (p *Program) After(number int) (int, bool) {
	next, found := 0, false
	p.lines.AscendGreaterOrEqual(Line{Number: number}, func(line Line) bool {
		if line.Number == number {
			return true
		}
		next, found = line.Number, true
		return false
	})
	return next, found
}

// Lines returns every line in ascending order.
func (p *Program) Lines() []Line {
	out := make([]Line, 0, p.lines.Len())
	p.lines.Ascend(func(line Line) bool {
		out = append(out, line)
		return true
	})
	return out
}
