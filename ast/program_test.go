package ast_test

import (
	"testing"

	"github.com/gosuda/linebasic/ast"
)

func TestProgramOrderAndAfter(t *testing.T) {
	p := ast.NewProgram()
	for _, n := range []int{100, 10, 35, 20} {
		p.Set(ast.Line{Number: n, Stmt: ast.EmptyStmt{}})
	}
	if p.Len() != 4 {
		t.Fatalf("unexpected len: %d", p.Len())
	}
	first, ok := p.First()
	if !ok || first != 10 {
		t.Fatalf("unexpected first line: %d %v", first, ok)
	}

	cases := []struct {
		from int
		want int
		ok   bool
	}{
		{10, 20, true},
		{20, 35, true},
		{21, 35, true},
		{0, 10, true},
		{35, 100, true},
		{100, 0, false},
		{500, 0, false},
	}
	for _, tc := range cases {
		got, ok := p.After(tc.from)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("After(%d) = %d,%v want %d,%v", tc.from, got, ok, tc.want, tc.ok)
		}
	}

	var order []int
	for _, line := range p.Lines() {
		order = append(order, line.Number)
	}
	if len(order) != 4 || order[0] != 10 || order[1] != 20 || order[2] != 35 || order[3] != 100 {
		t.Fatalf("unexpected order: %v", order)
	}
}

func TestProgramSetReplaces(t *testing.T) {
	p := ast.NewProgram()
	p.Set(ast.Line{Number: 10, Stmt: ast.GotoStmt{Target: 1}})
	p.Set(ast.Line{Number: 10, Stmt: ast.EndStmt{}})
	if p.Len() != 1 {
		t.Fatalf("duplicate line was not replaced: len=%d", p.Len())
	}
	line, ok := p.Get(10)
	if !ok {
		t.Fatalf("line 10 missing")
	}
	if _, isEnd := line.Stmt.(ast.EndStmt); !isEnd {
		t.Fatalf("unexpected statement: %#v", line.Stmt)
	}
	if _, ok := p.Get(11); ok {
		t.Fatalf("line 11 must not exist")
	}
}

func TestEmptyProgram(t *testing.T) {
	p := ast.NewProgram()
	if _, ok := p.First(); ok {
		t.Fatalf("empty program has no first line")
	}
	if _, ok := p.After(0); ok {
		t.Fatalf("empty program has no lines after 0")
	}
}

func TestOperatorClasses(t *testing.T) {
	for _, op := range []ast.Operator{ast.OpLt, ast.OpEq, ast.OpGt} {
		if !op.Relational() {
			t.Fatalf("%s must be relational", op)
		}
	}
	for _, op := range []ast.Operator{ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpDiv} {
		if op.Relational() {
			t.Fatalf("%s must not be relational", op)
		}
	}
}
