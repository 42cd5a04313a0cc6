package ast

// Line is one parsed source line: the declared line number and the
// statement that follows it.
type Line struct {
	Number int
	Stmt   Statement
}

type Statement interface {
	isStatement()
}

type LetStmt struct {
	Name string
	Expr Expr
}

func (LetStmt) isStatement() {}

type PrintStmt struct {
	Items []PrintItem
}

func (PrintStmt) isStatement() {}

type PrintItemKind int

const (
	PrintString PrintItemKind = iota
	PrintComma
	PrintSemicolon
	PrintExpr
)

type PrintItem struct {
	Kind PrintItemKind
	Text string // PrintString only
	Expr Expr   // PrintExpr only
}

type InputStmt struct {
	Prompt    string
	HasPrompt bool
	Names     []string
}

func (InputStmt) isStatement() {}

type ForStmt struct {
	Var  string
	From Expr
	To   Expr
}

func (ForStmt) isStatement() {}

type NextStmt struct {
	Var string
}

func (NextStmt) isStatement() {}

// IfStmt runs Then in place of itself when Cond holds.
type IfStmt struct {
	Cond Condition
	Then Statement
}

func (IfStmt) isStatement() {}

type GotoStmt struct {
	Target int
}

func (GotoStmt) isStatement() {}

type GosubStmt struct {
	Target int
}

func (GosubStmt) isStatement() {}

type ReturnStmt struct{}

func (ReturnStmt) isStatement() {}

type EndStmt struct{}

func (EndStmt) isStatement() {}

type EmptyStmt struct{}

func (EmptyStmt) isStatement() {}

type Expr interface {
	isExpr()
}

type IntLit struct {
	Value int64
}

func (IntLit) isExpr() {}

type VarRef struct {
	Name string
}

func (VarRef) isExpr() {}

type BinaryExpr struct {
	Op    Operator
	Left  Expr
	Right Expr
}

func (BinaryExpr) isExpr() {}

// Condition is the relational test of an IF. It is not an Expr: it can
// only appear once, at the top of an IF.
type Condition struct {
	Op    Operator
	Left  Expr
	Right Expr
}

type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
	OpLt
	OpEq
	OpGt
)

func (op Operator) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpLt:
		return "<"
	case OpEq:
		return "="
	case OpGt:
		return ">"
	default:
		return "?"
	}
}

// Relational reports whether op compares rather than computes.
func (op Operator) Relational() bool {
	return op == OpLt || op == OpEq || op == OpGt
}

func (op Operator) precedence() int {
	switch op {
	case OpMul, OpDiv:
		return 2
	case OpAdd, OpSub:
		return 1
	default:
		return 0
	}
}
