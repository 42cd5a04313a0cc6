package ast

import (
	"strconv"
	"strings"
)

// Format renders line as normalized source text. Parsing the result gives
// back the same tree.
func Format(line Line) string {
	body := FormatStatement(line.Stmt)
	if body == "" {
		return strconv.Itoa(line.Number)
	}
	return strconv.Itoa(line.Number) + " " + body
}

func FormatStatement(stmt Statement) string {
	switch s := stmt.(type) {
	case LetStmt:
		return "let " + s.Name + " = " + FormatExpr(s.Expr)
	case PrintStmt:
		if len(s.Items) == 0 {
			return "print"
		}
		parts := make([]string, 0, len(s.Items))
		for _, item := range s.Items {
			parts = append(parts, formatPrintItem(item))
		}
		return "print " + strings.Join(parts, " ")
	case InputStmt:
		b := strings.Builder{}
		b.WriteString("input ")
		if s.HasPrompt {
			b.WriteString(`"` + s.Prompt + `" `)
		}
		b.WriteString(strings.Join(s.Names, ", "))
		return b.String()
	case ForStmt:
		return "for " + s.Var + " = " + FormatExpr(s.From) + " to " + FormatExpr(s.To)
	case NextStmt:
		return "next " + s.Var
	case IfStmt:
		then := FormatStatement(s.Then)
		if then == "" {
			return "if " + FormatCondition(s.Cond) + " then"
		}
		return "if " + FormatCondition(s.Cond) + " then " + then
	case GotoStmt:
		return "goto " + strconv.Itoa(s.Target)
	case GosubStmt:
		return "gosub " + strconv.Itoa(s.Target)
	case ReturnStmt:
		return "return"
	case EndStmt:
		return "end"
	case EmptyStmt:
		return ""
	default:
		return "?"
	}
}

func formatPrintItem(item PrintItem) string {
	switch item.Kind {
	case PrintString:
		return `"` + item.Text + `"`
	case PrintComma:
		return ","
	case PrintSemicolon:
		return ";"
	default:
		return FormatExpr(item.Expr)
	}
}

func FormatCondition(c Condition) string {
	return FormatExpr(c.Left) + " " + c.Op.String() + " " + FormatExpr(c.Right)
}

// FormatExpr renders e with only the parentheses its shape requires.
func FormatExpr(e Expr) string {
	switch ex := e.(type) {
	case IntLit:
		return strconv.FormatInt(ex.Value, 10)
	case VarRef:
		return ex.Name
	case BinaryExpr:
		prec := ex.Op.precedence()
		left := FormatExpr(ex.Left)
		if b, ok := ex.Left.(BinaryExpr); ok && b.Op.precedence() < prec {
			left = "(" + left + ")"
		}
		right := FormatExpr(ex.Right)
		if b, ok := ex.Right.(BinaryExpr); ok && b.Op.precedence() <= prec {
			right = "(" + right + ")"
		}
		return left + " " + ex.Op.String() + " " + right
	default:
		return "?"
	}
}

// Listing renders the whole program in line order, one line per row.
func (p *Program) Listing() string {
	b := strings.Builder{}
	for _, line := range p.Lines() {
		b.WriteString(Format(line))
		b.WriteByte('\n')
	}
	return b.String()
}
