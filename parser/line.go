package parser

import (
	"strconv"

	"github.com/gosuda/linebasic/ast"
)

// maxExprDepth bounds parser recursion so hostile input cannot exhaust
// the stack.
const maxExprDepth = 10000

type lineParser struct {
	tokens []Token
	pos    int
	number int
	depth  int
}

// ParseLine parses the tokens of one physical line into a numbered
// statement. A missing trailing EOL token is supplied.
func ParseLine(tokens []Token) (ast.Line, error) {
	p := &lineParser{tokens: withEOL(tokens)}
	return p.parse()
}

func withEOL(tokens []Token) []Token {
	if len(tokens) == 0 {
		return []Token{{Kind: KindEOL, Text: eolText, Line: 0, Column: 0}}
	}
	last := tokens[len(tokens)-1]
	if last.Kind == KindEOL {
		return tokens
	}
	out := append([]Token(nil), tokens...)
	col := last.Column + len([]rune(last.Text))
	return append(out, Token{Kind: KindEOL, Text: eolText, Line: last.Line, Column: col})
}

func (p *lineParser) peek() Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos]
}

func (p *lineParser) next() Token {
	t := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

func (p *lineParser) unexpected(format string, args ...any) error {
	t := p.peek()
	if t.Kind == KindError {
		return errorAt(t, "%s", t.Text)
	}
	return errorAt(t, format, args...)
}

func (p *lineParser) expect(kind Kind) (Token, error) {
	t := p.peek()
	if t.Kind != kind {
		return Token{}, p.unexpected("expected %s but saw %s", kind, t.Kind)
	}
	return p.next(), nil
}

func (p *lineParser) parse() (ast.Line, error) {
	first := p.peek()
	if first.Kind != KindInt {
		return ast.Line{}, p.unexpected("line must start with a line number")
	}
	n, err := strconv.Atoi(first.Text)
	if err != nil {
		return ast.Line{}, errorAt(first, "line number %s is out of range", first.Text)
	}
	p.number = n
	p.next()

	stmt, err := p.parseStatement()
	if err != nil {
		return ast.Line{}, err
	}
	if _, err := p.expect(KindEOL); err != nil {
		return ast.Line{}, err
	}
	return ast.Line{Number: p.number, Stmt: stmt}, nil
}

func (p *lineParser) parseStatement() (ast.Statement, error) {
	switch p.peek().Kind {
	case KindEOL:
		return ast.EmptyStmt{}, nil
	case KindLet:
		return p.parseLet()
	case KindPrint:
		return p.parsePrint()
	case KindInput:
		return p.parseInput()
	case KindFor:
		return p.parseFor()
	case KindNext:
		p.next()
		name, err := p.expect(KindIdent)
		if err != nil {
			return nil, err
		}
		return ast.NextStmt{Var: name.Text}, nil
	case KindIf:
		return p.parseIf()
	case KindGoto:
		p.next()
		target, err := p.parseTarget()
		if err != nil {
			return nil, err
		}
		return ast.GotoStmt{Target: target}, nil
	case KindGosub:
		p.next()
		target, err := p.parseTarget()
		if err != nil {
			return nil, err
		}
		return ast.GosubStmt{Target: target}, nil
	case KindReturn:
		p.next()
		return ast.ReturnStmt{}, nil
	case KindEnd:
		p.next()
		return ast.EndStmt{}, nil
	default:
		return nil, p.unexpected("expected a keyword (let, print, ...) but saw %s", p.peek().Text)
	}
}

func (p *lineParser) parseLet() (ast.Statement, error) {
	p.next()
	name, err := p.expect(KindIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(KindEq); err != nil {
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return ast.LetStmt{Name: name.Text, Expr: expr}, nil
}

func (p *lineParser) parsePrint() (ast.Statement, error) {
	p.next()
	items := []ast.PrintItem{}
	for p.peek().Kind != KindEOL {
		switch p.peek().Kind {
		case KindString:
			items = append(items, ast.PrintItem{Kind: ast.PrintString, Text: p.next().Text})
		case KindComma:
			p.next()
			items = append(items, ast.PrintItem{Kind: ast.PrintComma})
		case KindSemicolon:
			p.next()
			items = append(items, ast.PrintItem{Kind: ast.PrintSemicolon})
		default:
			expr, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			items = append(items, ast.PrintItem{Kind: ast.PrintExpr, Expr: expr})
		}
	}
	return ast.PrintStmt{Items: items}, nil
}

func (p *lineParser) parseInput() (ast.Statement, error) {
	p.next()
	stmt := ast.InputStmt{}
	if p.peek().Kind == KindString {
		stmt.Prompt = p.next().Text
		stmt.HasPrompt = true
	}
	name, err := p.expect(KindIdent)
	if err != nil {
		return nil, err
	}
	stmt.Names = append(stmt.Names, name.Text)
	for p.peek().Kind == KindComma {
		p.next()
		name, err := p.expect(KindIdent)
		if err != nil {
			return nil, err
		}
		stmt.Names = append(stmt.Names, name.Text)
	}
	return stmt, nil
}

func (p *lineParser) parseFor() (ast.Statement, error) {
	p.next()
	name, err := p.expect(KindIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(KindEq); err != nil {
		return nil, err
	}
	from, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(KindTo); err != nil {
		return nil, err
	}
	to, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return ast.ForStmt{Var: name.Text, From: from, To: to}, nil
}

func (p *lineParser) parseIf() (ast.Statement, error) {
	p.next()
	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(KindThen); err != nil {
		return nil, err
	}
	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return ast.IfStmt{Cond: cond, Then: then}, nil
}

func (p *lineParser) parseTarget() (int, error) {
	tok, err := p.expect(KindInt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok.Text)
	if err != nil {
		return 0, errorAt(tok, "line number %s is out of range", tok.Text)
	}
	return n, nil
}

func (p *lineParser) parseCondition() (ast.Condition, error) {
	left, err := p.parseExpr()
	if err != nil {
		return ast.Condition{}, err
	}
	var op ast.Operator
	switch p.peek().Kind {
	case KindLt:
		op = ast.OpLt
	case KindEq:
		op = ast.OpEq
	case KindGt:
		op = ast.OpGt
	default:
		return ast.Condition{}, p.unexpected("expected '<', '=' or '>', but saw %s", p.peek().Text)
	}
	p.next()
	right, err := p.parseExpr()
	if err != nil {
		return ast.Condition{}, err
	}
	return ast.Condition{Op: op, Left: left, Right: right}, nil
}

// parseExpr handles '+' and '-', left-associative.
func (p *lineParser) parseExpr() (ast.Expr, error) {
	p.depth++
	if p.depth > maxExprDepth {
		return nil, p.unexpected("expression nesting too deep")
	}
	defer func() { p.depth-- }()

	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.Operator
		switch p.peek().Kind {
		case KindPlus:
			op = ast.OpAdd
		case KindMinus:
			op = ast.OpSub
		default:
			return left, nil
		}
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = ast.BinaryExpr{Op: op, Left: left, Right: right}
	}
}

func (p *lineParser) parseTerm() (ast.Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.Operator
		switch p.peek().Kind {
		case KindTimes:
			op = ast.OpMul
		case KindDiv:
			op = ast.OpDiv
		default:
			return left, nil
		}
		p.next()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = ast.BinaryExpr{Op: op, Left: left, Right: right}
	}
}

func (p *lineParser) parseFactor() (ast.Expr, error) {
	t := p.peek()
	switch t.Kind {
	case KindIdent:
		p.next()
		return ast.VarRef{Name: t.Text}, nil
	case KindInt:
		p.next()
		v, err := strconv.ParseInt(t.Text, 10, 64)
		if err != nil {
			return nil, errorAt(t, "integer literal %s is out of range", t.Text)
		}
		return ast.IntLit{Value: v}, nil
	case KindLParen:
		p.next()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(KindRParen); err != nil {
			return nil, err
		}
		return expr, nil
	case KindMinus:
		// -x is (0 - x)
		p.next()
		p.depth++
		defer func() { p.depth-- }()
		if p.depth > maxExprDepth {
			return nil, p.unexpected("expression nesting too deep")
		}
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return ast.BinaryExpr{Op: ast.OpSub, Left: ast.IntLit{Value: 0}, Right: operand}, nil
	default:
		return nil, p.unexpected("expected variable, integer, '(' or '-', but saw %s", t.Text)
	}
}
