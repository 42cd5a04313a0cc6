package ast

// Export turns the program into plain maps and slices so that generic
// encoders (YAML, JSON) can dump it without knowing the AST types.
func (p *Program) Export() []map[string]any {
	lines := p.Lines()
	out := make([]map[string]any, 0, len(lines))
	for _, line := range lines {
		node := exportStatement(line.Stmt)
		node["line"] = line.Number
		out = append(out, node)
	}
	return out
}

func exportStatement(stmt Statement) map[string]any {
	switch s := stmt.(type) {
	case LetStmt:
		return map[string]any{"kind": "let", "name": s.Name, "expr": exportExpr(s.Expr)}
	case PrintStmt:
		items := make([]any, 0, len(s.Items))
		for _, item := range s.Items {
			switch item.Kind {
			case PrintString:
				items = append(items, map[string]any{"string": item.Text})
			case PrintComma:
				items = append(items, "comma")
			case PrintSemicolon:
				items = append(items, "semicolon")
			default:
				items = append(items, exportExpr(item.Expr))
			}
		}
		return map[string]any{"kind": "print", "items": items}
	case InputStmt:
		node := map[string]any{"kind": "input", "names": append([]string(nil), s.Names...)}
		if s.HasPrompt {
			node["prompt"] = s.Prompt
		}
		return node
	case ForStmt:
		return map[string]any{"kind": "for", "var": s.Var, "from": exportExpr(s.From), "to": exportExpr(s.To)}
	case NextStmt:
		return map[string]any{"kind": "next", "var": s.Var}
	case IfStmt:
		return map[string]any{
			"kind": "if",
			"cond": map[string]any{
				"op":    s.Cond.Op.String(),
				"left":  exportExpr(s.Cond.Left),
				"right": exportExpr(s.Cond.Right),
			},
			"then": exportStatement(s.Then),
		}
	case GotoStmt:
		return map[string]any{"kind": "goto", "target": s.Target}
	case GosubStmt:
		return map[string]any{"kind": "gosub", "target": s.Target}
	case ReturnStmt:
		return map[string]any{"kind": "return"}
	case EndStmt:
		return map[string]any{"kind": "end"}
	default:
		return map[string]any{"kind": "empty"}
	}
}

func exportExpr(e Expr) any {
	switch ex := e.(type) {
	case IntLit:
		return ex.Value
	case VarRef:
		return map[string]any{"var": ex.Name}
	case BinaryExpr:
		return map[string]any{
			"op":    ex.Op.String(),
			"left":  exportExpr(ex.Left),
			"right": exportExpr(ex.Right),
		}
	default:
		return nil
	}
}
