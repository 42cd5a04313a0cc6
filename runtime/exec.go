package lbruntime

import (
	"strconv"
	"strings"

	"github.com/gosuda/linebasic/ast"
)

var next = execResult{kind: resultNext}

func jump(line int) execResult {
	return execResult{kind: resultJump, line: line}
}

func (vm *VM) runStatement(stmt ast.Statement) (execResult, error) {
	switch s := stmt.(type) {
	case ast.LetStmt:
		v, err := vm.evalExpr(s.Expr)
		if err != nil {
			return execResult{}, err
		}
		vm.globals[s.Name] = v
		return next, nil
	case ast.PrintStmt:
		return vm.execPrint(s)
	case ast.InputStmt:
		return vm.execInput(s)
	case ast.ForStmt:
		from, err := vm.evalExpr(s.From)
		if err != nil {
			return execResult{}, err
		}
		to, err := vm.evalExpr(s.To)
		if err != nil {
			return execResult{}, err
		}
		vm.globals[s.Var] = from
		vm.forStack = append(vm.forStack, forFrame{name: s.Var, line: vm.current, from: from, to: to})
		return next, nil
	case ast.NextStmt:
		return vm.execNext(s)
	case ast.IfStmt:
		ok, err := vm.evalCondition(s.Cond)
		if err != nil {
			return execResult{}, err
		}
		if !ok {
			return next, nil
		}
		return vm.runStatement(s.Then)
	case ast.GotoStmt:
		return jump(s.Target), nil
	case ast.GosubStmt:
		vm.gosubStack = append(vm.gosubStack, gosubFrame{line: vm.current})
		return jump(s.Target), nil
	case ast.ReturnStmt:
		if len(vm.gosubStack) == 0 {
			return execResult{}, vm.fault("return has no matching gosub")
		}
		top := vm.gosubStack[len(vm.gosubStack)-1]
		vm.gosubStack = vm.gosubStack[:len(vm.gosubStack)-1]
		after, err := vm.lineAfter(top.line)
		if err != nil {
			return execResult{}, err
		}
		return jump(after), nil
	case ast.EmptyStmt:
		return next, nil
	case ast.EndStmt:
		// only reachable through IF ... THEN END
		return execResult{kind: resultHalt}, nil
	default:
		return execResult{}, vm.fault("unsupported statement %T", stmt)
	}
}

func (vm *VM) execPrint(s ast.PrintStmt) (execResult, error) {
	b := strings.Builder{}
	for _, item := range s.Items {
		switch item.Kind {
		case ast.PrintString:
			b.WriteString(item.Text)
		case ast.PrintComma:
			b.WriteByte('\t')
		case ast.PrintSemicolon:
		case ast.PrintExpr:
			v, err := vm.evalExpr(item.Expr)
			if err != nil {
				return execResult{}, err
			}
			b.WriteString(strconv.FormatInt(v, 10))
		default:
			return execResult{}, vm.fault("unsupported print item %d", item.Kind)
		}
	}
	vm.emitOutput(Output{Text: b.String(), NewLine: true})
	return next, nil
}

func (vm *VM) execInput(s ast.InputStmt) (execResult, error) {
	if s.HasPrompt {
		vm.emitOutput(Output{Text: s.Prompt, NewLine: false})
	}
	for _, name := range s.Names {
		v, err := vm.readInt(InputRequest{Line: vm.current, Variable: name, Prompt: s.Prompt})
		if err != nil {
			return execResult{}, err
		}
		vm.globals[name] = v
	}
	return next, nil
}

// execNext closes or repeats the innermost loop. The bound was fixed when
// the FOR ran; the counter is compared before it is incremented.
func (vm *VM) execNext(s ast.NextStmt) (execResult, error) {
	if len(vm.forStack) == 0 || vm.forStack[len(vm.forStack)-1].name != s.Var {
		return execResult{}, vm.fault("incorrect nesting of FORs")
	}
	top := vm.forStack[len(vm.forStack)-1]
	counter, ok := vm.globals[top.name]
	if !ok {
		return execResult{}, vm.fault("name '%s' is not defined", top.name)
	}
	if counter >= top.to {
		vm.forStack = vm.forStack[:len(vm.forStack)-1]
		return next, nil
	}
	vm.globals[top.name] = counter + 1
	body, err := vm.lineAfter(top.line)
	if err != nil {
		return execResult{}, err
	}
	return jump(body), nil
}
