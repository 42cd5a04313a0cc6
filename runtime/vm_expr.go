package lbruntime

import (
	"github.com/gosuda/linebasic/ast"
)

func (vm *VM) evalExpr(e ast.Expr) (int64, error) {
	switch ex := e.(type) {
	case ast.IntLit:
		return ex.Value, nil
	case ast.VarRef:
		v, ok := vm.globals[ex.Name]
		if !ok {
			return 0, vm.fault("name '%s' is not defined", ex.Name)
		}
		return v, nil
	case ast.BinaryExpr:
		left, err := vm.evalExpr(ex.Left)
		if err != nil {
			return 0, err
		}
		right, err := vm.evalExpr(ex.Right)
		if err != nil {
			return 0, err
		}
		return vm.evalBinary(ex.Op, left, right)
	default:
		return 0, vm.fault("unsupported expression %T", e)
	}
}

func (vm *VM) evalBinary(op ast.Operator, left, right int64) (int64, error) {
	switch op {
	case ast.OpAdd:
		return left + right, nil
	case ast.OpSub:
		return left - right, nil
	case ast.OpMul:
		return left * right, nil
	case ast.OpDiv:
		if right == 0 {
			return 0, vm.fault("division by zero")
		}
		return left / right, nil
	default:
		return 0, vm.fault("unsupported arithmetic operator %s", op)
	}
}

func (vm *VM) evalCondition(c ast.Condition) (bool, error) {
	if !c.Op.Relational() {
		return false, vm.fault("unsupported relational operator %s", c.Op)
	}
	left, err := vm.evalExpr(c.Left)
	if err != nil {
		return false, err
	}
	right, err := vm.evalExpr(c.Right)
	if err != nil {
		return false, err
	}
	switch c.Op {
	case ast.OpLt:
		return left < right, nil
	case ast.OpEq:
		return left == right, nil
	case ast.OpGt:
		return left > right, nil
	default:
		return false, vm.fault("unsupported relational operator %s", c.Op)
	}
}
