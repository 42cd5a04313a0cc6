package lbruntime

import (
	"fmt"

	"github.com/gosuda/linebasic/ast"
)

type Output struct {
	Text    string `json:"text"`
	NewLine bool   `json:"newline"`
}

// VM executes a loaded program. A VM is not safe for concurrent use; the
// program it runs is never modified and may be shared.
type VM struct {
	program       *ast.Program
	globals       map[string]int64
	forStack      []forFrame
	gosubStack    []gosubFrame
	cursor        int
	current       int
	outputs       []Output
	outputHook    func(Output)
	inputProvider InputProvider
	input         inputState
	stepLimit     int
	execSteps     int
}

type forFrame struct {
	name string
	line int
	from int64
	to   int64
}

type gosubFrame struct {
	line int
}

type resultKind int

const (
	resultNext resultKind = iota
	resultJump
	resultHalt
)

type execResult struct {
	kind resultKind
	line int
}

func New(program *ast.Program) (*VM, error) {
	if program == nil || program.Len() == 0 {
		return nil, fmt.Errorf("program has no lines")
	}
	return &VM{
		program: program,
		globals: map[string]int64{},
	}, nil
}

// SetOutputHook streams every output record to hook. While a hook is
// installed Run no longer buffers output and returns none.
func (vm *VM) SetOutputHook(hook func(Output)) {
	vm.outputHook = hook
}

// SetStepLimit aborts Run with a fault after n executed statements.
// Zero, the default, means no limit.
func (vm *VM) SetStepLimit(n int) {
	if n < 0 {
		n = 0
	}
	vm.stepLimit = n
}

// Variables returns a copy of the variable store.
func (vm *VM) Variables() map[string]int64 {
	cp := make(map[string]int64, len(vm.globals))
	for k, v := range vm.globals {
		cp[k] = v
	}
	return cp
}

func (vm *VM) reset() {
	vm.globals = map[string]int64{}
	vm.forStack = nil
	vm.gosubStack = nil
	vm.outputs = nil
	vm.execSteps = 0
}

// Run executes from the smallest line number until END is reached or a
// fault occurs. Output produced before a fault is returned with it.
func (vm *VM) Run() ([]Output, error) {
	vm.reset()
	first, _ := vm.program.First()
	vm.cursor = first
	vm.current = first
	for {
		line, ok := vm.program.Get(vm.cursor)
		if !ok {
			return vm.outputs, vm.fault("line %d does not exist", vm.cursor)
		}
		if _, ok := line.Stmt.(ast.EndStmt); ok {
			return vm.outputs, nil
		}
		vm.current = line.Number
		if vm.stepLimit > 0 && vm.execSteps >= vm.stepLimit {
			return vm.outputs, vm.fault("step limit of %d exceeded", vm.stepLimit)
		}
		vm.execSteps++

		res, err := vm.runStatement(line.Stmt)
		if err != nil {
			return vm.outputs, err
		}
		switch res.kind {
		case resultNext:
			after, err := vm.lineAfter(vm.current)
			if err != nil {
				return vm.outputs, err
			}
			vm.cursor = after
		case resultJump:
			vm.cursor = res.line
		case resultHalt:
			return vm.outputs, nil
		}
	}
}

func (vm *VM) lineAfter(number int) (int, error) {
	after, ok := vm.program.After(number)
	if !ok {
		return 0, vm.fault("no line after %d", number)
	}
	return after, nil
}

func (vm *VM) emitOutput(out Output) {
	if vm.outputHook != nil {
		vm.outputHook(out)
		return
	}
	vm.outputs = append(vm.outputs, out)
}
