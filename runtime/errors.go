package lbruntime

import "fmt"

// RuntimeError is a fault raised while executing. Line is the declared
// line number of the statement that was running.
type RuntimeError struct {
	Line int
	Msg  string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("error on line %d: %s", e.Line, e.Msg)
}

func (vm *VM) fault(format string, args ...any) error {
	return &RuntimeError{Line: vm.current, Msg: fmt.Sprintf(format, args...)}
}
