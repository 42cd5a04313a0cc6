package lbruntime

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

// InputRequest describes the variable an INPUT statement is waiting on.
type InputRequest struct {
	Line     int
	Variable string
	Prompt   string
}

// InputProvider is asked for more text whenever the input queue runs dry.
// The text is split on whitespace, so one reply can answer several
// requests. Returning io.EOF with no text ends the input stream.
type InputProvider func(req InputRequest) (string, error)

type inputState struct {
	queue []string
}

func (vm *VM) SetInputProvider(p InputProvider) {
	vm.inputProvider = p
}

// EnqueueInput pre-loads whitespace separated values for INPUT.
func (vm *VM) EnqueueInput(values ...string) {
	for _, v := range values {
		vm.input.queue = append(vm.input.queue, strings.Fields(v)...)
	}
}

func (vm *VM) consumeQueuedInput() (string, bool) {
	if len(vm.input.queue) == 0 {
		return "", false
	}
	v := vm.input.queue[0]
	vm.input.queue = vm.input.queue[1:]
	return v, true
}

func (vm *VM) resolveInput(req InputRequest) (string, error) {
	for {
		if raw, ok := vm.consumeQueuedInput(); ok {
			return raw, nil
		}
		if vm.inputProvider == nil {
			return "", io.EOF
		}
		text, err := vm.inputProvider(req)
		vm.EnqueueInput(text)
		if err != nil && len(vm.input.queue) == 0 {
			return "", err
		}
	}
}

func (vm *VM) readInt(req InputRequest) (int64, error) {
	raw, err := vm.resolveInput(req)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, vm.fault("unexpected end of input")
		}
		return 0, vm.fault("reading %s: %v", req.Variable, err)
	}
	n, ok := parseIntInput(raw)
	if !ok {
		return 0, vm.fault("expected integer input but got %q", raw)
	}
	return n, nil
}

func parseIntInput(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
