//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"syscall/js"

	"github.com/gosuda/linebasic"
	lbruntime "github.com/gosuda/linebasic/runtime"
)

type runResult struct {
	Outputs []lbruntime.Output `json:"outputs"`
	Error   string             `json:"error,omitempty"`
}

type inputRequestPayload struct {
	Line     int    `json:"line"`
	Variable string `json:"variable"`
	Prompt   string `json:"prompt"`
}

const abortSentinel = "__LINEBASIC_ABORT__"

func encodeResult(result runResult) string {
	if result.Outputs == nil {
		result.Outputs = []lbruntime.Output{}
	}
	b, _ := json.Marshal(result)
	return string(b)
}

// inputPrompt asks the page for more input. A missing callback or an
// undefined reply ends the input stream.
func inputPrompt(req lbruntime.InputRequest) (string, error) {
	fn := js.Global().Get("basicInputNext")
	if fn.Type() != js.TypeFunction {
		return "", io.EOF
	}
	b, _ := json.Marshal(inputRequestPayload{
		Line:     req.Line,
		Variable: req.Variable,
		Prompt:   req.Prompt,
	})
	v := fn.Invoke(string(b))
	if v.IsUndefined() || v.IsNull() {
		return "", io.EOF
	}
	out := strings.TrimSpace(v.String())
	if out == abortSentinel {
		return "", fmt.Errorf("input aborted")
	}
	if out == "" {
		return "", io.EOF
	}
	return out, nil
}

func runProgram(this js.Value, args []js.Value) any {
	result := runResult{}
	if len(args) < 1 {
		result.Error = "basicRun requires program source"
		return encodeResult(result)
	}

	var queued []string
	if len(args) > 1 && args[1].Type() == js.TypeString {
		if raw := strings.TrimSpace(args[1].String()); raw != "" {
			if err := json.Unmarshal([]byte(raw), &queued); err != nil {
				result.Error = fmt.Sprintf("invalid inputs json: %v", err)
				return encodeResult(result)
			}
		}
	}

	vm, err := linebasic.Compile(strings.ReplaceAll(args[0].String(), "\r\n", "\n"))
	if err != nil {
		result.Error = err.Error()
		return encodeResult(result)
	}
	vm.EnqueueInput(queued...)
	vm.SetInputProvider(inputPrompt)

	out, err := vm.Run()
	result.Outputs = out
	if err != nil {
		result.Error = err.Error()
	}
	return encodeResult(result)
}

func main() {
	js.Global().Set("basicRun", js.FuncOf(runProgram))
	select {}
}
