package mobile

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gosuda/linebasic"
	lbruntime "github.com/gosuda/linebasic/runtime"
)

type runResult struct {
	Outputs []lbruntime.Output `json:"outputs"`
	Error   string             `json:"error,omitempty"`
}

func encodeResult(result runResult) string {
	if result.Outputs == nil {
		result.Outputs = []lbruntime.Output{}
	}
	b, _ := json.Marshal(result)
	return string(b)
}

// Run executes a program with pre-queued input and returns a JSON result.
// inputsJSON format: ["5", "1 2", ...]
// Output produced before a fault is kept in the result.
func Run(source, inputsJSON string) string {
	result := runResult{}

	var queued []string
	if strings.TrimSpace(inputsJSON) != "" {
		if err := json.Unmarshal([]byte(inputsJSON), &queued); err != nil {
			result.Error = fmt.Sprintf("invalid inputs json: %v", err)
			return encodeResult(result)
		}
	}

	vm, err := linebasic.Compile(strings.ReplaceAll(source, "\r\n", "\n"))
	if err != nil {
		result.Error = err.Error()
		return encodeResult(result)
	}
	vm.EnqueueInput(queued...)

	out, err := vm.Run()
	result.Outputs = out
	if err != nil {
		result.Error = err.Error()
	}
	return encodeResult(result)
}
