package main

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gosuda/linebasic"
	lbruntime "github.com/gosuda/linebasic/runtime"
)

var errAborted = errors.New("input aborted")

func runVM(cfg appConfig, events chan<- tea.Msg) {
	defer close(events)
	vm, err := linebasic.Compile(cfg.source)
	if err != nil {
		events <- vmDoneMsg{err: err}
		return
	}
	vm.SetStepLimit(cfg.steps)

	vm.SetOutputHook(func(out lbruntime.Output) {
		events <- vmOutputMsg{out: out}
	})
	vm.SetInputProvider(func(req lbruntime.InputRequest) (string, error) {
		resp := make(chan vmInputResp, 1)
		events <- vmPromptMsg{req: req, resp: resp}
		r := <-resp
		if r.aborted {
			return "", errAborted
		}
		return r.value, nil
	})

	_, err = vm.Run()
	events <- vmDoneMsg{err: err}
}
