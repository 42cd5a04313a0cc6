package main

import (
	tea "github.com/charmbracelet/bubbletea"
	lbruntime "github.com/gosuda/linebasic/runtime"
)

type appConfig struct {
	path   string
	source string
	steps  int
}

type vmStartedMsg struct {
	events <-chan tea.Msg
}

type vmOutputMsg struct {
	out lbruntime.Output
}

type vmDoneMsg struct {
	err error
}

type vmInputResp struct {
	value   string
	aborted bool
}

type vmPromptMsg struct {
	req  lbruntime.InputRequest
	resp chan vmInputResp
}

type pendingInput struct {
	req  lbruntime.InputRequest
	resp chan vmInputResp
}
