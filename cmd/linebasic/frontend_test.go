package main

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	lbruntime "github.com/gosuda/linebasic/runtime"
)

func sized(t *testing.T) model {
	t.Helper()
	m, _ := newModel(appConfig{path: "prog.bas"}).Update(tea.WindowSizeMsg{Width: 40, Height: 4})
	return m.(model)
}

func TestTranscriptFoldsPrompts(t *testing.T) {
	m := sized(t)
	m.appendOutput(lbruntime.Output{Text: "a", NewLine: true})
	m.appendOutput(lbruntime.Output{Text: "n? "})
	if len(m.history) != 1 || m.history[0] != "a" || m.tail != "n? " {
		t.Fatalf("unexpected transcript: %q + %q", m.history, m.tail)
	}
	m.appendOutput(lbruntime.Output{Text: "5", NewLine: true})
	if len(m.history) != 2 || m.history[1] != "n? 5" || m.tail != "" {
		t.Fatalf("unexpected transcript: %q + %q", m.history, m.tail)
	}
}

func TestTranscriptFollowsNewestOutput(t *testing.T) {
	m := sized(t)
	if m.viewport.Height != 3 {
		t.Fatalf("unexpected viewport height: %d", m.viewport.Height)
	}
	for _, s := range []string{"l1", "l2", "l3", "l4", "l5"} {
		m.appendOutput(lbruntime.Output{Text: s, NewLine: true})
	}
	if !m.viewport.AtBottom() || m.viewport.YOffset != 2 {
		t.Fatalf("viewport not at newest output: offset=%d", m.viewport.YOffset)
	}
	view := m.viewport.View()
	if !strings.Contains(view, "l5") || strings.Contains(view, "l1") {
		t.Fatalf("unexpected window: %q", view)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	m = next.(model)
	if m.viewport.YOffset != 0 {
		t.Fatalf("home did not scroll to top: offset=%d", m.viewport.YOffset)
	}
	view = m.viewport.View()
	if !strings.Contains(view, "l1") || strings.Contains(view, "l5") {
		t.Fatalf("unexpected scrolled window: %q", view)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(model)
	if m.viewport.YOffset != 1 {
		t.Fatalf("down key not forwarded to viewport: offset=%d", m.viewport.YOffset)
	}
}

func TestPromptReplyIsSent(t *testing.T) {
	m := sized(t)
	resp := make(chan vmInputResp, 1)
	next, _ := m.Update(vmPromptMsg{req: lbruntime.InputRequest{Line: 10, Variable: "n"}, resp: resp})
	m = next.(model)
	if m.pending == nil {
		t.Fatalf("prompt was not recorded")
	}
	m.input.SetValue(" 42 ")
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(model)
	if m.pending != nil {
		t.Fatalf("prompt still pending")
	}
	select {
	case r := <-resp:
		if r.value != "42" || r.aborted {
			t.Fatalf("unexpected reply: %+v", r)
		}
	default:
		t.Fatalf("no reply sent")
	}
}

func TestDoneRecordsFault(t *testing.T) {
	m := sized(t)
	next, _ := m.Update(vmDoneMsg{err: errors.New("error on line 10: boom")})
	m = next.(model)
	if m.succeeded() {
		t.Fatalf("faulted run must not count as success")
	}
	if !strings.Contains(strings.Join(m.history, "\n"), "boom") {
		t.Fatalf("fault missing from transcript: %q", m.history)
	}

	next, _ = m.Update(vmDoneMsg{})
	if !next.(model).succeeded() {
		t.Fatalf("clean run must count as success")
	}
}
