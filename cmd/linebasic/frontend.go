package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	lbruntime "github.com/gosuda/linebasic/runtime"
)

type vmPollMsg struct{}

type model struct {
	cfg      appConfig
	viewport viewport.Model
	input    textinput.Model
	ready    bool
	width    int
	height   int
	status   string
	running  bool
	done     bool
	err      error
	events   <-chan tea.Msg
	pending  *pendingInput
	history  []string
	tail     string
}

var (
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	inputStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

func newModel(cfg appConfig) model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 4096
	return model{
		cfg:      cfg,
		viewport: viewport.New(80, 20),
		input:    ti,
		status:   "starting",
	}
}

func startVM(cfg appConfig) tea.Cmd {
	return func() tea.Msg {
		events := make(chan tea.Msg, 256)
		go runVM(cfg, events)
		return vmStartedMsg{events: events}
	}
}

func waitVMEvent(events <-chan tea.Msg) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case msg, ok := <-events:
			if !ok {
				return nil
			}
			return msg
		case <-time.After(20 * time.Millisecond):
			return vmPollMsg{}
		}
	}
}

func sendInputResp(ch chan vmInputResp, resp vmInputResp) {
	select {
	case ch <- resp:
	default:
	}
}

// succeeded reports whether the last run reached END.
func (m model) succeeded() bool {
	return m.done && m.err == nil
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, startVM(m.cfg))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 4
		m.resizeViewport()
		m.ready = true
		return m, nil

	case vmStartedMsg:
		m.events = msg.events
		m.running = true
		m.status = "running " + m.cfg.path
		return m, waitVMEvent(m.events)

	case vmOutputMsg:
		m.appendOutput(msg.out)
		return m, waitVMEvent(m.events)

	case vmPollMsg:
		if m.running && m.pending == nil {
			return m, waitVMEvent(m.events)
		}
		return m, nil

	case vmPromptMsg:
		m.pending = &pendingInput{req: msg.req, resp: msg.resp}
		m.input.SetValue("")
		m.input.Placeholder = msg.req.Variable
		m.status = fmt.Sprintf("line %d: input %s", msg.req.Line, msg.req.Variable)
		m.resizeViewport()
		return m, m.input.Focus()

	case vmDoneMsg:
		m.running = false
		m.done = true
		m.err = msg.err
		m.pending = nil
		m.input.Blur()
		m.resizeViewport()
		if msg.err != nil {
			m.status = "failed (r: restart, q: quit)"
			m.appendOutput(lbruntime.Output{Text: errStyle.Render(msg.err.Error()), NewLine: true})
		} else {
			m.status = "done (r: restart, q: quit)"
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			if m.pending != nil {
				sendInputResp(m.pending.resp, vmInputResp{aborted: true})
			}
			return m, tea.Quit
		}

		if m.pending != nil {
			if msg.Type == tea.KeyEnter {
				val := strings.TrimSpace(m.input.Value())
				// Echo the reply after the prompt, the way a terminal would.
				m.appendOutput(lbruntime.Output{Text: val, NewLine: true})
				sendInputResp(m.pending.resp, vmInputResp{value: val})
				m.pending = nil
				m.input.Blur()
				m.input.SetValue("")
				m.resizeViewport()
				m.status = "running " + m.cfg.path
				return m, waitVMEvent(m.events)
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "q":
			if m.running {
				return m, nil
			}
			return m, tea.Quit
		case "r":
			if m.running {
				return m, nil
			}
			m.clearForRestart()
			m.status = "restarting"
			return m, startVM(m.cfg)
		case "g", "home":
			m.viewport.GotoTop()
			return m, nil
		case "G", "end":
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if !m.ready {
		return "initializing..."
	}
	parts := []string{m.viewport.View(), statusStyle.Render(m.status)}
	if m.pending != nil {
		parts = append(parts, inputStyle.Render(m.input.View()))
	}
	return strings.Join(parts, "\n")
}

// resizeViewport gives the transcript every row the footer does not use.
func (m *model) resizeViewport() {
	footerLines := 1
	if m.pending != nil {
		footerLines++
	}
	vh := m.height - footerLines
	if vh < 1 {
		vh = 1
	}
	m.viewport.Width = m.width
	m.viewport.Height = vh
}

func (m *model) appendOutput(out lbruntime.Output) {
	if out.NewLine {
		m.history = append(m.history, m.tail+out.Text)
		m.tail = ""
	} else {
		m.tail += out.Text
	}
	m.rebuildContent()
}

func (m *model) rebuildContent() {
	content := strings.Join(m.history, "\n")
	if m.tail != "" {
		if content != "" {
			content += "\n"
		}
		content += m.tail
	}
	if content == "" {
		content = "(no output yet)"
	}
	m.viewport.SetContent(content)
	m.viewport.GotoBottom()
}

func (m *model) clearForRestart() {
	m.history = nil
	m.tail = ""
	m.viewport.SetContent("")
	m.pending = nil
	m.done = false
	m.err = nil
	m.input.Blur()
	m.input.SetValue("")
	m.resizeViewport()
}
