// Package tui implements a single-pane scrolling REPL for exploring unit
// specifications interactively, trimmed from the teacher's split-pane
// editor/REPL pair since unit parsing carries no persistent session state
// (no variables to pin, no document to edit) — just input, parsed result.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/gounits/uparse"
	"github.com/gounits/uparse/internal/config"
	"github.com/gounits/uparse/unitsys"
)

// HistoryEntry is one input/output pair shown in the scrolling history.
type HistoryEntry struct {
	Input   string
	Output  string
	IsError bool
}

// Model is the REPL's bubbletea state.
type Model struct {
	sessionID uuid.UUID

	sys *unitsys.System

	input   textinput.Model
	history []string
	output  []HistoryEntry

	historyIdx int
	showHelp   bool
	quitting   bool

	width, height int
	styles        config.ThemeConfig
}

// New constructs a REPL model over sys. sys is read-only during the
// session — every parse resolves against the same snapshot, matching
// spec.md §5's "unit system is read-only during a parse" contract.
func New(sys *unitsys.System) Model {
	ti := textinput.New()
	ti.Prompt = "uparse> "
	ti.Placeholder = `e.g. "kg m s-2" or "celsius @ 273.15"`
	ti.Focus()
	ti.CharLimit = 300
	ti.Width = 70

	cfg, err := config.Load()
	theme := config.ThemeConfig{Primary: "#7D56F4", Accent: "#F25D94", Error: "#FF5555", Muted: "#626262", Output: "#04B575"}
	if err == nil && cfg != nil {
		theme = cfg.Theme
	}

	return Model{
		sessionID:  uuid.New(),
		sys:        sys,
		input:      ti,
		historyIdx: -1,
		width:      80,
		height:     24,
		styles:     theme,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = m.width - len(m.input.Prompt) - 2
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyUp:
		return m.historyUp(), nil

	case tea.KeyDown:
		return m.historyDown(), nil

	case tea.KeyEnter:
		return m.handleEnter()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) historyUp() Model {
	if len(m.history) == 0 {
		return m
	}
	if m.historyIdx == -1 {
		m.historyIdx = len(m.history) - 1
	} else if m.historyIdx > 0 {
		m.historyIdx--
	}
	m.input.SetValue(m.history[m.historyIdx])
	return m
}

func (m Model) historyDown() Model {
	if m.historyIdx == -1 {
		return m
	}
	m.historyIdx++
	if m.historyIdx >= len(m.history) {
		m.historyIdx = -1
		m.input.SetValue("")
	} else {
		m.input.SetValue(m.history[m.historyIdx])
	}
	return m
}

func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	m.historyIdx = -1
	m.showHelp = false

	if line == "" {
		return m, nil
	}

	switch line {
	case "/help", "/h", "/?":
		m.showHelp = true
		return m, nil
	case "/clear":
		m.output = nil
		return m, nil
	case "/quit", "/q":
		m.quitting = true
		return m, tea.Quit
	}

	if len(m.history) == 0 || m.history[len(m.history)-1] != line {
		m.history = append(m.history, line)
	}

	m.output = append(m.output, m.evaluate(line))
	return m, nil
}

func (m Model) evaluate(line string) HistoryEntry {
	var rep collectingReporter
	u, status := uparse.Parse(m.sys, line, uparse.UTF8, &rep)
	if status != uparse.SUCCESS {
		msg := rep.message
		if msg == "" {
			msg = status.String()
		}
		return HistoryEntry{Input: line, Output: msg, IsError: true}
	}
	return HistoryEntry{Input: line, Output: formatUnit(u), IsError: false}
}

func formatUnit(u unitsys.Unit) string {
	var b strings.Builder
	fmt.Fprintf(&b, "scale=%s dims=%v", u.Scale.String(), u.Dims)
	if u.Offset != nil {
		fmt.Fprintf(&b, " offset=%s", u.Offset.String())
	}
	if u.Origin != nil {
		fmt.Fprintf(&b, " origin=%g", *u.Origin)
	}
	if u.Log != nil {
		fmt.Fprintf(&b, " log-base=%s", u.Log.Base.String())
	}
	return b.String()
}

// collectingReporter captures the last reported message for display.
type collectingReporter struct {
	message string
}

func (r *collectingReporter) Report(format string, args ...interface{}) {
	r.message = fmt.Sprintf(format, args...)
}

// Quitting reports whether the REPL loop should exit.
func (m Model) Quitting() bool { return m.quitting }
