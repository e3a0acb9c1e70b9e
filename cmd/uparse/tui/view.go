package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	glamourStyles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// View implements tea.Model. A minimal, scrolling history view: no split
// panes, no pinned panel, since a parse has no persistent variables to track.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("252")).
		Background(lipgloss.Color(m.styles.Primary)).
		Padding(0, 1).
		Width(m.width)
	b.WriteString(titleStyle.Render(fmt.Sprintf("uparse repl  [%s]", m.sessionID.String()[:8])))
	b.WriteString("\n")

	if m.showHelp {
		b.WriteString(m.renderHelp())
		b.WriteString("\n")
		return b.String()
	}

	historyHeight := m.height - 4
	if historyHeight < 3 {
		historyHeight = 3
	}
	b.WriteString(m.renderHistory(historyHeight))

	b.WriteString(m.input.View())
	b.WriteString("\n")

	separatorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.Muted))
	b.WriteString(separatorStyle.Render(strings.Repeat("─", max(1, m.width))))
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.Muted))
	b.WriteString(helpStyle.Render("↑↓ history │ /help │ /clear │ /quit"))

	return b.String()
}

func (m Model) renderHistory(maxLines int) string {
	var b strings.Builder

	if len(m.output) == 0 {
		emptyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.Muted)).Italic(true)
		b.WriteString(emptyStyle.Render("  Type a unit specification and press Enter"))
		b.WriteString("\n")
		b.WriteString(emptyStyle.Render(`  Example: kg m s-2`))
		b.WriteString("\n")
		b.WriteString(emptyStyle.Render(`           celsius @ 273.15`))
		b.WriteString("\n\n")
		return b.String()
	}

	visible := m.visibleEntries(maxLines)
	promptStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.Accent))
	outStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.Output))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.Error))

	for _, e := range visible {
		b.WriteString(promptStyle.Render("> "))
		b.WriteString(e.Input)
		b.WriteString("\n")
		if e.IsError {
			b.WriteString("  ")
			b.WriteString(errStyle.Render("! " + e.Output))
		} else {
			b.WriteString("  ")
			b.WriteString(outStyle.Render(e.Output))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) visibleEntries(maxLines int) []HistoryEntry {
	var entries []HistoryEntry
	used := 0
	for i := len(m.output) - 1; i >= 0; i-- {
		if used+2 > maxLines {
			break
		}
		entries = append([]HistoryEntry{m.output[i]}, entries...)
		used += 2
	}
	return entries
}

func (m Model) renderHelp() string {
	const md = `
# uparse repl

Type a unit specification and press Enter to resolve it against the
loaded unit system.

- ` + "`kg m s-2`" + ` — newton expressed in base units
- ` + "`lg(re 1 mW)`" + ` — decibel-style log ratio
- ` + "`celsius @ 273.15`" + ` — offset unit
- ` + "`seconds since 2000-01-01T12:00:00Z`" + ` — time-since unit

## Commands

- ` + "`/help`" + ` show this text
- ` + "`/clear`" + ` clear history
- ` + "`/quit`" + ` exit
`
	wrap := m.width - 2
	if wrap < 20 {
		wrap = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(glamourStyles.DarkStyleConfig),
		glamour.WithColorProfile(termenv.ColorProfile()),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
