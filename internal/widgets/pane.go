package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Pane colors, Catppuccin Mocha.
var (
	PaneBorder        = lipgloss.Color("#6c7086")
	PaneBorderActive  = lipgloss.Color("#89b4fa")
	PaneBorderFocused = lipgloss.Color("#a6e3a1")
	PaneText          = lipgloss.Color("#cdd6f4")
)

// Pane draws a rounded box with the title set into the top border.
type Pane struct {
	Title   string
	Content string
	Active  bool // highlighted, e.g. the pane of the current tab
	Focused bool // holds keyboard focus
}

func (p Pane) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	width = max(width, 4)
	height = max(height, 3)

	border := PaneBorder
	prefix := ""
	switch {
	case p.Focused:
		border = PaneBorderFocused
		prefix = "● "
	case p.Active:
		border = PaneBorderActive
		prefix = "▶ "
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(PaneText).Bold(true)

	innerWidth := width - 2
	contentWidth := max(1, innerWidth-2)

	titleText := ""
	if t := strings.TrimSpace(prefix + p.Title); t != "" {
		titleText = " " + ansi.Truncate(t, max(1, innerWidth-2), "") + " "
	}
	dashes := max(0, innerWidth-ansi.StringWidth(titleText))
	leftDash := min(1, dashes)
	top := borderStyle.Render("╭"+strings.Repeat("─", leftDash)) +
		titleStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat("─", dashes-leftDash)+"╮")

	v := borderStyle.Render("│")
	lines := strings.Split(p.Content, "\n")
	rows := make([]string, 0, height)
	rows = append(rows, top)
	for i := 0; i < height-2; i++ {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		rows = append(rows, v+" "+padRight(line, contentWidth)+" "+v)
	}
	rows = append(rows, borderStyle.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))
	return strings.Join(rows, "\n")
}
