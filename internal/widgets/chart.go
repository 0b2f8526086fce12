package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Bar is one labelled value of a BarChart.
type Bar struct {
	Label string
	Value int
}

// BarChart draws horizontal bars scaled to the largest value.
type BarChart struct {
	Title string
	Bars  []Bar
	Style lipgloss.Style
}

func (c BarChart) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := []string{c.Title}
	if len(c.Bars) == 0 {
		lines = append(lines, "(no data)")
		return Text(strings.Join(lines, "\n")).Render(width, height)
	}
	labelW, maxV := 0, 0
	for _, b := range c.Bars {
		labelW = max(labelW, ansi.StringWidth(b.Label))
		maxV = max(maxV, b.Value)
	}
	track := max(1, width-labelW-6)
	for _, b := range c.Bars {
		n := 0
		if maxV > 0 {
			n = b.Value * track / maxV
		}
		if b.Value > 0 {
			n = max(n, 1)
		}
		lines = append(lines, fmt.Sprintf("%-*s %s %d", labelW, b.Label, c.Style.Render(strings.Repeat("█", n)), b.Value))
	}
	return Text(strings.Join(lines, "\n")).Render(width, height)
}
