package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Widget renders itself into a width x height cell box.
type Widget interface {
	Render(width, height int) string
}

// Text renders preformatted content clipped to the box.
type Text string

func (t Text) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(string(t), "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, l := range lines {
		lines[i] = padRight(l, width)
	}
	return strings.Join(lines, "\n")
}

// padRight truncates or pads s to exactly width terminal cells.
func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
