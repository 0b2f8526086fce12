package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Rail is a narrow vertical strip of icon glyphs.
type Rail struct {
	Icons []string
	Style lipgloss.Style
}

func (r Rail) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	rows := make([]string, 0, height)
	for i := 0; i < height; i++ {
		cell := ""
		// one blank row above and between icons
		if i%2 == 1 && i/2 < len(r.Icons) {
			cell = lipgloss.PlaceHorizontal(width, lipgloss.Center, r.Style.Render(r.Icons[i/2]))
		}
		rows = append(rows, padRight(cell, width))
	}
	return strings.Join(rows, "\n")
}
