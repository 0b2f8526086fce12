package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Overlay draws popup over base with its top-left corner at column x, row y.
// The result is exactly width x height cells.
func Overlay(base, popup string, x, y, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	baseLines := fitLines(base, height)
	popupLines := strings.Split(popup, "\n")
	popupWidth := 0
	for _, l := range popupLines {
		popupWidth = max(popupWidth, ansi.StringWidth(l))
	}
	x = max(0, min(x, width-popupWidth))
	for i, line := range popupLines {
		row := y + i
		if row < 0 || row >= height {
			continue
		}
		target := padRight(baseLines[row], width)
		left := padRight(target, x)
		mid := padRight(line, popupWidth)
		right := ansi.TruncateLeft(target, x+popupWidth, "")
		baseLines[row] = padRight(left+mid+right, width)
	}
	for i := range baseLines {
		baseLines[i] = padRight(baseLines[i], width)
	}
	return strings.Join(baseLines, "\n")
}

func fitLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}
