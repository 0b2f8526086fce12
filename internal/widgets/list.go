package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// List renders items one per line with a cursor marker and an optional
// highlighted ("current") item.
type List struct {
	Items   []string
	Cursor  int // -1 hides the cursor
	Current int // -1 for none
	Style   lipgloss.Style
	Marked  lipgloss.Style
}

func (l List) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	rows := make([]string, 0, len(l.Items))
	for i, item := range l.Items {
		marker := "  "
		if i == l.Cursor {
			marker = "> "
		}
		style := l.Style
		if i == l.Current {
			style = l.Marked
		}
		rows = append(rows, padRight(marker+style.Render(item), width))
		if len(rows) == height {
			break
		}
	}
	return strings.Join(rows, "\n")
}
