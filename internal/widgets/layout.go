package widgets

import "strings"

// Cell is one slot of a Row or Column. A positive Size reserves exactly that
// many cells; otherwise the slot shares what is left in proportion to Weight
// (1 when unset) and never gets less than Min.
type Cell struct {
	Widget Widget
	Size   int
	Min    int
	Weight float64
}

func (c Cell) weight() float64 {
	if c.Weight <= 0 {
		return 1
	}
	return c.Weight
}

// Row lays cells out left to right. Every output line is exactly width
// cells wide and there are exactly height lines.
type Row struct {
	Cells []Cell
	Gap   int
}

func (r Row) Render(width, height int) string {
	if len(r.Cells) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	gap := max(0, r.Gap)
	widths := allot(width-gap*(len(r.Cells)-1), r.Cells)
	cols := make([][]string, len(r.Cells))
	for i, c := range r.Cells {
		cols[i] = fitLines(c.Widget.Render(widths[i], height), height)
	}
	sep := strings.Repeat(" ", gap)
	rows := make([]string, height)
	for y := range rows {
		var b strings.Builder
		for i, col := range cols {
			if i > 0 {
				b.WriteString(sep)
			}
			b.WriteString(padRight(col[y], widths[i]))
		}
		rows[y] = padRight(b.String(), width)
	}
	return strings.Join(rows, "\n")
}

// Column lays cells out top to bottom with Gap blank lines between them.
type Column struct {
	Cells []Cell
	Gap   int
}

func (c Column) Render(width, height int) string {
	if len(c.Cells) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	gap := max(0, c.Gap)
	heights := allot(height-gap*(len(c.Cells)-1), c.Cells)
	var out []string
	for i, cell := range c.Cells {
		if i > 0 {
			for range gap {
				out = append(out, "")
			}
		}
		if heights[i] > 0 {
			out = append(out, fitLines(cell.Widget.Render(width, heights[i]), heights[i])...)
		}
	}
	lines := fitLines(strings.Join(out, "\n"), height)
	for i, l := range lines {
		lines[i] = padRight(l, width)
	}
	return strings.Join(lines, "\n")
}

// allot hands out total cells: fixed sizes first, then the remainder by
// weight. Rounding slack and any overdraw from Min go to the heaviest
// weighted cell.
func allot(total int, cells []Cell) []int {
	sizes := make([]int, len(cells))
	rest := max(0, total)
	weights := 0.0
	for i, c := range cells {
		if c.Size > 0 {
			sizes[i] = min(c.Size, rest)
			rest -= sizes[i]
			continue
		}
		weights += c.weight()
	}
	if rest == 0 || weights == 0 {
		return sizes
	}
	free := float64(rest)
	heaviest := -1
	for i, c := range cells {
		if c.Size > 0 {
			continue
		}
		sizes[i] = max(c.Min, int(free*c.weight()/weights))
		rest -= sizes[i]
		if heaviest < 0 || c.weight() > cells[heaviest].weight() {
			heaviest = i
		}
	}
	sizes[heaviest] = max(0, sizes[heaviest]+rest)
	return sizes
}
