package widgets

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
)

func sum(xs []int) int {
	n := 0
	for _, x := range xs {
		n += x
	}
	return n
}

func TestAllotFollowsWeights(t *testing.T) {
	got := allot(100, []Cell{{Weight: 0.15}, {Weight: 0.45}, {Weight: 0.30}, {Weight: 0.10}})
	if sum(got) != 100 {
		t.Fatalf("sizes should fill total, got %v", got)
	}
	if got[1] < got[2] || got[2] < got[0] || got[0] < got[3] {
		t.Fatalf("sizes should follow weights, got %v", got)
	}
}

func TestAllotFixedSizeAndSlack(t *testing.T) {
	got := allot(110, []Cell{{Weight: 0.16}, {Weight: 0.44}, {Weight: 0.30}, {Size: 6}})
	if got[3] != 6 || sum(got) != 110 {
		t.Fatalf("fixed cell must keep its size and the row must fill, got %v", got)
	}
	even := allot(10, []Cell{{}, {}, {}})
	if sum(even) != 10 || even[0] != 4 {
		t.Fatalf("slack should land on the first of equal weights, got %v", even)
	}
}

func TestAllotHonoursMin(t *testing.T) {
	got := allot(40, []Cell{{Weight: 1, Min: 20}, {Weight: 3}})
	if got[0] != 20 || got[1] != 20 {
		t.Fatalf("min should be taken from the heaviest cell, got %v", got)
	}
	if got := allot(3, []Cell{{Size: 5}, {}}); got[0] != 3 || got[1] != 0 {
		t.Fatalf("fixed sizes clamp to the space available, got %v", got)
	}
}

func TestRowFillsBox(t *testing.T) {
	out := Row{Cells: []Cell{{Widget: Text("left")}, {Widget: Text("right\nsecond")}}, Gap: 1}.Render(21, 3)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected %d lines, got %d", 3, len(lines))
	}
	for _, l := range lines {
		if w := ansi.StringWidth(l); w != 21 {
			t.Fatalf("row width %d, want 21: %q", w, l)
		}
	}
	if !strings.HasPrefix(lines[1], strings.Repeat(" ", 11)+"second") {
		t.Fatalf("second column misplaced: %q", lines[1])
	}
}

func TestColumnGapAndFixedCell(t *testing.T) {
	out := Column{Cells: []Cell{{Widget: Text("a"), Size: 1}, {Widget: Text("b\nc\nd")}}, Gap: 1}.Render(3, 4)
	want := []string{"a  ", "   ", "b  ", "c  "}
	if got := strings.Split(out, "\n"); strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("column = %q, want %q", got, want)
	}
}

func TestPaneDimensions(t *testing.T) {
	out := Pane{Title: "Workbench", Content: "a\nb", Focused: true}.Render(30, 6)
	lines := strings.Split(out, "\n")
	if len(lines) != 6 {
		t.Fatalf("pane height %d, want 6", len(lines))
	}
	for _, l := range lines {
		if w := ansi.StringWidth(l); w != 30 {
			t.Fatalf("pane row width %d, want 30: %q", w, ansi.Strip(l))
		}
	}
	if !strings.Contains(ansi.Strip(lines[0]), "● Workbench") {
		t.Fatalf("focused title missing: %q", ansi.Strip(lines[0]))
	}
}

func TestPaneTruncatesLongContent(t *testing.T) {
	out := Pane{Title: "x", Content: strings.Repeat("w", 100)}.Render(12, 3)
	for _, l := range strings.Split(out, "\n") {
		if w := ansi.StringWidth(l); w != 12 {
			t.Fatalf("row width %d, want 12", w)
		}
	}
}

func TestListMarksCursorAndCurrent(t *testing.T) {
	out := ansi.Strip(List{Items: []string{"Dashboard", "Queues"}, Cursor: 1, Current: -1}.Render(20, 5))
	lines := strings.Split(out, "\n")
	if !strings.HasPrefix(lines[1], "> Queues") {
		t.Fatalf("cursor marker missing: %q", lines[1])
	}
	if !strings.HasPrefix(lines[0], "  Dashboard") {
		t.Fatalf("unexpected first row: %q", lines[0])
	}
}

func TestBarChartScalesToLargest(t *testing.T) {
	out := ansi.Strip(BarChart{Title: "By status", Bars: []Bar{{"Active", 2}, {"Closed", 0}, {"Pending", 1}}}.Render(40, 10))
	lines := strings.Split(out, "\n")
	if strings.Count(lines[1], "█") <= strings.Count(lines[3], "█") {
		t.Fatalf("larger value should draw a longer bar:\n%s", out)
	}
	if strings.Contains(lines[2], "█") {
		t.Fatalf("zero value should draw nothing: %q", lines[2])
	}
}

func TestTimelineEmptyState(t *testing.T) {
	out := Timeline{Title: "Created"}.Render(40, 10)
	if !strings.Contains(out, "(no data)") {
		t.Fatalf("expected empty state, got %q", out)
	}
}

func TestTimelineRendersChart(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }
	out := Timeline{Title: "Created", Counts: map[time.Time]int{day(12): 1, day(13): 2, day(15): 1}}.Render(40, 10)
	if !strings.HasPrefix(out, "Created\n") {
		t.Fatalf("title missing: %q", out)
	}
	if len(strings.Split(out, "\n")) < 4 {
		t.Fatalf("chart too short:\n%s", out)
	}
}

func TestRailCentersIcons(t *testing.T) {
	out := ansi.Strip(Rail{Icons: []string{"A", "B"}}.Render(5, 6))
	lines := strings.Split(out, "\n")
	if strings.TrimSpace(lines[1]) != "A" || strings.TrimSpace(lines[3]) != "B" {
		t.Fatalf("unexpected rail:\n%s", out)
	}
}

func TestOverlayKeepsCanvasSize(t *testing.T) {
	base := strings.Repeat(strings.Repeat(".", 20)+"\n", 4) + strings.Repeat(".", 20)
	out := Overlay(base, "ab\ncd", 17, 1, 20, 5)
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("height %d, want 5", len(lines))
	}
	if lines[1] != strings.Repeat(".", 17)+"ab." || lines[2] != strings.Repeat(".", 17)+"cd." {
		t.Fatalf("popup misplaced:\n%s", out)
	}
	if lines[0] != strings.Repeat(".", 20) {
		t.Fatalf("row outside popup changed: %q", lines[0])
	}
}

func TestOverlayClampsToRightEdge(t *testing.T) {
	out := Overlay(strings.Repeat(" ", 10), "menu", 9, 0, 10, 1)
	if out != "      menu" {
		t.Fatalf("expected popup flush right, got %q", out)
	}
}
