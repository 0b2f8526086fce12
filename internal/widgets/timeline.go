package widgets

import (
	"sort"
	"time"

	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
)

// Timeline plots a count per day as a braille line chart.
type Timeline struct {
	Title  string
	Counts map[time.Time]int // keyed by day, midnight UTC
	Style  lipgloss.Style
	Axis   lipgloss.Style
}

func (t Timeline) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(t.Counts) == 0 || height < 4 || width < 12 {
		return Text(t.Title + "\n(no data)").Render(width, height)
	}
	days := make([]time.Time, 0, len(t.Counts))
	maxV := 0
	for d, n := range t.Counts {
		days = append(days, d)
		maxV = max(maxV, n)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	start, end := days[0], days[len(days)-1]
	if !end.After(start) {
		end = start.Add(24 * time.Hour)
	}

	chart := tslc.New(width, height-1)
	chart.SetXStep(1)
	chart.SetYStep(1)
	chart.SetStyle(t.Style)
	chart.AxisStyle = t.Axis
	chart.LabelStyle = t.Axis
	chart.SetTimeRange(start, end)
	chart.SetViewTimeRange(start, end)
	chart.SetYRange(0, float64(maxV))
	chart.SetViewYRange(0, float64(maxV))
	for _, d := range days {
		chart.Push(tslc.TimePoint{Time: d, Value: float64(t.Counts[d])})
	}
	chart.DrawBraille()
	return t.Title + "\n" + chart.View()
}
