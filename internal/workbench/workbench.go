// Package workbench filters the record collection shown in the queue table.
package workbench

import (
	"iter"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Workbench owns the search filter. It never caches results.
type Workbench struct {
	source Source
	filter string
}

func New(source Source) *Workbench {
	return &Workbench{source: source}
}

func (w *Workbench) SetFilter(text string) { w.filter = text }
func (w *Workbench) Filter() string        { return w.filter }

// Visible yields the records matching the current filter in source order.
// Each range over the result re-reads the source and the filter.
func (w *Workbench) Visible() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for r := range w.source.All() {
			if !r.Matches(w.filter) {
				continue
			}
			if !yield(r) {
				return
			}
		}
	}
}

// Count returns how many records are visible.
func (w *Workbench) Count() int {
	n := 0
	for range w.Visible() {
		n++
	}
	return n
}

// Total returns the size of the unfiltered collection.
func (w *Workbench) Total() int {
	if sized, ok := w.source.(interface{ Len() int }); ok {
		return sized.Len()
	}
	n := 0
	for range w.source.All() {
		n++
	}
	return n
}

// Suggest returns the record name closest to a filter that matches nothing,
// or "" when something matches or nothing is close enough.
func (w *Workbench) Suggest() string {
	needle := strings.ToLower(strings.TrimSpace(w.filter))
	if needle == "" || w.Count() > 0 {
		return ""
	}
	best, bestDist := "", -1
	for r := range w.source.All() {
		d := distance(needle, r.Name)
		if bestDist < 0 || d < bestDist {
			best, bestDist = r.Name, d
		}
	}
	if bestDist < 0 || bestDist > len(needle)/2+2 {
		return ""
	}
	return best
}

// distance compares needle with the whole name and with each of its words.
func distance(needle, name string) int {
	name = strings.ToLower(name)
	best := levenshtein.ComputeDistance(needle, name)
	for _, word := range strings.Fields(name) {
		if d := levenshtein.ComputeDistance(needle, word); d < best {
			best = d
		}
	}
	return best
}
