package workbench

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"time"

	"gopkg.in/yaml.v3"
)

// Source produces the full ordered record collection on demand.
type Source interface {
	All() iter.Seq[Record]
}

// StaticSource serves a fixed collection in insertion order.
type StaticSource struct {
	records []Record
}

// NewStaticSource copies records; the caller's slice may be reused.
func NewStaticSource(records []Record) *StaticSource {
	return &StaticSource{records: slices.Clone(records)}
}

func (s *StaticSource) All() iter.Seq[Record] {
	return slices.Values(s.records)
}

func (s *StaticSource) Len() int { return len(s.records) }

// SeedSource returns the built-in queue collection.
func SeedSource() *StaticSource {
	day := func(d int) time.Time { return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC) }
	return NewStaticSource([]Record{
		{ID: 1, Name: "Queue Alpha", Status: StatusActive, Priority: PriorityHigh, Created: day(15)},
		{ID: 2, Name: "Queue Beta", Status: StatusPending, Priority: PriorityMedium, Created: day(14)},
		{ID: 3, Name: "Queue Gamma", Status: StatusActive, Priority: PriorityLow, Created: day(13)},
		{ID: 4, Name: "Queue Delta", Status: StatusCompleted, Priority: PriorityHigh, Created: day(12)},
	})
}

type seedFile struct {
	Records []seedRecord `yaml:"records"`
}

type seedRecord struct {
	ID       int    `yaml:"id"`
	Name     string `yaml:"name"`
	Status   string `yaml:"status"`
	Priority string `yaml:"priority"`
	Created  string `yaml:"created"`
}

// LoadYAML reads a seed file of the form
//
//	records:
//	  - {id: 1, name: Queue Alpha, status: Active, priority: High, created: "2024-01-15"}
//
// Ids must be unique; order is preserved.
func LoadYAML(r io.Reader) (*StaticSource, error) {
	var sf seedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sf); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	seen := make(map[int]bool, len(sf.Records))
	out := make([]Record, 0, len(sf.Records))
	for i, sr := range sf.Records {
		if seen[sr.ID] {
			return nil, fmt.Errorf("record %d: duplicate id %d", i, sr.ID)
		}
		seen[sr.ID] = true
		status, err := ParseStatus(sr.Status)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", sr.ID, err)
		}
		priority, err := ParsePriority(sr.Priority)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", sr.ID, err)
		}
		created, err := time.Parse(time.DateOnly, sr.Created)
		if err != nil {
			return nil, fmt.Errorf("record %d: created: %w", sr.ID, err)
		}
		out = append(out, Record{ID: sr.ID, Name: sr.Name, Status: status, Priority: priority, Created: created})
	}
	return NewStaticSource(out), nil
}
