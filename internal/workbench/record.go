package workbench

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// Status is the lifecycle state of a queue record.
type Status string

const (
	StatusActive    Status = "Active"
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
	StatusClosed    Status = "Closed"
)

// Statuses lists every status in display order.
func Statuses() []Status {
	return []Status{StatusActive, StatusPending, StatusCompleted, StatusClosed}
}

// Priority ranks a queue record.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// ParseStatus accepts a status name in any case.
func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses() {
		if strings.EqualFold(strings.TrimSpace(s), string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// ParsePriority accepts a priority name in any case.
func ParsePriority(s string) (Priority, error) {
	for _, p := range []Priority{PriorityLow, PriorityMedium, PriorityHigh} {
		if strings.EqualFold(strings.TrimSpace(s), string(p)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown priority %q", s)
}

// Record is one workbench row.
type Record struct {
	ID       int
	Name     string
	Status   Status
	Priority Priority
	Created  time.Time
}

// Matches reports whether name, status or priority contains needle under
// Unicode case folding. The empty needle matches everything.
func (r Record) Matches(needle string) bool {
	if needle == "" {
		return true
	}
	fold := cases.Fold()
	needle = fold.String(needle)
	for _, field := range []string{r.Name, string(r.Status), string(r.Priority)} {
		if strings.Contains(fold.String(field), needle) {
			return true
		}
	}
	return false
}
