package shell

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownTab = errors.New("shell: unknown tab")

// Tab is a workspace tab.
type Tab int

const (
	TabQueues Tab = iota
	TabCustomers
	TabReports
)

// DefaultTab is selected whenever the workspace is entered.
const DefaultTab = TabQueues

// Tabs lists the tabs in tab-bar order.
func Tabs() []Tab {
	return []Tab{TabQueues, TabCustomers, TabReports}
}

func (t Tab) String() string {
	switch t {
	case TabQueues:
		return "Queues"
	case TabCustomers:
		return "Customers"
	case TabReports:
		return "Reports"
	default:
		return fmt.Sprintf("Tab(%d)", int(t))
	}
}

func (t Tab) Valid() bool {
	return t >= TabQueues && t <= TabReports
}

// ParseTab resolves a tab by its title, ignoring case.
func ParseTab(s string) (Tab, error) {
	for _, t := range Tabs() {
		if strings.EqualFold(strings.TrimSpace(s), t.String()) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTab, s)
}

// Next returns the tab after t, wrapping around; delta may be negative.
func (t Tab) Next(delta int) Tab {
	n := len(Tabs())
	return Tab(((int(t)+delta)%n + n) % n)
}
