package tui

import "github.com/charmbracelet/bubbles/key"

type loginKeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
	Cancel   key.Binding
	Quit     key.Binding
}

func newLoginKeyMap() loginKeyMap {
	return loginKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "continue"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel login"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

func (k loginKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Activate, k.Cancel, k.Quit}
}

func (k loginKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev}, {k.Activate, k.Cancel, k.Quit}}
}

type workspaceKeyMap struct {
	NextFocus   key.Binding
	PrevFocus   key.Binding
	Queues      key.Binding
	Customers   key.Binding
	Reports     key.Binding
	NextTab     key.Binding
	PrevTab     key.Binding
	Menu        key.Binding
	NewCustomer key.Binding
	Up          key.Binding
	Down        key.Binding
	Enter       key.Binding
	Escape      key.Binding
	Quit        key.Binding
}

func newWorkspaceKeyMap() workspaceKeyMap {
	return workspaceKeyMap{
		NextFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next panel"),
		),
		PrevFocus: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous panel"),
		),
		Queues: key.NewBinding(
			key.WithKeys("f1", "alt+1"),
			key.WithHelp("f1", "queues"),
		),
		Customers: key.NewBinding(
			key.WithKeys("f2", "alt+2"),
			key.WithHelp("f2", "customers"),
		),
		Reports: key.NewBinding(
			key.WithKeys("f3", "alt+3"),
			key.WithHelp("f3", "reports"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("ctrl+right", "alt+l"),
			key.WithHelp("ctrl+→", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("ctrl+left", "alt+h"),
			key.WithHelp("ctrl+←", "previous tab"),
		),
		Menu: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "account"),
		),
		NewCustomer: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "new customer"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select/send"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear/close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

func (k workspaceKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextFocus, k.Queues, k.Customers, k.Reports, k.Menu, k.Quit}
}

func (k workspaceKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextFocus, k.PrevFocus, k.Up, k.Down},
		{k.Queues, k.Customers, k.Reports, k.NextTab, k.PrevTab},
		{k.Enter, k.Escape, k.Menu, k.NewCustomer, k.Quit},
	}
}
