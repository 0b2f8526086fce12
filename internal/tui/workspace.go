package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/specialdesk/internal/shell"
	"github.com/jask/specialdesk/internal/widgets"
	"github.com/jask/specialdesk/internal/workbench"
)

type focusArea int

const (
	focusNav focusArea = iota
	focusSearch
	focusTable
	focusChat
)

func (f focusArea) String() string {
	switch f {
	case focusNav:
		return "Navigation"
	case focusSearch:
		return "Search"
	case focusTable:
		return "Queue table"
	case focusChat:
		return "AI Assistant"
	}
	return "?"
}

const navDashboard = "Dashboard"

// navItems mirrors the navigation panel; every entry after Dashboard is a tab.
var navItems = []string{navDashboard, "Queues", "Customers", "Reports"}

var menuItems = []string{"Sign Out", "Settings", "Profile"}

var railIcons = []string{"▤", "✓", "☰"}

// workspace holds the widgets of the authenticated screen. Their text mirrors
// the workbench filter and chat draft owned by the composer.
type workspace struct {
	keys       workspaceKeyMap
	focus      focusArea
	navCursor  int
	search     textinput.Model
	table      table.Model
	chat       textinput.Model
	menuOpen   bool
	menuCursor int
	dateFormat string
}

func newWorkspace(dateFormat string) workspace {
	search := textinput.New()
	search.Placeholder = "Search queues..."
	search.Prompt = "⌕ "

	chat := textinput.New()
	chat.Placeholder = "Type your message..."
	chat.Prompt = "› "

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 3},
			{Title: "Name", Width: 12},
			{Title: "Status", Width: 9},
			{Title: "Priority", Width: 8},
			{Title: "Created", Width: 10},
		}),
		table.WithHeight(6),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(colorText).BorderForeground(colorSurface2)
	styles.Selected = styles.Selected.Bold(true).Foreground(colorBase).Background(colorBlue)
	t.SetStyles(styles)

	w := workspace{
		keys:       newWorkspaceKeyMap(),
		focus:      focusSearch,
		navCursor:  1,
		search:     search,
		chat:       chat,
		table:      t,
		dateFormat: dateFormat,
	}
	w.search.Focus()
	return w
}

// focusable lists the panels that take keys on the given tab, in ring order.
func focusable(tab shell.Tab) []focusArea {
	if tab == shell.TabQueues {
		return []focusArea{focusNav, focusSearch, focusTable, focusChat}
	}
	return []focusArea{focusNav, focusChat}
}

func (w *workspace) setFocus(f focusArea) tea.Cmd {
	w.focus = f
	w.search.Blur()
	w.chat.Blur()
	w.table.Blur()
	switch f {
	case focusSearch:
		return w.search.Focus()
	case focusChat:
		return w.chat.Focus()
	case focusTable:
		w.table.Focus()
	}
	return nil
}

func (w *workspace) cycleFocus(tab shell.Tab, delta int) tea.Cmd {
	ring := focusable(tab)
	idx := 0
	for i, f := range ring {
		if f == w.focus {
			idx = i
		}
	}
	n := len(ring)
	return w.setFocus(ring[((idx+delta)%n+n)%n])
}

// fixFocus moves focus to the navigation list when the focused panel is not
// shown on tab.
func (w *workspace) fixFocus(tab shell.Tab) tea.Cmd {
	for _, f := range focusable(tab) {
		if f == w.focus {
			return nil
		}
	}
	return w.setFocus(focusNav)
}

func (w *workspace) refreshRows(wb *workbench.Workbench) {
	rows := make([]table.Row, 0, 8)
	for r := range wb.Visible() {
		rows = append(rows, table.Row{
			strconv.Itoa(r.ID),
			r.Name,
			string(r.Status),
			string(r.Priority),
			r.Created.Format(w.dateFormat),
		})
	}
	w.table.SetRows(rows)
	if len(rows) > 0 && w.table.Cursor() >= len(rows) {
		w.table.SetCursor(len(rows) - 1)
	}
}

// view data passed in from the App.
type workspaceView struct {
	title    string
	greeting string
	identity string
	tab      shell.Tab
	wb       *workbench.Workbench
	status   string
	help     string
}

func (w workspace) view(width, height int, v workspaceView) string {
	header := w.renderHeader(width, v)
	tabs := w.renderTabBar(width, v.tab)
	footer := v.status + "\n" + v.help
	mainH := max(6, height-lipgloss.Height(header)-lipgloss.Height(tabs)-lipgloss.Height(footer))

	body := widgets.Row{
		Cells: []widgets.Cell{
			{Widget: widgets.Pane{
				Title:   "Navigation",
				Content: w.renderNav(v.tab),
				Focused: w.focus == focusNav,
			}, Weight: 0.16, Min: 14},
			{Widget: paneFunc(func(pw, ph int) string { return w.renderMain(pw, ph, v) }), Weight: 0.44},
			{Widget: paneFunc(func(pw, ph int) string { return w.renderChat(pw, ph, v.greeting) }), Weight: 0.30, Min: 24},
			{Widget: widgets.Rail{Icons: railIcons, Style: railStyle}, Size: 6},
		},
	}.Render(width, mainH)

	screen := lipgloss.JoinVertical(lipgloss.Left, header, tabs, body, footer)
	if w.menuOpen {
		screen = widgets.Overlay(screen, w.renderMenu(), width, 1, width, lipgloss.Height(screen))
	}
	return screen
}

type paneFunc func(width, height int) string

func (f paneFunc) Render(width, height int) string { return f(width, height) }

func (w workspace) renderHeader(width int, v workspaceView) string {
	left := brandStyle.Render("▤ ") + headlineStyle.Render(v.title)
	right := headerButtonStyle.Render("Start New Customer") + "  " +
		textStyle.Render("◉ "+v.identity+" ▾")
	gap := max(1, width-2-ansi.StringWidth(left)-ansi.StringWidth(right))
	return headerStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func (w workspace) renderTabBar(width int, active shell.Tab) string {
	parts := make([]string, 0, len(shell.Tabs()))
	for _, t := range shell.Tabs() {
		style := tabStyle
		if t == active {
			style = tabActiveStyle
		}
		parts = append(parts, style.Render(t.String()))
	}
	return tabBarStyle.Width(width).Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
}

func (w workspace) renderNav(active shell.Tab) string {
	cursor := -1
	if w.focus == focusNav {
		cursor = w.navCursor
	}
	return widgets.List{
		Items:   navItems,
		Cursor:  cursor,
		Current: int(active) + 1,
		Style:   textStyle,
		Marked:  navCurrentStyle,
	}.Render(40, len(navItems))
}

func (w workspace) renderMain(width, height int, v workspaceView) string {
	inner := max(1, height-2)
	switch v.tab {
	case shell.TabCustomers:
		return widgets.Pane{
			Title:   "Customers",
			Content: mutedStyle.Render("No customers yet.\nctrl+n starts a new customer."),
			Active:  true,
		}.Render(width, height)
	case shell.TabReports:
		return widgets.Pane{
			Title:   "Reports",
			Content: w.renderReports(max(1, width-4), inner, v.wb),
			Active:  true,
		}.Render(width, height)
	}

	w.table.SetWidth(max(12, width-4))
	w.table.SetHeight(max(3, inner-4))
	hint := mutedStyle.Render(fmt.Sprintf("%d of %d queues", v.wb.Count(), v.wb.Total()))
	if s := v.wb.Suggest(); s != "" {
		hint = statusWarnStyle.Render("No matches. Did you mean " + strconv.Quote(s) + "?")
	}
	content := strings.Join([]string{w.search.View(), "", w.table.View(), hint}, "\n")
	return widgets.Pane{
		Title:   "Queues",
		Content: content,
		Active:  true,
		Focused: w.focus == focusSearch || w.focus == focusTable,
	}.Render(width, height)
}

func (w workspace) renderReports(width, height int, wb *workbench.Workbench) string {
	byStatus := map[workbench.Status]int{}
	created := map[time.Time]int{}
	for r := range wb.Visible() {
		byStatus[r.Status]++
		day := time.Date(r.Created.Year(), r.Created.Month(), r.Created.Day(), 0, 0, 0, 0, time.UTC)
		created[day]++
	}
	bars := make([]widgets.Bar, 0, len(workbench.Statuses()))
	for _, s := range workbench.Statuses() {
		bars = append(bars, widgets.Bar{Label: string(s), Value: byStatus[s]})
	}
	return widgets.Column{
		Cells: []widgets.Cell{
			{Widget: widgets.BarChart{Title: "Queues by status", Bars: bars, Style: chartStyle}, Size: len(bars) + 1},
			{Widget: widgets.Timeline{Title: "Queues created per day", Counts: created, Style: chartStyle, Axis: axisStyle}},
		},
		Gap: 1,
	}.Render(width, height)
}

func (w workspace) renderChat(width, height int, greeting string) string {
	contentW := max(1, width-4)
	inner := max(3, height-2)
	msg := lipgloss.NewStyle().Width(contentW).Render(greeting)
	lines := strings.Split(msg, "\n")
	for len(lines) < inner-2 {
		lines = append(lines, "")
	}
	lines = lines[:inner-2]
	lines = append(lines, mutedStyle.Render(strings.Repeat("─", contentW)), w.chat.View())
	return widgets.Pane{
		Title:   "AI Assistant",
		Content: strings.Join(lines, "\n"),
		Focused: w.focus == focusChat,
	}.Render(width, height)
}

func (w workspace) renderMenu() string {
	rows := make([]string, 0, len(menuItems))
	for i, item := range menuItems {
		style := menuItemStyle
		if i == w.menuCursor {
			style = menuSelectedStyle
		}
		rows = append(rows, style.Render(" "+item+" "))
	}
	return menuStyle.Render(strings.Join(rows, "\n"))
}
