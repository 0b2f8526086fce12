// Package tui renders the desktop shell with Bubble Tea. All state
// transitions go through shell.Composer; this package only maps keys to
// composer calls and draws the result.
package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/specialdesk/internal/config"
	"github.com/jask/specialdesk/internal/session"
	"github.com/jask/specialdesk/internal/shell"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	defaultWidth  = 110
	defaultHeight = 30
)

// App is the root Bubble Tea model.
type App struct {
	ctx      context.Context
	composer *shell.Composer
	log      *zap.Logger
	ui       config.UIConfig

	screen    shell.Screen
	login     loginGate
	workspace workspace
	help      help.Model

	width, height int
	status        string
	statusKind    statusKind
}

// New builds the App. The composer must already have been started.
func New(ctx context.Context, composer *shell.Composer, ui config.UIConfig, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	if ui.Title == "" {
		ui.Title = "Special Desktop"
	}
	if ui.DateFormat == "" {
		ui.DateFormat = "2006-01-02"
	}
	a := &App{
		ctx:      ctx,
		composer: composer,
		log:      log.Named("tui"),
		ui:       ui,
		help:     help.New(),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	a.syncScreen()
	return a
}

func (a *App) Init() tea.Cmd {
	return nil
}

// syncScreen builds fresh widgets for the screen the composer reports, so
// nothing typed on one screen carries over to the next.
func (a *App) syncScreen() {
	a.screen = a.composer.Screen()
	switch a.screen {
	case shell.ScreenLogin:
		a.login = newLoginGate(a.ui.Title)
		a.workspace = workspace{}
	case shell.ScreenWorkspace:
		a.workspace = newWorkspace(a.ui.DateFormat)
		a.workspace.refreshRows(a.composer.Workbench())
		a.login = loginGate{}
	}
}

func (a *App) setStatus(kind statusKind, msg string) {
	a.status = msg
	a.statusKind = kind
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.help.Width = m.Width
		return a, nil
	case tea.KeyMsg:
		if m.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
	}
	if a.screen == shell.ScreenLogin {
		return a, a.updateLogin(msg)
	}
	return a, a.updateWorkspace(msg)
}

func (a *App) updateLogin(msg tea.Msg) tea.Cmd {
	action, cmd := a.login.update(msg)
	email, password := a.login.values()
	a.composer.SetEmail(email)
	a.composer.SetPassword(password)

	switch action {
	case loginCancel:
		a.composer.Cancel()
		a.setStatus(statusInfo, "")
		return a.login.clear()
	case loginContinue:
		err := a.composer.Continue(a.ctx)
		if errors.Is(err, session.ErrIncompleteCredentials) {
			a.setStatus(statusWarn, "Enter your email address and password to continue.")
			return cmd
		}
		if err != nil {
			a.setStatus(statusError, "Sign in failed: "+err.Error())
			return cmd
		}
		a.syncScreen()
		a.setStatus(statusOK, "Signed in as "+a.composer.Session().Identity)
		return a.workspace.search.Focus()
	}
	return cmd
}

func (a *App) updateWorkspace(msg tea.Msg) tea.Cmd {
	w := &a.workspace
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return a.forwardToFocused(msg)
	}
	if w.menuOpen {
		return a.updateMenu(km)
	}

	switch {
	case key.Matches(km, w.keys.Menu):
		w.menuOpen = true
		w.menuCursor = 0
		return nil
	case key.Matches(km, w.keys.NewCustomer):
		a.setStatus(statusInfo, "Start New Customer is not available yet.")
		return nil
	case key.Matches(km, w.keys.Queues):
		return a.selectTab(shell.TabQueues)
	case key.Matches(km, w.keys.Customers):
		return a.selectTab(shell.TabCustomers)
	case key.Matches(km, w.keys.Reports):
		return a.selectTab(shell.TabReports)
	case key.Matches(km, w.keys.NextTab):
		return a.selectTab(a.composer.ActiveTab().Next(1))
	case key.Matches(km, w.keys.PrevTab):
		return a.selectTab(a.composer.ActiveTab().Next(-1))
	case key.Matches(km, w.keys.NextFocus):
		return w.cycleFocus(a.composer.ActiveTab(), 1)
	case key.Matches(km, w.keys.PrevFocus):
		return w.cycleFocus(a.composer.ActiveTab(), -1)
	}

	switch w.focus {
	case focusNav:
		return a.updateNav(km)
	case focusSearch:
		if key.Matches(km, w.keys.Escape) {
			w.search.Reset()
			a.composer.Workbench().SetFilter("")
			w.refreshRows(a.composer.Workbench())
			return nil
		}
		var cmd tea.Cmd
		w.search, cmd = w.search.Update(km)
		a.composer.Workbench().SetFilter(w.search.Value())
		w.refreshRows(a.composer.Workbench())
		return cmd
	case focusTable:
		var cmd tea.Cmd
		w.table, cmd = w.table.Update(km)
		return cmd
	case focusChat:
		if key.Matches(km, w.keys.Enter) {
			a.submitChat()
			return nil
		}
		var cmd tea.Cmd
		w.chat, cmd = w.chat.Update(km)
		a.composer.Chat().UpdateDraft(w.chat.Value())
		return cmd
	}
	return nil
}

// forwardToFocused passes non-key messages such as cursor blinks to the
// focused input.
func (a *App) forwardToFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.workspace.focus {
	case focusSearch:
		a.workspace.search, cmd = a.workspace.search.Update(msg)
	case focusChat:
		a.workspace.chat, cmd = a.workspace.chat.Update(msg)
	}
	return cmd
}

// submitChat is the single send path for the chat input.
func (a *App) submitChat() {
	panel := a.composer.Chat()
	panel.UpdateDraft(a.workspace.chat.Value())
	if !panel.Submit() {
		return
	}
	a.workspace.chat.SetValue(panel.Draft())
	a.setStatus(statusOK, "Message sent to the assistant.")
}

func (a *App) selectTab(t shell.Tab) tea.Cmd {
	if err := a.composer.SelectTab(t); err != nil {
		a.setStatus(statusError, err.Error())
		return nil
	}
	a.workspace.navCursor = int(t) + 1
	return a.workspace.fixFocus(t)
}

func (a *App) updateNav(km tea.KeyMsg) tea.Cmd {
	w := &a.workspace
	switch {
	case key.Matches(km, w.keys.Up):
		w.navCursor = max(0, w.navCursor-1)
	case key.Matches(km, w.keys.Down):
		w.navCursor = min(len(navItems)-1, w.navCursor+1)
	case key.Matches(km, w.keys.Enter):
		if navItems[w.navCursor] == navDashboard {
			a.setStatus(statusInfo, "Dashboard is not available yet.")
			return nil
		}
		tab, err := shell.ParseTab(navItems[w.navCursor])
		if err != nil {
			a.setStatus(statusError, err.Error())
			return nil
		}
		return a.selectTab(tab)
	}
	return nil
}

func (a *App) updateMenu(km tea.KeyMsg) tea.Cmd {
	w := &a.workspace
	switch {
	case key.Matches(km, w.keys.Escape), key.Matches(km, w.keys.Menu):
		w.menuOpen = false
	case key.Matches(km, w.keys.Up):
		w.menuCursor = max(0, w.menuCursor-1)
	case key.Matches(km, w.keys.Down):
		w.menuCursor = min(len(menuItems)-1, w.menuCursor+1)
	case key.Matches(km, w.keys.Enter):
		w.menuOpen = false
		if menuItems[w.menuCursor] == "Sign Out" {
			return a.signOut()
		}
		a.setStatus(statusInfo, menuItems[w.menuCursor]+" is not available yet.")
	}
	return nil
}

func (a *App) signOut() tea.Cmd {
	identity := a.composer.Session().Identity
	err := a.composer.SignOut(a.ctx)
	a.syncScreen()
	if err != nil {
		a.log.Error("sign out", zap.Error(err))
		a.setStatus(statusError, "Signed out, but the saved session could not be cleared: "+err.Error())
	} else {
		a.setStatus(statusInfo, "Signed out "+identity+".")
	}
	return a.login.email.Focus()
}

func (a *App) View() string {
	status := statusStyle(a.statusKind).Render(a.status)
	if a.screen == shell.ScreenLogin {
		body := a.login.view(a.width, max(1, a.height-2), a.composer.CanContinue())
		return body + "\n" + status + "\n" + a.help.View(a.login.keys)
	}
	return a.workspace.view(a.width, a.height, workspaceView{
		title:    a.ui.Title,
		greeting: a.ui.Greeting,
		identity: a.composer.Session().Identity,
		tab:      a.composer.ActiveTab(),
		wb:       a.composer.Workbench(),
		status:   status,
		help:     a.help.View(a.workspace.keys),
	})
}
