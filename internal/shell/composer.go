// Package shell decides which screen the desktop shows and tracks the active
// workspace tab.
//
// The login gate is shown whenever the session is unauthenticated; the
// workspace otherwise. The composer never stores the screen separately from
// the session, so the two cannot disagree.
package shell

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jask/specialdesk/internal/chat"
	"github.com/jask/specialdesk/internal/session"
	"github.com/jask/specialdesk/internal/workbench"
)

// Screen is one of the two top-level screens.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenWorkspace
)

func (s Screen) String() string {
	if s == ScreenWorkspace {
		return "workspace"
	}
	return "login"
}

// Composer wires the session manager to the workspace components.
type Composer struct {
	sessions  *session.Manager
	workbench *workbench.Workbench
	chat      *chat.Panel
	log       *zap.Logger
	tab       Tab
}

func NewComposer(sessions *session.Manager, wb *workbench.Workbench, panel *chat.Panel, log *zap.Logger) *Composer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Composer{sessions: sessions, workbench: wb, chat: panel, log: log.Named("shell"), tab: DefaultTab}
}

// Start restores the persisted session and returns the first screen.
func (c *Composer) Start(ctx context.Context) Screen {
	c.sessions.Restore(ctx)
	if c.Screen() == ScreenWorkspace {
		c.enterWorkspace()
	}
	return c.Screen()
}

func (c *Composer) Screen() Screen {
	if c.sessions.Current().Authenticated {
		return ScreenWorkspace
	}
	return ScreenLogin
}

func (c *Composer) Session() session.Session         { return c.sessions.Current() }
func (c *Composer) Workbench() *workbench.Workbench  { return c.workbench }
func (c *Composer) Chat() *chat.Panel                { return c.chat }
func (c *Composer) Credentials() session.Credentials { return c.sessions.Credentials() }
func (c *Composer) SetEmail(email string)            { c.sessions.SetEmail(email) }
func (c *Composer) SetPassword(password string)      { c.sessions.SetPassword(password) }
func (c *Composer) CanContinue() bool                { return c.sessions.CanContinue() }

// Cancel clears the login form without touching the session.
func (c *Composer) Cancel() {
	c.sessions.ClearCredentials()
}

// Continue signs in with the typed email once both fields are filled.
func (c *Composer) Continue(ctx context.Context) error {
	if c.Screen() != ScreenLogin {
		return nil
	}
	if _, err := c.sessions.Continue(ctx); err != nil {
		return err
	}
	c.enterWorkspace()
	return nil
}

// SignOut ends the session and returns to the login gate. In-flight drafts
// are discarded.
func (c *Composer) SignOut(ctx context.Context) error {
	c.chat.Reset()
	_, err := c.sessions.Logout(ctx)
	c.tab = DefaultTab
	return err
}

// ActiveTab is meaningful only on the workspace screen.
func (c *Composer) ActiveTab() Tab { return c.tab }

// SelectTab is the only transition of the tab state machine.
func (c *Composer) SelectTab(t Tab) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownTab, int(t))
	}
	if c.Screen() != ScreenWorkspace {
		return nil
	}
	if t != c.tab {
		c.log.Debug("tab selected", zap.Stringer("from", c.tab), zap.Stringer("to", t))
	}
	c.tab = t
	return nil
}

func (c *Composer) enterWorkspace() {
	c.tab = DefaultTab
	c.workbench.SetFilter("")
	c.chat.Reset()
}
