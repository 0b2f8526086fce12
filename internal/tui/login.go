package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type loginField int

const (
	fieldEmail loginField = iota
	fieldPassword
	fieldCancel
	fieldContinue
	loginFieldCount
)

type loginAction int

const (
	loginNone loginAction = iota
	loginCancel
	loginContinue
)

// loginGate renders the credential form. Field text is mirrored into the
// session manager's buffers by the App after every update.
type loginGate struct {
	title    string
	email    textinput.Model
	password textinput.Model
	focus    loginField
	keys     loginKeyMap
}

func newLoginGate(title string) loginGate {
	email := textinput.New()
	email.Placeholder = "Enter your email address"
	email.Prompt = ""
	email.CharLimit = 254
	email.Width = 36

	password := textinput.New()
	password.Placeholder = "Enter your password"
	password.Prompt = ""
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.Width = 36

	g := loginGate{title: title, email: email, password: password, keys: newLoginKeyMap()}
	g.setFocus(fieldEmail)
	return g
}

func (g *loginGate) setFocus(f loginField) tea.Cmd {
	g.focus = f
	g.email.Blur()
	g.password.Blur()
	switch f {
	case fieldEmail:
		return g.email.Focus()
	case fieldPassword:
		return g.password.Focus()
	}
	return nil
}

func (g *loginGate) move(delta int) tea.Cmd {
	n := int(loginFieldCount)
	return g.setFocus(loginField(((int(g.focus)+delta)%n + n) % n))
}

// clear empties both inputs and puts the cursor back on the email field.
func (g *loginGate) clear() tea.Cmd {
	g.email.Reset()
	g.password.Reset()
	return g.setFocus(fieldEmail)
}

func (g *loginGate) values() (email, password string) {
	return g.email.Value(), g.password.Value()
}

// update handles one message and reports which form action, if any, the
// user triggered.
func (g *loginGate) update(msg tea.Msg) (loginAction, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, g.keys.Cancel):
			return loginCancel, nil
		case key.Matches(km, g.keys.Next):
			return loginNone, g.move(1)
		case key.Matches(km, g.keys.Prev):
			return loginNone, g.move(-1)
		case key.Matches(km, g.keys.Activate):
			switch g.focus {
			case fieldEmail:
				return loginNone, g.setFocus(fieldPassword)
			case fieldCancel:
				return loginCancel, nil
			default:
				return loginContinue, nil
			}
		}
	}
	var cmd tea.Cmd
	switch g.focus {
	case fieldEmail:
		g.email, cmd = g.email.Update(msg)
	case fieldPassword:
		g.password, cmd = g.password.Update(msg)
	}
	return loginNone, cmd
}

func (g loginGate) view(width, height int, canContinue bool) string {
	cancel := buttonStyle
	if g.focus == fieldCancel {
		cancel = buttonFocusedStyle
	}
	cont := buttonStyle
	if canContinue {
		cont = primaryButtonStyle
	}
	if g.focus == fieldContinue {
		cont = buttonFocusedStyle
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		cancel.Render("No, cancel login"),
		"  ",
		cont.Render("Yes, continue login"),
	)
	card := loginCardStyle.Render(strings.Join([]string{
		lipgloss.PlaceHorizontal(38, lipgloss.Center, brandStyle.Render("▤ ")+headlineStyle.Render(g.title)),
		mutedStyle.Render(strings.Repeat("─", 38)),
		"",
		labelStyle.Render("Email address"),
		g.email.View(),
		"",
		labelStyle.Render("Password"),
		g.password.View(),
		"",
		buttons,
	}, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
