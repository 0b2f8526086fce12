// Package session owns the authenticated state of the shell and mirrors it to
// a Store so that a login survives restarts.
package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"
)

// Persisted keys. The names match what earlier builds of the desktop wrote.
const (
	KeyLoggedIn = "isLoggedIn"
	KeyIdentity = "userEmail"
)

var (
	ErrEmptyIdentity         = errors.New("session: identity required")
	ErrIncompleteCredentials = errors.New("session: email and password required")

	// ErrCorrupt is wrapped by a Store whose persisted data cannot be decoded.
	// Such a store must still accept Put and Delete.
	ErrCorrupt = errors.New("session: store corrupted")
)

// Session is the authenticated status plus identity of the current user.
// The zero value is the unauthenticated session.
type Session struct {
	Authenticated bool
	Identity      string
}

// Valid reports whether the session honours the authenticated-iff-identity rule.
func (s Session) Valid() bool {
	return s.Authenticated == (s.Identity != "")
}

func authenticated(identity string) Session {
	return Session{Authenticated: true, Identity: identity}
}

// Credentials are the login form input buffers. They are never persisted.
type Credentials struct {
	Email    string
	Password string
}

// Complete reports whether both buffers are non-empty.
func (c Credentials) Complete() bool {
	return c.Email != "" && c.Password != ""
}

// Store is a small key/value durability layer. Put and Delete must apply all
// of their keys or none of them.
type Store interface {
	Load(ctx context.Context) (map[string]string, error)
	Put(ctx context.Context, values map[string]string) error
	Delete(ctx context.Context, keys ...string) error
}

// Manager holds the authoritative in-memory session and the transient
// credential buffers.
type Manager struct {
	store   Store
	log     *zap.Logger
	current Session
	creds   Credentials
}

func NewManager(store Store, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{store: store, log: log.Named("session")}
}

// Current returns the in-memory session.
func (m *Manager) Current() Session { return m.current }

// Restore derives the session from the store. Anything other than a true flag
// paired with a non-empty identity yields the unauthenticated session; a
// corrupted pair is also removed from the store.
func (m *Manager) Restore(ctx context.Context) Session {
	m.current = Session{}
	values, err := m.store.Load(ctx)
	if errors.Is(err, ErrCorrupt) {
		m.log.Warn("unreadable session store, clearing", zap.Error(err))
		m.discard(ctx)
		return m.current
	}
	if err != nil {
		m.log.Warn("restore failed, starting signed out", zap.Error(err))
		return m.current
	}
	rawFlag, hasFlag := values[KeyLoggedIn]
	identity := values[KeyIdentity]
	if !hasFlag {
		if identity != "" {
			m.log.Warn("identity persisted without login flag, ignoring")
		}
		return m.current
	}
	flag, err := strconv.ParseBool(rawFlag)
	if err != nil {
		m.log.Warn("unparseable login flag, clearing", zap.String("flag", rawFlag))
		m.discard(ctx)
		return m.current
	}
	if !flag {
		return m.current
	}
	if identity == "" {
		m.log.Warn("login flag set without identity, clearing")
		m.discard(ctx)
		return m.current
	}
	m.current = authenticated(identity)
	m.log.Info("session restored", zap.String("identity", identity))
	return m.current
}

func (m *Manager) discard(ctx context.Context) {
	if err := m.store.Delete(ctx, KeyLoggedIn, KeyIdentity); err != nil {
		m.log.Warn("clear corrupted session", zap.Error(err))
	}
}

// Login persists identity together with the login flag and makes it the
// current session. On a store failure the current session is unchanged.
func (m *Manager) Login(ctx context.Context, identity string) (Session, error) {
	if identity == "" {
		return m.current, ErrEmptyIdentity
	}
	err := m.store.Put(ctx, map[string]string{
		KeyLoggedIn: strconv.FormatBool(true),
		KeyIdentity: identity,
	})
	if err != nil {
		m.log.Error("persist login", zap.Error(err))
		return m.current, fmt.Errorf("persist login: %w", err)
	}
	m.current = authenticated(identity)
	m.creds = Credentials{}
	m.log.Info("signed in", zap.String("identity", identity))
	return m.current, nil
}

// Logout clears the credential buffers and the session, in memory first and
// then in the store. Calling it while signed out only re-clears.
func (m *Manager) Logout(ctx context.Context) (Session, error) {
	prev := m.current
	m.current = Session{}
	m.creds = Credentials{}
	if err := m.store.Delete(ctx, KeyLoggedIn, KeyIdentity); err != nil {
		m.log.Error("clear persisted session", zap.Error(err))
		return m.current, fmt.Errorf("clear session: %w", err)
	}
	if prev.Authenticated {
		m.log.Info("signed out", zap.String("identity", prev.Identity))
	}
	return m.current, nil
}

func (m *Manager) Credentials() Credentials    { return m.creds }
func (m *Manager) SetEmail(email string)       { m.creds.Email = email }
func (m *Manager) SetPassword(password string) { m.creds.Password = password }
func (m *Manager) ClearCredentials()           { m.creds = Credentials{} }
func (m *Manager) CanContinue() bool           { return m.creds.Complete() }

// Continue is the login form's submit action. It does nothing until both
// buffers hold text.
func (m *Manager) Continue(ctx context.Context) (Session, error) {
	if !m.creds.Complete() {
		return m.current, ErrIncompleteCredentials
	}
	return m.Login(ctx, m.creds.Email)
}
