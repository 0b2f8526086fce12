package shell

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/jask/specialdesk/internal/chat"
	"github.com/jask/specialdesk/internal/prefs"
	"github.com/jask/specialdesk/internal/session"
	"github.com/jask/specialdesk/internal/workbench"
)

type sinkRecorder struct{ got []string }

func (r *sinkRecorder) Deliver(text string) { r.got = append(r.got, text) }

func newComposer(t *testing.T, store session.Store) (*Composer, *sinkRecorder) {
	t.Helper()
	log := zaptest.NewLogger(t)
	sink := &sinkRecorder{}
	c := NewComposer(
		session.NewManager(store, log),
		workbench.New(workbench.SeedSource()),
		chat.NewPanel(sink),
		log,
	)
	return c, sink
}

func signIn(t *testing.T, c *Composer, email, password string) {
	t.Helper()
	c.SetEmail(email)
	c.SetPassword(password)
	require.NoError(t, c.Continue(context.Background()))
}

func TestStartsOnLoginGate(t *testing.T) {
	c, _ := newComposer(t, session.NewMemStore())
	require.Equal(t, ScreenLogin, c.Start(context.Background()))
}

func TestLoginScenarioSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemStore()
	c, _ := newComposer(t, store)
	c.Start(ctx)

	signIn(t, c, "a@b.com", "x")
	require.Equal(t, ScreenWorkspace, c.Screen())
	require.Equal(t, session.Session{Authenticated: true, Identity: "a@b.com"}, c.Session())
	require.Equal(t, session.Credentials{}, c.Credentials())

	restarted, _ := newComposer(t, store)
	require.Equal(t, ScreenWorkspace, restarted.Start(ctx))
	require.Equal(t, "a@b.com", restarted.Session().Identity)
	require.Equal(t, TabQueues, restarted.ActiveTab())
}

func TestContinueNeedsBothFields(t *testing.T) {
	ctx := context.Background()
	c, _ := newComposer(t, session.NewMemStore())
	c.Start(ctx)

	c.SetEmail("a@b.com")
	require.False(t, c.CanContinue())
	require.ErrorIs(t, c.Continue(ctx), session.ErrIncompleteCredentials)
	require.Equal(t, ScreenLogin, c.Screen())
	require.Equal(t, "a@b.com", c.Credentials().Email, "a refused continue keeps the typed text")
}

func TestCancelClearsBuffersOnly(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemStore()
	c, _ := newComposer(t, store)
	c.Start(ctx)

	c.SetEmail("a@b.com")
	c.SetPassword("x")
	c.Cancel()
	require.Equal(t, session.Credentials{}, c.Credentials())
	require.Equal(t, ScreenLogin, c.Screen())
	values, _ := store.Load(ctx)
	require.Empty(t, values)
}

func TestTabResetsAfterLogoutLogin(t *testing.T) {
	ctx := context.Background()
	c, _ := newComposer(t, session.NewMemStore())
	c.Start(ctx)
	signIn(t, c, "a@b.com", "x")
	require.Equal(t, TabQueues, c.ActiveTab())

	require.NoError(t, c.SelectTab(TabCustomers))
	require.Equal(t, TabCustomers, c.ActiveTab())
	require.NoError(t, c.SelectTab(TabReports))
	require.Equal(t, TabReports, c.ActiveTab())

	require.NoError(t, c.SignOut(ctx))
	require.Equal(t, ScreenLogin, c.Screen())

	signIn(t, c, "a@b.com", "x")
	require.Equal(t, TabQueues, c.ActiveTab())
}

func TestSelectTabRejectsUnknown(t *testing.T) {
	ctx := context.Background()
	c, _ := newComposer(t, session.NewMemStore())
	c.Start(ctx)
	signIn(t, c, "a@b.com", "x")
	require.NoError(t, c.SelectTab(TabReports))

	require.ErrorIs(t, c.SelectTab(Tab(42)), ErrUnknownTab)
	require.Equal(t, TabReports, c.ActiveTab())
}

func TestFilterChangesDoNotMoveTabs(t *testing.T) {
	ctx := context.Background()
	c, _ := newComposer(t, session.NewMemStore())
	c.Start(ctx)
	signIn(t, c, "a@b.com", "x")
	require.NoError(t, c.SelectTab(TabCustomers))

	c.Workbench().SetFilter("delta")
	c.Chat().UpdateDraft("hello")
	require.True(t, c.Chat().Submit())
	require.Equal(t, TabCustomers, c.ActiveTab())
}

func TestWorkbenchAndChatStateIsolated(t *testing.T) {
	ctx := context.Background()
	c, sink := newComposer(t, session.NewMemStore())
	c.Start(ctx)
	signIn(t, c, "a@b.com", "x")

	c.Workbench().SetFilter("beta")
	c.Chat().UpdateDraft("   ")
	require.False(t, c.Chat().Submit())
	require.Equal(t, "beta", c.Workbench().Filter())
	require.Equal(t, "   ", c.Chat().Draft())
	require.Empty(t, sink.got)
}

func TestSignOutDropsDraftsAndIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemStore()
	c, sink := newComposer(t, store)
	c.Start(ctx)
	signIn(t, c, "a@b.com", "x")

	c.Chat().UpdateDraft("half typed")
	require.NoError(t, c.SignOut(ctx))
	require.NoError(t, c.SignOut(ctx))
	require.Empty(t, c.Chat().Draft())
	require.Empty(t, sink.got)
	require.Equal(t, session.Credentials{}, c.Credentials())

	restarted, _ := newComposer(t, store)
	require.Equal(t, ScreenLogin, restarted.Start(ctx))
}

func TestFreshLoginStartsWithEmptyFilter(t *testing.T) {
	ctx := context.Background()
	c, _ := newComposer(t, session.NewMemStore())
	c.Start(ctx)
	signIn(t, c, "a@b.com", "x")
	c.Workbench().SetFilter("gamma")
	require.NoError(t, c.SignOut(ctx))

	signIn(t, c, "c@d.com", "y")
	require.Empty(t, c.Workbench().Filter())
	require.Equal(t, 4, c.Workbench().Count())
}

func TestTabHelpers(t *testing.T) {
	require.Equal(t, TabCustomers, TabQueues.Next(1))
	require.Equal(t, TabReports, TabQueues.Next(-1))
	require.Equal(t, TabQueues, TabReports.Next(1))

	tab, err := ParseTab("reports")
	require.NoError(t, err)
	require.Equal(t, TabReports, tab)
	_, err = ParseTab("billing")
	require.ErrorIs(t, err, ErrUnknownTab)
	require.Equal(t, "Customers", TabCustomers.String())
}

func TestUnreadableSessionFileStillAllowsLogin(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.toml")
	require.NoError(t, os.WriteFile(path, []byte("values = [not toml"), 0o600))

	c, _ := newComposer(t, prefs.NewSessionFile(path))
	require.Equal(t, ScreenLogin, c.Start(ctx))
	signIn(t, c, "a@b.com", "x")
	require.Equal(t, ScreenWorkspace, c.Screen())

	restarted, _ := newComposer(t, prefs.NewSessionFile(path))
	require.Equal(t, ScreenWorkspace, restarted.Start(ctx))
	require.Equal(t, "a@b.com", restarted.Session().Identity)

	require.NoError(t, restarted.SignOut(ctx))
	again, _ := newComposer(t, prefs.NewSessionFile(path))
	require.Equal(t, ScreenLogin, again.Start(ctx))
}
