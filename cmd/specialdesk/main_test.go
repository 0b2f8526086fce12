package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/specialdesk/internal/config"
	"github.com/jask/specialdesk/internal/session"
	"github.com/jask/specialdesk/internal/workbench"
)

func TestOpenStoreBackends(t *testing.T) {
	dir := t.TempDir()
	cfg := config.SessionConfig{
		DatabasePath: filepath.Join(dir, "desk.db"),
		FilePath:     filepath.Join(dir, "session.toml"),
	}
	for _, backend := range []string{"sqlite", "File", " memory "} {
		t.Run(backend, func(t *testing.T) {
			cfg.Backend = backend
			store, closeStore, err := openStore(cfg)
			require.NoError(t, err)
			defer closeStore()

			ctx := context.Background()
			require.NoError(t, store.Put(ctx, map[string]string{session.KeyLoggedIn: "true", session.KeyIdentity: "a@b.com"}))
			got, err := store.Load(ctx)
			require.NoError(t, err)
			require.Equal(t, "a@b.com", got[session.KeyIdentity])
		})
	}
}

func TestOpenStoreUnknownBackend(t *testing.T) {
	_, _, err := openStore(config.SessionConfig{Backend: "redis"})
	require.ErrorContains(t, err, "redis")
}

func TestLoadSourceDefaultsToSeed(t *testing.T) {
	src, err := loadSource(config.WorkbenchConfig{})
	require.NoError(t, err)
	require.Equal(t, 4, workbench.New(src).Total())
}

func TestLoadSourceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.yaml")
	body := "records:\n  - {id: 7, name: Escalations, status: Pending, priority: High, created: \"2024-02-01\"}\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	src, err := loadSource(config.WorkbenchConfig{SeedPath: path})
	require.NoError(t, err)
	wb := workbench.New(src)
	wb.SetFilter("escal")
	require.Equal(t, 1, wb.Count())

	_, err = loadSource(config.WorkbenchConfig{SeedPath: filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)
}
