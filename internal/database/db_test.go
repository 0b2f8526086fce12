package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenMigratedCreatesSessionTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "desk.db")
	db, err := OpenMigrated(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var name string
	err = db.QueryRowContext(context.Background(),
		`SELECT name FROM sqlite_master WHERE type='table' AND name='session_kv'`).Scan(&name)
	require.NoError(t, err)
	require.Equal(t, "session_kv", name)
}

func TestRunMigrationsIsRepeatable(t *testing.T) {
	db, err := OpenMigrated(filepath.Join(t.TempDir(), "desk.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, RunMigrations(db))
	require.NoError(t, db.Ping())
}

func TestWithTxRollsBackOnError(t *testing.T) {
	db, err := OpenMigrated(filepath.Join(t.TempDir(), "desk.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	boom := errors.New("boom")
	err = WithTx(context.Background(), db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO session_kv(key, value) VALUES ('a', '1')`); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM session_kv`).Scan(&count))
	require.Zero(t, count)
}
