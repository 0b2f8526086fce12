package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jask/specialdesk/internal/database"
)

// KVRepo handles the session_kv table. Multi-key writes share one transaction.
type KVRepo struct {
	db *sql.DB
}

func NewKVRepo(db *sql.DB) *KVRepo {
	return &KVRepo{db: db}
}

func (r *KVRepo) Load(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value FROM session_kv`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[string]string{}
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, rows.Err()
}

func (r *KVRepo) Put(ctx context.Context, values map[string]string) error {
	now := time.Now().UTC().Truncate(time.Second)
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		for k, v := range values {
			_, err := tx.ExecContext(ctx, `
			INSERT INTO session_kv(key, value, updated_at) VALUES (?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET
			 value=excluded.value,
			 updated_at=excluded.updated_at;
			`, k, v, now)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *KVRepo) Delete(ctx context.Context, keys ...string) error {
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, k := range keys {
			if _, err := tx.ExecContext(ctx, `DELETE FROM session_kv WHERE key = ?`, k); err != nil {
				return err
			}
		}
		return nil
	})
}
