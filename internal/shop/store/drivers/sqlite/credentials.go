package sqlite

import (
	"context"
	"database/sql"
	"time"
)

type credentialsRepo struct {
	db *sql.DB
}

// The slot column is pinned to 1 so the table can never hold more than one
// credential.

func (r *credentialsRepo) GetToken(ctx context.Context) (string, error) {
	var token string
	err := r.db.QueryRowContext(ctx,
		`SELECT token FROM credentials WHERE slot = 1`,
	).Scan(&token)
	if err != nil {
		return "", mapNotFound(err)
	}
	return token, nil
}

func (r *credentialsRepo) SetToken(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO credentials (slot, token, updated_at) VALUES (1, ?, ?)
		 ON CONFLICT (slot) DO UPDATE SET token = excluded.token, updated_at = excluded.updated_at`,
		token, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

func (r *credentialsRepo) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM credentials WHERE slot = 1`)
	return err
}
