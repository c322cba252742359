package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/rbpata/sweetshop/internal/shop/store"
	"github.com/rbpata/sweetshop/pkg/shopsdk"
)

type sweetsCacheRepo struct {
	db *sql.DB
}

func (r *sweetsCacheRepo) ReplaceAll(ctx context.Context, sweets []shopsdk.Sweet, refreshedAt time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback() // safe to call even after commit
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM sweets_cache`); err != nil {
		return err
	}

	for _, s := range sweets {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO sweets_cache (id, name, category, price, quantity) VALUES (?, ?, ?, ?, ?)`,
			s.ID, s.Name, s.Category, s.Price, s.Quantity,
		)
		if err != nil {
			return err
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO sweets_cache_meta (slot, refreshed_at) VALUES (1, ?)
		 ON CONFLICT (slot) DO UPDATE SET refreshed_at = excluded.refreshed_at`,
		refreshedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *sweetsCacheRepo) List(ctx context.Context) ([]shopsdk.Sweet, time.Time, error) {
	var stamp string
	err := r.db.QueryRowContext(ctx,
		`SELECT refreshed_at FROM sweets_cache_meta WHERE slot = 1`,
	).Scan(&stamp)
	if err != nil {
		return nil, time.Time{}, mapNotFound(err)
	}

	refreshedAt, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		return nil, time.Time{}, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, category, price, quantity FROM sweets_cache ORDER BY id`,
	)
	if err != nil {
		return nil, time.Time{}, err
	}
	defer rows.Close()

	var sweets []shopsdk.Sweet
	for rows.Next() {
		var s shopsdk.Sweet
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Price, &s.Quantity); err != nil {
			return nil, time.Time{}, err
		}
		sweets = append(sweets, s)
	}
	if err := rows.Err(); err != nil {
		return nil, time.Time{}, err
	}

	return sweets, refreshedAt, nil
}

func (r *sweetsCacheRepo) Clear(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM sweets_cache`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM sweets_cache_meta`); err != nil {
		return err
	}

	return tx.Commit()
}

var _ store.SweetsCache = (*sweetsCacheRepo)(nil)
