package postgres

import (
	"catalog/domain"
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	_ "github.com/lib/pq"
)

const itemColumns = `id, name, description, is_active, created_at, updated_at`

type PgRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// Connect opens a pooled Postgres connection and verifies it with a ping.
func Connect(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	db.SetMaxOpenConns(15)
	db.SetMaxIdleConns(8)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	return db, nil
}

func NewPgRepository(db *sqlx.DB) *PgRepository {
	return &PgRepository{db: db, now: time.Now}
}

func (r *PgRepository) Close() error {
	return r.db.Close()
}

func (r *PgRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// GetPoolStats returns current connection pool statistics
func (r *PgRepository) GetPoolStats() map[string]interface{} {
	stats := r.db.Stats()
	return map[string]interface{}{
		"max_open_connections": stats.MaxOpenConnections,
		"open_connections":     stats.OpenConnections,
		"in_use":               stats.InUse,
		"idle":                 stats.Idle,
		"wait_count":           stats.WaitCount,
		"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
		"max_idle_closed":      stats.MaxIdleClosed,
		"max_lifetime_closed":  stats.MaxLifetimeClosed,
	}
}

func (r *PgRepository) selectItems(ctx context.Context, where string, args ...any) ([]domain.Item, error) {
	items := make([]domain.Item, 0)
	query := `SELECT ` + itemColumns + ` FROM items ` + where

	if err := r.db.SelectContext(ctx, &items, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PgRepository) ListAll(ctx context.Context) ([]domain.Item, error) {
	return r.selectItems(ctx, `ORDER BY id`)
}

func (r *PgRepository) FindByID(ctx context.Context, id int64) (domain.Item, error) {
	var i domain.Item
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = ?`

	err := r.db.GetContext(ctx, &i, r.db.Rebind(query), id)
	return i, err
}

func (r *PgRepository) FindByNameContains(ctx context.Context, name string) ([]domain.Item, error) {
	return r.selectItems(ctx, `WHERE LOWER(name) LIKE LOWER(?) ESCAPE '\' ORDER BY id`, containsPattern(name))
}

func (r *PgRepository) FindActive(ctx context.Context) ([]domain.Item, error) {
	return r.selectItems(ctx, `WHERE is_active = TRUE ORDER BY id`)
}

func (r *PgRepository) FindActiveOrLegacy(ctx context.Context) ([]domain.Item, error) {
	return r.selectItems(ctx, `WHERE is_active = TRUE OR is_active IS NULL ORDER BY id`)
}

func (r *PgRepository) FindByNameContainsAndActive(ctx context.Context, name string) ([]domain.Item, error) {
	return r.selectItems(ctx, `WHERE LOWER(name) LIKE LOWER(?) ESCAPE '\' AND is_active = TRUE ORDER BY id`, containsPattern(name))
}

// SearchText matches term against name or description, ignoring case.
func (r *PgRepository) SearchText(ctx context.Context, term string) ([]domain.Item, error) {
	pattern := containsPattern(term)
	return r.selectItems(ctx,
		`WHERE LOWER(name) LIKE LOWER(?) ESCAPE '\' OR LOWER(description) LIKE LOWER(?) ESCAPE '\' ORDER BY id`,
		pattern, pattern,
	)
}

func (r *PgRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM items WHERE is_active = TRUE`

	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PgRepository) Recent(ctx context.Context, limit int) ([]domain.Item, error) {
	return r.selectItems(ctx, `ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
}

// Save inserts an unsaved item or rewrites an existing one, stamping the
// timestamps itself. An update of a missing row returns sql.ErrNoRows.
func (r *PgRepository) Save(ctx context.Context, item domain.Item) (domain.Item, error) {
	now := r.now().UTC().Truncate(time.Microsecond)

	if item.IsNew() {
		item.CreatedAt = now
		item.UpdatedAt = now

		query := `
			INSERT INTO items (name, description, is_active, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?)
			RETURNING id`

		err := r.db.QueryRowxContext(ctx, r.db.Rebind(query),
			item.Name, item.Description, item.IsActive, item.CreatedAt, item.UpdatedAt,
		).Scan(&item.ID)
		if err != nil {
			return domain.Item{}, err
		}
		return item, nil
	}

	if now.Before(item.UpdatedAt) {
		now = item.UpdatedAt
	}
	item.UpdatedAt = now

	query := `
		UPDATE items SET
			name = ?,
			description = ?,
			is_active = ?,
			updated_at = ?
		WHERE id = ?`

	res, err := r.db.ExecContext(ctx, r.db.Rebind(query),
		item.Name, item.Description, item.IsActive, item.UpdatedAt, item.ID,
	)
	if err != nil {
		return domain.Item{}, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return domain.Item{}, err
	}
	if affected == 0 {
		return domain.Item{}, sql.ErrNoRows
	}

	return item, nil
}

func (r *PgRepository) Delete(ctx context.Context, item domain.Item) error {
	query := `DELETE FROM items WHERE id = ?`

	_, err := r.db.ExecContext(ctx, r.db.Rebind(query), item.ID)
	return err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching term literally anywhere.
// Case folding is left to LOWER() in SQL so both sides fold the same way.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
