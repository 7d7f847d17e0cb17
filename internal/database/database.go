package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ashisht1812/Fotush-Web/internal/cache"
	"github.com/ashisht1812/Fotush-Web/internal/ui"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Database stores per-visitor UI state. Unknown and expired visitors read as
// the initial state.
type Database interface {
	Close()
	GetVisitor(ctx context.Context, id string) (ui.State, error)
	UpdateVisitor(ctx context.Context, id string, fn func(*ui.State) error) (ui.State, error)
	DeleteVisitor(ctx context.Context, id string) error
	PurgeExpired(ctx context.Context) (int, error)
}

type memory struct {
	cache   *cache.Cache
	records int
}

// NewMemory returns a Database kept in process memory. records is the
// number of testimonials the carousel cycles through.
func NewMemory(ttl time.Duration, records int) Database {
	return &memory{
		cache:   cache.NewCache(ttl),
		records: records,
	}
}

func (m *memory) Close() {}

func (m *memory) GetVisitor(ctx context.Context, id string) (ui.State, error) {
	if st, ok := m.cache.GetVisitor(id); ok {
		return st, nil
	}
	return ui.NewState(m.records), nil
}

func (m *memory) UpdateVisitor(ctx context.Context, id string, fn func(*ui.State) error) (ui.State, error) {
	return m.cache.UpdateVisitor(id, ui.NewState(m.records), fn)
}

func (m *memory) DeleteVisitor(ctx context.Context, id string) error {
	m.cache.InvalidateVisitor(id)
	return nil
}

func (m *memory) PurgeExpired(ctx context.Context) (int, error) {
	return m.cache.Purge(), nil
}

const schema = `CREATE TABLE IF NOT EXISTS visitor_state (
	id            TEXT PRIMARY KEY,
	menu_expanded BOOLEAN NOT NULL DEFAULT FALSE,
	location      TEXT NOT NULL DEFAULT '',
	position      INTEGER NOT NULL DEFAULT 0,
	expires_at    TIMESTAMPTZ NOT NULL
)`

type database struct {
	db      *pgxpool.Pool
	ttl     time.Duration
	records int
}

// NewDatabase connects to PostgreSQL and makes sure the visitor_state table
// exists.
func NewDatabase(ctx context.Context, dbURL string, ttl time.Duration, records int) (Database, error) {
	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = 30 * time.Minute
	config.MaxConnIdleTime = 5 * time.Minute
	config.HealthCheckPeriod = 1 * time.Minute
	config.ConnConfig.ConnectTimeout = 10 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create visitor_state table: %w", err)
	}

	return &database{
		db:      pool,
		ttl:     ttl,
		records: records,
	}, nil
}

func (d *database) Close() {
	d.db.Close()
}

func (d *database) GetVisitor(ctx context.Context, id string) (ui.State, error) {
	var snap ui.Snapshot
	err := d.db.QueryRow(ctx, `SELECT menu_expanded, location, position FROM visitor_state WHERE id = $1 AND expires_at > now()`, id).
		Scan(&snap.MenuExpanded, &snap.Location, &snap.Cursor)
	if errors.Is(err, pgx.ErrNoRows) {
		return ui.NewState(d.records), nil
	}
	if err != nil {
		return ui.State{}, err
	}
	return ui.Restore(snap, d.records), nil
}

func (d *database) UpdateVisitor(ctx context.Context, id string, fn func(*ui.State) error) (ui.State, error) {
	tx, err := d.db.Begin(ctx)
	if err != nil {
		return ui.State{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Expired rows are reset here so the row lock below always has a row.
	if _, err := tx.Exec(ctx, `INSERT INTO visitor_state (id, expires_at) VALUES ($1, now() + make_interval(secs => $2))
		ON CONFLICT (id) DO UPDATE SET menu_expanded = FALSE, location = '', position = 0, expires_at = EXCLUDED.expires_at
		WHERE visitor_state.expires_at <= now()`, id, d.ttl.Seconds()); err != nil {
		return ui.State{}, err
	}

	var snap ui.Snapshot
	if err := tx.QueryRow(ctx, `SELECT menu_expanded, location, position FROM visitor_state WHERE id = $1 FOR UPDATE`, id).
		Scan(&snap.MenuExpanded, &snap.Location, &snap.Cursor); err != nil {
		return ui.State{}, err
	}

	st := ui.Restore(snap, d.records)
	if err := fn(&st); err != nil {
		return ui.State{}, err
	}

	snap = st.Snapshot()
	if _, err := tx.Exec(ctx, `UPDATE visitor_state SET menu_expanded = $2, location = $3, position = $4, expires_at = now() + make_interval(secs => $5) WHERE id = $1`,
		id, snap.MenuExpanded, snap.Location, snap.Cursor, d.ttl.Seconds()); err != nil {
		return ui.State{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return ui.State{}, fmt.Errorf("failed to commit visitor state: %w", err)
	}
	return st, nil
}

func (d *database) DeleteVisitor(ctx context.Context, id string) error {
	_, err := d.db.Exec(ctx, `DELETE FROM visitor_state WHERE id = $1`, id)
	return err
}

func (d *database) PurgeExpired(ctx context.Context) (int, error) {
	tag, err := d.db.Exec(ctx, `DELETE FROM visitor_state WHERE expires_at <= now()`)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
