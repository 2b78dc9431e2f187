// Package postgres stores the board's JSON collections in a PostgreSQL table.
package postgres

import (
	"context"
	"embed"
	"errors"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Backend keeps one JSONB row per collection kind.
type Backend struct {
	Pool *pgxpool.Pool
}

// Open opens a PostgreSQL connection pool and runs migrations. dsn may be empty to use DATABASE_URL env.
func Open(dsn string) (*Backend, error) {
	if dsn == "" {
		dsn = os.Getenv("DATABASE_URL")
	}
	if dsn == "" {
		return nil, errors.New("postgres DSN or DATABASE_URL required")
	}
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = 4
	pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, err
	}
	b := &Backend{Pool: pool}
	if err := b.Migrate(context.Background()); err != nil {
		pool.Close()
		return nil, err
	}
	return b, nil
}

// Close closes the connection pool.
func (b *Backend) Close() error {
	if b == nil || b.Pool == nil {
		return nil
	}
	b.Pool.Close()
	return nil
}

// Load returns the stored body for kind, or nil when the kind has no row yet.
func (b *Backend) Load(ctx context.Context, kind string) ([]byte, error) {
	var body []byte
	err := b.Pool.QueryRow(ctx, `SELECT body::text FROM collections WHERE kind = $1`, kind).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return body, nil
}

// Save replaces the row for kind.
func (b *Backend) Save(ctx context.Context, kind string, data []byte) error {
	_, err := b.Pool.Exec(ctx, `
INSERT INTO collections(kind, body, updated_at) VALUES($1, $2::jsonb, $3)
ON CONFLICT (kind) DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at`,
		kind, string(data), time.Now().Unix())
	return err
}

// Migrate runs pending migrations (only those not already in schema_migrations).
func (b *Backend) Migrate(ctx context.Context) error {
	applied := make(map[int]bool)
	rows, err := b.Pool.Query(ctx, `SELECT version FROM schema_migrations`)
	if err == nil {
		for rows.Next() {
			var v int
			if err := rows.Scan(&v); err != nil {
				break
			}
			applied[v] = true
		}
		rows.Close()
	}

	type mig struct {
		version   int
		name, sql string
	}
	var migs []mig
	files, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return err
	}
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".sql") {
			continue
		}
		v, err := strconv.Atoi(strings.SplitN(strings.TrimSuffix(f.Name(), ".sql"), "_", 2)[0])
		if err != nil {
			continue
		}
		if applied[v] {
			continue
		}
		body, _ := migrationsFS.ReadFile("migrations/" + f.Name())
		migs = append(migs, mig{v, f.Name(), string(body)})
	}
	sort.Slice(migs, func(i, j int) bool { return migs[i].version < migs[j].version })

	for _, m := range migs {
		if _, err := b.Pool.Exec(ctx, m.sql); err != nil && !strings.Contains(err.Error(), "already exists") {
			return err
		}
		if _, err := b.Pool.Exec(ctx, `INSERT INTO schema_migrations(version, applied_at) VALUES($1, $2) ON CONFLICT (version) DO NOTHING`, m.version, time.Now().Unix()); err != nil {
			return err
		}
	}
	return nil
}
