package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DB struct {
	*pgxpool.Pool
}

func NewPostgreSQLDB(dsn string) (*DB, error) {
	config, err := pgxpool.ParseConfig(dsn)

	if err != nil {
		return nil, err
	}

	// Connection pool settings
	config.MaxConns = 25
	config.MinConns = 5

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(context.Background()); err != nil {
		return nil, err
	}

	db := &DB{Pool: pool}
	if err := db.migrate(context.Background()); err != nil {
		pool.Close()
		return nil, err
	}

	return db, nil
}

func (db *DB) BeginTx(ctx context.Context) (pgx.Tx, error) {
	return db.Pool.Begin(ctx)
}

// migrate creates the attendance store schema. It runs once at store
// construction; the statements are idempotent.
func (db *DB) migrate(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS schedule (
			id BIGSERIAL PRIMARY KEY,
			login TEXT NOT NULL,
			week INTEGER NOT NULL,
			shift TEXT NOT NULL DEFAULT '',
			sun TEXT NOT NULL DEFAULT 'W',
			mon TEXT NOT NULL DEFAULT 'W',
			tue TEXT NOT NULL DEFAULT 'W',
			wed TEXT NOT NULL DEFAULT 'W',
			thu TEXT NOT NULL DEFAULT 'W',
			fri TEXT NOT NULL DEFAULT 'W',
			sat TEXT NOT NULL DEFAULT 'W',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS schedule_login_week_idx ON schedule (login, week)`,
		`CREATE TABLE IF NOT EXISTS leaves (
			id BIGSERIAL PRIMARY KEY,
			login TEXT NOT NULL,
			week INTEGER NOT NULL,
			day TEXT NOT NULL,
			leave_type TEXT NOT NULL,
			annotation TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS leaves_login_week_day_idx ON leaves (login, week, day)`,
		`CREATE TABLE IF NOT EXISTS performance (
			id BIGSERIAL PRIMARY KEY,
			username TEXT NOT NULL,
			week INTEGER NOT NULL,
			metric1 DOUBLE PRECISION NOT NULL,
			metric2 DOUBLE PRECISION NOT NULL,
			recorded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS performance_username_week_idx ON performance (username, week)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, arguments ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}
