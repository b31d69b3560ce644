package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"moviecatalog/proj/internal/storage/migrations"
)

type PostgresDB struct {
	Conn *pgxpool.Pool
}

const ErrConflictCode = "23505"

func New(ctx context.Context, dsn string, maxConns int, maxConnIdleTime time.Duration) (*PostgresDB, error) {
	const op = "postgres.New"
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	cfg.MaxConns = int32(maxConns)
	cfg.MaxConnIdleTime = maxConnIdleTime
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &PostgresDB{Conn: pool}, nil
}

// Migrate runs goose through a database/sql handle borrowed from the pool.
func (db *PostgresDB) Migrate(ctx context.Context, log *slog.Logger) error {
	return db.withSQLDB(func(sqlDB *sql.DB) error {
		return migrations.Up(ctx, log, sqlDB, migrations.Postgres)
	})
}

// withSQLDB closes the handle after fn returns. The pool stays open.
func (db *PostgresDB) withSQLDB(fn func(*sql.DB) error) error {
	sqlDB := stdlib.OpenDBFromPool(db.Conn)
	defer sqlDB.Close()
	return fn(sqlDB)
}

func (db *PostgresDB) Close() error {
	db.Conn.Close()
	return nil
}

func IsConflict(err error) bool {
	var pgxErr *pgconn.PgError
	return errors.As(err, &pgxErr) && pgxErr.Code == ErrConflictCode
}
