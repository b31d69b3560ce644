package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"

	"moviecatalog/proj/internal/lib/logger"
)

//go:embed postgres/*.sql sqlite/*.sql
var Migrations embed.FS

type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite3"
)

func (d Dialect) dir() string {
	if d == SQLite {
		return "sqlite"
	}
	return string(d)
}

// Up applies every pending migration for the dialect.
func Up(ctx context.Context, log *slog.Logger, db *sql.DB, dialect Dialect) error {
	const op = "migrations.Up"
	goose.SetBaseFS(Migrations)
	goose.SetLogger(logger.LogAdapter(log.With("op", op, "dialect", string(dialect))))
	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := goose.UpContext(ctx, db, dialect.dir()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
