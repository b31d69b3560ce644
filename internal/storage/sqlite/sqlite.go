package sqlite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jmoiron/sqlx"
	sqlitedrv "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"moviecatalog/proj/internal/storage/migrations"
)

const driverName = "sqlite"

type Storage struct {
	DB     *sqlx.DB
	Movies *MovieModel
	Users  *UserModel
}

// New opens (creating if needed) the database file at path and migrates it.
// A single connection is used so that SQLite serializes every write.
func New(ctx context.Context, log *slog.Logger, path string) (*Storage, error) {
	const op = "sqlite.New"
	db, err := sqlx.Open(driverName, dsn(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := migrations.Up(ctx, log, db.DB, migrations.SQLite); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return NewFromDB(db), nil
}

func NewFromDB(db *sqlx.DB) *Storage {
	return &Storage{
		DB:     db,
		Movies: &MovieModel{DB: db},
		Users:  &UserModel{DB: db},
	}
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func dsn(path string) string {
	if path == ":memory:" {
		return path
	}
	return "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}

func isUniqueViolation(err error) bool {
	var sqliteErr *sqlitedrv.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
