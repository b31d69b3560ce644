package models

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"moviecatalog/proj/internal/storage/postgres"
)

// DBTX is the part of *pgxpool.Pool the models use.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Models struct {
	Movie *MovieModel
	User  *UserModel
}

func New(db *postgres.PostgresDB) *Models {
	return &Models{
		Movie: &MovieModel{db.Conn},
		User:  &UserModel{db.Conn},
	}
}
