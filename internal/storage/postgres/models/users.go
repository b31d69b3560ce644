package models

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domain "moviecatalog/proj/internal/domain/models"
	"moviecatalog/proj/internal/storage"
	"moviecatalog/proj/internal/storage/postgres"
)

type UserModel struct {
	DB DBTX
}

func (m *UserModel) Insert(ctx context.Context, username, passwordHash string) (int64, error) {
	var id int64
	err := m.DB.QueryRow(
		ctx,
		`INSERT INTO users (username, password_hash) VALUES ($1, $2) RETURNING id`,
		username,
		passwordHash,
	).Scan(&id)
	if err != nil {
		if postgres.IsConflict(err) {
			return 0, storage.ErrConflict
		}
		return 0, err
	}
	return id, nil
}

func (m *UserModel) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	rows, err := m.DB.Query(
		ctx,
		`SELECT id, username, password_hash FROM users WHERE lower(username) = lower($1)`,
		username,
	)
	if err != nil {
		return nil, err
	}
	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
