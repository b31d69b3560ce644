package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"moviecatalog/proj/internal/domain/models"
	"moviecatalog/proj/internal/storage"
)

type UserModel struct {
	DB *sqlx.DB
}

func (m *UserModel) Insert(ctx context.Context, username, passwordHash string) (int64, error) {
	const op = "sqlite.UserModel.Insert"
	res, err := m.DB.ExecContext(
		ctx,
		`INSERT INTO users (username, password_hash) VALUES (?, ?)`,
		username,
		passwordHash,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, storage.ErrConflict
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

func (m *UserModel) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "sqlite.UserModel.GetByUsername"
	var user models.User
	err := m.DB.GetContext(
		ctx,
		&user,
		`SELECT id, username, password_hash FROM users WHERE username = ?`,
		username,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &user, nil
}
