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

type MovieModel struct {
	DB *sqlx.DB
}

func (m *MovieModel) List(ctx context.Context) ([]models.Movie, error) {
	const op = "sqlite.MovieModel.List"
	movies := make([]models.Movie, 0)
	if err := m.DB.SelectContext(ctx, &movies, `SELECT id, title, director, year FROM movies ORDER BY id ASC`); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return movies, nil
}

func (m *MovieModel) Get(ctx context.Context, id int64) (*models.Movie, error) {
	const op = "sqlite.MovieModel.Get"
	var movie models.Movie
	err := m.DB.GetContext(ctx, &movie, `SELECT id, title, director, year FROM movies WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &movie, nil
}

func (m *MovieModel) Insert(ctx context.Context, title, director string, year int32) (*models.Movie, error) {
	const op = "sqlite.MovieModel.Insert"
	var movie models.Movie
	err := m.DB.GetContext(
		ctx,
		&movie,
		`INSERT INTO movies (title, director, year) VALUES (?, ?, ?) RETURNING id, title, director, year`,
		title,
		director,
		year,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &movie, nil
}

// Update applies the non-zero fields of patch in a single statement. No
// returned row means no movie matched the id.
func (m *MovieModel) Update(ctx context.Context, id int64, patch models.MoviePatch) (*models.Movie, error) {
	const op = "sqlite.MovieModel.Update"
	var movie models.Movie
	err := m.DB.GetContext(
		ctx,
		&movie,
		`UPDATE movies SET
			title = COALESCE(NULLIF(?, ''), title),
			director = COALESCE(NULLIF(?, ''), director),
			year = COALESCE(NULLIF(?, 0), year)
		WHERE id = ? RETURNING id, title, director, year`,
		patch.Title,
		patch.Director,
		patch.Year,
		id,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &movie, nil
}

func (m *MovieModel) Delete(ctx context.Context, id int64) error {
	const op = "sqlite.MovieModel.Delete"
	affected, err := m.exec(ctx, `DELETE FROM movies WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (m *MovieModel) Count(ctx context.Context) (int, error) {
	const op = "sqlite.MovieModel.Count"
	var count int
	if err := m.DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM movies`); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

func (m *MovieModel) Directors(ctx context.Context) ([]string, error) {
	const op = "sqlite.MovieModel.Directors"
	names := make([]string, 0)
	if err := m.DB.SelectContext(ctx, &names, `SELECT DISTINCT director FROM movies ORDER BY director ASC`); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return names, nil
}

func (m *MovieModel) ListByDirector(ctx context.Context, name string) ([]models.Movie, error) {
	const op = "sqlite.MovieModel.ListByDirector"
	movies := make([]models.Movie, 0)
	err := m.DB.SelectContext(
		ctx,
		&movies,
		`SELECT id, title, director, year FROM movies WHERE director = ? ORDER BY id ASC`,
		name,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return movies, nil
}

func (m *MovieModel) RenameDirector(ctx context.Context, oldName, newName string) (int64, error) {
	const op = "sqlite.MovieModel.RenameDirector"
	affected, err := m.exec(ctx, `UPDATE movies SET director = ? WHERE director = ?`, newName, oldName)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return affected, nil
}

func (m *MovieModel) DeleteByDirector(ctx context.Context, name string) (int64, error) {
	const op = "sqlite.MovieModel.DeleteByDirector"
	affected, err := m.exec(ctx, `DELETE FROM movies WHERE director = ?`, name)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return affected, nil
}

func (m *MovieModel) exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := m.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
