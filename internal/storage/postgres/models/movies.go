package models

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domain "moviecatalog/proj/internal/domain/models"
	"moviecatalog/proj/internal/storage"
)

type MovieModel struct {
	DB DBTX
}

func (m *MovieModel) List(ctx context.Context) ([]domain.Movie, error) {
	return m.queryMovies(ctx, `SELECT id, title, director, year FROM movies ORDER BY id ASC`)
}

func (m *MovieModel) Get(ctx context.Context, id int64) (*domain.Movie, error) {
	return m.queryMovie(ctx, `SELECT id, title, director, year FROM movies WHERE id = $1`, id)
}

func (m *MovieModel) Insert(ctx context.Context, title, director string, year int32) (*domain.Movie, error) {
	return m.queryMovie(
		ctx,
		`INSERT INTO movies (title, director, year) VALUES ($1, $2, $3) RETURNING id, title, director, year`,
		title,
		director,
		year,
	)
}

// Update applies the non-zero fields of patch in one statement. No returned
// row means no movie matched the id.
func (m *MovieModel) Update(ctx context.Context, id int64, patch domain.MoviePatch) (*domain.Movie, error) {
	return m.queryMovie(
		ctx,
		`UPDATE movies SET
			title = COALESCE(NULLIF($1, ''), title),
			director = COALESCE(NULLIF($2, ''), director),
			year = COALESCE(NULLIF($3::integer, 0), year)
		WHERE id = $4 RETURNING id, title, director, year`,
		patch.Title,
		patch.Director,
		patch.Year,
		id,
	)
}

func (m *MovieModel) Delete(ctx context.Context, id int64) error {
	status, err := m.DB.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if status.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (m *MovieModel) Count(ctx context.Context) (int, error) {
	var count int
	err := m.DB.QueryRow(ctx, `SELECT count(*) FROM movies`).Scan(&count)
	return count, err
}

func (m *MovieModel) Directors(ctx context.Context) ([]string, error) {
	rows, err := m.DB.Query(ctx, `SELECT DISTINCT director FROM movies ORDER BY director ASC`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

func (m *MovieModel) ListByDirector(ctx context.Context, name string) ([]domain.Movie, error) {
	return m.queryMovies(
		ctx,
		`SELECT id, title, director, year FROM movies WHERE director = $1 ORDER BY id ASC`,
		name,
	)
}

func (m *MovieModel) RenameDirector(ctx context.Context, oldName, newName string) (int64, error) {
	status, err := m.DB.Exec(ctx, `UPDATE movies SET director = $1 WHERE director = $2`, newName, oldName)
	if err != nil {
		return 0, err
	}
	return status.RowsAffected(), nil
}

func (m *MovieModel) DeleteByDirector(ctx context.Context, name string) (int64, error) {
	status, err := m.DB.Exec(ctx, `DELETE FROM movies WHERE director = $1`, name)
	if err != nil {
		return 0, err
	}
	return status.RowsAffected(), nil
}

func (m *MovieModel) queryMovies(ctx context.Context, query string, args ...any) ([]domain.Movie, error) {
	rows, err := m.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[domain.Movie])
}

func (m *MovieModel) queryMovie(ctx context.Context, query string, args ...any) (*domain.Movie, error) {
	rows, err := m.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	movie, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Movie])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &movie, nil
}
