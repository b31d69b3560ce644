package models

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "moviecatalog/proj/internal/domain/models"
	"moviecatalog/proj/internal/storage"
)

var movieColumns = []string{"id", "title", "director", "year"}

func newMockModels(t *testing.T) (*Models, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return &Models{Movie: &MovieModel{mock}, User: &UserModel{mock}}, mock
}

func TestMovieModelList(t *testing.T) {
	m, mock := newMockModels(t)
	mock.ExpectQuery(`^SELECT id, title, director, year FROM movies ORDER BY id ASC$`).
		WillReturnRows(pgxmock.NewRows(movieColumns).
			AddRow(int64(1), "Parasite", "Bong Joon-ho", int32(2019)).
			AddRow(int64(2), "The Dark Knight", "Christopher Nolan", int32(2008)))

	movies, err := m.Movie.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Movie{
		{ID: 1, Title: "Parasite", Director: "Bong Joon-ho", Year: 2019},
		{ID: 2, Title: "The Dark Knight", Director: "Christopher Nolan", Year: 2008},
	}, movies)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieModelQueryError(t *testing.T) {
	m, mock := newMockModels(t)
	wantErr := errors.New("connection reset")
	mock.ExpectQuery(`SELECT id, title, director, year FROM movies WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnError(wantErr)

	_, err := m.Movie.Get(context.Background(), 3)
	assert.ErrorIs(t, err, wantErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieModelUpdate(t *testing.T) {
	const q = `(?s)UPDATE movies SET.*COALESCE\(NULLIF\(\$3::integer, 0\), year\).*WHERE id = \$4 RETURNING id, title, director, year`
	t.Run("updated", func(t *testing.T) {
		m, mock := newMockModels(t)
		mock.ExpectQuery(q).
			WithArgs("", "", int32(2020), int64(1)).
			WillReturnRows(pgxmock.NewRows(movieColumns).
				AddRow(int64(1), "Parasite", "Bong Joon-ho", int32(2020)))

		movie, err := m.Movie.Update(context.Background(), 1, domain.MoviePatch{Year: 2020})
		require.NoError(t, err)
		assert.Equal(t, &domain.Movie{ID: 1, Title: "Parasite", Director: "Bong Joon-ho", Year: 2020}, movie)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
	t.Run("missing id", func(t *testing.T) {
		m, mock := newMockModels(t)
		mock.ExpectQuery(q).
			WithArgs("Heat", "", int32(0), int64(42)).
			WillReturnRows(pgxmock.NewRows(movieColumns))

		_, err := m.Movie.Update(context.Background(), 42, domain.MoviePatch{Title: "Heat"})
		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMovieModelDelete(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{"deleted", 1, nil},
		{"missing id", 0, storage.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, mock := newMockModels(t)
			mock.ExpectExec(`DELETE FROM movies WHERE id = \$1`).
				WithArgs(int64(5)).
				WillReturnResult(pgxmock.NewResult("DELETE", tt.affected))

			err := m.Movie.Delete(context.Background(), 5)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMovieModelDirectors(t *testing.T) {
	m, mock := newMockModels(t)
	mock.ExpectQuery(`SELECT DISTINCT director FROM movies ORDER BY director ASC`).
		WillReturnRows(pgxmock.NewRows([]string{"director"}).
			AddRow("Bong Joon-ho").
			AddRow("Christopher Nolan"))

	directors, err := m.Movie.Directors(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Bong Joon-ho", "Christopher Nolan"}, directors)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieModelDirectorWrites(t *testing.T) {
	m, mock := newMockModels(t)
	mock.ExpectExec(`UPDATE movies SET director = \$1 WHERE director = \$2`).
		WithArgs("Bong Joon Ho", "Bong Joon-ho").
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))
	mock.ExpectExec(`DELETE FROM movies WHERE director = \$1`).
		WithArgs("Nobody").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	renamed, err := m.Movie.RenameDirector(context.Background(), "Bong Joon-ho", "Bong Joon Ho")
	require.NoError(t, err)
	assert.Equal(t, int64(2), renamed)

	deleted, err := m.Movie.DeleteByDirector(context.Background(), "Nobody")
	require.NoError(t, err)
	assert.Zero(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserModelInsert(t *testing.T) {
	const q = `INSERT INTO users \(username, password_hash\) VALUES \(\$1, \$2\) RETURNING id`
	t.Run("created", func(t *testing.T) {
		m, mock := newMockModels(t)
		mock.ExpectQuery(q).
			WithArgs("ivan", "hash").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(9)))

		id, err := m.User.Insert(context.Background(), "ivan", "hash")
		require.NoError(t, err)
		assert.Equal(t, int64(9), id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
	t.Run("taken username", func(t *testing.T) {
		m, mock := newMockModels(t)
		mock.ExpectQuery(q).
			WithArgs("ivan", "hash").
			WillReturnError(&pgconn.PgError{Code: "23505"})

		_, err := m.User.Insert(context.Background(), "ivan", "hash")
		assert.ErrorIs(t, err, storage.ErrConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserModelGetByUsername(t *testing.T) {
	const q = `SELECT id, username, password_hash FROM users WHERE lower\(username\) = lower\(\$1\)`
	t.Run("found", func(t *testing.T) {
		m, mock := newMockModels(t)
		mock.ExpectQuery(q).
			WithArgs("IVAN").
			WillReturnRows(pgxmock.NewRows([]string{"id", "username", "password_hash"}).
				AddRow(int64(1), "ivan", "hash"))

		user, err := m.User.GetByUsername(context.Background(), "IVAN")
		require.NoError(t, err)
		assert.Equal(t, &domain.User{ID: 1, Username: "ivan", PasswordHash: "hash"}, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
	t.Run("unknown", func(t *testing.T) {
		m, mock := newMockModels(t)
		mock.ExpectQuery(q).
			WithArgs("nobody").
			WillReturnRows(pgxmock.NewRows([]string{"id", "username", "password_hash"}))

		_, err := m.User.GetByUsername(context.Background(), "nobody")
		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
