package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviecatalog/proj/internal/domain/models"
	"moviecatalog/proj/internal/storage"
)

func seed(t *testing.T, m *MovieModel) {
	t.Helper()
	ctx := context.Background()
	for _, movie := range []models.Movie{
		{Title: "Parasite", Director: "Bong Joon-ho", Year: 2019},
		{Title: "The Dark Knight", Director: "Christopher Nolan", Year: 2008},
		{Title: "Inception", Director: "Christopher Nolan", Year: 2010},
	} {
		_, err := m.Insert(ctx, movie.Title, movie.Director, movie.Year)
		require.NoError(t, err)
	}
}

func TestMovieModelIdsAreNeverReused(t *testing.T) {
	ctx := context.Background()
	m := NewMovieModel()
	seed(t, m)

	require.NoError(t, m.Delete(ctx, 3))
	movie, err := m.Insert(ctx, "Tenet", "Christopher Nolan", 2020)
	require.NoError(t, err)
	assert.Equal(t, int64(4), movie.ID)

	movies, err := m.List(ctx)
	require.NoError(t, err)
	ids := make([]int64, 0, len(movies))
	for _, movie := range movies {
		ids = append(ids, movie.ID)
	}
	assert.Equal(t, []int64{1, 2, 4}, ids)
}

func TestMovieModelGetUpdateDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMovieModel()
	seed(t, m)

	_, err := m.Get(ctx, 42)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	updated, err := m.Update(ctx, 1, models.MoviePatch{Year: 2020})
	require.NoError(t, err)
	assert.Equal(t, models.Movie{ID: 1, Title: "Parasite", Director: "Bong Joon-ho", Year: 2020}, *updated)

	_, err = m.Update(ctx, 42, models.MoviePatch{Title: "x"})
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.ErrorIs(t, m.Delete(ctx, 42), storage.ErrNotFound)
	count, _ := m.Count(ctx)
	assert.Equal(t, 3, count)
}

func TestMovieModelListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	m := NewMovieModel()
	seed(t, m)

	movies, _ := m.List(ctx)
	movies[0].Title = "changed"

	movie, err := m.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Parasite", movie.Title)
}

func TestMovieModelDirectors(t *testing.T) {
	ctx := context.Background()
	m := NewMovieModel()
	seed(t, m)

	names, err := m.Directors(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bong Joon-ho", "Christopher Nolan"}, names)

	affected, err := m.RenameDirector(ctx, "Christopher Nolan", "C. Nolan")
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)

	movies, _ := m.ListByDirector(ctx, "C. Nolan")
	assert.Len(t, movies, 2)
	bong, _ := m.ListByDirector(ctx, "Bong Joon-ho")
	assert.Len(t, bong, 1)

	affected, err = m.DeleteByDirector(ctx, "C. Nolan")
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)
	count, _ := m.Count(ctx)
	assert.Equal(t, 1, count)

	affected, err = m.DeleteByDirector(ctx, "nobody")
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestUserModelUniqueUsername(t *testing.T) {
	ctx := context.Background()
	m := NewUserModel()

	id, err := m.Insert(ctx, "alice", "digest")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	_, err = m.Insert(ctx, "ALICE", "other")
	assert.ErrorIs(t, err, storage.ErrConflict)
	assert.Equal(t, 1, m.Count())

	user, err := m.GetByUsername(ctx, "Alice")
	require.NoError(t, err)
	assert.Equal(t, "digest", user.PasswordHash)

	_, err = m.GetByUsername(ctx, "bob")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
