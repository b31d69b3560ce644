package directors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviecatalog/proj/internal/lib/logger/handlers/slogdiscard"
	"moviecatalog/proj/internal/storage/memory"
)

func newTestService(t *testing.T) (*DirectorService, *memory.MovieModel) {
	t.Helper()
	store := memory.NewMovieModel()
	ctx := context.Background()
	for _, m := range []struct {
		title, director string
		year            int32
	}{
		{"Parasite", "Bong Joon-ho", 2019},
		{"The Dark Knight", "Christopher Nolan", 2008},
		{"Inception", "Christopher Nolan", 2010},
		{"Man of Steel", "Zack Snyder", 2013},
	} {
		_, err := store.Insert(ctx, m.title, m.director, m.year)
		require.NoError(t, err)
	}
	return New(slogdiscard.NewDiscardLogger(), store), store
}

func TestList(t *testing.T) {
	svc, _ := newTestService(t)
	names, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Bong Joon-ho", "Christopher Nolan", "Zack Snyder"}, names)
}

func TestMovies(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	movies, err := svc.Movies(ctx, "Christopher Nolan")
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, "The Dark Knight", movies[0].Title)
	assert.Equal(t, "Inception", movies[1].Title)

	_, err = svc.Movies(ctx, "Greta Gerwig")
	assert.ErrorIs(t, err, ErrDirectorNotFound)
}

func TestAdd(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	movie, err := svc.Add(ctx, "Greta Gerwig", "Lady Bird", 2017)
	require.NoError(t, err)
	assert.Equal(t, "Greta Gerwig", movie.Director)

	movies, err := svc.Movies(ctx, "Greta Gerwig")
	require.NoError(t, err)
	assert.Len(t, movies, 1)
}

func TestRenameTouchesOnlyMatchingRows(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	before, err := store.List(ctx)
	require.NoError(t, err)

	affected, err := svc.Rename(ctx, "Christopher Nolan", "C. Nolan")
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)

	after, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before))
	for i := range before {
		if before[i].Director == "Christopher Nolan" {
			assert.Equal(t, "C. Nolan", after[i].Director)
			before[i].Director = "C. Nolan"
		}
		assert.Equal(t, before[i], after[i])
	}

	_, err = svc.Rename(ctx, "Christopher Nolan", "Someone")
	assert.ErrorIs(t, err, ErrDirectorNotFound)
}

func TestDeleteCascadesToMovies(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	deleted, err := svc.Delete(ctx, "Christopher Nolan")
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	_, err = svc.Delete(ctx, "Christopher Nolan")
	assert.ErrorIs(t, err, ErrDirectorNotFound)
}
