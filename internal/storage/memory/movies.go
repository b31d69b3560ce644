package memory

import (
	"context"
	"slices"
	"sync"

	"moviecatalog/proj/internal/domain/models"
	"moviecatalog/proj/internal/storage"
)

// MovieModel keeps movies ordered by id. Ids come from a counter and are
// never reused after deletes.
type MovieModel struct {
	mu     sync.RWMutex
	movies []models.Movie
	lastID int64
}

func NewMovieModel() *MovieModel {
	return &MovieModel{}
}

func (m *MovieModel) List(_ context.Context) ([]models.Movie, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append(make([]models.Movie, 0, len(m.movies)), m.movies...), nil
}

func (m *MovieModel) Get(_ context.Context, id int64) (*models.Movie, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i, ok := m.indexOf(id)
	if !ok {
		return nil, storage.ErrNotFound
	}
	movie := m.movies[i]
	return &movie, nil
}

func (m *MovieModel) Insert(_ context.Context, title, director string, year int32) (*models.Movie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastID++
	movie := models.Movie{ID: m.lastID, Title: title, Director: director, Year: year}
	m.movies = append(m.movies, movie)
	return &movie, nil
}

func (m *MovieModel) Update(_ context.Context, id int64, patch models.MoviePatch) (*models.Movie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, ok := m.indexOf(id)
	if !ok {
		return nil, storage.ErrNotFound
	}
	patch.Apply(&m.movies[i])
	movie := m.movies[i]
	return &movie, nil
}

func (m *MovieModel) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, ok := m.indexOf(id)
	if !ok {
		return storage.ErrNotFound
	}
	m.movies = slices.Delete(m.movies, i, i+1)
	return nil
}

func (m *MovieModel) Count(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.movies), nil
}

func (m *MovieModel) Directors(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.movies))
	for _, movie := range m.movies {
		names = append(names, movie.Director)
	}
	slices.Sort(names)
	return slices.Compact(names), nil
}

func (m *MovieModel) ListByDirector(_ context.Context, name string) ([]models.Movie, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	movies := make([]models.Movie, 0)
	for _, movie := range m.movies {
		if movie.Director == name {
			movies = append(movies, movie)
		}
	}
	return movies, nil
}

func (m *MovieModel) RenameDirector(_ context.Context, oldName, newName string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var affected int64
	for i := range m.movies {
		if m.movies[i].Director == oldName {
			m.movies[i].Director = newName
			affected++
		}
	}
	return affected, nil
}

func (m *MovieModel) DeleteByDirector(_ context.Context, name string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	before := len(m.movies)
	m.movies = slices.DeleteFunc(m.movies, func(movie models.Movie) bool {
		return movie.Director == name
	})
	return int64(before - len(m.movies)), nil
}

// indexOf relies on movies being sorted by id.
func (m *MovieModel) indexOf(id int64) (int, bool) {
	return slices.BinarySearchFunc(m.movies, id, func(movie models.Movie, id int64) int {
		switch {
		case movie.ID < id:
			return -1
		case movie.ID > id:
			return 1
		}
		return 0
	})
}
