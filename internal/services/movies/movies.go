package movies

import (
	"context"
	"errors"
	"log/slog"

	"moviecatalog/proj/internal/domain/models"
	"moviecatalog/proj/internal/storage"
)

type MoviesStorage interface {
	List(ctx context.Context) ([]models.Movie, error)
	Get(ctx context.Context, id int64) (*models.Movie, error)
	Insert(ctx context.Context, title, director string, year int32) (*models.Movie, error)
	Update(ctx context.Context, id int64, patch models.MoviePatch) (*models.Movie, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

// SeedMovies is inserted, in order, into an empty catalog on startup.
var SeedMovies = []models.Movie{
	{Title: "Parasite", Director: "Bong Joon-ho", Year: 2019},
	{Title: "The Dark Knight", Director: "Christopher Nolan", Year: 2008},
	{Title: "Man of Steel", Director: "Zack Snyder", Year: 2013},
	{Title: "Superman Returns", Director: "Bryan Singer", Year: 2006},
}

type MovieService struct {
	log     *slog.Logger
	storage MoviesStorage
}

func New(log *slog.Logger, storage MoviesStorage) *MovieService {
	return &MovieService{
		log:     log,
		storage: storage,
	}
}

func (s *MovieService) List(ctx context.Context) ([]models.Movie, error) {
	const op = "movies.MovieService.List"
	movies, err := s.storage.List(ctx)
	if err != nil {
		s.log.With("op", op).Error(err.Error())
		return nil, err
	}
	return movies, nil
}

func (s *MovieService) Get(ctx context.Context, id int64) (*models.Movie, error) {
	const op = "movies.MovieService.Get"
	log := s.log.With("op", op, "id", id)
	movie, err := s.storage.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("movie not found")
			return nil, ErrMovieNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return movie, nil
}

func (s *MovieService) Create(ctx context.Context, title, director string, year int32) (*models.Movie, error) {
	const op = "movies.MovieService.Create"
	log := s.log.With("op", op, "title", title, "director", director, "year", year)
	movie, err := s.storage.Insert(ctx, title, director, year)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	log.Info("movie created", "id", movie.ID)
	return movie, nil
}

// Update applies the non-zero fields of patch in a single store call.
func (s *MovieService) Update(ctx context.Context, id int64, patch models.MoviePatch) (*models.Movie, error) {
	const op = "movies.MovieService.Update"
	log := s.log.With("op", op, "id", id, "title", patch.Title, "director", patch.Director, "year", patch.Year)
	movie, err := s.storage.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("movie not found")
			return nil, ErrMovieNotFound
		}
		log.Error("Error updating movie: " + err.Error())
		return nil, err
	}
	return movie, nil
}

func (s *MovieService) Delete(ctx context.Context, id int64) error {
	const op = "movies.MovieService.Delete"
	log := s.log.With("op", op, "id", id)
	if err := s.storage.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("movie not found")
			return ErrMovieNotFound
		}
		log.Error("Error deleting movie: " + err.Error())
		return err
	}
	return nil
}

func (s *MovieService) Count(ctx context.Context) (int, error) {
	return s.storage.Count(ctx)
}

// SeedIfEmpty inserts SeedMovies when the catalog has no rows and reports how
// many were inserted.
func (s *MovieService) SeedIfEmpty(ctx context.Context) (int, error) {
	const op = "movies.MovieService.SeedIfEmpty"
	log := s.log.With("op", op)
	count, err := s.storage.Count(ctx)
	if err != nil {
		log.Error("Error counting movies: " + err.Error())
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}
	for i, m := range SeedMovies {
		if _, err := s.storage.Insert(ctx, m.Title, m.Director, m.Year); err != nil {
			log.Error("Error seeding movie", "title", m.Title, "errMsg", err.Error())
			return i, err
		}
	}
	log.Info("catalog seeded", "count", len(SeedMovies))
	return len(SeedMovies), nil
}
