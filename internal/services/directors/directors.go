package directors

import (
	"context"
	"log/slog"

	"moviecatalog/proj/internal/domain/models"
)

// DirectorsStorage exposes the director column of the movies table. A director
// exists as long as at least one movie row carries the name.
type DirectorsStorage interface {
	Directors(ctx context.Context) ([]string, error)
	ListByDirector(ctx context.Context, name string) ([]models.Movie, error)
	Insert(ctx context.Context, title, director string, year int32) (*models.Movie, error)
	RenameDirector(ctx context.Context, oldName, newName string) (int64, error)
	DeleteByDirector(ctx context.Context, name string) (int64, error)
}

type DirectorService struct {
	log     *slog.Logger
	storage DirectorsStorage
}

func New(log *slog.Logger, storage DirectorsStorage) *DirectorService {
	return &DirectorService{
		log:     log,
		storage: storage,
	}
}

func (s *DirectorService) List(ctx context.Context) ([]string, error) {
	const op = "directors.DirectorService.List"
	names, err := s.storage.Directors(ctx)
	if err != nil {
		s.log.With("op", op).Error(err.Error())
		return nil, err
	}
	return names, nil
}

func (s *DirectorService) Movies(ctx context.Context, name string) ([]models.Movie, error) {
	const op = "directors.DirectorService.Movies"
	log := s.log.With("op", op, "name", name)
	movies, err := s.storage.ListByDirector(ctx, name)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	if len(movies) == 0 {
		log.Info("director not found")
		return nil, ErrDirectorNotFound
	}
	return movies, nil
}

// Add records a director by inserting one of their movies.
func (s *DirectorService) Add(ctx context.Context, name, title string, year int32) (*models.Movie, error) {
	const op = "directors.DirectorService.Add"
	log := s.log.With("op", op, "name", name, "title", title, "year", year)
	movie, err := s.storage.Insert(ctx, title, name, year)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	log.Info("director added", "movie_id", movie.ID)
	return movie, nil
}

// Rename rewrites every movie row of oldName and returns how many changed.
func (s *DirectorService) Rename(ctx context.Context, oldName, newName string) (int64, error) {
	const op = "directors.DirectorService.Rename"
	log := s.log.With("op", op, "old_name", oldName, "new_name", newName)
	affected, err := s.storage.RenameDirector(ctx, oldName, newName)
	if err != nil {
		log.Error(err.Error())
		return 0, err
	}
	if affected == 0 {
		log.Info("director not found")
		return 0, ErrDirectorNotFound
	}
	return affected, nil
}

// Delete removes the director together with all of their movies.
func (s *DirectorService) Delete(ctx context.Context, name string) (int64, error) {
	const op = "directors.DirectorService.Delete"
	log := s.log.With("op", op, "name", name)
	affected, err := s.storage.DeleteByDirector(ctx, name)
	if err != nil {
		log.Error(err.Error())
		return 0, err
	}
	if affected == 0 {
		log.Info("director not found")
		return 0, ErrDirectorNotFound
	}
	log.Info("director deleted", "movies", affected)
	return affected, nil
}
