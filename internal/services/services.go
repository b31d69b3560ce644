package services

import (
	"log/slog"

	"moviecatalog/proj/internal/config"
	"moviecatalog/proj/internal/services/auth"
	"moviecatalog/proj/internal/services/directors"
	"moviecatalog/proj/internal/services/movies"
)

// CatalogStorage is the movies table as seen by both catalog services.
type CatalogStorage interface {
	movies.MoviesStorage
	directors.DirectorsStorage
}

type Services struct {
	Auth      *auth.AuthService
	Movies    *movies.MovieService
	Directors *directors.DirectorService
}

func New(log *slog.Logger, cfg *config.Config, catalog CatalogStorage, users auth.UsersStorage) *Services {
	return &Services{
		Auth:      auth.New(log, users, cfg.AppSecret, cfg.TokenTTL, cfg.BcryptCost),
		Movies:    movies.New(log, catalog),
		Directors: directors.New(log, catalog),
	}
}
