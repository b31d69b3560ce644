package main

import (
	"context"
	"fmt"
	"log/slog"

	"moviecatalog/proj/internal/config"
	"moviecatalog/proj/internal/services"
	"moviecatalog/proj/internal/services/auth"
	"moviecatalog/proj/internal/storage/memory"
	"moviecatalog/proj/internal/storage/postgres"
	pgmodels "moviecatalog/proj/internal/storage/postgres/models"
	"moviecatalog/proj/internal/storage/sqlite"
)

type appStorage struct {
	catalog services.CatalogStorage
	users   auth.UsersStorage
	close   func() error
}

func openStorage(ctx context.Context, cfg *config.Config, log *slog.Logger) (*appStorage, error) {
	switch cfg.Storage.Driver {
	case config.StorageSQLite:
		s, err := sqlite.New(ctx, log, cfg.Storage.SQLite.Path)
		if err != nil {
			return nil, err
		}
		log.Info("database opened", "driver", config.StorageSQLite, "path", cfg.Storage.SQLite.Path)
		return &appStorage{catalog: s.Movies, users: s.Users, close: s.Close}, nil
	case config.StoragePostgres:
		pgCfg := cfg.Storage.Postgres
		db, err := postgres.New(ctx, pgCfg.Dsn, pgCfg.MaxConns, pgCfg.MaxConnIdleTime)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(ctx, log); err != nil {
			db.Close()
			return nil, err
		}
		log.Info("database connection established", "driver", config.StoragePostgres)
		m := pgmodels.New(db)
		return &appStorage{catalog: m.Movie, users: m.User, close: db.Close}, nil
	case config.StorageMemory:
		log.Warn("using in-memory storage, data is lost on restart")
		return &appStorage{
			catalog: memory.NewMovieModel(),
			users:   memory.NewUserModel(),
			close:   func() error { return nil },
		}, nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}
