package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"moviecatalog/proj/internal/config"
	"moviecatalog/proj/internal/lib/logger"
	"moviecatalog/proj/internal/services"
)

const version = "1.0.0"

func main() {
	defaultCfgPath := os.Getenv("CONFIG_PATH")
	if defaultCfgPath == "" {
		defaultCfgPath = "config/local.yml"
	}
	cfgPath := flag.String("config", defaultCfgPath, "path to config file")
	flag.Parse()

	cfg := config.MustLoad(*cfgPath)
	log := logger.SetupLogger(cfg.Debug)
	if err := run(cfg, log); err != nil {
		log.Error("shutting down the server", "reason", err.Error())
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	storage, err := openStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer storage.close()

	svcs := services.New(log, cfg, storage.catalog, storage.users)
	if _, err := svcs.Movies.SeedIfEmpty(ctx); err != nil {
		return err
	}

	limiter, closeLimiter, err := newLimiter(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeLimiter()

	app := NewApplication(cfg, log, svcs, limiter, cfg.Storage.Driver)
	return app.serve()
}
