package main

import (
	"context"
	"log/slog"

	govalidator "github.com/go-playground/validator/v10"

	"moviecatalog/proj/internal/config"
	"moviecatalog/proj/internal/lib/ratelimit"
	"moviecatalog/proj/internal/lib/validator"
	"moviecatalog/proj/internal/services"
)

type Application struct {
	cfg       *config.Config
	log       *slog.Logger
	Http      *Http
	Services  *services.Services
	validator *govalidator.Validate
	// nil when rate limiting is disabled
	limiter     ratelimit.Limiter
	storageName string
}

func NewApplication(
	cfg *config.Config,
	log *slog.Logger,
	services *services.Services,
	limiter ratelimit.Limiter,
	storageName string,
) *Application {
	return &Application{
		cfg:         cfg,
		log:         log,
		validator:   validator.New(),
		Services:    services,
		limiter:     limiter,
		storageName: storageName,
		Http: &Http{
			log: log,
			cfg: cfg,
		},
	}
}

// newLimiter picks the redis backed limiter when an address is configured and
// the in-process one otherwise. The returned close func is never nil.
func newLimiter(ctx context.Context, cfg *config.Config) (ratelimit.Limiter, func() error, error) {
	noop := func() error { return nil }
	if !cfg.Limiter.Enabled {
		return nil, noop, nil
	}
	redisCfg := cfg.Limiter.Redis
	if redisCfg.Addr == "" {
		return ratelimit.NewLocal(cfg.Limiter.Rps, cfg.Limiter.Burst), noop, nil
	}
	rdb, err := ratelimit.NewRedisClient(ctx, redisCfg.Addr, redisCfg.Password, redisCfg.DB)
	if err != nil {
		return nil, noop, err
	}
	return ratelimit.NewRedis(rdb, redisCfg.Prefix, cfg.Limiter.Rps, cfg.Limiter.Burst), rdb.Close, nil
}
