package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"linkgate/internal/cache"
	"linkgate/internal/config"
	"linkgate/internal/http/server"
	"linkgate/internal/logger"
	"linkgate/internal/repository/inmemory"
	"linkgate/internal/repository/postgres"
	"linkgate/internal/services/auth"
	"linkgate/internal/services/capture"
	"linkgate/internal/services/console"
	"linkgate/internal/services/links"
)

const shutdownTimeout = 10 * time.Second

// Storage - полный контракт хранилища, который реализуют оба репозитория.
type Storage interface {
	links.LinkStorage
	capture.SubmissionStorage
	console.ConsoleStorage
	auth.OperatorStorage
}

func main() {
	log := logger.NewLogger()
	cfg := config.NewConfig()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var storage Storage
	if cfg.DatabaseDSN != "" {
		pg, err := postgres.NewStorage(ctx, cfg.DatabaseDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to init postgres storage")
		}
		defer pg.Close()
		storage = pg
		log.Info().Msg("using postgres storage")
	} else {
		storage = inmemory.NewStorage()
		log.Warn().Msg("DATABASE_DSN is empty, using in-memory storage")
	}

	var resolveCache cache.Cache
	if cfg.RedisAddr != "" {
		rc, err := cache.NewRedisCache(ctx, cfg.RedisAddr)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to init redis cache")
		}
		resolveCache = rc
		log.Info().Str("addr", cfg.RedisAddr).Msg("using redis resolve cache")
	} else {
		resolveCache = cache.NewMemoryCache()
	}
	defer resolveCache.Close()

	linkService := links.NewServiceLinks(storage, resolveCache)
	recorder := capture.NewRecorder(storage)
	consoleService := console.NewConsole(storage)

	authService, err := auth.NewAuthentication(storage, cfg.JWTSecretKey, cfg.JWTAccessExpire)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init authentication")
	}

	srv, err := server.NewServer(log, *cfg, linkService, recorder, consoleService, authService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init server")
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(ctx)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal().Err(err).Msg("server failed")
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
		}
	}
}
