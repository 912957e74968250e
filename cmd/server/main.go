package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/planisoins/planning-api/internal/api"
	"github.com/planisoins/planning-api/internal/infrastructure/config"
	"github.com/planisoins/planning-api/internal/infrastructure/db/postgres"
	"github.com/planisoins/planning-api/internal/infrastructure/db/redis"
	"github.com/planisoins/planning-api/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logger.Init(logger.Options{})
		fallback.Fatal().Err(err).Msg("loading configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Development(),
	})

	pool, err := postgres.Connect(ctx, postgres.Config{URL: cfg.Postgres.URL})
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("applying schema")
	}

	if cfg.AdminPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hashing admin password")
		}
		if err := postgres.SeedAdmin(ctx, pool, string(hash)); err != nil {
			log.Fatal().Err(err).Msg("seeding admin account")
		}
	}

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to redis")
	}
	defer rdb.Close()
	log.Info().Msg("connected to redis")

	e := api.NewRouter(pool, rdb, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting http server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown")
	}
}
