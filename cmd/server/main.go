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

	"github.com/khulna-traveller/travel-api/internal/api"
	"github.com/khulna-traveller/travel-api/internal/core/service"
	"github.com/khulna-traveller/travel-api/internal/infrastructure/config"
	mongodb "github.com/khulna-traveller/travel-api/internal/infrastructure/db/mongo"
	redisdb "github.com/khulna-traveller/travel-api/internal/infrastructure/db/redis"
	"github.com/khulna-traveller/travel-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        Khulna Traveller API
// @version      1.0
// @description  CRUD backend for the Khulna Traveller site: users, banners, plans, team, gallery.
// @BasePath     /
func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		l := logger.Get()
		l.Fatal().Err(err).Msg("configuration error")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// The store connection is the process's single managed handle: opened
	// once here, passed down by reference, torn down on shutdown.
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("document store unreachable")
	}

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("could not ensure user indexes")
	}

	// Redis backs the login throttle and the readiness probe. It is not a
	// hard dependency: without it logins are simply unthrottled.
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, login throttle disabled")
		rdb = nil
	}

	deps := api.Dependencies{
		Log:         log,
		Codec:       service.NewTokenCodec(cfg.Token.Secret, cfg.Token.TTL),
		TokenTTL:    cfg.Token.TTL,
		Users:       service.NewUserService(userRepo, log),
		Banners:     service.NewContentService("banner", mongodb.NewContentRepository(db, mongodb.BannerCollection), log),
		Plans:       service.NewContentService("latestPlan", mongodb.NewContentRepository(db, mongodb.PlanCollection), log),
		Team:        service.NewContentService("them", mongodb.NewContentRepository(db, mongodb.TeamCollection), log),
		Gallery:     service.NewContentService("gallery", mongodb.NewContentRepository(db, mongodb.GalleryCollection), log),
		CORSOrigins: cfg.CORSOrigins,
		Mongo:       db,
		Redis:       rdb,
	}
	if rdb != nil {
		deps.Limiter = redisdb.NewLoginLimiter(rdb, 0, 0)
	}

	e := api.NewRouter(deps)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close")
		}
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongo disconnect")
	}
}
