package main

import (
	"context"
	"time"

	"github.com/portalops/user-admin-api/internal/api"
	"github.com/portalops/user-admin-api/internal/core/ports"
	"github.com/portalops/user-admin-api/internal/infrastructure/config"
	mongodb "github.com/portalops/user-admin-api/internal/infrastructure/db/mongo"
	redisdb "github.com/portalops/user-admin-api/internal/infrastructure/db/redis"
	"github.com/portalops/user-admin-api/internal/infrastructure/session"
	"github.com/portalops/user-admin-api/pkg/logger"

	goredis "github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Storage bootstrap failures are logged but do not halt the process: the
	// server keeps serving and individual directory operations fail instead.
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Error().Err(err).Msg("mongo bootstrap failed; directory operations may fail")
	}
	if client == nil {
		log.Fatal().Msg("invalid mongo configuration")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Error().Err(err).Msg("index creation failed")
	}
	if err := userRepo.SeedAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password, cfg.Admin.Email); err != nil {
		log.Error().Err(err).Msg("admin seeding failed")
	} else {
		log.Info().Str("username", cfg.Admin.Username).Msg("seed admin ensured")
	}

	var rdb *goredis.Client
	var sessions ports.SessionStore = session.NewMemoryStore()
	if cfg.SessionBackend == "redis" {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Error().Err(err).Msg("redis unavailable; falling back to in-memory sessions")
		} else {
			sessions = session.NewRedisStore(rdb)
			defer func() {
				_ = rdb.Close()
			}()
		}
	}

	e := api.NewRouter(db, rdb, sessions, cfg.StaticDir, log)

	log.Info().
		Str("port", cfg.Port).
		Str("env", cfg.Env).
		Str("session_backend", cfg.SessionBackend).
		Msg("server starting")

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
