package main

import (
	"context"
	"errors"
	"net/http"

	_ "github.com/door2door/taskmarket-api/docs"
	"github.com/door2door/taskmarket-api/internal/api"
	"github.com/door2door/taskmarket-api/internal/infrastructure/db/mongo"
	"github.com/door2door/taskmarket-api/internal/infrastructure/db/redis"
	"github.com/door2door/taskmarket-api/internal/pkg/config"
	"github.com/door2door/taskmarket-api/pkg/logger"
)

// @title           Task Marketplace API
// @version         1.0
// @description     API for creating, browsing, and assigning paid tasks.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := mongo.NewTaskRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("task index creation failed")
	}
	if err := mongo.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	e := api.NewRouter(db, rdb, cfg.JWTSecret, log)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
