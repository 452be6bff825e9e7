package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gowheels/account-service/internal/api"
	"github.com/gowheels/account-service/internal/core/service"
	"github.com/gowheels/account-service/internal/infrastructure/config"
	mongodb "github.com/gowheels/account-service/internal/infrastructure/db/mongo"
	redisdb "github.com/gowheels/account-service/internal/infrastructure/db/redis"
	s3store "github.com/gowheels/account-service/internal/infrastructure/storage/s3"
	"github.com/gowheels/account-service/pkg/logger"
)

// @title        Account Service API
// @version      1.0
// @description  User accounts: registration, token auth, and role-gated CRUD.
// @BasePath     /
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	media, err := s3store.NewMediaStore(ctx, cfg.Media)
	if err != nil {
		log.Fatal().Err(err).Msg("media store init failed")
	}

	// --- Core wiring ---
	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("mongo index creation failed")
	}

	userCache := redisdb.NewUserCache(rdb, log)
	hasher := service.NewHasher(cfg.BcryptCost)
	validator := service.NewCredentialValidator(userRepo)
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.AccessTokenDays, cfg.RefreshTokenDays)
	authService := service.NewAuthService(userRepo, validator, hasher, tokens, log)
	userService := service.NewUserService(userRepo, validator, hasher, media, userCache, log)

	// Idempotent bootstrap: conflicts with an already-seeded admin are logged
	// and ignored inside EnsureAdmin.
	if err := service.EnsureAdmin(ctx, userRepo, hasher, service.AdminSeed{
		Username: cfg.Admin.Username,
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
	}, log); err != nil {
		log.Error().Err(err).Msg("admin seeding failed")
	}

	e := api.NewRouter(api.Deps{
		AuthService: authService,
		UserService: userService,
		Tokens:      tokens,
		Mongo:       db,
		Redis:       rdb,
		Logger:      log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
