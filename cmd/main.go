package main

import (
	"context"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/Keshaini/MEDITRACK-sub000/config"
	"github.com/Keshaini/MEDITRACK-sub000/db"
	assignmenthandler "github.com/Keshaini/MEDITRACK-sub000/internal/assignment/handler"
	assignmentrepo "github.com/Keshaini/MEDITRACK-sub000/internal/assignment/repository/postgres"
	assignmentservice "github.com/Keshaini/MEDITRACK-sub000/internal/assignment/service"
	identitydomain "github.com/Keshaini/MEDITRACK-sub000/internal/identity/domain"
	identityhandler "github.com/Keshaini/MEDITRACK-sub000/internal/identity/handler"
	identityrepo "github.com/Keshaini/MEDITRACK-sub000/internal/identity/repository/postgres"
	identityservice "github.com/Keshaini/MEDITRACK-sub000/internal/identity/service"
	"github.com/Keshaini/MEDITRACK-sub000/internal/logging"
)

func main() {
	ctx := context.Background()
	logger := logging.NewJSON()

	// Load() aborts the process when DB_URL or JWT_SECRET is missing; the
	// service never falls back to a built-in token secret.
	cfg := config.Load()

	if err := db.RunMigrations(ctx, cfg.DBURL); err != nil {
		logger.Error(ctx, "migrations failed", "error", err)
		os.Exit(1)
	}

	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		logger.Error(ctx, "database connection failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	accountRepo := identityrepo.NewPostgresRepository(pool)
	assignmentRepo := assignmentrepo.NewPostgresRepository(pool)

	tokenService := identityservice.NewTokenService(cfg.JWTSecret, cfg.TokenExpiryMin)
	lockoutService := identityservice.NewLockoutService(accountRepo, accountRepo, identitydomain.LockoutPolicy{
		MaxAttempts:    cfg.DefaultMaxFailedAttempts,
		LockoutMinutes: cfg.DefaultLockoutMinutes,
	}, logger)
	accountService := identityservice.NewAccountService(accountRepo, tokenService, lockoutService, logger)
	assignmentService := assignmentservice.NewAssignmentService(assignmentRepo, accountRepo, logger)

	authMiddleware := identityhandler.NewAuthMiddleware(tokenService, accountRepo)
	authHandler := identityhandler.NewAuthHandler(accountService, lockoutService, logger)
	assignmentHandler := assignmenthandler.NewAssignmentHandler(assignmentService, logger)

	app := fiber.New()
	identityhandler.RegisterRoutes(app, authHandler, authMiddleware)
	assignmenthandler.RegisterRoutes(app, assignmentHandler, authMiddleware)

	logger.Info(ctx, "server starting", "port", cfg.Port, "env", cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Error(ctx, "server stopped", "error", err)
		os.Exit(1)
	}
}
