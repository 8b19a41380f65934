package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/bank_account_kata/internal/adapters/memory"
	"github.com/SscSPs/bank_account_kata/internal/adapters/statement"
	portsrepo "github.com/SscSPs/bank_account_kata/internal/core/ports/repositories"
	"github.com/SscSPs/bank_account_kata/internal/core/services"
	"github.com/SscSPs/bank_account_kata/internal/handlers"
	"github.com/SscSPs/bank_account_kata/internal/middleware"
	"github.com/SscSPs/bank_account_kata/internal/platform/config"
)

// @title Bank Account API
// @version 1.0
// @description In-memory bank accounts with deposits, withdrawals, transfers and statements.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger; the level is applied once config is loaded
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	level.Set(cfg.LogLevel)

	repos := &portsrepo.RepositoryProvider{
		AccountRepo: memory.NewAccountRepository(),
	}
	writer := statement.NewLogWriter(logger, cfg.StatementPrecision)
	serviceContainer := services.NewContainer(repos, writer)

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.RateLimit(rateLimiter),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
