package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/campuscore/college_erp_app/internal/core/services"
	"github.com/campuscore/college_erp_app/internal/handlers"
	"github.com/campuscore/college_erp_app/internal/middleware"
	"github.com/campuscore/college_erp_app/internal/platform/config"
	"github.com/campuscore/college_erp_app/internal/repositories/database/pgsql"
	"github.com/campuscore/college_erp_app/pkg/database"
	"github.com/gin-gonic/gin"
)

// The gateway receiver is a separate process from the staff application. It
// listens on its own port, carries no session or JWT state, and exposes only
// the payment notification webhook. It assumes the staff application has
// already migrated the schema.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterWebhookRoutes(r, cfg, serviceContainer.Fee)

	logger.Info("Gateway receiver starting", slog.String("port", cfg.WebhookPort))
	if err := r.Run(":" + cfg.WebhookPort); err != nil {
		logger.Error("Gateway receiver failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
