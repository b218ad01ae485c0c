package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/loyalty_token_ledger/internal/adapters/database/leveldb"
	"github.com/SscSPs/loyalty_token_ledger/internal/adapters/database/pgsql"
	"github.com/SscSPs/loyalty_token_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/loyalty_token_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/loyalty_token_ledger/internal/core/services"
	"github.com/SscSPs/loyalty_token_ledger/internal/dto"
	"github.com/SscSPs/loyalty_token_ledger/internal/handlers"
	"github.com/SscSPs/loyalty_token_ledger/internal/metrics"
	"github.com/SscSPs/loyalty_token_ledger/internal/middleware"
	"github.com/SscSPs/loyalty_token_ledger/internal/platform/config"
	"github.com/SscSPs/loyalty_token_ledger/pkg/database"
	"github.com/gin-gonic/gin"
)

// @title Loyalty Token Ledger API
// @version 1.0
// @description Token issuance, balances and escrow claims of the loyalty ledger.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token. Co-signatures go in X-Cosign-Token headers.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store, err := openStore(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("Failed to open ledger store", slog.String("driver", cfg.StorageDriver), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logger.Error("Error closing ledger store", slog.String("error", cerr.Error()))
		}
	}()
	logger.Info("Ledger store ready", slog.String("backend", store.Backend()))

	roles := services.Roles{
		Admin:    domain.Name(cfg.LedgerAdmin),
		Exchange: domain.Name(cfg.LedgerExchange),
	}
	if !roles.Admin.IsValid() || !roles.Exchange.IsValid() {
		logger.Error("Ledger roles must be valid account names",
			slog.String("admin", cfg.LedgerAdmin), slog.String("exchange", cfg.LedgerExchange))
		os.Exit(1)
	}

	version := services.DefaultVersionState(cfg.LedgerVersion)
	logger.Info("Ledger version", slog.String("version", version.Version), slog.String("hash", version.Hash))

	serviceContainer := services.NewServiceContainer(store, roles,
		services.WithMetrics(metrics.NewLedger(store.Backend())),
		services.WithDefaultVersion(version),
	)

	if err := dto.RegisterValidators(); err != nil {
		logger.Error("Failed to register request validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, metrics, CORS, rate limit)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		metrics.HTTPMiddleware(),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.RateLimit(rateLimiter),
	)

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// openStore opens the configured storage backend, running migrations for PostgreSQL.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.LedgerStore, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverPostgres:
		if err := database.RunMigrations(logger, cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			return nil, err
		}
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return nil, err
		}
		return pgsql.NewStore(pool), nil
	default:
		store, err := leveldb.Open(cfg.LevelDBPath)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
}
