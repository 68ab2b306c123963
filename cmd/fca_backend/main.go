package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	portsrepo "github.com/fieldcollect/field_collections_app/internal/core/ports/repositories"
	"github.com/fieldcollect/field_collections_app/internal/core/services"
	"github.com/fieldcollect/field_collections_app/internal/dto"
	"github.com/fieldcollect/field_collections_app/internal/handlers"
	"github.com/fieldcollect/field_collections_app/internal/middleware"
	"github.com/fieldcollect/field_collections_app/internal/repositories/database/pgsql"
	"github.com/fieldcollect/field_collections_app/internal/repositories/memory"
	"github.com/fieldcollect/field_collections_app/pkg/config"
	"github.com/fieldcollect/field_collections_app/pkg/database"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos, err := buildRepositoryProvider(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage backend", slog.String("backend", cfg.StorageBackend), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if repos.Closer == nil {
			return
		}
		if cerr := repos.Closer(context.Background()); cerr != nil {
			logger.Error("Error closing storage backend", slog.String("error", cerr.Error()))
		}
	}()

	serviceContainer := services.NewServiceContainer(repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	dto.RegisterValidators()

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("backend", cfg.StorageBackend))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildRepositoryProvider selects and initializes the configured storage
// backend. The memory backend is self-contained; the postgres backend opens a
// pool and applies pending migrations first.
func buildRepositoryProvider(cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, error) {
	if cfg.StorageBackend == config.BackendMemory {
		logger.Info("Using in-memory storage backend", slog.String("snapshot_path", cfg.SnapshotPath))
		return memory.NewRepositoryProvider(cfg.SnapshotPath, cfg.SnapshotDebounce, logger), nil
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return portsrepo.RepositoryProvider{}, err
	}

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		dbPool.Close()
		return portsrepo.RepositoryProvider{}, err
	}

	provider := pgsql.NewRepositoryProvider(dbPool)
	provider.Closer = func(context.Context) error {
		dbPool.Close()
		return nil
	}
	return provider, nil
}

// runMigrations applies all pending "up" migrations using a temporary
// database/sql connection over the pgx stdlib driver.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
