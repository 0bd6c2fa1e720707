package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"search-gateway/internal/config"
	jobsearchdomain "search-gateway/internal/domain/jobsearch"
	languagedomain "search-gateway/internal/domain/language"
	"search-gateway/internal/infrastructure/auth"
	"search-gateway/internal/infrastructure/database"
	"search-gateway/internal/infrastructure/logger"
	"search-gateway/internal/infrastructure/observability"
	jobsearchrepo "search-gateway/internal/infrastructure/repository/jobsearch"
	languagerepo "search-gateway/internal/infrastructure/repository/language"
	"search-gateway/internal/infrastructure/upstream/jsearch"
	"search-gateway/internal/infrastructure/upstream/langid"
	"search-gateway/internal/interfaces/httpserver"
)

// @title Search Gateway
// @version 1.0
// @description Server-side gateway for job search and language identification providers
// @BasePath /
type Application struct {
	httpServer *httpserver.HttpServer
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	jobSearchRepository, languageRepository := buildRepositories(ctx, cfg, log)

	authValidator, err := auth.NewValidator(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize auth validator")
	}

	jobSearchService := jobsearchdomain.NewService(
		jsearch.NewClient(cfg, log),
		jobSearchRepository,
		jobsearchdomain.NewNormalizer(log),
		log,
	)
	languageService := languagedomain.NewService(
		langid.NewClient(cfg, log),
		languageRepository,
		log,
	)

	httpServer := httpserver.New(cfg, log, jobSearchService, languageService, authValidator)
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

// buildRepositories selects the result store: PostgreSQL when a DSN is
// configured, in-memory otherwise.
func buildRepositories(ctx context.Context, cfg *config.Config, log zerolog.Logger) (jobsearchdomain.Repository, languagedomain.Repository) {
	if cfg.DatabaseURL == "" {
		log.Warn().Msg("no database DSN configured, using in-memory result store")
		return jobsearchrepo.NewInMemoryRepository(), languagerepo.NewInMemoryRepository()
	}

	db := connectDatabase(ctx, cfg, log)
	return jobsearchrepo.NewPostgresRepository(db), languagerepo.NewPostgresRepository(db)
}

func connectDatabase(ctx context.Context, cfg *config.Config, log zerolog.Logger) *gorm.DB {
	db, err := database.Connect(database.Config{
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	if err := database.AutoMigrate(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}
	return db
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
