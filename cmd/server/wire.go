//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"search-gateway/internal/config"
	jobsearchdomain "search-gateway/internal/domain/jobsearch"
	languagedomain "search-gateway/internal/domain/language"
	"search-gateway/internal/infrastructure/auth"
	"search-gateway/internal/infrastructure/database"
	"search-gateway/internal/infrastructure/logger"
	jobsearchrepo "search-gateway/internal/infrastructure/repository/jobsearch"
	languagerepo "search-gateway/internal/infrastructure/repository/language"
	"search-gateway/internal/infrastructure/upstream/jsearch"
	"search-gateway/internal/infrastructure/upstream/langid"
	"search-gateway/internal/interfaces/httpserver"
)

var jobSearchSet = wire.NewSet(
	jsearch.NewClient,
	wire.Bind(new(jobsearchdomain.Client), new(*jsearch.Client)),
	jobsearchrepo.NewPostgresRepository,
	wire.Bind(new(jobsearchdomain.Repository), new(*jobsearchrepo.PostgresRepository)),
	jobsearchdomain.NewNormalizer,
	jobsearchdomain.NewService,
)

var languageSet = wire.NewSet(
	langid.NewClient,
	wire.Bind(new(languagedomain.Client), new(*langid.Client)),
	languagerepo.NewPostgresRepository,
	wire.Bind(new(languagedomain.Repository), new(*languagerepo.PostgresRepository)),
	languagedomain.NewService,
)

// BuildApplication assembles the gateway with Wire against the PostgreSQL
// result store. The manual wiring in main keeps the in-memory fallback.
func BuildApplication(ctx context.Context) (*Application, error) {
	wire.Build(
		config.Load,
		logger.New,
		newDatabaseConfig,
		newGormDB,
		newAuthValidator,
		jobSearchSet,
		languageSet,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}

func newDatabaseConfig(cfg *config.Config) database.Config {
	return database.Config{
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	}
}

func newGormDB(ctx context.Context, cfg database.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(ctx, db, log); err != nil {
		return nil, err
	}
	return db, nil
}

func newAuthValidator(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*auth.Validator, error) {
	return auth.NewValidator(ctx, cfg, log)
}
