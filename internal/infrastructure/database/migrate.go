package database

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"search-gateway/internal/infrastructure/database/entities"
)

// AutoMigrate applies the result-store schema.
func AutoMigrate(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&entities.JobSearchResult{},
		&entities.LanguageDetection{},
	); err != nil {
		return err
	}
	log.Debug().Msg("result store schema migrated")
	return nil
}
