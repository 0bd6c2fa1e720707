package language

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "search-gateway/internal/domain/language"
	"search-gateway/internal/infrastructure/database/entities"
	"search-gateway/internal/infrastructure/metrics"
	"search-gateway/internal/platformerrors"
)

// PostgresRepository persists detections via PostgreSQL using GORM.
type PostgresRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*PostgresRepository)(nil)

// NewPostgresRepository creates a repository backed by the provided DB.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Save assigns a fresh identifier and writes one immutable row.
func (r *PostgresRepository) Save(ctx context.Context, detection domain.LanguageDetection) (domain.LanguageDetection, error) {
	detection.ID = uuid.NewString()

	record := entities.LanguageDetection{
		ID:           detection.ID,
		Text:         detection.Text,
		DetectedAt:   detection.DetectedAt,
		Confidence:   detection.Confidence,
		LanguageCode: detection.Language.Code,
		LanguageName: detection.Language.Name,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return domain.LanguageDetection{}, persistence("insert language detection", err)
	}

	metrics.RecordResultPersisted("language_detection")
	return detection, nil
}

// FindByID returns the stored detection or NOT_FOUND.
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (domain.LanguageDetection, error) {
	var record entities.LanguageDetection
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LanguageDetection{}, notFound(id)
		}
		return domain.LanguageDetection{}, persistence("read language detection", err)
	}
	return fromEntity(record), nil
}

// FindAll returns every stored detection, oldest first.
func (r *PostgresRepository) FindAll(ctx context.Context) ([]domain.LanguageDetection, error) {
	var records []entities.LanguageDetection
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&records).Error; err != nil {
		return nil, persistence("list language detections", err)
	}

	detections := make([]domain.LanguageDetection, 0, len(records))
	for _, record := range records {
		detections = append(detections, fromEntity(record))
	}
	return detections, nil
}

func fromEntity(record entities.LanguageDetection) domain.LanguageDetection {
	return domain.LanguageDetection{
		ID:         record.ID,
		Text:       record.Text,
		DetectedAt: record.DetectedAt,
		Confidence: record.Confidence,
		Language: domain.DetectedLanguage{
			Code: record.LanguageCode,
			Name: record.LanguageName,
		},
	}
}

func persistence(message string, err error) *platformerrors.PlatformError {
	return platformerrors.NewError(
		platformerrors.LayerRepository,
		platformerrors.ErrorTypePersistence,
		message,
		err,
	)
}
