package jobsearch

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "search-gateway/internal/domain/jobsearch"
	"search-gateway/internal/infrastructure/database/entities"
	"search-gateway/internal/infrastructure/metrics"
	"search-gateway/internal/platformerrors"
)

// PostgresRepository persists search results via PostgreSQL using GORM. Jobs
// and metadata are stored as jsonb documents.
type PostgresRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*PostgresRepository)(nil)

// NewPostgresRepository creates a repository backed by the provided DB.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Save assigns a fresh identifier and writes one immutable row.
func (r *PostgresRepository) Save(ctx context.Context, result domain.JobSearchResult) (domain.JobSearchResult, error) {
	result.ID = uuid.NewString()

	record, err := toEntity(result)
	if err != nil {
		return domain.JobSearchResult{}, persistence("encode search result", err)
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return domain.JobSearchResult{}, persistence("insert search result", err)
	}

	metrics.RecordResultPersisted("job_search_result")
	return result, nil
}

// FindByID returns the stored result or NOT_FOUND.
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (domain.JobSearchResult, error) {
	var record entities.JobSearchResult
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.JobSearchResult{}, notFound(id)
		}
		return domain.JobSearchResult{}, persistence("read search result", err)
	}
	return fromEntity(record)
}

// FindAll returns every stored result, oldest first.
func (r *PostgresRepository) FindAll(ctx context.Context) ([]domain.JobSearchResult, error) {
	var records []entities.JobSearchResult
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&records).Error; err != nil {
		return nil, persistence("list search results", err)
	}

	results := make([]domain.JobSearchResult, 0, len(records))
	for _, record := range records {
		result, err := fromEntity(record)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// DeleteByID removes the stored result or reports NOT_FOUND.
func (r *PostgresRepository) DeleteByID(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&entities.JobSearchResult{}, "id = ?", id)
	if res.Error != nil {
		return persistence("delete search result", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound(id)
	}
	return nil
}

func toEntity(result domain.JobSearchResult) (entities.JobSearchResult, error) {
	jobs, err := json.Marshal(result.Jobs)
	if err != nil {
		return entities.JobSearchResult{}, err
	}
	var metadata entities.JSONB
	if result.Metadata != nil {
		metadata, err = json.Marshal(result.Metadata)
		if err != nil {
			return entities.JobSearchResult{}, err
		}
	}
	return entities.JobSearchResult{
		ID:             result.ID,
		Query:          result.Query,
		Location:       result.Location,
		Page:           result.Page,
		ResultsPerPage: result.ResultsPerPage,
		SearchedAt:     result.SearchedAt,
		Jobs:           jobs,
		Metadata:       metadata,
	}, nil
}

func fromEntity(record entities.JobSearchResult) (domain.JobSearchResult, error) {
	result := domain.JobSearchResult{
		ID:             record.ID,
		Query:          record.Query,
		Location:       record.Location,
		Page:           record.Page,
		ResultsPerPage: record.ResultsPerPage,
		SearchedAt:     record.SearchedAt,
	}
	if err := json.Unmarshal(record.Jobs, &result.Jobs); err != nil {
		return domain.JobSearchResult{}, persistence("decode stored jobs", err)
	}
	if len(record.Metadata) > 0 {
		if err := json.Unmarshal(record.Metadata, &result.Metadata); err != nil {
			return domain.JobSearchResult{}, persistence("decode stored metadata", err)
		}
	}
	return result, nil
}

func persistence(message string, err error) *platformerrors.PlatformError {
	return platformerrors.NewError(
		platformerrors.LayerRepository,
		platformerrors.ErrorTypePersistence,
		message,
		err,
	)
}
