package jobsearch

import "context"

// Repository exposes the result-store contract for job search results.
// Save assigns a fresh identifier; absence surfaces as a NOT_FOUND platform
// error and store failures as PERSISTENCE.
type Repository interface {
	Save(ctx context.Context, result JobSearchResult) (JobSearchResult, error)
	FindByID(ctx context.Context, id string) (JobSearchResult, error)
	FindAll(ctx context.Context) ([]JobSearchResult, error)
	DeleteByID(ctx context.Context, id string) error
}
