package jobsearch

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	domain "search-gateway/internal/domain/jobsearch"
	"search-gateway/internal/infrastructure/metrics"
	"search-gateway/internal/platformerrors"
)

// InMemoryRepository is a thread-safe result store useful for demos/tests.
// Concurrent saves each get a distinct identifier; reads after a completed
// write always observe it.
type InMemoryRepository struct {
	mu      sync.RWMutex
	entries map[string]domain.JobSearchResult
}

var _ domain.Repository = (*InMemoryRepository)(nil)

// NewInMemoryRepository builds an empty store.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		entries: make(map[string]domain.JobSearchResult),
	}
}

// Save assigns a fresh identifier and stores the result.
func (r *InMemoryRepository) Save(ctx context.Context, result domain.JobSearchResult) (domain.JobSearchResult, error) {
	result.ID = uuid.NewString()

	r.mu.Lock()
	r.entries[result.ID] = result
	r.mu.Unlock()

	metrics.RecordResultPersisted("job_search_result")
	return result, nil
}

// FindByID returns the stored result or NOT_FOUND.
func (r *InMemoryRepository) FindByID(ctx context.Context, id string) (domain.JobSearchResult, error) {
	r.mu.RLock()
	result, ok := r.entries[id]
	r.mu.RUnlock()

	if !ok {
		return domain.JobSearchResult{}, notFound(id)
	}
	return result, nil
}

// FindAll returns every stored result.
func (r *InMemoryRepository) FindAll(ctx context.Context) ([]domain.JobSearchResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]domain.JobSearchResult, 0, len(r.entries))
	for _, result := range r.entries {
		results = append(results, result)
	}
	return results, nil
}

// DeleteByID removes the stored result or reports NOT_FOUND.
func (r *InMemoryRepository) DeleteByID(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; !ok {
		return notFound(id)
	}
	delete(r.entries, id)
	return nil
}

func notFound(id string) *platformerrors.PlatformError {
	return platformerrors.NewError(
		platformerrors.LayerRepository,
		platformerrors.ErrorTypeNotFound,
		fmt.Sprintf("job search result not found with id %s", id),
		nil,
	)
}
