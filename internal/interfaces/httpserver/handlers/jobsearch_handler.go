package handlers

import (
	"context"

	domain "search-gateway/internal/domain/jobsearch"
)

// JobSearchHandler invokes domain logic for job search use cases.
type JobSearchHandler struct {
	service domain.Service
}

// NewJobSearchHandler wires dependencies for job search routes.
func NewJobSearchHandler(service domain.Service) *JobSearchHandler {
	return &JobSearchHandler{
		service: service,
	}
}

// Search executes the search-and-store use case.
func (h *JobSearchHandler) Search(ctx context.Context, req domain.SearchRequest) (domain.JobSearchResult, error) {
	return h.service.Search(ctx, req)
}

// JobDetails fetches a single job record by provider id.
func (h *JobSearchHandler) JobDetails(ctx context.Context, jobID string) (domain.Job, error) {
	return h.service.JobDetails(ctx, jobID)
}

// GetByID fetches a stored search result.
func (h *JobSearchHandler) GetByID(ctx context.Context, id string) (domain.JobSearchResult, error) {
	return h.service.GetByID(ctx, id)
}

// GetAll lists every stored search result.
func (h *JobSearchHandler) GetAll(ctx context.Context) ([]domain.JobSearchResult, error) {
	return h.service.GetAll(ctx)
}

// DeleteByID removes a stored search result.
func (h *JobSearchHandler) DeleteByID(ctx context.Context, id string) error {
	return h.service.DeleteByID(ctx, id)
}
