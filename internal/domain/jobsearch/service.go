package jobsearch

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"search-gateway/internal/platformerrors"
)

// maxResultPages bounds the num_pages value sent upstream to keep response
// sizes in check. Not configurable per call.
const maxResultPages = 5

// Service sequences gateway call, normalization and persistence as one
// logical search operation.
type Service interface {
	Search(ctx context.Context, req SearchRequest) (JobSearchResult, error)
	JobDetails(ctx context.Context, jobID string) (Job, error)
	GetByID(ctx context.Context, id string) (JobSearchResult, error)
	GetAll(ctx context.Context) ([]JobSearchResult, error)
	DeleteByID(ctx context.Context, id string) error
}

type service struct {
	client     Client
	repo       Repository
	normalizer *Normalizer
	log        zerolog.Logger
}

// NewService wires the job search service with its collaborators.
func NewService(client Client, repo Repository, normalizer *Normalizer, log zerolog.Logger) Service {
	return &service{
		client:     client,
		repo:       repo,
		normalizer: normalizer,
		log:        log.With().Str("component", "jobsearch-service").Logger(),
	}
}

// Search calls the provider, normalizes the payload and persists the result.
// Stages run strictly in order: normalize before persist, persist before
// respond. An empty upstream result set never reaches the store.
func (s *service) Search(ctx context.Context, req SearchRequest) (JobSearchResult, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	numPages := req.ResultsPerPage
	if numPages < 1 {
		numPages = 1
	}
	if numPages > maxResultPages {
		numPages = maxResultPages
	}
	country := InferCountry(req.Location)

	s.log.Info().
		Str("query", req.Query).
		Str("location", req.Location).
		Str("country", country).
		Int("page", req.Page).
		Int("num_pages", numPages).
		Msg("searching jobs")

	raw, err := s.client.Search(ctx, req.Query, req.Page, numPages, country)
	if err != nil {
		return JobSearchResult{}, platformerrors.AsError(platformerrors.LayerDomain, err, "search jobs upstream")
	}

	result, err := s.normalizer.Normalize(raw, req, numPages)
	if err != nil {
		if platformerrors.IsErrorType(err, platformerrors.ErrorTypeEmptyResult) {
			return JobSearchResult{}, platformerrors.NewError(
				platformerrors.LayerDomain,
				platformerrors.ErrorTypeNotFound,
				"no jobs found matching the criteria",
				err,
			)
		}
		return JobSearchResult{}, platformerrors.AsError(platformerrors.LayerDomain, err, "normalize search payload")
	}

	stored, err := s.repo.Save(ctx, result)
	if err != nil {
		return JobSearchResult{}, platformerrors.NewError(
			platformerrors.LayerDomain,
			platformerrors.ErrorTypePersistence,
			"persist search result",
			err,
		)
	}

	s.log.Info().
		Str("result_id", stored.ID).
		Int("jobs", len(stored.Jobs)).
		Msg("search result persisted")
	return stored, nil
}

// JobDetails fetches one job record by provider id.
func (s *service) JobDetails(ctx context.Context, jobID string) (Job, error) {
	s.log.Info().Str("job_id", jobID).Msg("fetching job details")

	raw, err := s.client.Details(ctx, jobID)
	if err != nil {
		return Job{}, platformerrors.AsError(platformerrors.LayerDomain, err, fmt.Sprintf("job details for %s", jobID))
	}
	return s.normalizer.FirstJob(raw)
}

func (s *service) GetByID(ctx context.Context, id string) (JobSearchResult, error) {
	result, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return JobSearchResult{}, platformerrors.AsError(platformerrors.LayerDomain, err, "get search result")
	}
	return result, nil
}

func (s *service) GetAll(ctx context.Context) ([]JobSearchResult, error) {
	results, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, platformerrors.AsError(platformerrors.LayerDomain, err, "list search results")
	}
	return results, nil
}

func (s *service) DeleteByID(ctx context.Context, id string) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return platformerrors.AsError(platformerrors.LayerDomain, err, "delete search result")
	}
	s.log.Info().Str("result_id", id).Msg("search result deleted")
	return nil
}
