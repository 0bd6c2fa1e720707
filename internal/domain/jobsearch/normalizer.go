package jobsearch

import (
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"search-gateway/internal/platformerrors"
)

// providerResponse tolerates both response shapes served by the provider:
// {data, meta} and {status, request_id, parameters, data}. Optional fields are
// simply absent, never an error.
type providerResponse struct {
	Status     string              `json:"status"`
	RequestID  string              `json:"request_id"`
	Parameters *providerParameters `json:"parameters"`
	Data       []providerJob       `json:"data"`
	Meta       *providerMeta       `json:"meta"`
}

type providerParameters struct {
	Query   string `json:"query"`
	Page    int    `json:"page"`
	Country string `json:"country"`
}

type providerMeta struct {
	Total   int `json:"total"`
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

type providerJob struct {
	JobID          string   `json:"job_id"`
	Title          string   `json:"title"`
	EmployerName   string   `json:"employer_name"`
	Location       string   `json:"location"`
	JobType        string   `json:"job_type"`
	JobDescription string   `json:"job_description"`
	JobApplyLink   string   `json:"job_apply_link"`
	JobPostedAt    string   `json:"job_posted_at_datetime_utc"`
	RequiredSkills []string `json:"job_required_skills"`
}

var postedAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Normalizer converts the provider's raw payload into the canonical
// JobSearchResult. Deterministic and side-effect free apart from logging.
type Normalizer struct {
	log zerolog.Logger
}

// NewNormalizer wires the normalizer with its logger.
func NewNormalizer(log zerolog.Logger) *Normalizer {
	return &Normalizer{
		log: log.With().Str("component", "jobsearch-normalizer").Logger(),
	}
}

// Normalize maps a raw search payload onto a JobSearchResult. An undecodable
// payload yields DESERIALIZATION; an absent or empty job list yields
// EMPTY_RESULT. Partial field defects (bad timestamps, missing metadata) are
// absorbed and never abort the normalization.
func (n *Normalizer) Normalize(raw []byte, req SearchRequest, resultsPerPage int) (JobSearchResult, error) {
	var payload providerResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return JobSearchResult{}, platformerrors.NewError(
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeDeserialization,
			"malformed job search payload",
			err,
		)
	}

	if len(payload.Data) == 0 {
		return JobSearchResult{}, platformerrors.NewError(
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeEmptyResult,
			"no jobs found matching the criteria",
			nil,
		)
	}

	jobs := make([]Job, 0, len(payload.Data))
	for _, record := range payload.Data {
		jobs = append(jobs, n.normalizeJob(record))
	}

	return JobSearchResult{
		Query:          req.Query,
		Location:       req.Location,
		Page:           req.Page,
		ResultsPerPage: resultsPerPage,
		SearchedAt:     time.Now().UTC(),
		Jobs:           jobs,
		Metadata:       buildMetadata(payload, len(raw)),
	}, nil
}

// FirstJob extracts the first job record from a raw details payload.
func (n *Normalizer) FirstJob(raw []byte) (Job, error) {
	var payload providerResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return Job{}, platformerrors.NewError(
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeDeserialization,
			"malformed job details payload",
			err,
		)
	}
	if len(payload.Data) == 0 {
		return Job{}, platformerrors.NewError(
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeNotFound,
			"job details not found",
			nil,
		)
	}
	return n.normalizeJob(payload.Data[0]), nil
}

func (n *Normalizer) normalizeJob(record providerJob) Job {
	return Job{
		JobID:          record.JobID,
		Title:          record.Title,
		CompanyName:    record.EmployerName,
		Location:       record.Location,
		JobType:        record.JobType,
		Description:    record.JobDescription,
		ApplyLink:      record.JobApplyLink,
		PostedAt:       n.parsePostedAt(record.JobPostedAt),
		RequiredSkills: record.RequiredSkills,
	}
}

// parsePostedAt tolerates garbled timestamps: a value that fails every known
// layout yields nil, never an error.
func (n *Normalizer) parsePostedAt(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range postedAtLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return &ts
		}
	}
	n.log.Warn().Str("posted_at", value).Msg("unparsable posted-at timestamp, keeping job without it")
	return nil
}

// buildMetadata collects whatever provider status/request-id/pagination fields
// are present. Absent fields are omitted, never defaulted to sentinels.
func buildMetadata(payload providerResponse, responseSize int) map[string]any {
	metadata := map[string]any{
		"totalResults":      len(payload.Data),
		"responseSizeBytes": responseSize,
	}
	if payload.Status != "" {
		metadata["status"] = payload.Status
	}
	if payload.RequestID != "" {
		metadata["requestId"] = payload.RequestID
	}
	if payload.Parameters != nil {
		metadata["searchQuery"] = payload.Parameters.Query
		metadata["searchPage"] = payload.Parameters.Page
		metadata["searchCountry"] = payload.Parameters.Country
	}
	if payload.Meta != nil {
		metadata["total"] = payload.Meta.Total
		metadata["page"] = payload.Meta.Page
		metadata["perPage"] = payload.Meta.PerPage
	}
	return metadata
}
