package jsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"search-gateway/internal/config"
	domain "search-gateway/internal/domain/jobsearch"
	"search-gateway/internal/infrastructure/metrics"
	"search-gateway/internal/platformerrors"
)

const (
	searchPath   = "/search"
	detailsPath  = "/job-details"
	providerName = "jsearch"
)

// Client calls the job-search provider over HTTP. Single-attempt semantics:
// no retry on any failure class; every call carries a bounded timeout.
type Client struct {
	http *resty.Client
	log  zerolog.Logger
}

var _ domain.Client = (*Client)(nil)

// NewClient wires the resty client with provider auth headers.
func NewClient(cfg *config.Config, log zerolog.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.JSearch.BaseURL).
		SetHeader("X-RapidAPI-Key", cfg.JSearch.APIKey).
		SetHeader("X-RapidAPI-Host", cfg.JSearch.APIHost).
		SetTimeout(cfg.UpstreamTimeout).
		SetRetryCount(0)

	return &Client{
		http: httpClient,
		log:  log.With().Str("component", "jsearch-client").Logger(),
	}
}

// Search issues a single GET against /search and passes 2xx bodies through.
func (c *Client) Search(ctx context.Context, query string, page, numPages int, country string) ([]byte, error) {
	startTime := time.Now()
	status := "success"
	defer func() {
		metrics.RecordProviderRequest("search", providerName, status)
		metrics.RecordProviderLatency(providerName, time.Since(startTime).Seconds())
	}()

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"query":       query,
			"page":        strconv.Itoa(page),
			"num_pages":   strconv.Itoa(numPages),
			"country":     country,
			"date_posted": "all",
		}).
		Get(searchPath)

	if err != nil {
		status = "error"
		c.log.Error().Err(err).Str("path", searchPath).Msg("failed to reach job-search provider")
		return nil, platformerrors.NewError(
			platformerrors.LayerUpstream,
			platformerrors.ErrorTypeUpstreamUnavailable,
			"job-search provider unreachable",
			err,
		)
	}
	if resp.IsError() {
		status = "error"
		c.log.Error().Int("status", resp.StatusCode()).Str("response", resp.String()).Msg("job-search provider error")
		return nil, platformerrors.NewUpstreamError(resp.StatusCode(), resp.String(), "error searching jobs")
	}

	c.log.Debug().Int("bytes", len(resp.Body())).Msg("raw search response received")
	return resp.Body(), nil
}

// Details issues a single GET against /job-details. A 2xx answer with an
// empty data set fails with NOT_FOUND.
func (c *Client) Details(ctx context.Context, jobID string) ([]byte, error) {
	startTime := time.Now()
	status := "success"
	defer func() {
		metrics.RecordProviderRequest("details", providerName, status)
		metrics.RecordProviderLatency(providerName, time.Since(startTime).Seconds())
	}()

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"job_id":  jobID,
			"country": "us",
		}).
		Get(detailsPath)

	if err != nil {
		status = "error"
		c.log.Error().Err(err).Str("job_id", jobID).Msg("failed to reach job-search provider")
		return nil, platformerrors.NewError(
			platformerrors.LayerUpstream,
			platformerrors.ErrorTypeUpstreamUnavailable,
			"job-search provider unreachable",
			err,
		)
	}
	if resp.IsError() {
		status = "error"
		c.log.Error().Int("status", resp.StatusCode()).Str("job_id", jobID).Str("response", resp.String()).Msg("job-search provider error")
		return nil, platformerrors.NewUpstreamError(resp.StatusCode(), resp.String(), "error getting job details")
	}

	var probe struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &probe); err != nil {
		status = "error"
		return nil, platformerrors.NewError(
			platformerrors.LayerUpstream,
			platformerrors.ErrorTypeDeserialization,
			"malformed job details payload",
			err,
		)
	}
	if len(probe.Data) == 0 {
		status = "error"
		return nil, platformerrors.NewError(
			platformerrors.LayerUpstream,
			platformerrors.ErrorTypeNotFound,
			fmt.Sprintf("job details not found for job id %s", jobID),
			nil,
		)
	}

	return resp.Body(), nil
}
