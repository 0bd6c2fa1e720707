package langid

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"search-gateway/internal/config"
	domain "search-gateway/internal/domain/language"
	"search-gateway/internal/infrastructure/metrics"
	"search-gateway/internal/platformerrors"
)

const (
	identifyPath = "/languageIdentify"
	providerName = "language-identify"
)

// Client calls the language-identification provider over HTTP. No retry; a
// missing provider configuration is reported before any network call.
type Client struct {
	cfg  config.LanguageIdentifyConfig
	http *resty.Client
	log  zerolog.Logger
}

var _ domain.Client = (*Client)(nil)

// NewClient wires the resty client. The provider block may legitimately be
// absent; Detect refuses to call out in that case.
func NewClient(cfg *config.Config, log zerolog.Logger) *Client {
	httpClient := resty.New().
		SetTimeout(cfg.UpstreamTimeout).
		SetRetryCount(0)

	if cfg.LanguageIdentify.Configured() {
		httpClient.
			SetBaseURL(cfg.LanguageIdentify.BaseURL).
			SetHeader("X-RapidAPI-Key", cfg.LanguageIdentify.APIKey)
		if cfg.LanguageIdentify.APIHost != "" {
			httpClient.SetHeader("X-RapidAPI-Host", cfg.LanguageIdentify.APIHost)
		}
	}

	return &Client{
		cfg:  cfg.LanguageIdentify,
		http: httpClient,
		log:  log.With().Str("component", "langid-client").Logger(),
	}
}

// Detect issues a single POST with the JSON body {"text": ...}.
func (c *Client) Detect(ctx context.Context, text string) ([]byte, error) {
	if !c.cfg.Configured() {
		return nil, platformerrors.NewError(
			platformerrors.LayerUpstream,
			platformerrors.ErrorTypeConfiguration,
			"language identification configuration is missing",
			nil,
		)
	}

	startTime := time.Now()
	status := "success"
	defer func() {
		metrics.RecordProviderRequest("detect", providerName, status)
		metrics.RecordProviderLatency(providerName, time.Since(startTime).Seconds())
	}()

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"text": text}).
		Post(identifyPath)

	if err != nil {
		status = "error"
		c.log.Error().Err(err).Str("path", identifyPath).Msg("failed to reach language provider")
		return nil, platformerrors.NewError(
			platformerrors.LayerUpstream,
			platformerrors.ErrorTypeUpstreamUnavailable,
			"language provider unreachable",
			err,
		)
	}
	if resp.IsError() {
		status = "error"
		c.log.Error().Int("status", resp.StatusCode()).Str("response", resp.String()).Msg("language provider error")
		return nil, platformerrors.NewUpstreamError(resp.StatusCode(), resp.String(), "error detecting language")
	}

	return resp.Body(), nil
}
