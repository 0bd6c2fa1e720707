package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// JSearchConfig holds the job-search provider settings. Authentication is
// attached via the RapidAPI key/host headers.
type JSearchConfig struct {
	BaseURL string `env:"JSEARCH_BASE_URL" envDefault:"https://jsearch.p.rapidapi.com"`
	APIKey  string `env:"JSEARCH_API_KEY"`
	APIHost string `env:"JSEARCH_API_HOST" envDefault:"jsearch.p.rapidapi.com"`
}

// LanguageIdentifyConfig holds the language-identification provider settings.
// An empty block is a detectable condition, not a crash: the gateway reports
// a CONFIGURATION error before issuing any call.
type LanguageIdentifyConfig struct {
	BaseURL string `env:"LANGUAGE_IDENTIFY_BASE_URL"`
	APIKey  string `env:"LANGUAGE_IDENTIFY_API_KEY"`
	APIHost string `env:"LANGUAGE_IDENTIFY_API_HOST"`
}

// Configured reports whether the provider block is usable.
func (c LanguageIdentifyConfig) Configured() bool {
	return strings.TrimSpace(c.BaseURL) != "" && strings.TrimSpace(c.APIKey) != ""
}

// Config holds the environment driven configuration for the search gateway.
type Config struct {
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"search-gateway"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort        int           `env:"HTTP_PORT" envDefault:"8195"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	EnableTracing   bool          `env:"ENABLE_TRACING" envDefault:"false"`
	OTLPEndpoint    string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// UpstreamTimeout bounds every provider call. Expiry surfaces as
	// UPSTREAM_UNAVAILABLE rather than hanging the in-flight request.
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"15s"`

	// DatabaseURL selects the result store. An empty DSN switches the
	// service to the in-memory repositories (demos, tests).
	DatabaseURL    string        `env:"DB_POSTGRESQL_WRITE_DSN" envDefault:""`
	DBMaxIdleConns int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBMaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"15"`
	DBConnLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`

	JSearch          JSearchConfig
	LanguageIdentify LanguageIdentifyConfig

	AuthEnabled bool   `env:"AUTH_ENABLED" envDefault:"false"`
	AuthIssuer  string `env:"AUTH_ISSUER"`
	AuthJWKSURL string `env:"AUTH_JWKS_URL"`
}

// Load parses environment variables into Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	if strings.TrimSpace(cfg.JSearch.APIKey) == "" {
		return nil, fmt.Errorf("JSEARCH_API_KEY is required")
	}
	if cfg.AuthEnabled {
		if strings.TrimSpace(cfg.AuthIssuer) == "" {
			return nil, fmt.Errorf("AUTH_ISSUER is required when AUTH_ENABLED is true")
		}
		if strings.TrimSpace(cfg.AuthJWKSURL) == "" {
			return nil, fmt.Errorf("AUTH_JWKS_URL is required when AUTH_ENABLED is true")
		}
	}

	return cfg, nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
