package handlers

import (
	jobsearchdomain "search-gateway/internal/domain/jobsearch"
	languagedomain "search-gateway/internal/domain/language"
)

// Provider wires all HTTP handlers for dependency injection.
type Provider struct {
	JobSearch *JobSearchHandler
	Language  *LanguageHandler
}

// NewProvider constructs the handler provider with domain services.
func NewProvider(jobSearchService jobsearchdomain.Service, languageService languagedomain.Service) *Provider {
	return &Provider{
		JobSearch: NewJobSearchHandler(jobSearchService),
		Language:  NewLanguageHandler(languageService),
	}
}
