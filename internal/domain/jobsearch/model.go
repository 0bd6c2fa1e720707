package jobsearch

import "time"

// Job is one normalized job listing from the provider.
type Job struct {
	JobID          string     `json:"jobId"`
	Title          string     `json:"title"`
	CompanyName    string     `json:"companyName"`
	Location       string     `json:"location"`
	JobType        string     `json:"jobType"`
	Description    string     `json:"description"`
	ApplyLink      string     `json:"applyLink"`
	PostedAt       *time.Time `json:"postedAt"`
	RequiredSkills []string   `json:"requiredSkills"`
}

// JobSearchResult captures one search invocation's outcome. The ID is assigned
// by the store on save; the value is never mutated afterwards. A stored result
// always carries at least one job: an empty upstream result set is discarded
// before it can reach the store.
type JobSearchResult struct {
	ID             string         `json:"id"`
	Query          string         `json:"query"`
	Location       string         `json:"location,omitempty"`
	Page           int            `json:"page"`
	ResultsPerPage int            `json:"resultsPerPage"`
	SearchedAt     time.Time      `json:"searchedAt"`
	Jobs           []Job          `json:"jobs"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

// SearchRequest carries the caller's search parameters.
type SearchRequest struct {
	Query          string
	Location       string
	Page           int
	ResultsPerPage int
}
