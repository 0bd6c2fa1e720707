package jobsearch

import "context"

// Client performs the outbound calls against the job-search provider and
// classifies the HTTP outcome. Both methods return the raw provider payload;
// normalization happens in this package.
type Client interface {
	Search(ctx context.Context, query string, page, numPages int, country string) ([]byte, error)
	Details(ctx context.Context, jobID string) ([]byte, error)
}
