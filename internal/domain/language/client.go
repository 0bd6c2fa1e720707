package language

import "context"

// Client performs the outbound call against the language-identification
// provider. A missing provider configuration surfaces as CONFIGURATION before
// any network I/O.
type Client interface {
	Detect(ctx context.Context, text string) ([]byte, error)
}
