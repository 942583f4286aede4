package drawguide

import "context"

// FetchResult holds a fetched page.
type FetchResult struct {
	// URL is the final URL after redirects.
	URL string

	HTML string
}

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch issues a single request for the URL and returns the body.
	// Failures are reported as *NetworkError. No retries are attempted.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*FetchResult, error)

	// Close releases resources held by the fetcher.
	Close() error
}

// Validator checks that URLs are reachable.
type Validator interface {
	// Validate reports whether the URL answered a lightweight check with
	// a 2xx or 3xx status. It never returns an error; any failure is false.
	Validate(ctx context.Context, url string) bool
}

// DomainLimiter throttles outbound requests per domain.
type DomainLimiter interface {
	// Wait blocks until a request to domain is allowed or ctx is done.
	Wait(ctx context.Context, domain string) error
}
