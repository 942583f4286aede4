// Package http provides net/http implementations of drawguide.Fetcher,
// drawguide.Validator and drawguide.CategorySource for the static pages of
// the tutorial site.
package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/drawguide"
)

// DefaultFetchTimeout is the default timeout for page requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultMaxBodySize caps how much of a response body is read.
const DefaultMaxBodySize = 10 << 20

// DefaultUserAgent identifies requests as a desktop browser, which the
// site expects.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Ensure Fetcher implements drawguide.Fetcher at compile time.
var _ drawguide.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using a single HTTP GET.
// Unlike rod.Fetcher, this does not execute JavaScript.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	userAgent   string
	maxBodySize int64
	limiter     drawguide.DomainLimiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodySize limits how many bytes of a response are read.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodySize = n
	}
}

// WithLimiter throttles requests per domain.
func WithLimiter(l drawguide.DomainLimiter) Option {
	return func(f *Fetcher) {
		f.limiter = l
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		userAgent:   DefaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
// Non-2xx responses and transport failures return *drawguide.NetworkError.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*drawguide.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &drawguide.NetworkError{URL: rawURL, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9")

	if err := wait(ctx, f.limiter, req.URL); err != nil {
		return nil, &drawguide.NetworkError{URL: rawURL, Err: err}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &drawguide.NetworkError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &drawguide.NetworkError{URL: rawURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize))
	if err != nil {
		return nil, &drawguide.NetworkError{URL: rawURL, Err: err}
	}

	return &drawguide.FetchResult{
		URL:  resp.Request.URL.String(),
		HTML: string(body),
	}, nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// wait blocks on the limiter, if any, for the URL's host.
func wait(ctx context.Context, l drawguide.DomainLimiter, u *url.URL) error {
	if l == nil {
		return nil
	}
	return l.Wait(ctx, u.Hostname())
}
