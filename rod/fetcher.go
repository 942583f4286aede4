// Package rod implements drawguide.Fetcher with a headless Chrome browser
// for pages whose content is rendered by JavaScript.
package rod

import (
	"context"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/fwojciec/drawguide"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds a single page load including rendering.
const DefaultFetchTimeout = 30 * time.Second

// Ensure Fetcher implements drawguide.Fetcher at compile time.
var _ drawguide.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager   *BrowserManager
	timeout   time.Duration
	userAgent string
	limiter   drawguide.DomainLimiter
	closed    atomic.Bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the per-page timeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the browser's User-Agent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithLimiter makes every page load wait on the limiter for its host.
func WithLimiter(l drawguide.DomainLimiter) Option {
	return func(f *Fetcher) {
		f.limiter = l
	}
}

// NewFetcher creates a Fetcher backed by a recycling headless browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	manager, err := NewBrowserManager()
	if err != nil {
		return nil, err
	}

	f := &Fetcher{
		manager: manager,
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Fetch navigates to rawURL and returns the rendered HTML together with
// the URL the browser ended up on. A non-2xx document response is a
// *drawguide.NetworkError carrying the status code.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*drawguide.FetchResult, error) {
	if f.closed.Load() {
		return nil, drawguide.Errorf(drawguide.EINVALID, "fetcher closed")
	}
	if err := ctx.Err(); err != nil {
		return nil, &drawguide.NetworkError{URL: rawURL, Err: err}
	}

	if f.limiter != nil {
		if u, err := url.Parse(rawURL); err == nil {
			if err := f.limiter.Wait(ctx, u.Hostname()); err != nil {
				return nil, &drawguide.NetworkError{URL: rawURL, Err: err}
			}
		}
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	html, finalURL, status, err := f.render(ctx, rawURL)
	if err != nil {
		return nil, &drawguide.NetworkError{URL: rawURL, Err: err}
	}
	if status != 0 && (status < 200 || status > 299) {
		return nil, &drawguide.NetworkError{URL: rawURL, StatusCode: status}
	}
	if finalURL == "" {
		finalURL = rawURL
	}
	return &drawguide.FetchResult{URL: finalURL, HTML: html}, nil
}

// render loads rawURL in a fresh tab and reports the HTML, the final URL
// and the status of the document response.
func (f *Fetcher) render(ctx context.Context, rawURL string) (html, finalURL string, status int, err error) {
	page, err := f.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", "", 0, err
	}
	defer func() { _ = page.Close() }()
	f.manager.IncrementPageCount()

	page = page.Context(ctx)

	if f.userAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: f.userAgent}); err != nil {
			return "", "", 0, err
		}
	}

	waitResponse := page.EachEvent(func(e *proto.NetworkResponseReceived) bool {
		if e.Type != proto.NetworkResourceTypeDocument {
			return false
		}
		status = e.Response.Status
		return true
	})

	if err := page.Navigate(rawURL); err != nil {
		return "", "", 0, err
	}
	waitResponse()
	if err := ctx.Err(); err != nil {
		return "", "", 0, err
	}
	if err := page.WaitLoad(); err != nil {
		return "", "", 0, err
	}

	html, err = page.HTML()
	if err != nil {
		return "", "", 0, err
	}

	if info, err := page.Info(); err == nil {
		finalURL = info.URL
	}
	return html, finalURL, status, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	return f.manager.Close()
}

// LauncherPID returns the process ID of the browser launcher.
// It exists so tests can verify cleanup.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}
