package http

import (
	"context"
	"net/http"
	"time"

	"github.com/fwojciec/drawguide"
)

// DefaultCheckTimeout is the default timeout for reachability checks.
const DefaultCheckTimeout = 5 * time.Second

// Ensure Validator implements drawguide.Validator at compile time.
var _ drawguide.Validator = (*Validator)(nil)

// Validator checks URLs with HEAD requests. Redirects are not followed,
// so a 3xx answer counts as reachable.
type Validator struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	limiter   drawguide.DomainLimiter
}

// ValidatorOption configures a Validator.
type ValidatorOption func(*Validator)

// WithCheckTimeout sets the timeout for a single check.
// Defaults to DefaultCheckTimeout (5s) if not specified.
func WithCheckTimeout(d time.Duration) ValidatorOption {
	return func(v *Validator) {
		v.timeout = d
	}
}

// WithCheckUserAgent sets the User-Agent header sent with checks.
func WithCheckUserAgent(ua string) ValidatorOption {
	return func(v *Validator) {
		v.userAgent = ua
	}
}

// WithCheckLimiter throttles checks per domain.
func WithCheckLimiter(l drawguide.DomainLimiter) ValidatorOption {
	return func(v *Validator) {
		v.limiter = l
	}
}

// NewValidator creates a new Validator.
func NewValidator(opts ...ValidatorOption) *Validator {
	v := &Validator{
		timeout:   DefaultCheckTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(v)
	}

	v.client = &http.Client{
		Timeout: v.timeout,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return v
}

// Validate reports whether the URL answers HEAD with a 2xx or 3xx status.
func (v *Validator) Validate(ctx context.Context, rawURL string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", v.userAgent)

	if err := wait(ctx, v.limiter, req.URL); err != nil {
		return false
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode < 400
}
