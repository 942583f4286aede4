package mock

import (
	"context"

	"github.com/fwojciec/drawguide"
)

var _ drawguide.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of drawguide.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*drawguide.FetchResult, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*drawguide.FetchResult, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ drawguide.Validator = (*Validator)(nil)

// Validator is a mock implementation of drawguide.Validator.
type Validator struct {
	ValidateFn func(ctx context.Context, url string) bool
}

func (v *Validator) Validate(ctx context.Context, url string) bool {
	return v.ValidateFn(ctx, url)
}

var _ drawguide.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of drawguide.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
