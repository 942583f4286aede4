// Package slog provides logging decorators for drawguide services
// using the standard library's structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/drawguide"
)

// Ensure LoggingFetcher implements drawguide.Fetcher.
var _ drawguide.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   drawguide.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next drawguide.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the request.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (result *drawguide.FetchResult, err error) {
	defer func(begin time.Time) {
		var n int
		if result != nil {
			n = len(result.HTML)
		}
		f.logger.Info("fetch",
			"url", url,
			"bytes", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

// Ensure LoggingValidator implements drawguide.Validator.
var _ drawguide.Validator = (*LoggingValidator)(nil)

// LoggingValidator wraps a Validator with debug logging.
type LoggingValidator struct {
	next   drawguide.Validator
	logger *slog.Logger
}

// NewLoggingValidator creates a new LoggingValidator.
func NewLoggingValidator(next drawguide.Validator, logger *slog.Logger) *LoggingValidator {
	return &LoggingValidator{next: next, logger: logger}
}

// Validate delegates to the wrapped validator and logs the outcome.
func (v *LoggingValidator) Validate(ctx context.Context, url string) (ok bool) {
	defer func(begin time.Time) {
		v.logger.Debug("validate",
			"url", url,
			"reachable", ok,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return v.next.Validate(ctx, url)
}
