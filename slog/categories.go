package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/drawguide"
)

// Ensure LoggingCategorySource implements drawguide.CategorySource.
var _ drawguide.CategorySource = (*LoggingCategorySource)(nil)

// LoggingCategorySource wraps a CategorySource with logging. Failures are
// logged at warn level since callers fall back silently.
type LoggingCategorySource struct {
	next   drawguide.CategorySource
	logger *slog.Logger
}

// NewLoggingCategorySource creates a new LoggingCategorySource.
func NewLoggingCategorySource(next drawguide.CategorySource, logger *slog.Logger) *LoggingCategorySource {
	return &LoggingCategorySource{next: next, logger: logger}
}

// Categories delegates to the wrapped source and logs the result.
func (s *LoggingCategorySource) Categories(ctx context.Context) (names []string, err error) {
	defer func(begin time.Time) {
		if err != nil {
			s.logger.Warn("category lookup failed",
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		s.logger.Info("category lookup",
			"count", len(names),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Categories(ctx)
}
