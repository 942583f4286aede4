package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/drawguide"
	"github.com/google/uuid"
)

// Ensure LoggingService implements drawguide.GuideService.
var _ drawguide.GuideService = (*LoggingService)(nil)

// LoggingService wraps a GuideService and logs one line per operation,
// tagged with a random invocation id.
type LoggingService struct {
	next   drawguide.GuideService
	logger *slog.Logger
}

// NewLoggingService creates a new LoggingService.
func NewLoggingService(next drawguide.GuideService, logger *slog.Logger) *LoggingService {
	return &LoggingService{next: next, logger: logger}
}

// Search delegates to the wrapped service and logs the query and result count.
func (s *LoggingService) Search(ctx context.Context, query drawguide.SearchQuery) (resp *drawguide.SearchResponse, err error) {
	defer func(begin time.Time) {
		var n int
		if resp != nil {
			n = resp.Metadata.ResultCount
		}
		s.log(drawguide.OpSearch, begin, err,
			"query", query.Text,
			"limit", query.Limit,
			"results", n,
		)
	}(time.Now())
	return s.next.Search(ctx, query)
}

// GetGuide delegates to the wrapped service and logs the URL and content size.
func (s *LoggingService) GetGuide(ctx context.Context, req drawguide.GuideRequest) (guide *drawguide.Guide, err error) {
	defer func(begin time.Time) {
		var n int
		if guide != nil {
			n = guide.ContentLength
		}
		s.log(drawguide.OpGetGuide, begin, err,
			"url", req.URL,
			"contentLength", n,
		)
	}(time.Now())
	return s.next.GetGuide(ctx, req)
}

// ListCategories delegates to the wrapped service and logs the category count.
func (s *LoggingService) ListCategories(ctx context.Context) (list *drawguide.CategoryList, err error) {
	defer func(begin time.Time) {
		var n int
		if list != nil {
			n = len(list.Categories)
		}
		s.log(drawguide.OpListCategories, begin, err, "categories", n)
	}(time.Now())
	return s.next.ListCategories(ctx)
}

func (s *LoggingService) log(op string, begin time.Time, err error, args ...any) {
	attrs := append([]any{
		"id", uuid.NewString(),
		"op", op,
		"duration", time.Since(begin),
	}, args...)
	if err != nil {
		attrs = append(attrs, "code", drawguide.ErrorCode(err), "err", err)
		s.logger.Error("operation failed", attrs...)
		return
	}
	s.logger.Info("operation", attrs...)
}
