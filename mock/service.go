package mock

import (
	"context"

	"github.com/fwojciec/drawguide"
)

var _ drawguide.GuideService = (*GuideService)(nil)

// GuideService is a mock implementation of drawguide.GuideService.
type GuideService struct {
	SearchFn         func(ctx context.Context, query drawguide.SearchQuery) (*drawguide.SearchResponse, error)
	GetGuideFn       func(ctx context.Context, req drawguide.GuideRequest) (*drawguide.Guide, error)
	ListCategoriesFn func(ctx context.Context) (*drawguide.CategoryList, error)
}

func (s *GuideService) Search(ctx context.Context, query drawguide.SearchQuery) (*drawguide.SearchResponse, error) {
	return s.SearchFn(ctx, query)
}

func (s *GuideService) GetGuide(ctx context.Context, req drawguide.GuideRequest) (*drawguide.Guide, error) {
	return s.GetGuideFn(ctx, req)
}

func (s *GuideService) ListCategories(ctx context.Context) (*drawguide.CategoryList, error) {
	return s.ListCategoriesFn(ctx)
}
