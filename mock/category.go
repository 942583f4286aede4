package mock

import (
	"context"

	"github.com/fwojciec/drawguide"
)

var _ drawguide.CategorySource = (*CategorySource)(nil)

// CategorySource is a mock implementation of drawguide.CategorySource.
type CategorySource struct {
	CategoriesFn func(ctx context.Context) ([]string, error)
}

func (s *CategorySource) Categories(ctx context.Context) ([]string, error) {
	return s.CategoriesFn(ctx)
}

var _ drawguide.CategoryParser = (*CategoryParser)(nil)

// CategoryParser is a mock implementation of drawguide.CategoryParser.
type CategoryParser struct {
	ParseCategoriesFn func(html string) ([]string, error)
}

func (p *CategoryParser) ParseCategories(html string) ([]string, error) {
	return p.ParseCategoriesFn(html)
}
