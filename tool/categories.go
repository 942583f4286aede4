package tool

import (
	"context"

	"github.com/fwojciec/drawguide"
)

// Ensure PageCategories implements drawguide.CategorySource at compile time.
var _ drawguide.CategorySource = (*PageCategories)(nil)

// PageCategories reads categories from a live page on the site.
type PageCategories struct {
	Fetcher drawguide.Fetcher
	Parser  drawguide.CategoryParser
	URL     string
}

// Categories fetches the page and parses category names from it.
func (p *PageCategories) Categories(ctx context.Context) ([]string, error) {
	page, err := p.Fetcher.Fetch(ctx, p.URL)
	if err != nil {
		return nil, err
	}
	return p.Parser.ParseCategories(page.HTML)
}
