package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/drawguide"
)

// Ensure CategoryParser implements drawguide.CategoryParser at compile time.
var _ drawguide.CategoryParser = (*CategoryParser)(nil)

// CategoryParser reads category names from links matching the site's
// category marker.
type CategoryParser struct {
	selector string
}

// NewCategoryParser creates a CategoryParser using the site's category marker.
func NewCategoryParser(site drawguide.Site) *CategoryParser {
	return &CategoryParser{selector: site.CategorySelector}
}

// ParseCategories returns link texts in page order, without duplicates.
func (p *CategoryParser) ParseCategories(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, drawguide.Errorf(drawguide.EINVALID, "failed to parse HTML: %v", err)
	}

	links := doc.Find(p.selector)
	if links.Length() == 0 {
		return nil, drawguide.Errorf(drawguide.ESTRUCTURE, "page structure not recognized: no %q elements", p.selector)
	}

	seen := make(map[string]bool)
	var names []string
	links.Each(func(_ int, sel *goquery.Selection) {
		name := collapseSpace(sel.Text())
		key := strings.ToLower(name)
		if name == "" || seen[key] {
			return
		}
		seen[key] = true
		names = append(names, name)
	})
	return names, nil
}
