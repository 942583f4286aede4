package http

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/drawguide"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Ensure CategorySitemap implements drawguide.CategorySource.
var _ drawguide.CategorySource = (*CategorySitemap)(nil)

// CategorySitemap lists categories from the site's category sitemap.
// Locations of the form /category/<slug>/ become title-cased names.
type CategorySitemap struct {
	fetcher drawguide.Fetcher
	url     string
}

// NewCategorySitemap creates a CategorySitemap reading sitemapURL.
func NewCategorySitemap(fetcher drawguide.Fetcher, sitemapURL string) *CategorySitemap {
	return &CategorySitemap{fetcher: fetcher, url: sitemapURL}
}

// Categories fetches the sitemap, following sitemap indexes, and returns
// category names in document order without duplicates.
func (s *CategorySitemap) Categories(ctx context.Context) ([]string, error) {
	locs, err := s.processSitemap(ctx, s.url, make(map[string]bool))
	if err != nil {
		return nil, err
	}

	caser := cases.Title(language.English)
	seen := make(map[string]bool)
	var names []string
	for _, loc := range locs {
		slug := categorySlug(loc)
		if slug == "" {
			continue
		}
		name := caser.String(strings.ReplaceAll(slug, "-", " "))
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names, nil
}

// processSitemap fetches and parses a sitemap, handling both urlset and sitemapindex.
func (s *CategorySitemap) processSitemap(ctx context.Context, sitemapURL string, seen map[string]bool) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Avoid processing the same sitemap twice
	if seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	page, err := s.fetcher.Fetch(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(page.HTML); err != nil {
		return nil, drawguide.Errorf(drawguide.ESTRUCTURE, "parsing sitemap XML: %v", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, drawguide.Errorf(drawguide.ESTRUCTURE, "empty sitemap XML at %s", sitemapURL)
	}

	switch root.Tag {
	case "sitemapindex":
		var locs []string
		for _, child := range locations(root, "sitemap") {
			childLocs, err := s.processSitemap(ctx, child, seen)
			if err != nil {
				return nil, fmt.Errorf("sitemap %s: %w", child, err)
			}
			locs = append(locs, childLocs...)
		}
		return locs, nil
	case "urlset":
		return locations(root, "url"), nil
	default:
		return nil, drawguide.Errorf(drawguide.ESTRUCTURE, "unexpected sitemap root <%s>", root.Tag)
	}
}

// locations returns the trimmed <loc> text of each child element named tag.
func locations(root *etree.Element, tag string) []string {
	var locs []string
	for _, el := range root.SelectElements(tag) {
		loc := el.SelectElement("loc")
		if loc == nil {
			continue
		}
		if u := strings.TrimSpace(loc.Text()); u != "" {
			locs = append(locs, u)
		}
	}
	return locs
}

// categorySlug returns the last path segment of a /category/ URL, or "".
func categorySlug(loc string) string {
	u, err := url.Parse(loc)
	if err != nil {
		return ""
	}
	p := strings.Trim(u.Path, "/")
	if !strings.HasPrefix(p, "category/") {
		return ""
	}
	slug := path.Base(p)
	if slug == "category" {
		return ""
	}
	return slug
}
