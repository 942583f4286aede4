// Package tool implements the drawguide operations: search, get_guide and
// list_categories. It orchestrates fetching, extraction, ranking and
// validation and holds no state between calls.
package tool

import (
	"context"
	"fmt"
	"iter"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/drawguide"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds parallel reachability checks.
const DefaultConcurrency = 4

// Ensure Dispatcher implements drawguide.GuideService at compile time.
var _ drawguide.GuideService = (*Dispatcher)(nil)

// Dispatcher implements drawguide.GuideService for a single site.
type Dispatcher struct {
	Site       drawguide.Site
	Fetcher    drawguide.Fetcher
	Extractor  drawguide.Extractor
	Converter  drawguide.Converter
	Ranker     drawguide.Ranker
	Validator  drawguide.Validator
	Categories drawguide.CategorySource

	// Concurrency bounds parallel checks. Zero means DefaultConcurrency.
	Concurrency int
}

// Search fetches the site's search page for the query, ranks the entries
// and returns up to query.Limit candidates that pass validation, in rank order.
func (d *Dispatcher) Search(ctx context.Context, query drawguide.SearchQuery) (*drawguide.SearchResponse, error) {
	if err := query.Normalize(); err != nil {
		return nil, err
	}

	page, err := d.Fetcher.Fetch(ctx, d.Site.SearchURL(query.Text))
	if err != nil {
		return nil, fmt.Errorf("fetching search page: %w", err)
	}

	candidates, err := d.Ranker.Rank(page.HTML, page.URL, query)
	if err != nil {
		return nil, fmt.Errorf("ranking search results: %w", err)
	}

	results := d.collect(ctx, candidates, query.Limit)

	return &drawguide.SearchResponse{
		Metadata: drawguide.SearchMetadata{
			Query:       query.Text,
			ResultCount: len(results),
			Source:      query.Source,
		},
		Results: results,
	}, nil
}

// collect validates candidates in rank order until limit results pass or
// candidates run out. Each round checks only as many candidates as results
// are still missing, so the outcome matches probing one at a time.
func (d *Dispatcher) collect(ctx context.Context, candidates iter.Seq[drawguide.Candidate], limit int) []drawguide.SearchResult {
	next, stop := iter.Pull(candidates)
	defer stop()

	seen := make(map[string]bool)
	results := make([]drawguide.SearchResult, 0, limit)
	for len(results) < limit {
		var window []drawguide.Candidate
		for len(window) < limit-len(results) {
			c, ok := next()
			if !ok {
				break
			}
			key := drawguide.NormalizeURL(c.URL)
			if seen[key] {
				continue
			}
			seen[key] = true
			window = append(window, c)
		}
		if len(window) == 0 {
			break
		}

		reachable := make([]bool, len(window))
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(d.concurrency())
		for i, c := range window {
			g.Go(func() error {
				reachable[i] = d.Validator.Validate(gctx, c.URL)
				return nil
			})
		}
		_ = g.Wait()

		for i, c := range window {
			if reachable[i] {
				results = append(results, drawguide.SearchResult{
					Title:  c.Title,
					URL:    c.URL,
					Source: d.Site.Name,
				})
			}
		}
	}
	return results
}

func (d *Dispatcher) concurrency() int {
	if d.Concurrency > 0 {
		return d.Concurrency
	}
	return DefaultConcurrency
}

// GetGuide fetches a guide page on the site and converts its content to Markdown.
func (d *Dispatcher) GetGuide(ctx context.Context, req drawguide.GuideRequest) (*drawguide.Guide, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !d.owns(req.URL) {
		return nil, drawguide.Errorf(drawguide.EUNSUPPORTEDDOMAIN, "url %q is not on %s", req.URL, d.Site.Domain)
	}

	page, err := d.Fetcher.Fetch(ctx, req.URL)
	if err != nil {
		return nil, fmt.Errorf("fetching guide: %w", err)
	}

	extracted, err := d.Extractor.Extract(page.HTML)
	if err != nil {
		return nil, err
	}

	content, err := d.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return nil, drawguide.Errorf(drawguide.EINTERNAL, "converting guide to markdown: %v", err)
	}

	return &drawguide.Guide{
		Title:         extracted.Title,
		URL:           req.URL,
		Source:        d.Site.Name,
		Content:       content,
		ContentLength: utf8.RuneCountInString(content),
		ContentHash:   strconv.FormatUint(xxhash.Sum64String(content), 16),
	}, nil
}

// owns reports whether rawURL's host is the site domain or has the site
// domain as its registrable domain, so www. and other subdomains pass
// while look-alike hosts do not.
func (d *Dispatcher) owns(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.TrimSuffix(strings.ToLower(u.Hostname()), ".")
	domain := strings.ToLower(d.Site.Domain)
	if host == "" || domain == "" {
		return false
	}
	if host == domain {
		return true
	}
	registrable, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return false
	}
	return registrable == domain
}

// ListCategories returns categories from the configured source, falling
// back to the curated table when the source fails or finds nothing.
// It never returns an error.
func (d *Dispatcher) ListCategories(ctx context.Context) (*drawguide.CategoryList, error) {
	categories := drawguide.DefaultCategories()
	if d.Categories != nil {
		if live, err := d.Categories.Categories(ctx); err == nil && len(live) > 0 {
			categories = live
		}
	}

	return &drawguide.CategoryList{
		Categories:     categories,
		SuggestedTerms: drawguide.DefaultSuggestedTerms(),
	}, nil
}
