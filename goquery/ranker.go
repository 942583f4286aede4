package goquery

import (
	"iter"
	"net/url"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/drawguide"
)

// Ensure Ranker implements drawguide.Ranker at compile time.
var _ drawguide.Ranker = (*Ranker)(nil)

// Ranker extracts tutorial entries from a search result page and orders
// them by how many query terms appear in their titles.
type Ranker struct {
	entries string
}

// NewRanker creates a Ranker using the site's search entry marker.
func NewRanker(site drawguide.Site) *Ranker {
	return &Ranker{entries: site.SearchEntrySelector}
}

// Rank parses entries eagerly and scores them on first iteration.
func (r *Ranker) Rank(html string, pageURL string, query drawguide.SearchQuery) (iter.Seq[drawguide.Candidate], error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, drawguide.Errorf(drawguide.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, drawguide.Errorf(drawguide.EINVALID, "failed to parse HTML: %v", err)
	}

	candidates := r.parseEntries(doc, base)
	terms := query.Terms()
	ceiling := query.Limit * drawguide.CandidateFactor

	var consumed atomic.Bool
	return func(yield func(drawguide.Candidate) bool) {
		if consumed.Swap(true) {
			return
		}

		for i := range candidates {
			candidates[i].Score = score(candidates[i].Title, terms)
		}
		slices.SortStableFunc(candidates, func(a, b drawguide.Candidate) int {
			return b.Score - a.Score
		})
		if ceiling > 0 && len(candidates) > ceiling {
			candidates = candidates[:ceiling]
		}

		for _, c := range candidates {
			if !yield(c) {
				return
			}
		}
	}, nil
}

// parseEntries returns candidates in page order, deduplicated by
// normalized URL. When no entry marker matches, every <h2> is an entry.
func (r *Ranker) parseEntries(doc *goquery.Document, base *url.URL) []drawguide.Candidate {
	entries := doc.Find(r.entries)
	if entries.Length() == 0 {
		entries = doc.Find("h2")
	}

	seen := make(map[string]bool)
	var candidates []drawguide.Candidate
	entries.Each(func(i int, entry *goquery.Selection) {
		link := entryLink(entry)
		if link == nil {
			return
		}

		href, _ := link.Attr("href")
		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}

		title := collapseSpace(link.Text())
		if title == "" {
			return
		}

		key := drawguide.NormalizeURL(resolved)
		if seen[key] {
			return
		}
		seen[key] = true

		candidates = append(candidates, drawguide.Candidate{
			Title:    title,
			URL:      resolved,
			Position: i,
		})
	})
	return candidates
}

// entryLink finds the title link of an entry: the anchor inside its title
// heading, falling back to the entry's first anchor.
func entryLink(entry *goquery.Selection) *goquery.Selection {
	heading := entry
	if !entry.Is("h2") {
		heading = entry.Find("h2, .entry-title").First()
	}
	if heading.Length() > 0 {
		if heading.Is("a[href]") {
			return heading
		}
		if a := heading.Find("a[href]").First(); a.Length() > 0 {
			return a
		}
	}
	if a := entry.Find("a[href]").First(); a.Length() > 0 {
		return a
	}
	return nil
}

// score counts the terms that occur in the lower-cased title.
func score(title string, terms []string) int {
	title = strings.ToLower(title)
	n := 0
	for _, term := range terms {
		if strings.Contains(title, term) {
			n++
		}
	}
	return n
}

// resolveURL resolves href against base and strips the fragment.
// Returns empty string for unparseable or non-HTTP links.
func resolveURL(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	resolved.Fragment = ""
	return resolved.String()
}
