package drawguide

import (
	"iter"
	"strings"
)

// Search limits.
const (
	DefaultSearchLimit = 10
	MinSearchLimit     = 1
	MaxSearchLimit     = 20

	// CandidateFactor bounds how many ranked candidates are considered per
	// requested result, so unreachable URLs can be skipped without probing
	// the whole result page.
	CandidateFactor = 3
)

// SearchQuery is a search request.
type SearchQuery struct {
	Text   string `json:"query"`
	Limit  int    `json:"limit"`
	Source string `json:"source"`
}

// Normalize applies defaults and validates the query in place.
// A zero limit becomes DefaultSearchLimit; other values are clamped to
// [MinSearchLimit, MaxSearchLimit]. An empty source becomes SourceEasy.
func (q *SearchQuery) Normalize() error {
	q.Text = strings.TrimSpace(q.Text)
	if q.Text == "" {
		return Errorf(EINVALID, "query required")
	}

	switch {
	case q.Limit == 0:
		q.Limit = DefaultSearchLimit
	case q.Limit < MinSearchLimit:
		q.Limit = MinSearchLimit
	case q.Limit > MaxSearchLimit:
		q.Limit = MaxSearchLimit
	}

	if q.Source == "" {
		q.Source = SourceEasy
	}
	if q.Source != SourceEasy {
		return Errorf(EUNSUPPORTEDSOURCE, "source %q not supported (supported: %q)", q.Source, SourceEasy)
	}
	return nil
}

// Terms returns the distinct lower-cased whitespace-separated query terms
// in order of first appearance.
func (q *SearchQuery) Terms() []string {
	seen := make(map[string]bool)
	var terms []string
	for _, term := range strings.Fields(strings.ToLower(q.Text)) {
		if seen[term] {
			continue
		}
		seen[term] = true
		terms = append(terms, term)
	}
	return terms
}

// Candidate is a search entry that has not been checked for reachability.
type Candidate struct {
	Title string
	URL   string

	// Score is the number of query terms found in the title.
	Score int

	// Position is the entry's index on the search page.
	Position int
}

// SearchResult is a validated search hit.
type SearchResult struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Source string `json:"source"`
}

// SearchMetadata describes a search response.
type SearchMetadata struct {
	Query       string `json:"query"`
	ResultCount int    `json:"resultCount"`
	Source      string `json:"source"`
}

// SearchResponse is the result of the search operation.
type SearchResponse struct {
	Metadata SearchMetadata `json:"metadata"`
	Results  []SearchResult `json:"results"`
}

// Ranker turns a search result page into ranked candidates.
type Ranker interface {
	// Rank parses the page and returns candidates ordered by descending
	// score, ties kept in page order, deduplicated by NormalizeURL and
	// capped at CandidateFactor times the query limit.
	//
	// The sequence can be consumed once; later iterations yield nothing.
	Rank(html string, pageURL string, query SearchQuery) (iter.Seq[Candidate], error)
}
