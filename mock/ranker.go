package mock

import (
	"iter"

	"github.com/fwojciec/drawguide"
)

var _ drawguide.Ranker = (*Ranker)(nil)

// Ranker is a mock implementation of drawguide.Ranker.
type Ranker struct {
	RankFn func(html string, pageURL string, query drawguide.SearchQuery) (iter.Seq[drawguide.Candidate], error)
}

func (r *Ranker) Rank(html string, pageURL string, query drawguide.SearchQuery) (iter.Seq[drawguide.Candidate], error) {
	return r.RankFn(html, pageURL, query)
}
