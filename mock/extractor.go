package mock

import "github.com/fwojciec/drawguide"

var _ drawguide.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of drawguide.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*drawguide.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*drawguide.ExtractResult, error) {
	return e.ExtractFn(html)
}
