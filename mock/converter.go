package mock

import "github.com/fwojciec/drawguide"

var _ drawguide.Converter = (*Converter)(nil)

// Converter is a mock implementation of drawguide.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
