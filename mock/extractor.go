package mock

import "github.com/fwojciec/staffdir"

var _ staffdir.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of staffdir.Extractor.
type Extractor struct {
	ExtractFn func(html string, sourceURL string) (*staffdir.ExtractResult, error)
}

func (e *Extractor) Extract(html string, sourceURL string) (*staffdir.ExtractResult, error) {
	return e.ExtractFn(html, sourceURL)
}
