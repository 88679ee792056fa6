package mock

import "github.com/fwojciec/llmscrape"

var _ llmscrape.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of llmscrape.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*llmscrape.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*llmscrape.ExtractResult, error) {
	return e.ExtractFn(html)
}
