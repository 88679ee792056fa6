package mock

import (
	"context"

	"github.com/fwojciec/llmscrape"
)

var _ llmscrape.ResultWriter = (*ResultWriter)(nil)

// ResultWriter is a mock implementation of llmscrape.ResultWriter.
type ResultWriter struct {
	AppendFn func(ctx context.Context, result *llmscrape.ScrapeResult) error
}

func (w *ResultWriter) Append(ctx context.Context, result *llmscrape.ScrapeResult) error {
	return w.AppendFn(ctx, result)
}
