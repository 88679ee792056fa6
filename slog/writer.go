package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/llmscrape"
)

// Ensure LoggingResultWriter implements llmscrape.ResultWriter.
var _ llmscrape.ResultWriter = (*LoggingResultWriter)(nil)

// LoggingResultWriter wraps a ResultWriter with debug logging.
type LoggingResultWriter struct {
	next   llmscrape.ResultWriter
	logger *slog.Logger
}

// NewLoggingResultWriter creates a new LoggingResultWriter.
func NewLoggingResultWriter(next llmscrape.ResultWriter, logger *slog.Logger) *LoggingResultWriter {
	return &LoggingResultWriter{next: next, logger: logger}
}

// Append delegates to the wrapped writer and logs the operation.
func (w *LoggingResultWriter) Append(ctx context.Context, result *llmscrape.ScrapeResult) (err error) {
	defer func(begin time.Time) {
		url := ""
		if result != nil {
			url = result.URL
		}
		w.logger.Info("append",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.Append(ctx, result)
}
