package slog

import (
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/llmscrape"
)

// Ensure LoggingExtractor implements llmscrape.Extractor.
var _ llmscrape.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   llmscrape.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next llmscrape.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the title and the
// amount of raw text found.
func (e *LoggingExtractor) Extract(html string) (result *llmscrape.ExtractResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{"bytes", len(html)}
		if result != nil {
			attrs = append(attrs, "title", result.Title, "chars", utf8.RuneCountInString(result.Text))
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		e.logger.Info("extract", attrs...)
	}(time.Now())
	return e.next.Extract(html)
}
