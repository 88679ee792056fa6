// Package scrape turns a URL into a training-data sample by composing a
// Fetcher, an Extractor and the text cleaning rules of package llmscrape.
package scrape

import (
	"context"

	"github.com/fwojciec/llmscrape"
)

// Scraper fetches a single page and produces a ScrapeResult from it.
type Scraper struct {
	Fetcher   llmscrape.Fetcher
	Extractor llmscrape.Extractor

	// Writer receives successful results from ScrapeAndSave.
	// May be nil, in which case nothing is persisted.
	Writer llmscrape.ResultWriter

	// CharLimit is the content budget in characters.
	// Zero means llmscrape.DefaultCharLimit.
	CharLimit int
}

// Scrape fetches url, extracts its text, cleans it and truncates it to
// the character limit. Every fetch or extraction failure is reported in
// the Error field of the result; Scrape never returns partial content.
func (s *Scraper) Scrape(ctx context.Context, url string) *llmscrape.ScrapeResult {
	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return llmscrape.NewFailedResult(url, err)
	}

	extracted, err := s.Extractor.Extract(html)
	if err != nil {
		return llmscrape.NewFailedResult(url, err)
	}

	content := llmscrape.CleanText(extracted.Text)
	content = llmscrape.Truncate(content, s.charLimit())

	return &llmscrape.ScrapeResult{
		URL:     url,
		Title:   extracted.Title,
		Content: content,
	}
}

// ScrapeAndSave scrapes url and appends the result to Writer when the
// scrape succeeded. Failed results are returned but never persisted.
// The returned error only reports a failure to persist.
func (s *Scraper) ScrapeAndSave(ctx context.Context, url string) (*llmscrape.ScrapeResult, error) {
	result := s.Scrape(ctx, url)
	if result.Failed() || s.Writer == nil {
		return result, nil
	}

	if err := s.Writer.Append(ctx, result); err != nil {
		return result, err
	}
	return result, nil
}

func (s *Scraper) charLimit() int {
	if s.CharLimit == 0 {
		return llmscrape.DefaultCharLimit
	}
	return s.CharLimit
}
