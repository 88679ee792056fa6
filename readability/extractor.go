// Package readability implements llmscrape.Extractor using go-readability
// to keep only the article body of a page.
package readability

import (
	"strings"

	"github.com/fwojciec/llmscrape"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements llmscrape.Extractor at compile time.
var _ llmscrape.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to select the main article and hands
// its HTML to another Extractor for text extraction.
type Extractor struct {
	next llmscrape.Extractor
}

// NewExtractor creates a new Extractor delegating to next.
func NewExtractor(next llmscrape.Extractor) *Extractor {
	return &Extractor{next: next}
}

// Extract processes raw HTML and returns the text of the main article.
func (e *Extractor) Extract(rawHTML string) (*llmscrape.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, llmscrape.Errorf(llmscrape.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	content, err := e.next.Extract(article.Content)
	if err != nil {
		return nil, err
	}

	title := article.Title
	if title == "" {
		title = llmscrape.NoTitle
	}

	return &llmscrape.ExtractResult{
		Title: title,
		Text:  content.Text,
	}, nil
}
