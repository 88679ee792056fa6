// Package goquery implements llmscrape.Extractor on top of goquery's
// DOM manipulation.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/llmscrape"
	"golang.org/x/net/html"
)

// Ensure Extractor implements llmscrape.Extractor at compile time.
var _ llmscrape.Extractor = (*Extractor)(nil)

// Extractor removes boilerplate elements from the document tree and
// returns the remaining visible text.
type Extractor struct {
	// ignore is the CSS selector matching boilerplate elements.
	ignore string
}

// NewExtractor creates an Extractor that removes llmscrape.BoilerplateTags.
func NewExtractor() *Extractor {
	return NewExtractorWithTags(llmscrape.BoilerplateTags)
}

// NewExtractorWithTags creates an Extractor that removes the given tags
// instead of the default ignore set.
func NewExtractorWithTags(tags []string) *Extractor {
	return &Extractor{ignore: strings.Join(tags, ", ")}
}

// Extract parses rawHTML, removes every boilerplate element together with
// its descendants, and joins the remaining text nodes of the document with
// a single space. The document head and comments are not content.
func (e *Extractor) Extract(rawHTML string) (*llmscrape.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, llmscrape.Errorf(llmscrape.EINVALID, "failed to parse HTML: %v", err)
	}

	if e.ignore != "" {
		doc.Find(e.ignore).Remove()
	}

	title := llmscrape.NoTitle
	if sel := doc.Find("title").First(); sel.Length() > 0 {
		title = sel.Text()
	}

	var texts []string
	for _, n := range doc.Nodes {
		texts = collectText(texts, n)
	}

	return &llmscrape.ExtractResult{
		Title: title,
		Text:  strings.Join(texts, " "),
	}, nil
}

// collectText appends the data of every text node below n in document order.
func collectText(texts []string, n *html.Node) []string {
	switch n.Type {
	case html.TextNode:
		return append(texts, n.Data)
	case html.CommentNode, html.DoctypeNode:
		return texts
	case html.ElementNode:
		if n.Data == "head" {
			return texts
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		texts = collectText(texts, c)
	}
	return texts
}
