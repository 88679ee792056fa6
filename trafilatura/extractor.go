// Package trafilatura implements llmscrape.Extractor using go-trafilatura
// to narrow a page to its main content before text extraction.
package trafilatura

import (
	"bytes"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/llmscrape"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements llmscrape.Extractor at compile time.
var _ llmscrape.Extractor = (*Extractor)(nil)

// Extractor selects the main content of a page with go-trafilatura and
// hands the selected HTML to another Extractor for text extraction.
type Extractor struct {
	next   llmscrape.Extractor
	ignore string
}

// NewExtractor creates a new Extractor that delegates text extraction of
// the main content to next.
func NewExtractor(next llmscrape.Extractor) *Extractor {
	return &Extractor{
		next:   next,
		ignore: strings.Join(llmscrape.BoilerplateTags, ", "),
	}
}

// Extract processes raw HTML and returns the text of its main content.
// The title comes from page metadata (title tag, meta tags, JSON+LD).
func (e *Extractor) Extract(rawHTML string) (*llmscrape.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, llmscrape.Errorf(llmscrape.EINVALID, "empty HTML input")
	}

	// Boilerplate goes before trafilatura sees the page: on short pages its
	// baseline rescue flattens the whole document, navigation included.
	stripped, err := stripBoilerplate(rawHTML, e.ignore)
	if err != nil {
		return nil, err
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(stripped), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		dropAggregateChild(result.ContentNode)
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	content, err := e.next.Extract(contentHTML)
	if err != nil {
		return nil, err
	}

	title := result.Metadata.Title
	if title == "" {
		title = llmscrape.NoTitle
	}

	return &llmscrape.ExtractResult{
		Title: title,
		Text:  content.Text,
	}, nil
}

func stripBoilerplate(rawHTML, ignore string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", llmscrape.Errorf(llmscrape.EINVALID, "failed to parse HTML: %v", err)
	}
	doc.Find(ignore).Remove()
	return goquery.OuterHtml(doc.Selection)
}

// dropAggregateChild removes a child of n whose text contains the text of
// every other child. Fallback extraction appends such a flattened copy of
// the page next to the paragraphs it already selected.
func dropAggregateChild(n *html.Node) {
	var children []*html.Node
	var texts []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		t := squash(nodeText(c))
		if t == "" {
			continue
		}
		children = append(children, c)
		texts = append(texts, t)
	}
	if len(children) < 2 {
		return
	}

	for i, candidate := range texts {
		covers := true
		for j, other := range texts {
			if i != j && !strings.Contains(candidate, other) {
				covers = false
				break
			}
		}
		if covers {
			n.RemoveChild(children[i])
			return
		}
	}
}

// nodeText concatenates the text nodes below n.
func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(nodeText(c))
	}
	return b.String()
}

// squash drops all whitespace so texts joined with and without separators
// compare equal.
func squash(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
