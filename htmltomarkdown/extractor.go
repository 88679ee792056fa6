// Package htmltomarkdown implements llmscrape.Extractor producing Markdown
// instead of plain text, so headings, lists and code blocks survive.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/llmscrape"
)

// Ensure Extractor implements llmscrape.Extractor at compile time.
var _ llmscrape.Extractor = (*Extractor)(nil)

// Extractor removes boilerplate elements and converts the remaining body
// to Markdown with html-to-markdown.
type Extractor struct {
	conv   *converter.Converter
	ignore string
}

// NewExtractor creates a new Extractor ignoring llmscrape.BoilerplateTags.
func NewExtractor() *Extractor {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Extractor{
		conv:   conv,
		ignore: strings.Join(llmscrape.BoilerplateTags, ", "),
	}
}

// Extract converts the body of rawHTML to Markdown. The title is taken
// from the document <title> before conversion.
func (e *Extractor) Extract(rawHTML string) (*llmscrape.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, llmscrape.Errorf(llmscrape.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, err
	}

	doc.Find(e.ignore).Remove()

	title := llmscrape.NoTitle
	if sel := doc.Find("title").First(); sel.Length() > 0 {
		title = sel.Text()
	}

	body, err := doc.Find("body").Html()
	if err != nil {
		return nil, err
	}

	md, err := e.conv.ConvertString(body)
	if err != nil {
		return nil, err
	}

	return &llmscrape.ExtractResult{
		Title: title,
		Text:  md,
	}, nil
}
