package llmscrape

// BoilerplateTags is the ignore set: elements removed, with all their
// descendants, before text extraction.
var BoilerplateTags = []string{
	"script", "style", "header", "footer", "nav",
	"aside", "form", "button", "svg", "noscript",
}

// ExtractResult holds the text extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title, or NoTitle when the page has none.
	Title string

	// Text is the visible text with boilerplate removed.
	// It has not been cleaned or truncated yet.
	Text string
}

// Extractor extracts visible text from HTML pages, removing boilerplate.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
