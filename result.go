package llmscrape

import (
	"bytes"
	"encoding/json"
	"io"
)

// NoTitle is the title recorded for pages without a <title> element.
const NoTitle = "No Title"

// ScrapeResult is a single training-data sample, or the reason one could
// not be produced. A result is either successful (Title and Content set)
// or failed (Error set), never both.
type ScrapeResult struct {
	URL     string `json:"url"`
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
	Error   string `json:"error,omitempty"`
}

// UnknownError is recorded when a failure carries no message.
const UnknownError = "unknown error"

// NewFailedResult returns a result recording err for url. The result is
// always Failed, even when err is nil or has an empty message.
func NewFailedResult(url string, err error) *ScrapeResult {
	msg := UnknownError
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return &ScrapeResult{URL: url, Error: msg}
}

// Failed reports whether the result carries an error instead of content.
func (r *ScrapeResult) Failed() bool {
	return r.Error != ""
}

// Validate returns an error if the result cannot be persisted.
func (r *ScrapeResult) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "result URL required")
	}
	return nil
}

type successRecord struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type failureRecord struct {
	URL   string `json:"url"`
	Error string `json:"error"`
}

// MarshalJSON encodes a successful result as {url, title, content} and a
// failed one as {url, error}. Content is kept even when empty. HTML
// characters are not escaped.
func (r ScrapeResult) MarshalJSON() ([]byte, error) {
	var v any = successRecord{URL: r.URL, Title: r.Title, Content: r.Content}
	if r.Failed() {
		v = failureRecord{URL: r.URL, Error: r.Error}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// WriteJSON writes r to w followed by a newline. An empty indent produces
// a compact single line suitable for JSONL.
func (r *ScrapeResult) WriteJSON(w io.Writer, indent string) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(r)
}
