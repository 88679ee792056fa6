// Package fs provides file-based storage for scrape results.
package fs

import (
	"bytes"
	"context"
	"os"

	"github.com/fwojciec/llmscrape"
)

// DefaultOutputPath is the JSONL file results are appended to by default.
const DefaultOutputPath = "training_data.jsonl"

// Ensure JSONLWriter implements llmscrape.ResultWriter at compile time.
var _ llmscrape.ResultWriter = (*JSONLWriter)(nil)

// JSONLWriter appends results to a file as newline-delimited JSON,
// one compact UTF-8 object per line. The file is opened and closed on
// every append.
type JSONLWriter struct {
	path string
}

// NewJSONLWriter creates a new JSONLWriter for the file at path.
// The file is created on first append if it does not exist.
func NewJSONLWriter(path string) *JSONLWriter {
	return &JSONLWriter{path: path}
}

// Path returns the file the writer appends to.
func (w *JSONLWriter) Path() string {
	return w.path
}

// Append writes result as a single JSON line at the end of the file.
func (w *JSONLWriter) Append(ctx context.Context, result *llmscrape.ScrapeResult) error {
	if result == nil {
		return llmscrape.Errorf(llmscrape.EINVALID, "result required")
	}
	if err := result.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	// Encode before opening so a failed encode never leaves a partial line.
	var buf bytes.Buffer
	if err := result.WriteJSON(&buf, ""); err != nil {
		return err
	}

	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	if _, err := f.Write(buf.Bytes()); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
