package main

import (
	"errors"
	"time"
)

// DefaultURL is scraped when no URL argument is given.
const DefaultURL = "https://en.wikipedia.org/wiki/Large_language_model"

// Extractor names accepted by --extractor.
const (
	ExtractorTags        = "tags"
	ExtractorTrafilatura = "trafilatura"
	ExtractorReadability = "readability"
	ExtractorMarkdown    = "markdown"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL       string        `arg:"" optional:"" default:"${default_url}" help:"Page to scrape"`
	Limit     int           `short:"l" default:"2000" env:"LLMSCRAPE_LIMIT" help:"Maximum content length in characters"`
	Output    string        `short:"o" default:"training_data.jsonl" env:"LLMSCRAPE_OUTPUT" help:"JSONL file samples are appended to"`
	Timeout   time.Duration `short:"t" default:"10s" env:"LLMSCRAPE_TIMEOUT" help:"Fetch timeout"`
	UserAgent string        `name:"user-agent" env:"LLMSCRAPE_USER_AGENT" help:"User-Agent header (default: desktop Chrome)"`
	Render    bool          `short:"r" help:"Fetch with headless Chrome so JavaScript runs first"`
	Extractor string        `short:"e" enum:"tags,trafilatura,readability,markdown" default:"tags" help:"Text extractor: tags removes boilerplate tags, trafilatura and readability keep only the main content, markdown keeps document structure"`
	NoSave    bool          `name:"no-save" help:"Print the sample without appending it to the output file"`
	DB        string        `name:"db" env:"LLMSCRAPE_DB" help:"SQLite database successful samples are also recorded in"`
	Verbose   bool          `short:"v" help:"Log fetch, extract and append steps to stderr"`
}

// Validate is called by Kong after parsing.
func (c *CLI) Validate() error {
	if c.Limit <= 0 {
		return errors.New("limit must be a positive number of characters")
	}
	if c.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}
	if c.URL == "" {
		return errors.New("url must not be empty")
	}
	return nil
}
