package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/llmscrape"
	"github.com/fwojciec/llmscrape/fs"
	"github.com/fwojciec/llmscrape/goquery"
	"github.com/fwojciec/llmscrape/htmltomarkdown"
	scrapehttp "github.com/fwojciec/llmscrape/http"
	"github.com/fwojciec/llmscrape/readability"
	"github.com/fwojciec/llmscrape/rod"
	"github.com/fwojciec/llmscrape/scrape"
	scrapeslog "github.com/fwojciec/llmscrape/slog"
	"github.com/fwojciec/llmscrape/sqlite"
	"github.com/fwojciec/llmscrape/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// NewBrowserFetcher creates the fetcher used with --render.
	// Replaced in tests to avoid launching Chrome.
	NewBrowserFetcher func(opts ...rod.Option) (llmscrape.Fetcher, error)
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		NewBrowserFetcher: func(opts ...rod.Option) (llmscrape.Fetcher, error) {
			f, err := rod.NewFetcher(opts...)
			if err != nil {
				return nil, err
			}
			return f, nil
		},
	}
}

// Run executes the CLI with the given arguments. A page that cannot be
// scraped is reported on stdout and is not an error; errors are reserved
// for invalid usage and for failing to save the sample.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("llmscrape"),
		kong.Description("Scrape a web page into a JSONL training-data sample"),
		kong.Writers(stdout, stderr),
		kong.Vars{"default_url": DefaultURL},
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	fetcher, err := m.newFetcher(cli)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render")
		return fmt.Errorf("failed to start browser: %w", err)
	}
	defer fetcher.Close()

	extractor := newExtractor(cli.Extractor)

	var writers []llmscrape.ResultWriter
	if !cli.NoSave {
		writers = append(writers, fs.NewJSONLWriter(cli.Output))
	}
	if cli.DB != "" {
		db := sqlite.NewDB(cli.DB)
		if err := db.Open(); err != nil {
			return err
		}
		defer db.Close()
		writers = append(writers, sqlite.NewSampleStore(db))
	}

	var writer llmscrape.ResultWriter
	if len(writers) > 0 {
		writer = llmscrape.MultiResultWriter(writers...)
	}

	if logger != nil {
		fetcher = scrapeslog.NewLoggingFetcher(fetcher, logger)
		extractor = scrapeslog.NewLoggingExtractor(extractor, logger)
		if writer != nil {
			writer = scrapeslog.NewLoggingResultWriter(writer, logger)
		}
	}

	scraper := &scrape.Scraper{
		Fetcher:   fetcher,
		Extractor: extractor,
		Writer:    writer,
		CharLimit: cli.Limit,
	}

	fmt.Fprintf(stdout, "Scraping: %s ...\n", cli.URL)

	result, saveErr := scraper.ScrapeAndSave(ctx, cli.URL)
	if result.Failed() {
		fmt.Fprintf(stdout, "Failed to scrape: %s\n", result.Error)
		return nil
	}

	fmt.Fprintf(stdout, "\n--- Extracted Data (Truncated to %d chars) ---\n", cli.Limit)
	if err := result.WriteJSON(stdout, "  "); err != nil {
		return fmt.Errorf("failed to print result: %w", err)
	}

	if saveErr != nil {
		return fmt.Errorf("failed to save sample: %w", saveErr)
	}
	if !cli.NoSave {
		fmt.Fprintf(stdout, "\nData appended to %s\n", cli.Output)
	}
	if cli.DB != "" {
		fmt.Fprintf(stdout, "Sample recorded in %s\n", cli.DB)
	}

	return nil
}

func (m *Main) newFetcher(cli *CLI) (llmscrape.Fetcher, error) {
	if cli.Render {
		opts := []rod.Option{rod.WithFetchTimeout(cli.Timeout)}
		if cli.UserAgent != "" {
			opts = append(opts, rod.WithUserAgent(cli.UserAgent))
		}
		return m.NewBrowserFetcher(opts...)
	}

	opts := []scrapehttp.Option{scrapehttp.WithTimeout(cli.Timeout)}
	if cli.UserAgent != "" {
		opts = append(opts, scrapehttp.WithUserAgent(cli.UserAgent))
	}
	return scrapehttp.NewFetcher(opts...), nil
}

func newExtractor(name string) llmscrape.Extractor {
	switch name {
	case ExtractorTrafilatura:
		return trafilatura.NewExtractor(goquery.NewExtractor())
	case ExtractorReadability:
		return readability.NewExtractor(goquery.NewExtractor())
	case ExtractorMarkdown:
		return htmltomarkdown.NewExtractor()
	default:
		return goquery.NewExtractor()
	}
}
