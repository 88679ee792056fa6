package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	main "github.com/fwojciec/llmscrape/cmd/llmscrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (*main.CLI, error) {
	t.Helper()

	cli := &main.CLI{}
	parser, err := kong.New(cli,
		kong.Vars{"default_url": main.DefaultURL},
		kong.Writers(&bytes.Buffer{}, &bytes.Buffer{}),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, err = parser.Parse(args)
	return cli, err
}

// Story: Defaults match the example run
//
// Running without arguments scrapes the example article with a 2000
// character budget and appends to training_data.jsonl.

func TestCLI_DefaultsWithoutArguments(t *testing.T) {
	t.Parallel()

	// When: parsing no arguments
	cli, err := parse(t)

	// Then: the example URL and budget are used
	require.NoError(t, err)
	assert.Equal(t, main.DefaultURL, cli.URL)
	assert.Equal(t, 2000, cli.Limit)
	assert.Equal(t, "training_data.jsonl", cli.Output)
	assert.Equal(t, 10*time.Second, cli.Timeout)
	assert.Equal(t, main.ExtractorTags, cli.Extractor)
	assert.Empty(t, cli.UserAgent)
	assert.False(t, cli.Render)
	assert.False(t, cli.NoSave)
}

func TestCLI_ParsesFlags(t *testing.T) {
	t.Parallel()

	cli, err := parse(t,
		"https://example.com/page",
		"-l", "500",
		"-o", "out.jsonl",
		"-t", "3s",
		"--user-agent", "bot/1.0",
		"-r",
		"-e", "trafilatura",
		"--no-save",
		"-v",
	)

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/page", cli.URL)
	assert.Equal(t, 500, cli.Limit)
	assert.Equal(t, "out.jsonl", cli.Output)
	assert.Equal(t, 3*time.Second, cli.Timeout)
	assert.Equal(t, "bot/1.0", cli.UserAgent)
	assert.True(t, cli.Render)
	assert.Equal(t, main.ExtractorTrafilatura, cli.Extractor)
	assert.True(t, cli.NoSave)
	assert.True(t, cli.Verbose)
}

// Story: CLI Validation
//
// Invalid budgets and unknown extractors are rejected before any
// network access happens.

func TestCLI_RejectsNonPositiveLimit(t *testing.T) {
	t.Parallel()

	for _, limit := range []string{"0", "-1"} {
		// When: parsing a limit that is not positive
		_, err := parse(t, "https://example.com", "--limit="+limit)

		// Then: parsing fails
		assert.Error(t, err, "limit %s", limit)
	}
}

func TestCLI_RejectsUnknownExtractor(t *testing.T) {
	t.Parallel()

	_, err := parse(t, "https://example.com", "--extractor", "regex")

	assert.Error(t, err)
}

func TestCLI_Validate(t *testing.T) {
	t.Parallel()

	valid := main.CLI{URL: "https://example.com", Limit: 1, Timeout: time.Second}
	assert.NoError(t, valid.Validate())

	noLimit := valid
	noLimit.Limit = 0
	assert.ErrorContains(t, noLimit.Validate(), "limit")

	noTimeout := valid
	noTimeout.Timeout = 0
	assert.ErrorContains(t, noTimeout.Validate(), "timeout")

	noURL := valid
	noURL.URL = ""
	assert.ErrorContains(t, noURL.Validate(), "url")
}

func TestMain_Run_RejectsInvalidLimit(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"https://example.com", "--limit", "0"}, &stdout, &stderr)

	require.Error(t, err)
	assert.NotContains(t, stdout.String(), "Scraping:")
}

// Environment variables configure the same settings as flags.
// Not parallel: t.Setenv modifies process state.
func TestCLI_ReadsEnvironment(t *testing.T) {
	t.Setenv("LLMSCRAPE_LIMIT", "123")
	t.Setenv("LLMSCRAPE_OUTPUT", "env.jsonl")
	t.Setenv("LLMSCRAPE_TIMEOUT", "2s")
	t.Setenv("LLMSCRAPE_USER_AGENT", "env-agent")

	cli, err := parse(t, "https://example.com")

	require.NoError(t, err)
	assert.Equal(t, 123, cli.Limit)
	assert.Equal(t, "env.jsonl", cli.Output)
	assert.Equal(t, 2*time.Second, cli.Timeout)
	assert.Equal(t, "env-agent", cli.UserAgent)
}
