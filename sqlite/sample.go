package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/llmscrape"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ llmscrape.ResultWriter = (*SampleStore)(nil)

// Sample is a stored training-data sample.
type Sample struct {
	ID          string
	URL         string
	Title       string
	Content     string
	ContentHash string
	ScrapedAt   time.Time
}

// SampleStore records successful scrape results in the samples table.
type SampleStore struct {
	db *DB

	// Now returns the current time. Replaced in tests.
	Now func() time.Time
}

// NewSampleStore creates a new SampleStore.
func NewSampleStore(db *DB) *SampleStore {
	return &SampleStore{db: db, Now: time.Now}
}

// hashContent returns the hex-encoded xxHash of content.
func hashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// Append inserts result as a new sample. Failed results carry no content
// and are rejected.
func (s *SampleStore) Append(ctx context.Context, result *llmscrape.ScrapeResult) error {
	if result == nil {
		return llmscrape.Errorf(llmscrape.EINVALID, "result required")
	}
	if err := result.Validate(); err != nil {
		return err
	}
	if result.Failed() {
		return llmscrape.Errorf(llmscrape.EINVALID, "failed results are not stored")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO samples (id, url, title, content, content_hash, scraped_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, uuid.New().String(), result.URL, result.Title, result.Content,
		hashContent(result.Content), s.Now().UTC().Format(time.RFC3339))

	return err
}

// FindSamples returns stored samples in insertion order. An empty url
// returns every sample; otherwise only samples scraped from url.
func (s *SampleStore) FindSamples(ctx context.Context, url string) ([]*Sample, error) {
	query := `SELECT id, url, title, content, content_hash, scraped_at FROM samples`
	var args []any
	if url != "" {
		query += ` WHERE url = ?`
		args = append(args, url)
	}
	query += ` ORDER BY rowid`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var samples []*Sample
	for rows.Next() {
		var sample Sample
		var scrapedAt string
		if err := rows.Scan(&sample.ID, &sample.URL, &sample.Title, &sample.Content,
			&sample.ContentHash, &scrapedAt); err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339, scrapedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse scraped_at: %w", err)
		}
		sample.ScrapedAt = t
		samples = append(samples, &sample)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return samples, nil
}
