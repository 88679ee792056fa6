package llmscrape

import "context"

// ResultWriter persists scrape results.
type ResultWriter interface {
	// Append adds the result to the end of the underlying storage.
	Append(ctx context.Context, result *ScrapeResult) error
}

// MultiResultWriter returns a ResultWriter that appends to each writer in
// turn. Nil writers are skipped. The first error stops the sequence.
func MultiResultWriter(writers ...ResultWriter) ResultWriter {
	all := make([]ResultWriter, 0, len(writers))
	for _, w := range writers {
		if w != nil {
			all = append(all, w)
		}
	}
	return &multiResultWriter{writers: all}
}

type multiResultWriter struct {
	writers []ResultWriter
}

func (m *multiResultWriter) Append(ctx context.Context, result *ScrapeResult) error {
	for _, w := range m.writers {
		if err := w.Append(ctx, result); err != nil {
			return err
		}
	}
	return nil
}
