package scrape

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fwojciec/staffdir"
)

// BatchRunner iterates a URL list in input order and aggregates per-URL
// outcomes into a run summary. Each URL is processed inside a failure
// boundary so that one bad URL never stops the batch.
type BatchRunner struct {
	Scraper   *DirectoryScraper
	Incidents staffdir.IncidentWriter
	Logger    *slog.Logger // optional
}

// Run processes the URLs sequentially and returns the accumulated summary.
// It stops early only on context cancellation, returning the summary so far
// alongside the context error.
func (b *BatchRunner) Run(ctx context.Context, urls []string) (*staffdir.RunSummary, error) {
	logger := b.logger()
	summary := &staffdir.RunSummary{}

	for i, pageURL := range urls {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		logger.Info("processing url", "url", pageURL, "position", i+1, "total", len(urls))

		count, err := b.scrapeOne(ctx, pageURL)
		summary.URLsProcessed++

		if err != nil {
			logger.Error("unexpected error processing url", "url", pageURL, "err", err)
			// A failing incident sink at this point leaves nowhere to report;
			// the log line above is the record of it.
			_ = b.Incidents.WriteIncident(&staffdir.Incident{
				Category: staffdir.IncidentUnexpected,
				URL:      pageURL,
				Reason:   err.Error(),
			})
			summary.FailedOrEmpty++
			continue
		}

		if count > 0 {
			summary.RecordsExtracted += count
		} else {
			summary.FailedOrEmpty++
		}
	}

	logger.Info("batch complete",
		"urls", summary.URLsProcessed,
		"records", summary.RecordsExtracted,
		"failed_or_empty", summary.FailedOrEmpty,
	)

	return summary, nil
}

// scrapeOne is the per-URL failure boundary: a panic while processing a
// single URL is converted into an error and absorbed by the batch.
func (b *BatchRunner) scrapeOne(ctx context.Context, pageURL string) (count int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return b.Scraper.ScrapeURL(ctx, pageURL)
}

func (b *BatchRunner) logger() *slog.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
