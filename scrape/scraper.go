// Package scrape contains the per-URL orchestrator and the batch runner that
// drive the staff-directory extraction pipeline.
package scrape

import (
	"context"
	"io"
	"log/slog"
	"net/url"

	"github.com/fwojciec/staffdir"
)

// DirectoryScraper runs the fetch → parse → strategy-chain control flow for a
// single URL. The browser fetcher is optional: when it is nil, pages whose
// HTTP fetch fails are reported as unreachable instead of falling back.
type DirectoryScraper struct {
	HTTP      staffdir.Fetcher
	Browser   staffdir.Fetcher // nil when no renderer is available
	Extractor staffdir.Extractor
	Records   staffdir.RecordWriter
	Incidents staffdir.IncidentWriter
	Limiter   staffdir.DomainLimiter // optional politeness limiter
	Logger    *slog.Logger           // optional
}

// ScrapeURL processes one URL end to end and returns the number of records
// written. Fetch, parse, and no-match failures are reported to the incident
// sink and yield (0, nil); only sink write failures surface as errors.
func (s *DirectoryScraper) ScrapeURL(ctx context.Context, pageURL string) (int, error) {
	logger := s.logger()

	if s.Limiter != nil {
		if u, err := url.Parse(pageURL); err == nil {
			if err := s.Limiter.Wait(ctx, u.Host); err != nil {
				return 0, err
			}
		}
	}

	html, fetched, err := s.fetch(ctx, pageURL)
	if err != nil {
		return 0, err
	}
	if !fetched {
		return 0, nil
	}

	result, err := s.Extractor.Extract(html, pageURL)
	if err != nil {
		logger.Warn("parse failed", "url", pageURL, "err", err)
		if err := s.Incidents.WriteIncident(&staffdir.Incident{
			Category: staffdir.IncidentParseFailed,
			URL:      pageURL,
			Reason:   staffdir.ErrorMessage(err),
		}); err != nil {
			return 0, err
		}
		return 0, nil
	}

	if len(result.Records) == 0 {
		logger.Warn("no data extracted", "url", pageURL, "attempted", result.Attempted)
		if err := s.Incidents.WriteIncident(&staffdir.Incident{
			Category:  staffdir.IncidentNoData,
			URL:       pageURL,
			Attempted: result.Attempted,
		}); err != nil {
			return 0, err
		}
		return 0, nil
	}

	logger.Info("extracted records",
		"url", pageURL,
		"strategy", result.Strategy,
		"count", len(result.Records),
	)

	written := 0
	for _, record := range result.Records {
		if err := s.Records.WriteRecord(ctx, record); err != nil {
			return written, err
		}
		written++
	}

	return written, nil
}

// fetch tries the fast HTTP path first and falls back to the browser
// renderer. Fetch failures are reported to the incident sink and return
// fetched=false with a nil error; a non-nil error means the incident sink
// itself failed.
func (s *DirectoryScraper) fetch(ctx context.Context, pageURL string) (html string, fetched bool, err error) {
	logger := s.logger()

	html, httpErr := s.HTTP.Fetch(ctx, pageURL)
	if httpErr == nil {
		return html, true, nil
	}

	if s.Browser == nil {
		logger.Warn("fetch failed, no renderer available", "url", pageURL, "err", httpErr)
		err := s.Incidents.WriteIncident(&staffdir.Incident{
			Category: staffdir.IncidentUnreachable,
			URL:      pageURL,
			Reason:   httpErr.Error(),
		})
		return "", false, err
	}

	logger.Debug("http fetch failed, falling back to renderer", "url", pageURL, "err", httpErr)

	html, rodErr := s.Browser.Fetch(ctx, pageURL)
	if rodErr != nil {
		logger.Warn("renderer fetch failed", "url", pageURL, "err", rodErr)
		err := s.Incidents.WriteIncident(&staffdir.Incident{
			Category: staffdir.IncidentRendererFailed,
			URL:      pageURL,
			Reason:   rodErr.Error(),
		})
		return "", false, err
	}

	return html, true, nil
}

func (s *DirectoryScraper) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
