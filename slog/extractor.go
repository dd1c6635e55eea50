package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/staffdir"
)

// Ensure LoggingExtractor implements staffdir.Extractor.
var _ staffdir.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging of the winning strategy,
// record count, and timing.
type LoggingExtractor struct {
	next   staffdir.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next staffdir.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(html, sourceURL string) (result *staffdir.ExtractResult, err error) {
	defer func(begin time.Time) {
		if err != nil {
			e.logger.Error("extract",
				"url", sourceURL,
				"duration", time.Since(begin),
				"err", err.Error(),
			)
			return
		}
		e.logger.Info("extract",
			"url", sourceURL,
			"strategy", result.Strategy,
			"records", len(result.Records),
			"duration", time.Since(begin),
		)
	}(time.Now())

	return e.next.Extract(html, sourceURL)
}
