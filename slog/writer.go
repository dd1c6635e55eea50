package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/staffdir"
)

// Ensure LoggingRecordWriter implements staffdir.RecordWriter.
var _ staffdir.RecordWriter = (*LoggingRecordWriter)(nil)

// LoggingRecordWriter wraps a RecordWriter with per-record logging.
// Successful writes log at debug level; a page can produce dozens of rows.
type LoggingRecordWriter struct {
	next   staffdir.RecordWriter
	logger *slog.Logger
}

// NewLoggingRecordWriter creates a new LoggingRecordWriter.
func NewLoggingRecordWriter(next staffdir.RecordWriter, logger *slog.Logger) *LoggingRecordWriter {
	return &LoggingRecordWriter{next: next, logger: logger}
}

// WriteRecord delegates to the wrapped writer and logs the outcome.
func (w *LoggingRecordWriter) WriteRecord(ctx context.Context, record *staffdir.StaffRecord) (err error) {
	defer func(begin time.Time) {
		if err != nil {
			w.logger.Error("write record",
				"name", record.Name,
				"url", record.SourceURL,
				"duration", time.Since(begin),
				"err", err.Error(),
			)
			return
		}
		w.logger.Debug("write record",
			"name", record.Name,
			"url", record.SourceURL,
			"duration", time.Since(begin),
		)
	}(time.Now())

	return w.next.WriteRecord(ctx, record)
}
