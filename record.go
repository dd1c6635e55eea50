package staffdir

import "context"

// StaffRecord is the unit of output: one person extracted from a directory
// page. Name and SourceURL are required; every other field defaults to the
// empty string rather than being absent, so the output schema is fixed-width.
type StaffRecord struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Title      string `json:"title"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	SourceURL  string `json:"sourceUrl"`
}

// Validate returns an error if the record contains invalid fields.
func (r *StaffRecord) Validate() error {
	if r.Name == "" {
		return Errorf(EINVALID, "record name required")
	}
	if r.SourceURL == "" {
		return Errorf(EINVALID, "record source URL required")
	}
	return nil
}

// RecordWriter appends staff records to persistent output.
// Records are written incrementally as extraction proceeds; implementations
// are single-writer and need no concurrent-write discipline.
type RecordWriter interface {
	WriteRecord(ctx context.Context, record *StaffRecord) error
}

// Ensure MultiRecordWriter implements RecordWriter at compile time.
var _ RecordWriter = (*MultiRecordWriter)(nil)

// MultiRecordWriter fans each record out to every underlying writer.
// It is used to mirror the CSV output into a SQLite store.
type MultiRecordWriter struct {
	writers []RecordWriter
}

// NewMultiRecordWriter creates a MultiRecordWriter over the given writers.
func NewMultiRecordWriter(writers ...RecordWriter) *MultiRecordWriter {
	return &MultiRecordWriter{writers: writers}
}

// WriteRecord writes the record to each writer in order, stopping at the
// first failure.
func (m *MultiRecordWriter) WriteRecord(ctx context.Context, record *StaffRecord) error {
	for _, w := range m.writers {
		if err := w.WriteRecord(ctx, record); err != nil {
			return err
		}
	}
	return nil
}

// RunSummary accumulates batch-level statistics across a run.
type RunSummary struct {
	URLsProcessed    int
	RecordsExtracted int
	FailedOrEmpty    int
}
