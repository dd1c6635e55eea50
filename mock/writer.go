package mock

import (
	"context"

	"github.com/fwojciec/staffdir"
)

var _ staffdir.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of staffdir.RecordWriter.
type RecordWriter struct {
	WriteRecordFn func(ctx context.Context, record *staffdir.StaffRecord) error
}

func (w *RecordWriter) WriteRecord(ctx context.Context, record *staffdir.StaffRecord) error {
	return w.WriteRecordFn(ctx, record)
}

var _ staffdir.IncidentWriter = (*IncidentWriter)(nil)

// IncidentWriter is a mock implementation of staffdir.IncidentWriter.
type IncidentWriter struct {
	WriteIncidentFn func(incident *staffdir.Incident) error
}

func (w *IncidentWriter) WriteIncident(incident *staffdir.Incident) error {
	return w.WriteIncidentFn(incident)
}
