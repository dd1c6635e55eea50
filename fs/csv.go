package fs

import (
	"context"
	"encoding/csv"
	"os"

	"github.com/fwojciec/staffdir"
)

// csvHeader is the fixed column order of the output file.
var csvHeader = []string{"Name", "Email", "Position/Title", "Phone", "Sport/Department", "Source URL"}

// Ensure CSVRecordWriter implements staffdir.RecordWriter at compile time.
var _ staffdir.RecordWriter = (*CSVRecordWriter)(nil)

// CSVRecordWriter appends staff records to a CSV file. The writer flushes
// after every record so that a crash mid-batch loses at most the record
// being written.
type CSVRecordWriter struct {
	f *os.File
	w *csv.Writer
}

// NewCSVRecordWriter creates the output file (truncating any existing file)
// and writes the header row.
func NewCSVRecordWriter(path string) (*CSVRecordWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		f.Close()
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return nil, err
	}

	return &CSVRecordWriter{f: f, w: w}, nil
}

// WriteRecord validates the record and appends it as one CSV row.
func (c *CSVRecordWriter) WriteRecord(ctx context.Context, record *staffdir.StaffRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	row := []string{
		record.Name,
		record.Email,
		record.Title,
		record.Phone,
		record.Department,
		record.SourceURL,
	}
	if err := c.w.Write(row); err != nil {
		return err
	}
	c.w.Flush()
	return c.w.Error()
}

// Close flushes any buffered output and closes the file.
func (c *CSVRecordWriter) Close() error {
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		c.f.Close()
		return err
	}
	return c.f.Close()
}
