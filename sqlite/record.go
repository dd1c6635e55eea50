package sqlite

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/staffdir"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ staffdir.RecordWriter = (*RecordService)(nil)

// RecordService persists staff records to SQLite. It satisfies
// staffdir.RecordWriter so it can be fanned out alongside the CSV sink.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// hashRecord computes an xxHash over the record's content fields and returns
// a hex string. Two rows with the same hash carry identical scraped data.
func hashRecord(record *staffdir.StaffRecord) string {
	h := xxhash.Sum64String(strings.Join([]string{
		record.Name,
		record.Email,
		record.Title,
		record.Phone,
		record.Department,
		record.SourceURL,
	}, "\x00"))
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, h)
	return hex.EncodeToString(b)
}

// WriteRecord inserts one staff record.
func (s *RecordService) WriteRecord(ctx context.Context, record *staffdir.StaffRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO staff_records (id, name, email, title, phone, department, source_url, record_hash, scraped_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, uuid.New().String(), record.Name, record.Email, record.Title, record.Phone,
		record.Department, record.SourceURL, hashRecord(record), time.Now().UTC().Format(time.RFC3339))

	return err
}

// FindRecordsBySource retrieves the records scraped from one page, in
// insertion order.
func (s *RecordService) FindRecordsBySource(ctx context.Context, sourceURL string) ([]*staffdir.StaffRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, email, title, phone, department, source_url
		FROM staff_records
		WHERE source_url = ?
		ORDER BY rowid ASC
	`, sourceURL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*staffdir.StaffRecord
	for rows.Next() {
		var record staffdir.StaffRecord
		if err := rows.Scan(&record.Name, &record.Email, &record.Title, &record.Phone,
			&record.Department, &record.SourceURL); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}

	return records, rows.Err()
}

// CountRecords returns the total number of stored records.
func (s *RecordService) CountRecords(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM staff_records").Scan(&count)
	return count, err
}
