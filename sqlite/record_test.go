package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/staffdir"
	"github.com/fwojciec/staffdir/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordService_WriteRecord(t *testing.T) {
	t.Parallel()

	t.Run("persists a record with all fields", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()

		record := &staffdir.StaffRecord{
			Name:       "Jane Smith",
			Email:      "jane@x.edu",
			Title:      "Head Coach",
			Phone:      "555-123-4567",
			Department: "Basketball",
			SourceURL:  "https://x.edu/staff",
		}

		require.NoError(t, svc.WriteRecord(ctx, record))

		got, err := svc.FindRecordsBySource(ctx, "https://x.edu/staff")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, record, got[0])
	})

	t.Run("returns error for invalid record", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRecordService(db)

		err := svc.WriteRecord(context.Background(), &staffdir.StaffRecord{Email: "jane@x.edu"})

		require.Error(t, err)
		assert.Equal(t, staffdir.EINVALID, staffdir.ErrorCode(err))
	})

	t.Run("assigns a hash and timestamp on insert", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()

		err := svc.WriteRecord(ctx, &staffdir.StaffRecord{
			Name:      "Jane Smith",
			SourceURL: "https://x.edu/staff",
		})
		require.NoError(t, err)

		var id, hash, scrapedAt string
		err = db.QueryRowContext(ctx, "SELECT id, record_hash, scraped_at FROM staff_records").
			Scan(&id, &hash, &scrapedAt)
		require.NoError(t, err)
		assert.NotEmpty(t, id)
		assert.Len(t, hash, 16, "xxhash hex digest")
		assert.NotEmpty(t, scrapedAt)
	})

	t.Run("identical records produce the same hash", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()

		record := &staffdir.StaffRecord{Name: "Jane Smith", SourceURL: "https://x.edu/staff"}
		require.NoError(t, svc.WriteRecord(ctx, record))
		require.NoError(t, svc.WriteRecord(ctx, record))

		rows, err := db.QueryContext(ctx, "SELECT DISTINCT record_hash FROM staff_records")
		require.NoError(t, err)
		defer rows.Close()

		var hashes []string
		for rows.Next() {
			var h string
			require.NoError(t, rows.Scan(&h))
			hashes = append(hashes, h)
		}
		require.NoError(t, rows.Err())
		assert.Len(t, hashes, 1)
	})
}

func TestRecordService_FindRecordsBySource(t *testing.T) {
	t.Parallel()

	t.Run("returns records in insertion order scoped to the page", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()

		for _, record := range []*staffdir.StaffRecord{
			{Name: "Jane", SourceURL: "https://a.edu/staff"},
			{Name: "Alex", SourceURL: "https://a.edu/staff"},
			{Name: "Sam", SourceURL: "https://b.edu/staff"},
		} {
			require.NoError(t, svc.WriteRecord(ctx, record))
		}

		got, err := svc.FindRecordsBySource(ctx, "https://a.edu/staff")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Jane", got[0].Name)
		assert.Equal(t, "Alex", got[1].Name)
	})

	t.Run("returns nil for an unknown page", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRecordService(db)

		got, err := svc.FindRecordsBySource(context.Background(), "https://unknown.edu/staff")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestRecordService_CountRecords(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := sqlite.NewRecordService(db)
	ctx := context.Background()

	count, err := svc.CountRecords(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, svc.WriteRecord(ctx, &staffdir.StaffRecord{Name: "Jane", SourceURL: "https://a.edu"}))
	require.NoError(t, svc.WriteRecord(ctx, &staffdir.StaffRecord{Name: "Alex", SourceURL: "https://a.edu"}))

	count, err = svc.CountRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
