package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/staffdir"
	"github.com/fwojciec/staffdir/mock"
	staffslog "github.com/fwojciec/staffdir/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingRecordWriter_WriteRecord(t *testing.T) {
	t.Parallel()

	t.Run("logs successful writes at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.RecordWriter{
			WriteRecordFn: func(ctx context.Context, record *staffdir.StaffRecord) error {
				return nil
			},
		}

		writer := staffslog.NewLoggingRecordWriter(inner, logger)
		err := writer.WriteRecord(context.Background(), &staffdir.StaffRecord{
			Name:      "Jane Smith",
			SourceURL: "https://x.edu/staff",
		})

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "write record")
		assert.Contains(t, output, "name=\"Jane Smith\"")
		assert.Contains(t, output, "url=https://x.edu/staff")
		assert.Contains(t, output, "duration=")
	})

	t.Run("suppresses successful writes at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RecordWriter{
			WriteRecordFn: func(ctx context.Context, record *staffdir.StaffRecord) error {
				return nil
			},
		}

		writer := staffslog.NewLoggingRecordWriter(inner, logger)
		err := writer.WriteRecord(context.Background(), &staffdir.StaffRecord{
			Name:      "Jane Smith",
			SourceURL: "https://x.edu/staff",
		})

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})

	t.Run("logs errors regardless of level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RecordWriter{
			WriteRecordFn: func(ctx context.Context, record *staffdir.StaffRecord) error {
				return errors.New("disk full")
			},
		}

		writer := staffslog.NewLoggingRecordWriter(inner, logger)
		err := writer.WriteRecord(context.Background(), &staffdir.StaffRecord{
			Name:      "Jane Smith",
			SourceURL: "https://x.edu/staff",
		})

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"disk full\"")
	})
}
