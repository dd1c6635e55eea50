package staffdir_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/staffdir"
	"github.com/fwojciec/staffdir/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaffRecord_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		record   staffdir.StaffRecord
		wantCode string
	}{
		{
			name:   "valid with only required fields",
			record: staffdir.StaffRecord{Name: "Jane Doe", SourceURL: "https://example.com/staff"},
		},
		{
			name:     "missing name",
			record:   staffdir.StaffRecord{SourceURL: "https://example.com/staff"},
			wantCode: staffdir.EINVALID,
		},
		{
			name:     "missing source URL",
			record:   staffdir.StaffRecord{Name: "Jane Doe"},
			wantCode: staffdir.EINVALID,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.record.Validate()

			if tt.wantCode == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, staffdir.ErrorCode(err))
		})
	}
}

func TestMultiRecordWriter_WriteRecord(t *testing.T) {
	t.Parallel()

	t.Run("writes to all writers in order", func(t *testing.T) {
		t.Parallel()

		var got []string
		first := &mock.RecordWriter{
			WriteRecordFn: func(ctx context.Context, record *staffdir.StaffRecord) error {
				got = append(got, "first:"+record.Name)
				return nil
			},
		}
		second := &mock.RecordWriter{
			WriteRecordFn: func(ctx context.Context, record *staffdir.StaffRecord) error {
				got = append(got, "second:"+record.Name)
				return nil
			},
		}

		w := staffdir.NewMultiRecordWriter(first, second)
		err := w.WriteRecord(context.Background(), &staffdir.StaffRecord{Name: "Jane", SourceURL: "https://x.com"})

		require.NoError(t, err)
		assert.Equal(t, []string{"first:Jane", "second:Jane"}, got)
	})

	t.Run("stops at first failure", func(t *testing.T) {
		t.Parallel()

		called := false
		first := &mock.RecordWriter{
			WriteRecordFn: func(ctx context.Context, record *staffdir.StaffRecord) error {
				return errors.New("disk full")
			},
		}
		second := &mock.RecordWriter{
			WriteRecordFn: func(ctx context.Context, record *staffdir.StaffRecord) error {
				called = true
				return nil
			},
		}

		w := staffdir.NewMultiRecordWriter(first, second)
		err := w.WriteRecord(context.Background(), &staffdir.StaffRecord{Name: "Jane", SourceURL: "https://x.com"})

		require.Error(t, err)
		assert.False(t, called)
	})
}
