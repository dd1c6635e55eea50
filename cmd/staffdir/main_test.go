package main_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	main "github.com/fwojciec/staffdir/cmd/staffdir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const staffPage = `<html><body>
<table class="s-table">
<tr class="s-table-body__row">
  <td><img src="avatar.jpg"></td>
  <td><a href="/j-smith">Jane Smith</a></td>
  <td>Head Coach</td>
  <td><a href="mailto:jane@x.edu">Email</a></td>
  <td>555-123-4567</td>
</tr>
<tr class="s-table-body__row">
  <td><img src="avatar.jpg"></td>
  <td>Alex Jones</td>
  <td>Assistant Coach</td>
</tr>
</table>
</body></html>`

func writeURLList(t *testing.T, urls ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "urls.txt")
	var buf bytes.Buffer
	for _, u := range urls {
		buf.WriteString(u + "\n")
	}
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("shows help when asked", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), []string{"--help"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "staffdir")
	})

	t.Run("errors without an input file", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), nil, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no input file")
	})

	t.Run("errors when the input file does not exist", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), []string{
			filepath.Join(dir, "missing.txt"),
			"--no-browser",
			"--output", filepath.Join(dir, "out.csv"),
			"--error-log", filepath.Join(dir, "errors.txt"),
		}, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read input")
	})

	t.Run("scrapes a staff page end to end", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(staffPage))
		}))
		defer server.Close()

		dir := t.TempDir()
		output := filepath.Join(dir, "out.csv")
		errorLog := filepath.Join(dir, "errors.txt")
		input := writeURLList(t, server.URL)

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), []string{
			input,
			"--no-browser",
			"--output", output,
			"--error-log", errorLog,
		}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "2 records extracted")

		csv, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Contains(t, string(csv), "Jane Smith")
		assert.Contains(t, string(csv), "jane@x.edu")
		assert.Contains(t, string(csv), "Alex Jones")

		errors, err := os.ReadFile(errorLog)
		require.NoError(t, err)
		assert.Empty(t, errors)
	})

	t.Run("logs unreachable pages and keeps going", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(staffPage))
		}))
		defer server.Close()

		dead := httptest.NewServer(http.HandlerFunc(nil))
		dead.Close() // guaranteed-unreachable address

		dir := t.TempDir()
		output := filepath.Join(dir, "out.csv")
		errorLog := filepath.Join(dir, "errors.txt")
		input := writeURLList(t, dead.URL, server.URL)

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), []string{
			input,
			"--no-browser",
			"--output", output,
			"--error-log", errorLog,
		}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "2 records extracted")
		assert.Contains(t, stdout.String(), "1 failed or empty")

		errors, err := os.ReadFile(errorLog)
		require.NoError(t, err)
		assert.Contains(t, string(errors), "Could not fetch URL")
		assert.Contains(t, string(errors), dead.URL)
	})

	t.Run("mirrors records to sqlite when --db is set", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(staffPage))
		}))
		defer server.Close()

		dir := t.TempDir()
		dbPath := filepath.Join(dir, "staff.db")
		input := writeURLList(t, server.URL)

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), []string{
			input,
			"--no-browser",
			"--output", filepath.Join(dir, "out.csv"),
			"--error-log", filepath.Join(dir, "errors.txt"),
			"--db", dbPath,
		}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "mirrored to")

		_, err = os.Stat(dbPath)
		require.NoError(t, err)
	})
}
