// Package fs provides file-based input and output for the scraping pipeline:
// the URL list reader, the CSV record sink, and the plain-text incident log.
package fs

import (
	"bufio"
	"context"
	"os"
	"strings"

	"github.com/fwojciec/staffdir"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Ensure URLSource implements staffdir.URLSource at compile time.
var _ staffdir.URLSource = (*URLSource)(nil)

// URLSource reads a URL list from a plain-text file, one URL per line.
// Lines that don't start with "http" (blank lines, comments, headers pasted
// in from a spreadsheet) are skipped. A UTF-8 BOM at the start of the file
// is tolerated.
type URLSource struct {
	path string
}

// NewURLSource creates a URLSource reading from the given file path.
func NewURLSource(path string) *URLSource {
	return &URLSource{path: path}
}

// ReadURLs returns the URLs from the file in input order.
func (s *URLSource) ReadURLs(ctx context.Context) ([]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, staffdir.Errorf(staffdir.ENOTFOUND, "input file not found: %s", s.path)
		}
		return nil, err
	}
	defer f.Close()

	reader := transform.NewReader(f, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	var urls []string
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(strings.ToLower(line), "http") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return urls, nil
}
