package staffdir

import "context"

// URLSource provides the list of directory URLs to scrape.
// Implementations hide file formats and input decoding.
type URLSource interface {
	// ReadURLs returns the URLs in input order.
	// Returns ENOTFOUND if the underlying source does not exist.
	ReadURLs(ctx context.Context) ([]string, error)
}
