package rod

import (
	"context"
	"time"

	"github.com/fwojciec/staffdir"
	"github.com/go-rod/rod/lib/proto"
)

// Defaults for rendered fetches.
const (
	// DefaultFetchTimeout bounds navigation and the wait for page readiness.
	DefaultFetchTimeout = 15 * time.Second

	// DefaultSettleDelay is the fixed post-load wait that lets client-side
	// rendering finish populating the page before capture.
	DefaultSettleDelay = 2 * time.Second
)

// Ensure Fetcher implements staffdir.Fetcher at compile time.
var _ staffdir.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// The underlying browser session is created once and reused across all URLs
// in a run.
type Fetcher struct {
	manager      *BrowserManager
	fetchTimeout time.Duration
	settleDelay  time.Duration
	userAgent    string
	maxPages     int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the bounded wait for navigation and page readiness.
// Defaults to DefaultFetchTimeout (15s) if not specified.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.fetchTimeout = d
	}
}

// WithSettleDelay sets the fixed post-load delay before HTML capture.
// Defaults to DefaultSettleDelay (2s) if not specified.
func WithSettleDelay(d time.Duration) Option {
	return func(f *Fetcher) {
		f.settleDelay = d
	}
}

// WithUserAgent overrides the browser's user agent for every page.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxPages sets the page count after which the browser is recycled.
func WithMaxPages(n int64) Option {
	return func(f *Fetcher) {
		f.maxPages = n
	}
}

// NewFetcher creates a new Fetcher backed by a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		fetchTimeout: DefaultFetchTimeout,
		settleDelay:  DefaultSettleDelay,
		maxPages:     DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(f)
	}

	manager, err := NewBrowserManager(WithManagerMaxPages(f.maxPages))
	if err != nil {
		return nil, err
	}
	f.manager = manager

	return f, nil
}

// Fetch navigates to the URL, waits for the document body to be present,
// applies the settle delay, and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	// Check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := f.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	// Set context for all subsequent operations
	page = page.Context(ctx)

	if f.userAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: f.userAgent}); err != nil {
			return "", err
		}
	}

	// Directory pages vary too much to wait on any specific widget; the body
	// element is the one safe readiness signal.
	waitPage := page.Timeout(f.fetchTimeout)
	if err := waitPage.Navigate(url); err != nil {
		return "", err
	}
	if _, err := waitPage.Element("body"); err != nil {
		return "", err
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(f.settleDelay):
	}

	html, err := page.HTML()
	if err != nil {
		return "", err
	}

	f.manager.IncrementPageCount()
	return html, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	return f.manager.Close()
}
