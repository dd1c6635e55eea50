package staffdir

// ExtractResult holds the outcome of running the strategy chain against one
// page.
type ExtractResult struct {
	// Records extracted by the accepting strategy, in page order.
	Records []*StaffRecord

	// Strategy is the name of the strategy that produced the records.
	// Empty when no strategy yielded any records.
	Strategy string

	// Attempted lists the names of the strategies that were run, in order.
	Attempted []string
}

// Extractor maps raw HTML onto staff records.
// Implementations hide document parsing and strategy selection.
type Extractor interface {
	// Extract parses the HTML and attempts extraction strategies against it.
	// A page that parses but matches no known structure returns a result
	// with zero records and a nil error.
	Extract(html string, sourceURL string) (*ExtractResult, error)
}
