package goquery

import (
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/staffdir"
)

// Ensure GenericTableStrategy implements Strategy at compile time.
var _ Strategy = (*GenericTableStrategy)(nil)

// maxHeadingRunes bounds how long a spanning cell's text can be before it is
// assumed to be data rather than a category heading.
const maxHeadingRunes = 50

// defaultTableCategory is assigned to rows appearing before any heading row.
const defaultTableCategory = "General"

// GenericTableStrategy extracts staff from the first <table> on the page.
// Rows that look like category headings update a running category which is
// inherited by the data rows that follow; a leading avatar/photo cell is
// skipped when detected.
type GenericTableStrategy struct{}

// NewGenericTableStrategy creates a new GenericTableStrategy.
func NewGenericTableStrategy() *GenericTableStrategy {
	return &GenericTableStrategy{}
}

// Name returns the strategy's identifier.
func (s *GenericTableStrategy) Name() string {
	return "generic-table"
}

// Extract folds over the table's rows, threading the current category
// through, and returns one record per data row with a non-empty name.
func (s *GenericTableStrategy) Extract(doc *goquery.Document, sourceURL string) []*staffdir.StaffRecord {
	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil
	}

	var records []*staffdir.StaffRecord
	category := defaultTableCategory

	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		// Skip header rows (th-only) and empty rows.
		if cells.Length() == 0 {
			return
		}

		if heading, ok := headingText(cells); ok {
			if heading != "" {
				category = heading
			}
			return
		}

		// A leading image cell is presumed to be an avatar/photo column.
		start := 0
		if cells.Eq(0).Find("img").Length() > 0 && cells.Length() > 1 {
			start = 1
		}

		name := linkOrText(cells.Eq(start))
		if name == "" {
			return
		}

		var title string
		if cells.Length() > start+1 {
			title = normalizedText(cells.Eq(start + 1))
		}

		email, phone := FindContactInfo(selections(cells))

		records = append(records, &staffdir.StaffRecord{
			Name:       name,
			Email:      email,
			Title:      title,
			Phone:      phone,
			Department: category,
			SourceURL:  sourceURL,
		})
	})

	return records
}

// headingText reports whether the row is a category heading: either a single
// cell with non-empty text, or a first cell that spans multiple columns with
// short, link-free text. The returned text may be empty for a spanning cell,
// in which case the running category is left unchanged.
func headingText(cells *goquery.Selection) (string, bool) {
	first := cells.Eq(0)
	text := normalizedText(first)

	if cells.Length() == 1 && text != "" {
		return text, true
	}

	if _, spans := first.Attr("colspan"); spans &&
		utf8.RuneCountInString(text) < maxHeadingRunes &&
		first.Find("a").Length() == 0 {
		return text, true
	}

	return "", false
}
