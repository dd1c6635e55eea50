package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/staffdir"
)

// Ensure SidearmTableStrategy implements Strategy at compile time.
var _ Strategy = (*SidearmTableStrategy)(nil)

// sidearmRowClass is the row class convention used by Sidearm Sports staff
// directory tables, matched as a substring of the class attribute.
const sidearmRowClass = "s-table-body__row"

// SidearmTableStrategy extracts staff from the table layout used by Sidearm
// Sports athletics sites. By convention the second cell holds the name
// (usually as a profile link) and the third holds the title. The format does
// not expose a department per row, so Department is always empty.
type SidearmTableStrategy struct{}

// NewSidearmTableStrategy creates a new SidearmTableStrategy.
func NewSidearmTableStrategy() *SidearmTableStrategy {
	return &SidearmTableStrategy{}
}

// Name returns the strategy's identifier.
func (s *SidearmTableStrategy) Name() string {
	return "sidearm-table"
}

// Extract returns one record per matching row that yields a non-empty name.
func (s *SidearmTableStrategy) Extract(doc *goquery.Document, sourceURL string) []*staffdir.StaffRecord {
	var records []*staffdir.StaffRecord

	doc.Find(`tr[class*="` + sidearmRowClass + `"]`).Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		// Expect at least name and title columns; the first is usually a photo.
		if cells.Length() < 2 {
			return
		}

		name := linkOrText(cells.Eq(1))
		if name == "" {
			return
		}

		var title string
		if cells.Length() > 2 {
			title = normalizedText(cells.Eq(2))
		}

		email, phone := FindContactInfo(selections(cells))

		records = append(records, &staffdir.StaffRecord{
			Name:      name,
			Email:     email,
			Title:     title,
			Phone:     phone,
			SourceURL: sourceURL,
		})
	})

	return records
}
