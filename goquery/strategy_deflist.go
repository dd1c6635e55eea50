package goquery

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/staffdir"
)

// Ensure DefinitionListStrategy implements Strategy at compile time.
var _ Strategy = (*DefinitionListStrategy)(nil)

// defaultListCategory is assigned within a list before any <dt> is seen.
const defaultListCategory = "Unknown Department"

// titleSeparators matches leftover separators (comma, hyphens, whitespace) at
// the start of a title after the name/title split.
var titleSeparators = regexp.MustCompile(`^[,\-–\s]+`)

// DefinitionListStrategy extracts staff from <dl> structures, treating each
// <dt> as a category heading and each <dd> as one staff entry. Contact info
// is stripped out of the detail text before it is split into name and title.
//
// The name/title split happens at the first whitespace run, so names with
// internal whitespace ("Dr. Jane Doe") lose everything after the first token
// to the title. Known-fragile heuristic, accepted as best effort.
type DefinitionListStrategy struct{}

// NewDefinitionListStrategy creates a new DefinitionListStrategy.
func NewDefinitionListStrategy() *DefinitionListStrategy {
	return &DefinitionListStrategy{}
}

// Name returns the strategy's identifier.
func (s *DefinitionListStrategy) Name() string {
	return "definition-list"
}

// Extract processes each definition list independently, threading the current
// category through its terms and details in document order.
func (s *DefinitionListStrategy) Extract(doc *goquery.Document, sourceURL string) []*staffdir.StaffRecord {
	var records []*staffdir.StaffRecord

	doc.Find("dl").Each(func(_ int, dl *goquery.Selection) {
		category := defaultListCategory

		dl.Find("dt, dd").Each(func(_ int, el *goquery.Selection) {
			if goquery.NodeName(el) == "dt" {
				if text := normalizedText(el); text != "" {
					category = text
				}
				return
			}

			text := normalizedText(el)
			if text == "" {
				return
			}

			email, phone := FindContactInfo([]*goquery.Selection{el})

			// Remove the found contact substrings so they don't pollute the
			// name/title split.
			cleaned := text
			if email != "" {
				cleaned = strings.ReplaceAll(cleaned, email, "")
			}
			if phone != "" {
				cleaned = strings.ReplaceAll(cleaned, phone, "")
			}

			name, title := splitNameTitle(cleaned)
			if name == "" {
				return
			}
			title = strings.TrimSpace(titleSeparators.ReplaceAllString(title, ""))

			records = append(records, &staffdir.StaffRecord{
				Name:       name,
				Email:      email,
				Title:      title,
				Phone:      phone,
				Department: category,
				SourceURL:  sourceURL,
			})
		})
	})

	return records
}

// splitNameTitle splits text at the first whitespace run into at most two
// parts, ignoring leading and trailing whitespace.
func splitNameTitle(text string) (name, title string) {
	text = strings.TrimSpace(text)
	if i := strings.IndexFunc(text, unicode.IsSpace); i >= 0 {
		return text[:i], strings.TrimSpace(text[i:])
	}
	return text, ""
}
