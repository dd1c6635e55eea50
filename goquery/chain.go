// Package goquery implements the extraction-strategy chain over parsed HTML
// documents using github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/staffdir"
)

// Strategy recognizes one structural pattern in a parsed document and maps it
// onto staff records. Strategies never fail on malformed markup; a document
// without the strategy's structural anchor yields an empty slice.
type Strategy interface {
	// Name returns the strategy's identifier (e.g., "sidearm-table").
	Name() string

	// Extract returns the records found in the document, in page order.
	Extract(doc *goquery.Document, sourceURL string) []*staffdir.StaffRecord
}

// Ensure Chain implements staffdir.Extractor at compile time.
var _ staffdir.Extractor = (*Chain)(nil)

// Chain runs strategies in fixed priority order and accepts the first one
// that yields at least one record.
//
// A strategy returning zero records is indistinguishable from a strategy
// whose structure matched but genuinely held no staff; the chain treats both
// as "try the next strategy". This can fall back to a less appropriate
// strategy on a valid-but-empty page, which is accepted behavior.
type Chain struct {
	strategies []Strategy
}

// NewChain creates a Chain over the given strategies.
// With no arguments it uses the default order: sidearm-table, generic-table,
// definition-list.
func NewChain(strategies ...Strategy) *Chain {
	if len(strategies) == 0 {
		strategies = []Strategy{
			NewSidearmTableStrategy(),
			NewGenericTableStrategy(),
			NewDefinitionListStrategy(),
		}
	}
	return &Chain{strategies: strategies}
}

// Extract parses the HTML once and folds over the strategy list, stopping at
// the first non-empty result.
func (c *Chain) Extract(html string, sourceURL string) (*staffdir.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, staffdir.Errorf(staffdir.EINVALID, "failed to parse HTML: %v", err)
	}

	result := &staffdir.ExtractResult{}
	for _, s := range c.strategies {
		result.Attempted = append(result.Attempted, s.Name())
		if records := s.Extract(doc, sourceURL); len(records) > 0 {
			result.Records = records
			result.Strategy = s.Name()
			break
		}
	}
	return result, nil
}
