package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// phonePattern matches typical 10-digit North American phone numbers with
// optional hyphen, dot, or space separators between the 3-3-4 digit groups.
// The word boundaries reject a 10-digit window inside a longer digit run.
var phonePattern = regexp.MustCompile(`\b\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b`)

const mailtoPrefix = "mailto:"

// FindContactInfo searches an ordered sequence of document fragments (table
// cells, list details) for the first email and the first phone number. The
// two searches are independent: the email can come from a later fragment
// than the phone. Returns empty strings for whatever was not found.
func FindContactInfo(fragments []*goquery.Selection) (email, phone string) {
	for _, frag := range fragments {
		if email == "" {
			email = findEmail(frag)
		}
		if phone == "" {
			phone = phonePattern.FindString(normalizedText(frag))
		}
		if email != "" && phone != "" {
			break
		}
	}
	return email, phone
}

// findEmail locates the first mailto link in the fragment. The link's visible
// text is preferred when it looks like an address; otherwise the address is
// decoded from the link target by stripping the mailto prefix.
func findEmail(frag *goquery.Selection) string {
	var email string
	frag.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		if !strings.HasPrefix(strings.ToLower(href), mailtoPrefix) {
			return true
		}
		if text := strings.TrimSpace(a.Text()); strings.Contains(text, "@") {
			email = text
		} else {
			email = href[len(mailtoPrefix):]
		}
		return false
	})
	return email
}

// normalizedText returns the selection's text with whitespace runs collapsed
// to single spaces and surrounding whitespace trimmed.
func normalizedText(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}

// linkOrText returns the text of the first link inside the cell when one
// exists, otherwise the cell's own text. Directory tables commonly wrap the
// name in a profile link.
func linkOrText(cell *goquery.Selection) string {
	if a := cell.Find("a").First(); a.Length() > 0 {
		return normalizedText(a)
	}
	return normalizedText(cell)
}

// selections flattens a multi-element selection into per-element selections,
// preserving document order.
func selections(s *goquery.Selection) []*goquery.Selection {
	out := make([]*goquery.Selection, 0, s.Length())
	s.Each(func(_ int, sel *goquery.Selection) {
		out = append(out, sel)
	})
	return out
}
