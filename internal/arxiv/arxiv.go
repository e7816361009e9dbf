// Package arxiv recognises arXiv identifiers in loosely formatted fields
// and builds the canonical abstract and PDF links for them.
package arxiv

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	bareID = regexp.MustCompile(`(?i)^(?:arxiv:)?(\d{4}\.\d{4,5}(?:v\d+)?)$`)
	urlID  = regexp.MustCompile(`(?i)arxiv\.org/(?:abs|pdf)/(\d{4}\.\d{4,5}(?:v\d+)?)`)
)

// ExtractID returns the arXiv identifier found in v, or "" when v is not a
// string or carries no recognisable identifier.
//
// Accepted forms are a bare token such as "2301.01234", "arXiv:2301.01234v2",
// or any text containing an arxiv.org/abs/ or arxiv.org/pdf/ path.
func ExtractID(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	if m := bareID.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	if m := urlID.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return ""
}

// AbsURL returns the abstract page link for id.
func AbsURL(id string) string {
	return fmt.Sprintf("https://arxiv.org/abs/%s", id)
}

// PDFURL returns the PDF link for id.
func PDFURL(id string) string {
	return fmt.Sprintf("https://arxiv.org/pdf/%s.pdf", id)
}
