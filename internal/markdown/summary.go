// Package markdown renders the small markdown subset allowed in item
// summaries: **bold** spans and line breaks. Everything else stays as
// escaped literal text.
package markdown

import (
	"regexp"
	"strings"
)

var (
	escaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
	boldSpan = regexp.MustCompile(`\*\*(.+?)\*\*`)
)

// EscapeHTML escapes &, <, >, " and '.
func EscapeHTML(s string) string {
	return escaper.Replace(s)
}

// RenderSummary escapes text and then converts **bold** spans to <strong>
// and newlines to <br/>. Escaping runs first so no input can produce tags
// other than those two.
func RenderSummary(text string) string {
	if text == "" {
		return ""
	}

	out := EscapeHTML(text)
	out = boldSpan.ReplaceAllString(out, "<strong>$1</strong>")
	return strings.ReplaceAll(out, "\n", "<br/>")
}
