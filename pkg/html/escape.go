package html

import "strings"

// The attribute escaper additionally covers whitespace that could
// terminate an unquoted or mangled attribute value.
var (
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)

	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
		"\n", "&#10;",
		"\r", "&#13;",
		"\t", "&#9;",
	)
)

// escapeHTML makes text safe for element content.
func escapeHTML(s string) string {
	return textEscaper.Replace(s)
}

// escapeAttr makes text safe for a double-quoted attribute value.
func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
