package render

import (
	"io"
	"strings"
)

var (
	// textEscaper escapes text for safe inclusion in HTML content.
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)

	// attrEscaper also escapes whitespace that could break attribute parsing.
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

func escapeHTML(s string) string { return textEscaper.Replace(s) }

func escapeAttr(s string) string { return attrEscaper.Replace(s) }

// writeEscaped writes s to w with the escaping rules for text content or,
// when attr is set, for a double-quoted attribute value.
func writeEscaped(w io.Writer, s string, attr bool) error {
	var err error
	if attr {
		_, err = attrEscaper.WriteString(w, s)
	} else {
		_, err = textEscaper.WriteString(w, s)
	}
	return err
}
