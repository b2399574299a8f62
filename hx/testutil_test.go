package hx

import (
	"strings"
	"testing"
)

// extractAttrValue returns the raw (still escaped) value of attr in the
// rendered tag s.
func extractAttrValue(t *testing.T, s string, attr string) string {
	t.Helper()

	needle := " " + attr + `="`
	idx := strings.Index(s, needle)
	if idx == -1 {
		t.Fatalf("expected %q in %q", needle, s)
	}

	start := idx + len(needle)
	end := strings.IndexByte(s[start:], '"')
	if end == -1 {
		t.Fatalf("unterminated attribute %q in %q", attr, s)
	}
	return s[start : start+end]
}
