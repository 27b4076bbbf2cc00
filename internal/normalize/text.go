package normalize

import (
	"strings"

	"github.com/gyeh/schedh/internal/xmldoc"
)

// Text returns the trimmed text content of el, or nil when el is absent or
// has no non-whitespace text. It never returns a pointer to "".
func Text(el *xmldoc.Element) *string {
	if el == nil {
		return nil
	}
	return Str(el.Text())
}

// Str trims s and returns nil if the result is empty.
func Str(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// Lit returns a pointer to s unchanged, for literal values such as "USA".
func Lit(s string) *string {
	return &s
}
