package fixture

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrInvalidArgument is returned when a required name part is missing.
var ErrInvalidArgument = errors.New("invalid argument")

// FullName trims first and last, title-cases each word of both, and joins
// them with a single space.
//
// It fails with ErrInvalidArgument if either part is empty after trimming.
func FullName(first, last string) (string, error) {
	f := strings.TrimSpace(first)
	l := strings.TrimSpace(last)
	if f == "" || l == "" {
		return "", fmt.Errorf("%w: first and last must be non-empty", ErrInvalidArgument)
	}
	return titleWords(f) + " " + titleWords(l), nil
}

// titleWords upper-cases the first letter of every whitespace-separated word
// and lower-cases the rest of it. Whitespace between words is kept as is.
func titleWords(s string) string {
	// Casers hold state and are not safe for concurrent use.
	lower := cases.Lower(language.Und)

	var b strings.Builder
	b.Grow(len(s))
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if unicode.IsSpace(r) {
			b.WriteRune(r)
			s = s[size:]
			continue
		}
		end := strings.IndexFunc(s, unicode.IsSpace)
		if end < 0 {
			end = len(s)
		}
		b.WriteRune(unicode.ToTitle(r))
		b.WriteString(lower.String(s[size:end]))
		s = s[end:]
	}
	return b.String()
}
