package fixture

import "regexp"

// DefaultEmailDomain is used by RandomEmail when no domain is given.
const DefaultEmailDomain = "example.com"

// emailRegex matches a practical subset of addresses: a local part of
// atext characters and dots, then one or more "label." groups, then a
// TLD of at least two letters. Every label needs a character before its
// dot, so "a@b..com" and "a@.com" are rejected.
var emailRegex = regexp.MustCompile(
	"^[A-Za-z0-9.!#$%&'*+/=?^_`{|}~-]+@" +
		`(?:[A-Za-z0-9-]+\.)+[A-Za-z]{2,}$`,
)

// IsValidEmail reports whether s looks like an email address.
// No trimming or case folding is applied; surrounding whitespace makes s invalid.
func IsValidEmail(s string) bool {
	if s == "" {
		return false
	}
	return emailRegex.MatchString(s)
}

// RandomEmail returns "<username>@<domain>" with the username taken from gen.
// An empty domain falls back to DefaultEmailDomain. The result is not
// validated.
func RandomEmail(gen Generator, domain string) string {
	if domain == "" {
		domain = DefaultEmailDomain
	}
	return gen.Username() + "@" + domain
}
