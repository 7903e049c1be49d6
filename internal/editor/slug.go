package editor

import (
	"regexp"
	"strings"
)

var (
	slugWhitespace = regexp.MustCompile(`\s+`)
	slugInvalid    = regexp.MustCompile(`[^a-z0-9_-]+`)
	slugHyphenRuns = regexp.MustCompile(`-{2,}`)
)

// Slugify derives the URL-safe identifier carried by geographic records:
// lowercase, trimmed, internal whitespace collapsed to single hyphens,
// everything outside [a-z0-9_-] stripped, repeated hyphens collapsed.
//
// The function is pure and idempotent, and the result is deterministic for a
// given name: slug uniqueness across records is the backend's concern, not
// the client's.
func Slugify(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	v = slugWhitespace.ReplaceAllString(v, "-")
	v = slugInvalid.ReplaceAllString(v, "")
	return slugHyphenRuns.ReplaceAllString(v, "-")
}
