// Package langset defines the fixed, ordered set of locales a record can be
// authored in. The first locale in a set is canonical: its values populate
// the flat root-level fields of submission payloads so legacy consumers keep
// working.
package langset

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptySet indicates a set was constructed without locales.
	ErrEmptySet = errors.New("langset: at least one locale is required")
	// ErrDuplicateLocale indicates the same locale code was supplied twice.
	ErrDuplicateLocale = errors.New("langset: duplicate locale code")
)

// Set is an immutable, ordered collection of locale codes.
type Set struct {
	codes []string
}

// Default returns the locales the MamaGhar backend ships with. English is
// canonical.
func Default() Set {
	set, _ := New("en", "gu", "hi")
	return set
}

// New builds a Set from the supplied codes, preserving order. Codes are
// trimmed and lowercased; empty or duplicate codes are rejected.
func New(codes ...string) (Set, error) {
	if len(codes) == 0 {
		return Set{}, ErrEmptySet
	}

	normalized := make([]string, 0, len(codes))
	seen := map[string]struct{}{}
	for _, code := range codes {
		trimmed := strings.ToLower(strings.TrimSpace(code))
		if trimmed == "" {
			return Set{}, ErrEmptySet
		}
		if _, ok := seen[trimmed]; ok {
			return Set{}, fmt.Errorf("%w: %q", ErrDuplicateLocale, trimmed)
		}
		seen[trimmed] = struct{}{}
		normalized = append(normalized, trimmed)
	}

	return Set{codes: normalized}, nil
}

// Canonical returns the first locale in the set.
func (s Set) Canonical() string {
	if len(s.codes) == 0 {
		return ""
	}
	return s.codes[0]
}

// Contains reports whether the code belongs to the set.
func (s Set) Contains(code string) bool {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, c := range s.codes {
		if c == code {
			return true
		}
	}
	return false
}

// Codes returns the locale codes in order. A defensive copy is returned so
// callers cannot mutate the set.
func (s Set) Codes() []string {
	out := make([]string, len(s.codes))
	copy(out, s.codes)
	return out
}

// Len returns the number of locales in the set.
func (s Set) Len() int {
	return len(s.codes)
}

// Display returns the human-readable label for the shipped locales, falling
// back to the raw code for anything else.
func Display(code string) string {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "en":
		return "English"
	case "gu":
		return "ગુજરાતી"
	case "hi":
		return "हिंदी"
	default:
		return code
	}
}
