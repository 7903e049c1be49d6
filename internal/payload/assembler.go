// Package payload converts validated drafts into the wire payloads the
// MamaGhar backend expects: flat root-level fields mirroring one locale for
// legacy consumers, plus a nested per-locale languages map. Assembly is pure;
// transport is the API client's job.
package payload

import (
	"strings"

	slug "github.com/goliatone/go-slug"

	"github.com/mamaghar/go-admin/internal/editor"
)

// Attachment is an optional binary part carried alongside the record fields.
// Leaving it nil in edit mode keeps whatever the server already stores.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Submission is the assembled wire payload for one record.
type Submission struct {
	Record    string
	Fields    map[string]string
	Languages map[string]map[string]string
	Image     *Attachment
}

// Assemble validates the draft and builds its submission payload. Validation
// failures are returned as-is (*editor.ValidationError) and leave the draft
// untouched; assembly itself is deterministic and side-effect-free, so two
// calls on the same draft state produce identical submissions.
func Assemble(draft *editor.Draft) (*Submission, error) {
	if draft == nil {
		return nil, editor.ErrSpecRequired
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	spec := draft.Spec()
	snap := draft.Snapshot()

	// Canonical-policy records submit every locale the author filled in;
	// active-policy records submit only the locale on screen. The same
	// locale also populates the flat root fields.
	base := snap.Canonical
	locales := submittedLocales(spec, snap)
	if spec.Policy() == editor.PolicyActiveLocale {
		base = snap.Active
		locales = []string{snap.Active}
	}

	slugValue := deriveSlug(spec, snap, base)

	sub := &Submission{
		Record:    snap.Record,
		Fields:    make(map[string]string),
		Languages: make(map[string]map[string]string, len(locales)),
	}

	for _, field := range spec.Fields() {
		switch field.Mode {
		case editor.ModePerLanguage:
			sub.Fields[field.Name] = snap.PerLanguage[base][field.Name]
		case editor.ModeShared:
			sub.Fields[field.Name] = snap.Shared[field.Name]
		case editor.ModeDerived:
			sub.Fields[field.Name] = slugValue
		}
	}

	for _, locale := range locales {
		entry := make(map[string]string)
		for _, field := range spec.Fields() {
			switch field.Mode {
			case editor.ModePerLanguage:
				entry[field.Name] = snap.PerLanguage[locale][field.Name]
			case editor.ModeShared:
				entry[field.Name] = snap.Shared[field.Name]
			case editor.ModeDerived:
				// The slug is global to the record, not per-locale.
				entry[field.Name] = slugValue
			}
		}
		sub.Languages[locale] = entry
	}

	return sub, nil
}

// WithImage attaches a binary part to the submission.
func (s *Submission) WithImage(att *Attachment) *Submission {
	s.Image = att
	return s
}

func submittedLocales(spec *editor.Spec, snap editor.Snapshot) []string {
	var required []string
	for _, field := range spec.Fields() {
		if field.Mode == editor.ModePerLanguage && field.Required {
			required = append(required, field.Name)
		}
	}

	var out []string
	for _, locale := range snap.Locales {
		if localeFilled(snap.PerLanguage[locale], required) {
			out = append(out, locale)
		}
	}
	return out
}

// localeFilled reports whether the locale carries a value for at least one
// required per-language field, which is what qualifies it for a languages
// entry.
func localeFilled(values map[string]string, required []string) bool {
	for _, name := range required {
		if strings.TrimSpace(values[name]) != "" {
			return true
		}
	}
	return false
}

func deriveSlug(spec *editor.Spec, snap editor.Snapshot, base string) string {
	derived := spec.DerivedFields()
	if len(derived) == 0 {
		return ""
	}
	field, _ := spec.Field(derived[0])
	value := editor.Slugify(snap.PerLanguage[base][field.Source])
	if normalized, err := slug.Normalize(value); err == nil && normalized != "" {
		return normalized
	}
	return value
}
