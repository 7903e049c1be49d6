package editor

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mamaghar/go-admin/internal/langset"
)

var (
	ErrSpecRequired  = errors.New("editor: field spec is required")
	ErrUnknownLocale = errors.New("editor: locale is not part of the language set")
	ErrUnknownField  = errors.New("editor: field is not declared by the spec")
	ErrDerivedField  = errors.New("editor: derived fields cannot be edited directly")
)

// ValidationError reports the required fields still empty at submit time.
// It is always recoverable: the draft is left untouched so the user can fill
// the gaps and retry.
type ValidationError struct {
	Record  string
	Locale  string
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("editor: %s draft is missing required fields %s for locale %q",
		e.Record, strings.Join(e.Missing, ", "), e.Locale)
}

// Draft is the transient state of one record being created or edited. It
// lives only for the duration of an open editor session: it is reset on
// successful submit and discarded on cancel, and nothing about it is ever
// persisted.
//
// A Draft is not safe for concurrent use; the owning session serializes
// access.
type Draft struct {
	spec    *Spec
	locales langset.Set
	active  string

	perLanguage map[string]map[string]string
	shared      map[string]string

	// locks maps a shared field to the locale that first set it. A locked
	// shared field is writable only from its owning locale; edits arriving
	// from any other locale are ignored. Locks never outlive the draft.
	locks map[string]string
}

// NewDraft opens an empty draft with the canonical locale active.
func NewDraft(spec *Spec, locales langset.Set) (*Draft, error) {
	if spec == nil {
		return nil, ErrSpecRequired
	}
	if locales.Len() == 0 {
		return nil, langset.ErrEmptySet
	}

	d := &Draft{
		spec:        spec,
		locales:     locales,
		active:      locales.Canonical(),
		perLanguage: make(map[string]map[string]string, locales.Len()),
		shared:      make(map[string]string),
		locks:       make(map[string]string),
	}
	for _, code := range locales.Codes() {
		d.perLanguage[code] = make(map[string]string)
	}
	return d, nil
}

// Spec returns the field spec the draft was opened with.
func (d *Draft) Spec() *Spec { return d.spec }

// Locales returns the language set the draft spans.
func (d *Draft) Locales() langset.Set { return d.locales }

// ActiveLocale returns the locale whose per-language inputs are currently
// being edited.
func (d *Draft) ActiveLocale() string { return d.active }

// SetActiveLocale switches which locale's per-language fields are bound to
// the inputs. It is a pure view change: no values are mutated and values for
// inactive locales are preserved.
func (d *Draft) SetActiveLocale(locale string) error {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if !d.locales.Contains(locale) {
		return fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}
	d.active = locale
	return nil
}

// SetField applies a field edit in the active locale.
//
// Per-language fields write only the active locale's slot. A shared field's
// first write locks it to the active locale and the value applies to every
// locale at once; later writes from the owning locale overwrite it, while
// writes from any other locale are silently ignored. The owning locale is
// the field's single source of truth and the UI presents it read-only
// elsewhere.
func (d *Draft) SetField(name, value string) error {
	field, ok := d.spec.Field(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}

	switch field.Mode {
	case ModeDerived:
		return fmt.Errorf("%w: %q", ErrDerivedField, name)
	case ModePerLanguage:
		d.perLanguage[d.active][name] = value
		return nil
	case ModeShared:
		owner, locked := d.locks[name]
		if locked && owner != d.active {
			return nil
		}
		if !locked {
			d.locks[name] = d.active
		}
		d.shared[name] = value
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
}

// Field returns the value of a field as seen from the active locale. Shared
// fields read the single shared slot; derived fields are always empty until
// assembly.
func (d *Draft) Field(name string) string {
	return d.FieldForLocale(d.active, name)
}

// FieldForLocale returns a field's value as seen from the given locale.
func (d *Draft) FieldForLocale(locale, name string) string {
	field, ok := d.spec.Field(name)
	if !ok {
		return ""
	}
	switch field.Mode {
	case ModePerLanguage:
		return d.perLanguage[locale][name]
	case ModeShared:
		return d.shared[name]
	default:
		return ""
	}
}

// FieldEditable reports whether the field accepts input from the active
// locale. Views use this to render locked shared fields read-only.
func (d *Draft) FieldEditable(name string) bool {
	field, ok := d.spec.Field(name)
	if !ok || field.Mode == ModeDerived {
		return false
	}
	if field.Mode == ModePerLanguage {
		return true
	}
	owner, locked := d.locks[name]
	return !locked || owner == d.active
}

// LockOwner returns the locale that owns a shared field's lock, if any.
func (d *Draft) LockOwner(name string) (string, bool) {
	owner, ok := d.locks[name]
	return owner, ok
}

// SeedLocale fills the draft from fetched record data for one locale. Shared
// fields are filled without taking a lock: source data never carries lock
// metadata forward, so an edit draft opens unlocked and re-locks only on the
// first user edit. Unknown and derived fields in the input are skipped.
func (d *Draft) SeedLocale(locale string, values map[string]string) error {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if !d.locales.Contains(locale) {
		return fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}

	for name, value := range values {
		field, ok := d.spec.Field(name)
		if !ok {
			continue
		}
		switch field.Mode {
		case ModePerLanguage:
			d.perLanguage[locale][name] = value
		case ModeShared:
			d.shared[name] = value
		}
	}
	return nil
}

// Validate checks required fields per the spec's policy. Canonical-required
// records validate the canonical locale's per-language fields; active-locale
// records validate only the locale being edited. Shared fields are required
// regardless of locale. The draft is never mutated.
func (d *Draft) Validate() error {
	locale := d.locales.Canonical()
	if d.spec.Policy() == PolicyActiveLocale {
		locale = d.active
	}

	var missing []string
	for _, field := range d.spec.Fields() {
		if !field.Required {
			continue
		}
		switch field.Mode {
		case ModePerLanguage:
			if strings.TrimSpace(d.perLanguage[locale][field.Name]) == "" {
				missing = append(missing, field.Name)
			}
		case ModeShared:
			if strings.TrimSpace(d.shared[field.Name]) == "" {
				missing = append(missing, field.Name)
			}
		}
	}

	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return &ValidationError{Record: d.spec.Record(), Locale: locale, Missing: missing}
}

// Reset clears every value and lock, returning the draft to its freshly
// opened state with the canonical locale active.
func (d *Draft) Reset() {
	for _, code := range d.locales.Codes() {
		d.perLanguage[code] = make(map[string]string)
	}
	d.shared = make(map[string]string)
	d.locks = make(map[string]string)
	d.active = d.locales.Canonical()
}

// Snapshot is an immutable copy of a draft's values, taken for assembly.
type Snapshot struct {
	Record      string
	Canonical   string
	Active      string
	Locales     []string
	PerLanguage map[string]map[string]string
	Shared      map[string]string
}

// Snapshot copies the draft's current values. The copy is deep: later edits
// to the draft do not show through.
func (d *Draft) Snapshot() Snapshot {
	snap := Snapshot{
		Record:      d.spec.Record(),
		Canonical:   d.locales.Canonical(),
		Active:      d.active,
		Locales:     d.locales.Codes(),
		PerLanguage: make(map[string]map[string]string, len(d.perLanguage)),
		Shared:      make(map[string]string, len(d.shared)),
	}
	for locale, values := range d.perLanguage {
		copied := make(map[string]string, len(values))
		for name, value := range values {
			copied[name] = value
		}
		snap.PerLanguage[locale] = copied
	}
	for name, value := range d.shared {
		snap.Shared[name] = value
	}
	return snap
}
