// Package editor implements the multi-language record editor: field
// specifications, in-flight drafts, and the propagation rules that keep
// shared fields identical across locales while per-language fields stay
// independent.
package editor

import (
	"errors"
	"fmt"
	"strings"
)

// Mode declares how a field behaves across locales.
type Mode int

const (
	// ModePerLanguage fields hold an independent value for every locale.
	ModePerLanguage Mode = iota
	// ModeShared fields hold a single value applied to every locale. The
	// first locale to write one owns it for the rest of the draft.
	ModeShared
	// ModeDerived fields are computed at submission time and never edited
	// directly.
	ModeDerived
)

// String renders the mode label used in errors and logs.
func (m Mode) String() string {
	switch m {
	case ModePerLanguage:
		return "per-language"
	case ModeShared:
		return "shared"
	case ModeDerived:
		return "derived"
	default:
		return "unknown"
	}
}

// Policy selects which locales participate in pre-submission validation.
type Policy int

const (
	// PolicyCanonicalRequired validates required per-language fields against
	// the canonical locale; every locale with a name filled in is submitted.
	PolicyCanonicalRequired Policy = iota
	// PolicyActiveLocale validates and submits only the locale currently
	// being edited.
	PolicyActiveLocale
)

var (
	ErrRecordNameRequired = errors.New("editor: record name is required")
	ErrNoFields           = errors.New("editor: at least one field is required")
	ErrDuplicateField     = errors.New("editor: field declared twice")
	ErrDerivedSource      = errors.New("editor: derived field needs a per-language source")
)

// Field describes one logical field of a record type.
type Field struct {
	Name     string
	Mode     Mode
	Required bool

	// Source names the per-language field a derived field is computed from.
	// Only meaningful for ModeDerived; defaults to "name".
	Source string
}

// Spec declares the field layout and validation policy for one record type.
// Field names partition exactly into the three modes: a name appears once,
// with one mode.
type Spec struct {
	record string
	policy Policy
	fields []Field
	index  map[string]int
}

// NewSpec validates and builds a Spec. Derived fields must reference an
// existing per-language source field.
func NewSpec(record string, policy Policy, fields ...Field) (*Spec, error) {
	record = strings.TrimSpace(record)
	if record == "" {
		return nil, ErrRecordNameRequired
	}
	if len(fields) == 0 {
		return nil, ErrNoFields
	}

	index := make(map[string]int, len(fields))
	for i, f := range fields {
		name := strings.TrimSpace(f.Name)
		if name == "" {
			return nil, fmt.Errorf("editor: record %q has an unnamed field", record)
		}
		if _, ok := index[name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, name)
		}
		fields[i].Name = name
		if f.Mode == ModeDerived && strings.TrimSpace(f.Source) == "" {
			fields[i].Source = "name"
		}
		index[name] = i
	}

	for _, f := range fields {
		if f.Mode != ModeDerived {
			continue
		}
		src, ok := index[f.Source]
		if !ok || fields[src].Mode != ModePerLanguage {
			return nil, fmt.Errorf("%w: %q derives from %q", ErrDerivedSource, f.Name, f.Source)
		}
	}

	return &Spec{record: record, policy: policy, fields: fields, index: index}, nil
}

// MustSpec builds a Spec or panics. Reserved for the package-level record
// specs whose shape is fixed at compile time.
func MustSpec(record string, policy Policy, fields ...Field) *Spec {
	spec, err := NewSpec(record, policy, fields...)
	if err != nil {
		panic(err)
	}
	return spec
}

// Record returns the record type name.
func (s *Spec) Record() string { return s.record }

// Policy returns the validation policy.
func (s *Spec) Policy() Policy { return s.policy }

// Field looks up a field declaration by name.
func (s *Spec) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Fields returns the declared fields in order.
func (s *Spec) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// PerLanguageFields returns the names of fields valued independently per
// locale, in declaration order.
func (s *Spec) PerLanguageFields() []string { return s.names(ModePerLanguage) }

// SharedFields returns the names of fields holding one value across locales.
func (s *Spec) SharedFields() []string { return s.names(ModeShared) }

// DerivedFields returns the names of fields computed at submission time.
func (s *Spec) DerivedFields() []string { return s.names(ModeDerived) }

func (s *Spec) names(mode Mode) []string {
	var out []string
	for _, f := range s.fields {
		if f.Mode == mode {
			out = append(out, f.Name)
		}
	}
	return out
}

// The record types the MamaGhar backend exposes. Geographic reference data
// derives a slug from the canonical name; taxonomy records do not carry one.
var (
	stateSpec = MustSpec("state", PolicyCanonicalRequired,
		Field{Name: "name", Mode: ModePerLanguage, Required: true},
		Field{Name: "code", Mode: ModeShared, Required: true},
		Field{Name: "slug", Mode: ModeDerived},
	)

	districtSpec = MustSpec("district", PolicyCanonicalRequired,
		Field{Name: "name", Mode: ModePerLanguage, Required: true},
		Field{Name: "code", Mode: ModeShared, Required: true},
		Field{Name: "stateId", Mode: ModeShared, Required: true},
		Field{Name: "slug", Mode: ModeDerived},
	)

	citySpec = MustSpec("city", PolicyActiveLocale,
		Field{Name: "name", Mode: ModePerLanguage, Required: true},
		Field{Name: "code", Mode: ModeShared, Required: true},
		Field{Name: "districtId", Mode: ModeShared, Required: true},
		Field{Name: "slug", Mode: ModeDerived},
	)

	categorySpec = MustSpec("category", PolicyCanonicalRequired,
		Field{Name: "name", Mode: ModePerLanguage, Required: true},
		Field{Name: "titleHint", Mode: ModePerLanguage, Required: true},
		Field{Name: "detailsHint", Mode: ModePerLanguage, Required: true},
		Field{Name: "type", Mode: ModeShared, Required: true},
	)

	subCategorySpec = MustSpec("subcategory", PolicyCanonicalRequired,
		Field{Name: "name", Mode: ModePerLanguage, Required: true},
		Field{Name: "description", Mode: ModePerLanguage},
		Field{Name: "categoryId", Mode: ModeShared, Required: true},
	)
)

// StateSpec describes the state record editor.
func StateSpec() *Spec { return stateSpec }

// DistrictSpec describes the district record editor.
func DistrictSpec() *Spec { return districtSpec }

// CitySpec describes the city/taluka record editor. Validation is scoped to
// the active locale: the backend accepts one locale entry at a time for
// talukas.
func CitySpec() *Spec { return citySpec }

// CategorySpec describes the post-category editor.
func CategorySpec() *Spec { return categorySpec }

// SubCategorySpec describes the post-subcategory editor.
func SubCategorySpec() *Spec { return subCategorySpec }
