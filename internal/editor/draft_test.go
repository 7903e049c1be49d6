package editor_test

import (
	"errors"
	"testing"

	"github.com/mamaghar/go-admin/internal/editor"
	"github.com/mamaghar/go-admin/internal/langset"
)

func newStateDraft(t *testing.T) *editor.Draft {
	t.Helper()
	draft, err := editor.NewDraft(editor.StateSpec(), langset.Default())
	if err != nil {
		t.Fatalf("new draft: %v", err)
	}
	return draft
}

func TestSharedFieldFirstWriterLocks(t *testing.T) {
	draft := newStateDraft(t)

	if err := draft.SetField("code", "ABC12"); err != nil {
		t.Fatalf("set code: %v", err)
	}

	owner, locked := draft.LockOwner("code")
	if !locked || owner != "en" {
		t.Fatalf("expected code locked to en, got %q locked=%v", owner, locked)
	}
	if got := draft.Field("code"); got != "ABC12" {
		t.Fatalf("expected code ABC12 got %q", got)
	}

	// Simulate a programmatic edit bypassing the disabled control.
	if err := draft.SetActiveLocale("gu"); err != nil {
		t.Fatalf("switch locale: %v", err)
	}
	if err := draft.SetField("code", "XYZ99"); err != nil {
		t.Fatalf("locked edit must be a silent no-op, got %v", err)
	}

	if got := draft.Field("code"); got != "ABC12" {
		t.Fatalf("locked shared field changed from another locale: %q", got)
	}
	if owner, _ := draft.LockOwner("code"); owner != "en" {
		t.Fatalf("lock owner changed to %q", owner)
	}
}

func TestSharedFieldOwnerMayReEdit(t *testing.T) {
	draft := newStateDraft(t)

	if err := draft.SetField("code", "GJ"); err != nil {
		t.Fatalf("set code: %v", err)
	}
	if err := draft.SetField("code", "GJ01"); err != nil {
		t.Fatalf("re-edit by owner: %v", err)
	}
	if got := draft.Field("code"); got != "GJ01" {
		t.Fatalf("expected GJ01 got %q", got)
	}
}

func TestSharedValueVisibleFromEveryLocale(t *testing.T) {
	draft := newStateDraft(t)

	if err := draft.SetField("code", "GJ01"); err != nil {
		t.Fatalf("set code: %v", err)
	}
	for _, locale := range []string{"en", "gu", "hi"} {
		if got := draft.FieldForLocale(locale, "code"); got != "GJ01" {
			t.Fatalf("locale %s sees code %q, want GJ01", locale, got)
		}
	}
}

func TestPerLanguageFieldsDoNotLeakAcrossLocales(t *testing.T) {
	draft := newStateDraft(t)

	if err := draft.SetField("name", "Apple"); err != nil {
		t.Fatalf("set name: %v", err)
	}

	if got := draft.FieldForLocale("gu", "name"); got != "" {
		t.Fatalf("gu name leaked: %q", got)
	}
	if got := draft.FieldForLocale("hi", "name"); got != "" {
		t.Fatalf("hi name leaked: %q", got)
	}
	if got := draft.FieldForLocale("en", "name"); got != "Apple" {
		t.Fatalf("en name lost: %q", got)
	}
}

func TestLocaleSwitchPreservesInactiveValues(t *testing.T) {
	draft := newStateDraft(t)

	if err := draft.SetField("name", "Gujarat"); err != nil {
		t.Fatalf("set en name: %v", err)
	}
	if err := draft.SetActiveLocale("gu"); err != nil {
		t.Fatalf("switch to gu: %v", err)
	}
	if err := draft.SetField("name", "ગુજરાત"); err != nil {
		t.Fatalf("set gu name: %v", err)
	}
	if err := draft.SetActiveLocale("en"); err != nil {
		t.Fatalf("switch back: %v", err)
	}

	if got := draft.Field("name"); got != "Gujarat" {
		t.Fatalf("en name lost after switching: %q", got)
	}
	if got := draft.FieldForLocale("gu", "name"); got != "ગુજરાત" {
		t.Fatalf("gu name lost after switching: %q", got)
	}
}

func TestFieldEditableTracksLocks(t *testing.T) {
	draft := newStateDraft(t)

	if !draft.FieldEditable("code") {
		t.Fatalf("unlocked shared field must be editable everywhere")
	}
	if err := draft.SetField("code", "GJ01"); err != nil {
		t.Fatalf("set code: %v", err)
	}
	if !draft.FieldEditable("code") {
		t.Fatalf("owner locale must keep edit rights")
	}

	if err := draft.SetActiveLocale("hi"); err != nil {
		t.Fatalf("switch: %v", err)
	}
	if draft.FieldEditable("code") {
		t.Fatalf("non-owner locale must see the field read-only")
	}
	if !draft.FieldEditable("name") {
		t.Fatalf("per-language fields are always editable")
	}
}

func TestSetFieldRejectsDerivedAndUnknown(t *testing.T) {
	draft := newStateDraft(t)

	if err := draft.SetField("slug", "hand-rolled"); !errors.Is(err, editor.ErrDerivedField) {
		t.Fatalf("expected ErrDerivedField got %v", err)
	}
	if err := draft.SetField("zipcode", "380001"); !errors.Is(err, editor.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField got %v", err)
	}
}

func TestValidateCanonicalPolicy(t *testing.T) {
	draft := newStateDraft(t)

	err := draft.Validate()
	var verr *editor.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError got %v", err)
	}
	if verr.Locale != "en" {
		t.Fatalf("canonical policy must validate en, got %q", verr.Locale)
	}
	if len(verr.Missing) != 2 {
		t.Fatalf("expected name and code missing, got %v", verr.Missing)
	}

	// Filling only a non-canonical locale is not enough.
	if err := draft.SetActiveLocale("hi"); err != nil {
		t.Fatalf("switch: %v", err)
	}
	if err := draft.SetField("name", "गुजरात"); err != nil {
		t.Fatalf("set hi name: %v", err)
	}
	if err := draft.SetField("code", "GJ01"); err != nil {
		t.Fatalf("set code: %v", err)
	}
	if err := draft.Validate(); err == nil {
		t.Fatalf("expected validation failure while en name is empty")
	}

	if err := draft.SetActiveLocale("en"); err != nil {
		t.Fatalf("switch: %v", err)
	}
	if err := draft.SetField("name", "Gujarat"); err != nil {
		t.Fatalf("set en name: %v", err)
	}
	if err := draft.Validate(); err != nil {
		t.Fatalf("expected draft to validate, got %v", err)
	}
}

func TestValidateActiveLocalePolicy(t *testing.T) {
	draft, err := editor.NewDraft(editor.CitySpec(), langset.Default())
	if err != nil {
		t.Fatalf("new draft: %v", err)
	}

	if err := draft.SetActiveLocale("gu"); err != nil {
		t.Fatalf("switch: %v", err)
	}
	if err := draft.SetField("name", "અમદાવાદ"); err != nil {
		t.Fatalf("set name: %v", err)
	}
	if err := draft.SetField("code", "AMD"); err != nil {
		t.Fatalf("set code: %v", err)
	}
	if err := draft.SetField("districtId", "64b0"); err != nil {
		t.Fatalf("set districtId: %v", err)
	}

	if err := draft.Validate(); err != nil {
		t.Fatalf("active-locale policy must ignore empty en fields, got %v", err)
	}
}

func TestValidationDoesNotMutateDraft(t *testing.T) {
	draft := newStateDraft(t)
	if err := draft.SetField("name", "Gujarat"); err != nil {
		t.Fatalf("set name: %v", err)
	}

	if err := draft.Validate(); err == nil {
		t.Fatalf("expected validation failure")
	}

	if got := draft.Field("name"); got != "Gujarat" {
		t.Fatalf("rejected validation changed the draft: %q", got)
	}
	if _, locked := draft.LockOwner("code"); locked {
		t.Fatalf("validation must not touch locks")
	}
}

func TestSeedLocaleDoesNotLockSharedFields(t *testing.T) {
	draft := newStateDraft(t)

	err := draft.SeedLocale("en", map[string]string{
		"name": "Gujarat",
		"code": "GJ01",
		"slug": "gujarat", // derived, skipped
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Edit-mode drafts open unlocked: the first user edit takes the lock,
	// regardless of which locale the record was created from.
	if _, locked := draft.LockOwner("code"); locked {
		t.Fatalf("seeding must not lock shared fields")
	}
	if got := draft.FieldForLocale("hi", "code"); got != "GJ01" {
		t.Fatalf("seeded shared value not visible from hi: %q", got)
	}

	if err := draft.SetActiveLocale("gu"); err != nil {
		t.Fatalf("switch: %v", err)
	}
	if err := draft.SetField("code", "GJ-2"); err != nil {
		t.Fatalf("set code: %v", err)
	}
	if owner, _ := draft.LockOwner("code"); owner != "gu" {
		t.Fatalf("first edit after seeding should lock to gu, got %q", owner)
	}
}

func TestResetClearsValuesAndLocks(t *testing.T) {
	draft := newStateDraft(t)
	if err := draft.SetField("name", "Gujarat"); err != nil {
		t.Fatalf("set name: %v", err)
	}
	if err := draft.SetField("code", "GJ01"); err != nil {
		t.Fatalf("set code: %v", err)
	}
	if err := draft.SetActiveLocale("hi"); err != nil {
		t.Fatalf("switch: %v", err)
	}

	draft.Reset()

	if draft.ActiveLocale() != "en" {
		t.Fatalf("reset must return to the canonical locale")
	}
	if got := draft.FieldForLocale("en", "name"); got != "" {
		t.Fatalf("reset left a name behind: %q", got)
	}
	if _, locked := draft.LockOwner("code"); locked {
		t.Fatalf("reset left a lock behind")
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	draft := newStateDraft(t)
	if err := draft.SetField("name", "Gujarat"); err != nil {
		t.Fatalf("set name: %v", err)
	}

	snap := draft.Snapshot()
	if err := draft.SetField("name", "Maharashtra"); err != nil {
		t.Fatalf("set name: %v", err)
	}

	if snap.PerLanguage["en"]["name"] != "Gujarat" {
		t.Fatalf("snapshot observed a later edit")
	}
}
