package recordcmd_test

import (
	"context"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/mamaghar/go-admin/internal/apiclient"
	recordcmd "github.com/mamaghar/go-admin/internal/commands/records"
	"github.com/mamaghar/go-admin/internal/langset"
	"github.com/mamaghar/go-admin/internal/logging"
	"github.com/mamaghar/go-admin/internal/payload"
)

type fakeAPI struct {
	createdKind apiclient.Kind
	created     *payload.Submission
	updatedKind apiclient.Kind
	updatedID   string
	updated     *payload.Submission
	deletedKind apiclient.Kind
	deletedID   string
	calls       int
}

func (f *fakeAPI) Create(ctx context.Context, kind apiclient.Kind, sub *payload.Submission) (string, error) {
	f.calls++
	f.createdKind = kind
	f.created = sub
	return "added successfully", nil
}

func (f *fakeAPI) Update(ctx context.Context, kind apiclient.Kind, id string, sub *payload.Submission) (string, error) {
	f.calls++
	f.updatedKind = kind
	f.updatedID = id
	f.updated = sub
	return "updated successfully", nil
}

func (f *fakeAPI) Delete(ctx context.Context, kind apiclient.Kind, id string) (string, error) {
	f.calls++
	f.deletedKind = kind
	f.deletedID = id
	return "deleted successfully", nil
}

func TestCreateStateBuildsLocalizedSubmission(t *testing.T) {
	api := &fakeAPI{}
	h := recordcmd.NewCreateStateHandler(api, langset.Default(), logging.NoOp())

	err := h.Execute(context.Background(), recordcmd.CreateStateCommand{
		Names: map[string]string{"en": "Gujarat", "gu": "ગુજરાત", "hi": "गुजरात"},
		Code:  "GJ01",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if api.createdKind != apiclient.KindState {
		t.Fatalf("kind = %q", api.createdKind)
	}

	sub := api.created
	for _, locale := range []string{"en", "gu", "hi"} {
		entry, ok := sub.Languages[locale]
		if !ok {
			t.Fatalf("missing languages entry for %s", locale)
		}
		if entry["code"] != "GJ01" {
			t.Fatalf("%s code = %q, want the shared value", locale, entry["code"])
		}
		if entry["slug"] != "gujarat" {
			t.Fatalf("%s slug = %q, want the global slug", locale, entry["slug"])
		}
	}
	if sub.Languages["gu"]["name"] != "ગુજરાત" {
		t.Fatalf("gu name = %q", sub.Languages["gu"]["name"])
	}
	if sub.Fields["name"] != "Gujarat" {
		t.Fatalf("root name = %q, want the canonical value", sub.Fields["name"])
	}
}

func TestCreateStateRejectsBlankMessage(t *testing.T) {
	api := &fakeAPI{}
	h := recordcmd.NewCreateStateHandler(api, langset.Default(), logging.NoOp())

	err := h.Execute(context.Background(), recordcmd.CreateStateCommand{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if api.calls != 0 {
		t.Fatalf("invalid message reached the API %d times", api.calls)
	}
}

func TestCreateStateMissingCanonicalNameFailsBeforeSend(t *testing.T) {
	api := &fakeAPI{}
	h := recordcmd.NewCreateStateHandler(api, langset.Default(), logging.NoOp())

	err := h.Execute(context.Background(), recordcmd.CreateStateCommand{
		Names: map[string]string{"gu": "ગુજરાત"},
		Code:  "GJ01",
	})
	if err == nil {
		t.Fatal("expected draft validation to fail without the canonical name")
	}
	if api.calls != 0 {
		t.Fatalf("incomplete draft reached the API %d times", api.calls)
	}
}

func TestUpdateDistrictSendsSharedParent(t *testing.T) {
	api := &fakeAPI{}
	h := recordcmd.NewUpdateDistrictHandler(api, langset.Default(), logging.NoOp())

	err := h.Execute(context.Background(), recordcmd.UpdateDistrictCommand{
		ID:      "dst-9",
		Names:   map[string]string{"en": "Surat"},
		Code:    "SRT",
		StateID: "st-1",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if api.updatedKind != apiclient.KindDistrict || api.updatedID != "dst-9" {
		t.Fatalf("update target = %q/%q", api.updatedKind, api.updatedID)
	}
	if api.updated.Fields["stateId"] != "st-1" {
		t.Fatalf("stateId = %q", api.updated.Fields["stateId"])
	}
	if api.updated.Fields["slug"] != "surat" {
		t.Fatalf("slug = %q", api.updated.Fields["slug"])
	}
}

func TestCreateCitySubmitsSingleLocale(t *testing.T) {
	api := &fakeAPI{}
	h := recordcmd.NewCreateCityHandler(api, langset.Default(), logging.NoOp())

	err := h.Execute(context.Background(), recordcmd.CreateCityCommand{
		Locale:     "gu",
		Name:       "સુરત",
		Code:       "SRT01",
		DistrictID: "dst-9",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if api.createdKind != apiclient.KindCity {
		t.Fatalf("kind = %q", api.createdKind)
	}

	sub := api.created
	if len(sub.Languages) != 1 {
		t.Fatalf("city submitted %d locales, want exactly the one named", len(sub.Languages))
	}
	entry, ok := sub.Languages["gu"]
	if !ok {
		t.Fatal("missing the gu entry")
	}
	if entry["name"] != "સુરત" || entry["districtId"] != "dst-9" {
		t.Fatalf("gu entry = %v", entry)
	}
}

func TestCreateCategoryCarriesHintsAndImage(t *testing.T) {
	api := &fakeAPI{}
	h := recordcmd.NewCreateCategoryHandler(api, langset.Default(), logging.NoOp())

	img := &payload.Attachment{Filename: "jobs.png", ContentType: "image/png", Data: []byte{1, 2, 3}}
	err := h.Execute(context.Background(), recordcmd.CreateCategoryCommand{
		Names:        map[string]string{"en": "Jobs", "gu": "નોકરીઓ", "hi": "नौकरियां"},
		TitleHints:   map[string]string{"en": "Job title", "gu": "નોકરીનું શીર્ષક", "hi": "नौकरी का शीर्षक"},
		DetailsHints: map[string]string{"en": "Describe the role", "gu": "ભૂમિકાનું વર્ણન કરો", "hi": "भूमिका का वर्णन करें"},
		PostType:     "service",
		Image:        img,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	sub := api.created
	if sub.Image == nil || sub.Image.Filename != "jobs.png" {
		t.Fatal("attachment not carried through")
	}
	if sub.Languages["en"]["titleHint"] != "Job title" {
		t.Fatalf("en titleHint = %q", sub.Languages["en"]["titleHint"])
	}
	if sub.Languages["hi"]["type"] != "service" {
		t.Fatalf("hi type = %q, want the shared value", sub.Languages["hi"]["type"])
	}
	if _, ok := sub.Fields["slug"]; ok {
		t.Fatal("categories do not carry a slug")
	}
}

func TestUpdateCityTargetsExistingEntry(t *testing.T) {
	api := &fakeAPI{}
	h := recordcmd.NewUpdateCityHandler(api, langset.Default(), logging.NoOp())

	err := h.Execute(context.Background(), recordcmd.UpdateCityCommand{
		ID:         "ct-3",
		Locale:     "hi",
		Name:       "सूरत",
		Code:       "SRT01",
		DistrictID: "dst-9",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if api.updatedKind != apiclient.KindCity || api.updatedID != "ct-3" {
		t.Fatalf("update target = %q/%q", api.updatedKind, api.updatedID)
	}

	sub := api.updated
	if len(sub.Languages) != 1 {
		t.Fatalf("city update submitted %d locales, want exactly the one named", len(sub.Languages))
	}
	if sub.Languages["hi"]["name"] != "सूरत" {
		t.Fatalf("hi name = %q", sub.Languages["hi"]["name"])
	}
}

func TestUpdateCityRequiresID(t *testing.T) {
	api := &fakeAPI{}
	h := recordcmd.NewUpdateCityHandler(api, langset.Default(), logging.NoOp())

	err := h.Execute(context.Background(), recordcmd.UpdateCityCommand{
		Locale:     "hi",
		Name:       "सूरत",
		Code:       "SRT01",
		DistrictID: "dst-9",
	})
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if api.calls != 0 {
		t.Fatalf("invalid message reached the API %d times", api.calls)
	}
}

func TestUpdateCategoryReplacesHints(t *testing.T) {
	api := &fakeAPI{}
	h := recordcmd.NewUpdateCategoryHandler(api, langset.Default(), logging.NoOp())

	err := h.Execute(context.Background(), recordcmd.UpdateCategoryCommand{
		ID:           "cat-7",
		Names:        map[string]string{"en": "Jobs", "gu": "નોકરીઓ", "hi": "नौकरियां"},
		TitleHints:   map[string]string{"en": "Role title"},
		DetailsHints: map[string]string{"en": "Describe the role"},
		PostType:     "service",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if api.updatedKind != apiclient.KindCategory || api.updatedID != "cat-7" {
		t.Fatalf("update target = %q/%q", api.updatedKind, api.updatedID)
	}
	if api.updated.Languages["en"]["titleHint"] != "Role title" {
		t.Fatalf("en titleHint = %q", api.updated.Languages["en"]["titleHint"])
	}
	if api.updated.Languages["gu"]["type"] != "service" {
		t.Fatalf("gu type = %q, want the shared value", api.updated.Languages["gu"]["type"])
	}
}

func TestUpdateSubCategoryKeepsParentAndImage(t *testing.T) {
	api := &fakeAPI{}
	h := recordcmd.NewUpdateSubCategoryHandler(api, langset.Default(), logging.NoOp())

	img := &payload.Attachment{Filename: "driver.png", ContentType: "image/png", Data: []byte{9}}
	err := h.Execute(context.Background(), recordcmd.UpdateSubCategoryCommand{
		ID:           "sub-4",
		Names:        map[string]string{"en": "Driver", "gu": "ડ્રાઇવર", "hi": "ड्राइवर"},
		Descriptions: map[string]string{"en": "Driving jobs"},
		CategoryID:   "cat-7",
		Image:        img,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if api.updatedKind != apiclient.KindSubCategory || api.updatedID != "sub-4" {
		t.Fatalf("update target = %q/%q", api.updatedKind, api.updatedID)
	}
	if api.updated.Fields["categoryId"] != "cat-7" {
		t.Fatalf("categoryId = %q", api.updated.Fields["categoryId"])
	}
	if api.updated.Image == nil || api.updated.Image.Filename != "driver.png" {
		t.Fatal("attachment not carried through")
	}
}

func TestDeleteRecordValidatesKind(t *testing.T) {
	api := &fakeAPI{}
	h := recordcmd.NewDeleteRecordHandler(api, logging.NoOp())

	err := h.Execute(context.Background(), recordcmd.DeleteRecordCommand{Kind: "post", ID: "p-1"})
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if api.calls != 0 {
		t.Fatalf("invalid kind reached the API %d times", api.calls)
	}

	if err := h.Execute(context.Background(), recordcmd.DeleteRecordCommand{Kind: apiclient.KindCity, ID: "ct-3"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if api.deletedKind != apiclient.KindCity || api.deletedID != "ct-3" {
		t.Fatalf("delete target = %q/%q", api.deletedKind, api.deletedID)
	}
}
