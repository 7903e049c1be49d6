// Package recordcmd exposes the record CRUD operations as go-command
// messages. Every save flows through a draft so the same propagation and
// validation rules apply whether the edit comes from the CLI or a UI.
package recordcmd

import (
	"context"

	"github.com/mamaghar/go-admin/internal/apiclient"
	"github.com/mamaghar/go-admin/internal/editor"
	"github.com/mamaghar/go-admin/internal/langset"
	"github.com/mamaghar/go-admin/internal/payload"
)

// API is the slice of the API client record commands need.
type API interface {
	Create(ctx context.Context, kind apiclient.Kind, sub *payload.Submission) (string, error)
	Update(ctx context.Context, kind apiclient.Kind, id string, sub *payload.Submission) (string, error)
	Delete(ctx context.Context, kind apiclient.Kind, id string) (string, error)
}

// buildSubmission replays the message's field values through a fresh draft
// and assembles the result. Shared fields are written in the canonical
// locale; per-language values are written locale by locale. The active
// locale at assembly time decides what an active-locale record submits.
func buildSubmission(spec *editor.Spec, locales langset.Set, active string, shared map[string]string, perLocale map[string]map[string]string, image *payload.Attachment) (*payload.Submission, error) {
	draft, err := editor.NewDraft(spec, locales)
	if err != nil {
		return nil, err
	}

	for name, value := range shared {
		if err := draft.SetField(name, value); err != nil {
			return nil, err
		}
	}
	for _, locale := range locales.Codes() {
		values := perLocale[locale]
		if len(values) == 0 {
			continue
		}
		if err := draft.SetActiveLocale(locale); err != nil {
			return nil, err
		}
		for name, value := range values {
			if err := draft.SetField(name, value); err != nil {
				return nil, err
			}
		}
	}

	if active == "" {
		active = locales.Canonical()
	}
	if err := draft.SetActiveLocale(active); err != nil {
		return nil, err
	}

	sub, err := payload.Assemble(draft)
	if err != nil {
		return nil, err
	}
	if image != nil {
		sub.WithImage(image)
	}
	return sub, nil
}

// byField wraps a per-locale value map under one field name, the common case
// for records whose only per-language field is the display name.
func byField(field string, values map[string]string) map[string]map[string]string {
	out := make(map[string]map[string]string, len(values))
	for locale, value := range values {
		if value == "" {
			continue
		}
		out[locale] = map[string]string{field: value}
	}
	return out
}

// mergeLocaleFields folds several per-locale value maps into the
// locale -> field -> value shape buildSubmission expects.
func mergeLocaleFields(fields map[string]map[string]string) map[string]map[string]string {
	out := map[string]map[string]string{}
	for field, values := range fields {
		for locale, value := range values {
			if value == "" {
				continue
			}
			entry, ok := out[locale]
			if !ok {
				entry = map[string]string{}
				out[locale] = entry
			}
			entry[field] = value
		}
	}
	return out
}
