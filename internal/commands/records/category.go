package recordcmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/mamaghar/go-admin/internal/apiclient"
	"github.com/mamaghar/go-admin/internal/commands"
	"github.com/mamaghar/go-admin/internal/editor"
	"github.com/mamaghar/go-admin/internal/langset"
	"github.com/mamaghar/go-admin/internal/payload"
	"github.com/mamaghar/go-admin/pkg/interfaces"
)

const (
	createCategoryMessageType = "admin.category.create"
	updateCategoryMessageType = "admin.category.update"
)

// CreateCategoryCommand adds a post category with its localized labels and
// the hints shown on the post composer.
type CreateCategoryCommand struct {
	Names        map[string]string   `json:"names"`
	TitleHints   map[string]string   `json:"title_hints"`
	DetailsHints map[string]string   `json:"details_hints"`
	PostType     string              `json:"post_type"`
	Image        *payload.Attachment `json:"-"`
}

// Type implements command.Message.
func (CreateCategoryCommand) Type() string { return createCategoryMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m CreateCategoryCommand) Validate() error {
	errs := validation.Errors{}
	if len(m.Names) == 0 {
		errs["names"] = validation.NewError("admin.category.names_required", "at least one localized name is required")
	}
	if m.PostType == "" {
		errs["post_type"] = validation.NewError("admin.category.type_required", "post_type is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreateCategoryHandler persists new categories through the API client.
type CreateCategoryHandler struct {
	inner *commands.Handler[CreateCategoryCommand]
}

// NewCreateCategoryHandler constructs a handler wired to the provided API.
func NewCreateCategoryHandler(api API, locales langset.Set, logger interfaces.Logger, opts ...commands.HandlerOption[CreateCategoryCommand]) *CreateCategoryHandler {
	exec := func(ctx context.Context, msg CreateCategoryCommand) error {
		perLocale := mergeLocaleFields(map[string]map[string]string{
			"name":        msg.Names,
			"titleHint":   msg.TitleHints,
			"detailsHint": msg.DetailsHints,
		})
		sub, err := buildSubmission(editor.CategorySpec(), locales, "",
			map[string]string{"type": msg.PostType}, perLocale, msg.Image)
		if err != nil {
			return err
		}
		_, err = api.Create(ctx, apiclient.KindCategory, sub)
		return err
	}

	handlerOpts := []commands.HandlerOption[CreateCategoryCommand]{
		commands.WithLogger[CreateCategoryCommand](logger),
		commands.WithOperation[CreateCategoryCommand]("category.create"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CreateCategoryHandler{
		inner: commands.NewHandler[CreateCategoryCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[CreateCategoryCommand].Execute.
func (h *CreateCategoryHandler) Execute(ctx context.Context, msg CreateCategoryCommand) error {
	return h.inner.Execute(ctx, msg)
}

// UpdateCategoryCommand replaces an existing category's labels, hints, and
// optionally its image.
type UpdateCategoryCommand struct {
	ID           string              `json:"id"`
	Names        map[string]string   `json:"names"`
	TitleHints   map[string]string   `json:"title_hints"`
	DetailsHints map[string]string   `json:"details_hints"`
	PostType     string              `json:"post_type"`
	Image        *payload.Attachment `json:"-"`
}

// Type implements command.Message.
func (UpdateCategoryCommand) Type() string { return updateCategoryMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m UpdateCategoryCommand) Validate() error {
	errs := validation.Errors{}
	if m.ID == "" {
		errs["id"] = validation.NewError("admin.category.id_required", "id is required")
	}
	if len(m.Names) == 0 {
		errs["names"] = validation.NewError("admin.category.names_required", "at least one localized name is required")
	}
	if m.PostType == "" {
		errs["post_type"] = validation.NewError("admin.category.type_required", "post_type is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateCategoryHandler updates categories through the API client.
type UpdateCategoryHandler struct {
	inner *commands.Handler[UpdateCategoryCommand]
}

// NewUpdateCategoryHandler constructs a handler wired to the provided API.
func NewUpdateCategoryHandler(api API, locales langset.Set, logger interfaces.Logger, opts ...commands.HandlerOption[UpdateCategoryCommand]) *UpdateCategoryHandler {
	exec := func(ctx context.Context, msg UpdateCategoryCommand) error {
		perLocale := mergeLocaleFields(map[string]map[string]string{
			"name":        msg.Names,
			"titleHint":   msg.TitleHints,
			"detailsHint": msg.DetailsHints,
		})
		sub, err := buildSubmission(editor.CategorySpec(), locales, "",
			map[string]string{"type": msg.PostType}, perLocale, msg.Image)
		if err != nil {
			return err
		}
		_, err = api.Update(ctx, apiclient.KindCategory, msg.ID, sub)
		return err
	}

	handlerOpts := []commands.HandlerOption[UpdateCategoryCommand]{
		commands.WithLogger[UpdateCategoryCommand](logger),
		commands.WithOperation[UpdateCategoryCommand]("category.update"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &UpdateCategoryHandler{
		inner: commands.NewHandler[UpdateCategoryCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[UpdateCategoryCommand].Execute.
func (h *UpdateCategoryHandler) Execute(ctx context.Context, msg UpdateCategoryCommand) error {
	return h.inner.Execute(ctx, msg)
}
