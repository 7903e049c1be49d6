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
	createSubCategoryMessageType = "admin.subcategory.create"
	updateSubCategoryMessageType = "admin.subcategory.update"
)

// CreateSubCategoryCommand adds a post subcategory under an existing
// category.
type CreateSubCategoryCommand struct {
	Names        map[string]string   `json:"names"`
	Descriptions map[string]string   `json:"descriptions"`
	CategoryID   string              `json:"category_id"`
	Image        *payload.Attachment `json:"-"`
}

// Type implements command.Message.
func (CreateSubCategoryCommand) Type() string { return createSubCategoryMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m CreateSubCategoryCommand) Validate() error {
	errs := validation.Errors{}
	if len(m.Names) == 0 {
		errs["names"] = validation.NewError("admin.subcategory.names_required", "at least one localized name is required")
	}
	if m.CategoryID == "" {
		errs["category_id"] = validation.NewError("admin.subcategory.category_required", "category_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreateSubCategoryHandler persists new subcategories through the API client.
type CreateSubCategoryHandler struct {
	inner *commands.Handler[CreateSubCategoryCommand]
}

// NewCreateSubCategoryHandler constructs a handler wired to the provided API.
func NewCreateSubCategoryHandler(api API, locales langset.Set, logger interfaces.Logger, opts ...commands.HandlerOption[CreateSubCategoryCommand]) *CreateSubCategoryHandler {
	exec := func(ctx context.Context, msg CreateSubCategoryCommand) error {
		perLocale := mergeLocaleFields(map[string]map[string]string{
			"name":        msg.Names,
			"description": msg.Descriptions,
		})
		sub, err := buildSubmission(editor.SubCategorySpec(), locales, "",
			map[string]string{"categoryId": msg.CategoryID}, perLocale, msg.Image)
		if err != nil {
			return err
		}
		_, err = api.Create(ctx, apiclient.KindSubCategory, sub)
		return err
	}

	handlerOpts := []commands.HandlerOption[CreateSubCategoryCommand]{
		commands.WithLogger[CreateSubCategoryCommand](logger),
		commands.WithOperation[CreateSubCategoryCommand]("subcategory.create"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CreateSubCategoryHandler{
		inner: commands.NewHandler[CreateSubCategoryCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[CreateSubCategoryCommand].Execute.
func (h *CreateSubCategoryHandler) Execute(ctx context.Context, msg CreateSubCategoryCommand) error {
	return h.inner.Execute(ctx, msg)
}

// UpdateSubCategoryCommand replaces an existing subcategory's labels and
// optionally its image or parent category.
type UpdateSubCategoryCommand struct {
	ID           string              `json:"id"`
	Names        map[string]string   `json:"names"`
	Descriptions map[string]string   `json:"descriptions"`
	CategoryID   string              `json:"category_id"`
	Image        *payload.Attachment `json:"-"`
}

// Type implements command.Message.
func (UpdateSubCategoryCommand) Type() string { return updateSubCategoryMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m UpdateSubCategoryCommand) Validate() error {
	errs := validation.Errors{}
	if m.ID == "" {
		errs["id"] = validation.NewError("admin.subcategory.id_required", "id is required")
	}
	if len(m.Names) == 0 {
		errs["names"] = validation.NewError("admin.subcategory.names_required", "at least one localized name is required")
	}
	if m.CategoryID == "" {
		errs["category_id"] = validation.NewError("admin.subcategory.category_required", "category_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateSubCategoryHandler updates subcategories through the API client.
type UpdateSubCategoryHandler struct {
	inner *commands.Handler[UpdateSubCategoryCommand]
}

// NewUpdateSubCategoryHandler constructs a handler wired to the provided API.
func NewUpdateSubCategoryHandler(api API, locales langset.Set, logger interfaces.Logger, opts ...commands.HandlerOption[UpdateSubCategoryCommand]) *UpdateSubCategoryHandler {
	exec := func(ctx context.Context, msg UpdateSubCategoryCommand) error {
		perLocale := mergeLocaleFields(map[string]map[string]string{
			"name":        msg.Names,
			"description": msg.Descriptions,
		})
		sub, err := buildSubmission(editor.SubCategorySpec(), locales, "",
			map[string]string{"categoryId": msg.CategoryID}, perLocale, msg.Image)
		if err != nil {
			return err
		}
		_, err = api.Update(ctx, apiclient.KindSubCategory, msg.ID, sub)
		return err
	}

	handlerOpts := []commands.HandlerOption[UpdateSubCategoryCommand]{
		commands.WithLogger[UpdateSubCategoryCommand](logger),
		commands.WithOperation[UpdateSubCategoryCommand]("subcategory.update"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &UpdateSubCategoryHandler{
		inner: commands.NewHandler[UpdateSubCategoryCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[UpdateSubCategoryCommand].Execute.
func (h *UpdateSubCategoryHandler) Execute(ctx context.Context, msg UpdateSubCategoryCommand) error {
	return h.inner.Execute(ctx, msg)
}
