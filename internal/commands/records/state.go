package recordcmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/mamaghar/go-admin/internal/apiclient"
	"github.com/mamaghar/go-admin/internal/commands"
	"github.com/mamaghar/go-admin/internal/editor"
	"github.com/mamaghar/go-admin/internal/langset"
	"github.com/mamaghar/go-admin/pkg/interfaces"
)

const (
	createStateMessageType = "admin.state.create"
	updateStateMessageType = "admin.state.update"
)

// CreateStateCommand adds a state with its per-locale names and shared code.
type CreateStateCommand struct {
	Names map[string]string `json:"names"`
	Code  string            `json:"code"`
}

// Type implements command.Message.
func (CreateStateCommand) Type() string { return createStateMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m CreateStateCommand) Validate() error {
	errs := validation.Errors{}
	if len(m.Names) == 0 {
		errs["names"] = validation.NewError("admin.state.names_required", "at least one localized name is required")
	}
	if m.Code == "" {
		errs["code"] = validation.NewError("admin.state.code_required", "code is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreateStateHandler persists new states through the API client.
type CreateStateHandler struct {
	inner *commands.Handler[CreateStateCommand]
}

// NewCreateStateHandler constructs a handler wired to the provided API.
func NewCreateStateHandler(api API, locales langset.Set, logger interfaces.Logger, opts ...commands.HandlerOption[CreateStateCommand]) *CreateStateHandler {
	exec := func(ctx context.Context, msg CreateStateCommand) error {
		sub, err := buildSubmission(editor.StateSpec(), locales, "",
			map[string]string{"code": msg.Code}, byField("name", msg.Names), nil)
		if err != nil {
			return err
		}
		_, err = api.Create(ctx, apiclient.KindState, sub)
		return err
	}

	handlerOpts := []commands.HandlerOption[CreateStateCommand]{
		commands.WithLogger[CreateStateCommand](logger),
		commands.WithOperation[CreateStateCommand]("state.create"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CreateStateHandler{
		inner: commands.NewHandler[CreateStateCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[CreateStateCommand].Execute.
func (h *CreateStateHandler) Execute(ctx context.Context, msg CreateStateCommand) error {
	return h.inner.Execute(ctx, msg)
}

// UpdateStateCommand replaces an existing state's names and code.
type UpdateStateCommand struct {
	ID    string            `json:"id"`
	Names map[string]string `json:"names"`
	Code  string            `json:"code"`
}

// Type implements command.Message.
func (UpdateStateCommand) Type() string { return updateStateMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m UpdateStateCommand) Validate() error {
	errs := validation.Errors{}
	if m.ID == "" {
		errs["id"] = validation.NewError("admin.state.id_required", "id is required")
	}
	if len(m.Names) == 0 {
		errs["names"] = validation.NewError("admin.state.names_required", "at least one localized name is required")
	}
	if m.Code == "" {
		errs["code"] = validation.NewError("admin.state.code_required", "code is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateStateHandler updates states through the API client.
type UpdateStateHandler struct {
	inner *commands.Handler[UpdateStateCommand]
}

// NewUpdateStateHandler constructs a handler wired to the provided API.
func NewUpdateStateHandler(api API, locales langset.Set, logger interfaces.Logger, opts ...commands.HandlerOption[UpdateStateCommand]) *UpdateStateHandler {
	exec := func(ctx context.Context, msg UpdateStateCommand) error {
		sub, err := buildSubmission(editor.StateSpec(), locales, "",
			map[string]string{"code": msg.Code}, byField("name", msg.Names), nil)
		if err != nil {
			return err
		}
		_, err = api.Update(ctx, apiclient.KindState, msg.ID, sub)
		return err
	}

	handlerOpts := []commands.HandlerOption[UpdateStateCommand]{
		commands.WithLogger[UpdateStateCommand](logger),
		commands.WithOperation[UpdateStateCommand]("state.update"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &UpdateStateHandler{
		inner: commands.NewHandler[UpdateStateCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[UpdateStateCommand].Execute.
func (h *UpdateStateHandler) Execute(ctx context.Context, msg UpdateStateCommand) error {
	return h.inner.Execute(ctx, msg)
}
