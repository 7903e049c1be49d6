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
	createDistrictMessageType = "admin.district.create"
	updateDistrictMessageType = "admin.district.update"
)

// CreateDistrictCommand adds a district under a state.
type CreateDistrictCommand struct {
	Names   map[string]string `json:"names"`
	Code    string            `json:"code"`
	StateID string            `json:"state_id"`
}

// Type implements command.Message.
func (CreateDistrictCommand) Type() string { return createDistrictMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m CreateDistrictCommand) Validate() error {
	errs := validation.Errors{}
	if len(m.Names) == 0 {
		errs["names"] = validation.NewError("admin.district.names_required", "at least one localized name is required")
	}
	if m.Code == "" {
		errs["code"] = validation.NewError("admin.district.code_required", "code is required")
	}
	if m.StateID == "" {
		errs["state_id"] = validation.NewError("admin.district.state_required", "state_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreateDistrictHandler persists new districts through the API client.
type CreateDistrictHandler struct {
	inner *commands.Handler[CreateDistrictCommand]
}

// NewCreateDistrictHandler constructs a handler wired to the provided API.
func NewCreateDistrictHandler(api API, locales langset.Set, logger interfaces.Logger, opts ...commands.HandlerOption[CreateDistrictCommand]) *CreateDistrictHandler {
	exec := func(ctx context.Context, msg CreateDistrictCommand) error {
		sub, err := buildSubmission(editor.DistrictSpec(), locales, "",
			map[string]string{"code": msg.Code, "stateId": msg.StateID},
			byField("name", msg.Names), nil)
		if err != nil {
			return err
		}
		_, err = api.Create(ctx, apiclient.KindDistrict, sub)
		return err
	}

	handlerOpts := []commands.HandlerOption[CreateDistrictCommand]{
		commands.WithLogger[CreateDistrictCommand](logger),
		commands.WithOperation[CreateDistrictCommand]("district.create"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CreateDistrictHandler{
		inner: commands.NewHandler[CreateDistrictCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[CreateDistrictCommand].Execute.
func (h *CreateDistrictHandler) Execute(ctx context.Context, msg CreateDistrictCommand) error {
	return h.inner.Execute(ctx, msg)
}

// UpdateDistrictCommand replaces an existing district.
type UpdateDistrictCommand struct {
	ID      string            `json:"id"`
	Names   map[string]string `json:"names"`
	Code    string            `json:"code"`
	StateID string            `json:"state_id"`
}

// Type implements command.Message.
func (UpdateDistrictCommand) Type() string { return updateDistrictMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m UpdateDistrictCommand) Validate() error {
	errs := validation.Errors{}
	if m.ID == "" {
		errs["id"] = validation.NewError("admin.district.id_required", "id is required")
	}
	if len(m.Names) == 0 {
		errs["names"] = validation.NewError("admin.district.names_required", "at least one localized name is required")
	}
	if m.Code == "" {
		errs["code"] = validation.NewError("admin.district.code_required", "code is required")
	}
	if m.StateID == "" {
		errs["state_id"] = validation.NewError("admin.district.state_required", "state_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateDistrictHandler updates districts through the API client.
type UpdateDistrictHandler struct {
	inner *commands.Handler[UpdateDistrictCommand]
}

// NewUpdateDistrictHandler constructs a handler wired to the provided API.
func NewUpdateDistrictHandler(api API, locales langset.Set, logger interfaces.Logger, opts ...commands.HandlerOption[UpdateDistrictCommand]) *UpdateDistrictHandler {
	exec := func(ctx context.Context, msg UpdateDistrictCommand) error {
		sub, err := buildSubmission(editor.DistrictSpec(), locales, "",
			map[string]string{"code": msg.Code, "stateId": msg.StateID},
			byField("name", msg.Names), nil)
		if err != nil {
			return err
		}
		_, err = api.Update(ctx, apiclient.KindDistrict, msg.ID, sub)
		return err
	}

	handlerOpts := []commands.HandlerOption[UpdateDistrictCommand]{
		commands.WithLogger[UpdateDistrictCommand](logger),
		commands.WithOperation[UpdateDistrictCommand]("district.update"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &UpdateDistrictHandler{
		inner: commands.NewHandler[UpdateDistrictCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[UpdateDistrictCommand].Execute.
func (h *UpdateDistrictHandler) Execute(ctx context.Context, msg UpdateDistrictCommand) error {
	return h.inner.Execute(ctx, msg)
}
