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
	createCityMessageType = "admin.city.create"
	updateCityMessageType = "admin.city.update"
)

// CreateCityCommand adds a city (taluka) in a single locale. The backend
// accepts taluka entries one locale at a time, so unlike the other records
// this message names the locale it is written in.
type CreateCityCommand struct {
	Locale     string `json:"locale"`
	Name       string `json:"name"`
	Code       string `json:"code"`
	DistrictID string `json:"district_id"`
}

// Type implements command.Message.
func (CreateCityCommand) Type() string { return createCityMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m CreateCityCommand) Validate() error {
	errs := validation.Errors{}
	if m.Locale == "" {
		errs["locale"] = validation.NewError("admin.city.locale_required", "locale is required")
	}
	if m.Name == "" {
		errs["name"] = validation.NewError("admin.city.name_required", "name is required")
	}
	if m.Code == "" {
		errs["code"] = validation.NewError("admin.city.code_required", "code is required")
	}
	if m.DistrictID == "" {
		errs["district_id"] = validation.NewError("admin.city.district_required", "district_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreateCityHandler persists new cities through the API client.
type CreateCityHandler struct {
	inner *commands.Handler[CreateCityCommand]
}

// NewCreateCityHandler constructs a handler wired to the provided API.
func NewCreateCityHandler(api API, locales langset.Set, logger interfaces.Logger, opts ...commands.HandlerOption[CreateCityCommand]) *CreateCityHandler {
	exec := func(ctx context.Context, msg CreateCityCommand) error {
		sub, err := buildSubmission(editor.CitySpec(), locales, msg.Locale,
			map[string]string{"code": msg.Code, "districtId": msg.DistrictID},
			map[string]map[string]string{msg.Locale: {"name": msg.Name}}, nil)
		if err != nil {
			return err
		}
		_, err = api.Create(ctx, apiclient.KindCity, sub)
		return err
	}

	handlerOpts := []commands.HandlerOption[CreateCityCommand]{
		commands.WithLogger[CreateCityCommand](logger),
		commands.WithOperation[CreateCityCommand]("city.create"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CreateCityHandler{
		inner: commands.NewHandler[CreateCityCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[CreateCityCommand].Execute.
func (h *CreateCityHandler) Execute(ctx context.Context, msg CreateCityCommand) error {
	return h.inner.Execute(ctx, msg)
}

// UpdateCityCommand replaces an existing city entry in one locale.
type UpdateCityCommand struct {
	ID         string `json:"id"`
	Locale     string `json:"locale"`
	Name       string `json:"name"`
	Code       string `json:"code"`
	DistrictID string `json:"district_id"`
}

// Type implements command.Message.
func (UpdateCityCommand) Type() string { return updateCityMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m UpdateCityCommand) Validate() error {
	errs := validation.Errors{}
	if m.ID == "" {
		errs["id"] = validation.NewError("admin.city.id_required", "id is required")
	}
	if m.Locale == "" {
		errs["locale"] = validation.NewError("admin.city.locale_required", "locale is required")
	}
	if m.Name == "" {
		errs["name"] = validation.NewError("admin.city.name_required", "name is required")
	}
	if m.Code == "" {
		errs["code"] = validation.NewError("admin.city.code_required", "code is required")
	}
	if m.DistrictID == "" {
		errs["district_id"] = validation.NewError("admin.city.district_required", "district_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateCityHandler updates cities through the API client.
type UpdateCityHandler struct {
	inner *commands.Handler[UpdateCityCommand]
}

// NewUpdateCityHandler constructs a handler wired to the provided API.
func NewUpdateCityHandler(api API, locales langset.Set, logger interfaces.Logger, opts ...commands.HandlerOption[UpdateCityCommand]) *UpdateCityHandler {
	exec := func(ctx context.Context, msg UpdateCityCommand) error {
		sub, err := buildSubmission(editor.CitySpec(), locales, msg.Locale,
			map[string]string{"code": msg.Code, "districtId": msg.DistrictID},
			map[string]map[string]string{msg.Locale: {"name": msg.Name}}, nil)
		if err != nil {
			return err
		}
		_, err = api.Update(ctx, apiclient.KindCity, msg.ID, sub)
		return err
	}

	handlerOpts := []commands.HandlerOption[UpdateCityCommand]{
		commands.WithLogger[UpdateCityCommand](logger),
		commands.WithOperation[UpdateCityCommand]("city.update"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &UpdateCityHandler{
		inner: commands.NewHandler[UpdateCityCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[UpdateCityCommand].Execute.
func (h *UpdateCityHandler) Execute(ctx context.Context, msg UpdateCityCommand) error {
	return h.inner.Execute(ctx, msg)
}
