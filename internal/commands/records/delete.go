package recordcmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/mamaghar/go-admin/internal/apiclient"
	"github.com/mamaghar/go-admin/internal/commands"
	"github.com/mamaghar/go-admin/pkg/interfaces"
)

const deleteRecordMessageType = "admin.record.delete"

var deletableKinds = map[apiclient.Kind]struct{}{
	apiclient.KindState:       {},
	apiclient.KindDistrict:    {},
	apiclient.KindCity:        {},
	apiclient.KindCategory:    {},
	apiclient.KindSubCategory: {},
}

// DeleteRecordCommand removes a record of any kind by id.
type DeleteRecordCommand struct {
	Kind apiclient.Kind `json:"kind"`
	ID   string         `json:"id"`
}

// Type implements command.Message.
func (DeleteRecordCommand) Type() string { return deleteRecordMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m DeleteRecordCommand) Validate() error {
	errs := validation.Errors{}
	if _, ok := deletableKinds[m.Kind]; !ok {
		errs["kind"] = validation.NewError("admin.record.kind_invalid", "unknown record kind")
	}
	if m.ID == "" {
		errs["id"] = validation.NewError("admin.record.id_required", "id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DeleteRecordHandler removes records through the API client.
type DeleteRecordHandler struct {
	inner *commands.Handler[DeleteRecordCommand]
}

// NewDeleteRecordHandler constructs a handler wired to the provided API.
func NewDeleteRecordHandler(api API, logger interfaces.Logger, opts ...commands.HandlerOption[DeleteRecordCommand]) *DeleteRecordHandler {
	exec := func(ctx context.Context, msg DeleteRecordCommand) error {
		_, err := api.Delete(ctx, msg.Kind, msg.ID)
		return err
	}

	handlerOpts := []commands.HandlerOption[DeleteRecordCommand]{
		commands.WithLogger[DeleteRecordCommand](logger),
		commands.WithOperation[DeleteRecordCommand]("record.delete"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &DeleteRecordHandler{
		inner: commands.NewHandler[DeleteRecordCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[DeleteRecordCommand].Execute.
func (h *DeleteRecordHandler) Execute(ctx context.Context, msg DeleteRecordCommand) error {
	return h.inner.Execute(ctx, msg)
}
