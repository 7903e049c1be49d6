package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes carried on wrapped command errors so the shell can distinguish
// failures in logs without parsing messages.
const (
	codeValidationFailed = "ADMIN_CMD_VALIDATION_FAILED"
	codeContextCanceled  = "ADMIN_CMD_CANCELED"
	codeContextTimeout   = "ADMIN_CMD_TIMEOUT"
	codeExecuteFailed    = "ADMIN_CMD_EXECUTION_FAILED"
)

func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "command validation failed").
		WithTextCode(codeValidationFailed)
}

func wrapContextError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	code := codeContextCanceled
	message := "command execution cancelled"
	if errors.Is(err, context.DeadlineExceeded) {
		code = codeContextTimeout
		message = "command execution deadline exceeded"
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, message).WithTextCode(code)
}

func wrapExecuteError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "command execution failed").
		WithTextCode(codeExecuteFailed)
}
