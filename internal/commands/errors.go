package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

const (
	textCodeValidation    = "COMMAND_VALIDATION_FAILED"
	textCodeCanceled      = "COMMAND_CONTEXT_CANCELED"
	textCodeTimeout       = "COMMAND_CONTEXT_TIMEOUT"
	textCodeContextError  = "COMMAND_CONTEXT_ERROR"
	textCodeExecuteFailed = "COMMAND_EXECUTION_FAILED"
)

// WrapValidationError tags err as a validation failure unless it already
// carries a category.
func WrapValidationError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "command validation failed").
		WithTextCode(textCodeValidation)
}

// WrapContextError tags cancellation and deadline errors.
func WrapContextError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	switch {
	case errors.Is(err, context.Canceled):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command execution cancelled").
			WithTextCode(textCodeCanceled)
	case errors.Is(err, context.DeadlineExceeded):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command execution deadline exceeded").
			WithTextCode(textCodeTimeout)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command context error").
			WithTextCode(textCodeContextError)
	}
}

// WrapExecuteError tags a failure returned by the command body.
func WrapExecuteError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "command execution failed").
		WithTextCode(textCodeExecuteFailed)
}
