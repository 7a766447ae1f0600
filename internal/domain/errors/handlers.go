package errors

import (
	"net/http"

	"zenvira/internal/errors"
)

// AsAppError extracts the first AppError in err's chain.
func AsAppError(err error) (AppError, bool) {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}

	return nil, false
}

// HTTPStatus returns the status code an error should be rendered with.
// Errors that are not AppErrors are internal failures.
func HTTPStatus(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.HTTPCode()
	}

	return http.StatusInternalServerError
}

// Validation returns ErrValidationFailed carrying a user-facing message.
func Validation(message string) error {
	return errors.WithStack(ErrValidationFailed.WithMessage(message))
}
