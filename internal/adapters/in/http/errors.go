package http

import (
	"errors"
	"net/http"

	"github.com/zaidkabb/aerologix-backend/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps domain and application errors to HTTP status codes.
// Missing objects map to 404, uniqueness and coordination conflicts to 409,
// rejected lifecycle moves and capacity overflows to 422, and everything
// the validation layer rejects to 400.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrCapacityExceeded):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}

// badRequest returns a 400 response with the given message.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
