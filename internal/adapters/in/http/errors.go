package http

import (
	"errors"
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the envelope every failed request is serialized into.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps application errors onto HTTP statuses. Ownership
// violations become 403 so a driver probing foreign records cannot tell
// them apart from records they merely lack access to by id shape.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, route.ErrCapacityExceeded),
		errors.Is(err, route.ErrInvalidStatusTransition):
		status = http.StatusConflict
	case errors.Is(err, commands.ErrRouteNotOwnedByDriver),
		errors.Is(err, commands.ErrDeliveryNotOwnedByDriver):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, route.ErrDriverAndVehicleRequired),
		errors.Is(err, commands.ErrDriverCannotReceiveDeliveries):
		status = http.StatusBadRequest
	}

	return respondErrorStatus(ctx, status, err.Error())
}

func respondErrorStatus(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, Error{Code: status, Message: message})
}

func respondBadRequest(ctx echo.Context, message string) error {
	return respondErrorStatus(ctx, http.StatusBadRequest, message)
}

func respondForbidden(ctx echo.Context) error {
	return respondErrorStatus(ctx, http.StatusForbidden, "insufficient permissions")
}
