package http

import (
	"errors"
	"net/http"

	"trix/internal/core/application/usecases/commands"
	"trix/internal/core/application/usecases/queries"
	"trix/internal/core/domain/model/driver"
	"trix/internal/core/domain/model/shipment"
	"trix/internal/core/domain/services"
	"trix/internal/core/ports"
	"trix/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrWrongActorRole is returned when the acting party's role does not match
// the role a route is reserved for.
var ErrWrongActorRole = errors.New("actor role is not allowed for this operation")

// writeError maps application and domain errors onto the HTTP taxonomy:
//
//	422 input that parses but fails validation
//	403 an actor touching a shipment that is not theirs
//	409 state conflicts, lost races and impossible transitions
//	404 missing objects
//	500 incomplete pricing configuration and everything unexpected
func writeError(ctx echo.Context, err error) error {
	return ctx.JSON(statusOf(err), errorResponse{
		Code:    statusOf(err),
		Message: err.Error(),
	})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound

	case errors.Is(err, commands.ErrNotShipmentOwner),
		errors.Is(err, commands.ErrNotShipmentDriver),
		errors.Is(err, queries.ErrShipmentNotVisible),
		errors.Is(err, ErrWrongActorRole):
		return http.StatusForbidden

	case errors.Is(err, shipment.ErrInvalidStatusTransition),
		errors.Is(err, driver.ErrDriverNotAvailable),
		errors.Is(err, commands.ErrDriverNotEligible),
		errors.Is(err, ports.ErrConcurrentModification),
		errors.Is(err, services.ErrNoEligibleDrivers):
		return http.StatusConflict

	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusUnprocessableEntity

	default:
		// Pricing configuration gaps land here together with genuinely
		// unexpected failures; both are server-side problems.
		return http.StatusInternalServerError
	}
}
