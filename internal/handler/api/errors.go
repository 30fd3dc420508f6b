package api

import (
	"errors"
	"net/http"
	"time"

	"salon-reserve/internal/handler/httperr"
	"salon-reserve/internal/handler/middleware"
	"salon-reserve/internal/usecase/commands"
	"salon-reserve/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var reservationMessages = []httperr.Message{
	{Target: commands.ErrLockedOut, Text: "Reservations are temporarily locked after repeated cancellations"},
	{Target: commands.ErrActiveReservationExists, Text: "You already have an upcoming reservation"},
	{Target: commands.ErrSlotUnavailable, Text: "The selected time is no longer available"},
	{Target: commands.ErrSlotNotFound, Text: "Slot not found"},
	{Target: commands.ErrDuplicateReservation, Text: "Duplicate reservation request with different parameters"},
	{Target: commands.ErrIdempotencyInProgress, Text: "Reservation request is currently being processed"},
	{Target: commands.ErrCancelDeadlinePassed, Text: "The cancellation deadline has passed"},
	{Target: commands.ErrReservationNotReserved, Text: "Reservation is not in a reserved state"},
	{Target: commands.ErrInvalidReservation, Text: "Invalid reservation"},
	{Target: commands.ErrReservationAccess, Text: "Access to this reservation is denied"},
	{Target: commands.ErrReservationNotFound, Text: "Reservation not found"},
	{Target: commands.ErrMenuNotFound, Text: "Menu not found"},
	{Target: commands.ErrOperatorNotFound, Text: "Operator not found"},
	{Target: commands.ErrCustomerNotFound, Text: "Customer not found"},
	{Target: queries.ErrInvalidCursor, Text: "Invalid cursor"},
}

var slotMessages = []httperr.Message{
	{Target: queries.ErrInvalidSlotRange, Text: "Invalid date range"},
	{Target: queries.ErrOperatorNotFound, Text: "Operator not found"},
	{Target: commands.ErrMonthOutOfRange, Text: "Target month is outside the bookable range"},
	{Target: commands.ErrInvalidSchedule, Text: "Invalid schedule"},
	{Target: commands.ErrSlotDateInvalid, Text: "Invalid slot date"},
	{Target: commands.ErrSlotBooked, Text: "Slot is booked"},
	{Target: commands.ErrSlotNotFound, Text: "Slot not found"},
}

var menuMessages = []httperr.Message{
	{Target: commands.ErrInvalidMenu, Text: "Invalid menu"},
	{Target: commands.ErrCategoryNotFound, Text: "Menu category not found"},
	{Target: commands.ErrDivisionsNotFound, Text: "Menu division not found"},
	{Target: queries.ErrMenuNotFound, Text: "Menu not found"},
	{Target: queries.ErrActiveReservationExists, Text: "You already have an upcoming reservation"},
}

var salonMessages = []httperr.Message{
	{Target: commands.ErrInvalidSalonSettings, Text: "Invalid salon settings"},
	{Target: queries.ErrSalonNotFound, Text: "Salon not found"},
}

type lockoutDetail struct {
	LockedUntil time.Time `json:"locked_until"`
}

func abortReservationErr(c *gin.Context, err error) {
	var lockout *commands.LockoutError
	if errors.As(err, &lockout) {
		httperr.Abort(c, err, reservationMessages, lockoutDetail{LockedUntil: lockout.Until})
		return
	}
	httperr.Abort(c, err, reservationMessages, nil)
}

func abortBadRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}

func requirePrincipalID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		// Unexpected: routes using this sit behind RequireAuth
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return uuid.Nil, false
	}
	return userID, true
}

func requireSalonID(c *gin.Context) (uuid.UUID, bool) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return uuid.Nil, false
	}
	return p.SalonID, true
}

var errUnauthenticated = errors.New("principal missing from context")

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		abortBadRequest(c, err, "Invalid "+name+" format")
		return uuid.Nil, false
	}
	return id, true
}
