package api

import (
	"bytes"
	"net/http"

	"salon-reserve/internal/domain/slot"
	reqdto "salon-reserve/internal/handler/dto/request"
	resdto "salon-reserve/internal/handler/dto/response"
	"salon-reserve/internal/handler/httperr"
	"salon-reserve/internal/usecase/commands"
	"salon-reserve/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler serves the operator console: the salon's reservations and the operator's own schedule.
type AdminHandler struct {
	reservationCmds commands.ReservationCommands
	scheduleCmds    commands.ScheduleCommands
	reservations    queries.ReservationQueries
	slots           queries.SlotQueries
	export          queries.ExportQueries
}

func NewAdminHandler(
	reservationCmds commands.ReservationCommands,
	scheduleCmds commands.ScheduleCommands,
	reservations queries.ReservationQueries,
	slots queries.SlotQueries,
	export queries.ExportQueries,
) *AdminHandler {
	return &AdminHandler{
		reservationCmds: reservationCmds,
		scheduleCmds:    scheduleCmds,
		reservations:    reservations,
		slots:           slots,
		export:          export,
	}
}

func bindReservationFilters(c *gin.Context) (queries.ReservationFilters, bool) {
	var query reqdto.SalonReservationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortBadRequest(c, err, "Invalid query parameters")
		return queries.ReservationFilters{}, false
	}
	filters, err := query.ToFilters()
	if err != nil {
		abortBadRequest(c, err, "Invalid date range")
		return queries.ReservationFilters{}, false
	}
	return filters, true
}

// @Summary List salon reservations
// @Description Reservations of the operator's salon with customer, menu and operator names
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day (YYYY-MM-DD)"
// @Param status query string false "reserved, completed, canceled or noshow"
// @Param operator_id query string false "Operator ID"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/reservations [get]
func (h *AdminHandler) ListReservations(c *gin.Context) {
	salonID, ok := requireSalonID(c)
	if !ok {
		return
	}
	filters, ok := bindReservationFilters(c)
	if !ok {
		return
	}

	views, err := h.reservations.ListForSalon(c.Request.Context(), salonID, filters)
	if err != nil {
		abortReservationErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Get salon reservation
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/reservations/{id} [get]
func (h *AdminHandler) GetReservation(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	salonID, ok := requireSalonID(c)
	if !ok {
		return
	}

	view, err := h.reservations.GetForSalon(c.Request.Context(), salonID, id)
	if err != nil {
		abortReservationErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

type reservationTransition func(c *gin.Context, salonID, id uuid.UUID) (*queries.ReservationView, error)

func (h *AdminHandler) transition(c *gin.Context, apply reservationTransition) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	salonID, ok := requireSalonID(c)
	if !ok {
		return
	}

	view, err := apply(c, salonID, id)
	if err != nil {
		abortReservationErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Complete reservation
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/reservations/{id}/complete [post]
func (h *AdminHandler) CompleteReservation(c *gin.Context) {
	h.transition(c, func(c *gin.Context, salonID, id uuid.UUID) (*queries.ReservationView, error) {
		return h.reservationCmds.Complete(c.Request.Context(), salonID, id)
	})
}

// @Summary Mark reservation as no-show
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/reservations/{id}/noshow [post]
func (h *AdminHandler) MarkNoShow(c *gin.Context) {
	h.transition(c, func(c *gin.Context, salonID, id uuid.UUID) (*queries.ReservationView, error) {
		return h.reservationCmds.MarkNoShow(c.Request.Context(), salonID, id)
	})
}

// @Summary Cancel reservation as operator
// @Description Cancels regardless of the customer deadline and frees the slot
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/reservations/{id}/cancel [post]
func (h *AdminHandler) CancelReservation(c *gin.Context) {
	h.transition(c, func(c *gin.Context, salonID, id uuid.UUID) (*queries.ReservationView, error) {
		return h.reservationCmds.CancelByOperator(c.Request.Context(), salonID, id)
	})
}

// @Summary Export reservations
// @Description Salon reservations as an xlsx workbook
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day (YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 400 {object} httperr.Response
// @Router /admin/reservations/export [get]
func (h *AdminHandler) ExportReservations(c *gin.Context) {
	salonID, ok := requireSalonID(c)
	if !ok {
		return
	}
	filters, ok := bindReservationFilters(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.export.ExportReservations(c.Request.Context(), salonID, filters, &buf); err != nil {
		httperr.Abort(c, err, reservationMessages, nil)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+h.export.FileName(filters)+`"`)
	c.Data(http.StatusOK, h.export.ContentType(), buf.Bytes())
}

// @Summary Operator schedule
// @Description The operator's own slots including booked ones
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param from query string true "First day (YYYY-MM-DD)"
// @Param to query string true "Last day (YYYY-MM-DD)"
// @Success 200 {object} resdto.SlotListResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/slots [get]
func (h *AdminHandler) ListSlots(c *gin.Context) {
	operatorID, ok := requirePrincipalID(c)
	if !ok {
		return
	}

	var query reqdto.SlotRangeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortBadRequest(c, err, "Invalid query parameters")
		return
	}
	from, to, err := query.ToDomain()
	if err != nil {
		abortBadRequest(c, err, "Invalid date range")
		return
	}

	views, err := h.slots.Schedule(c.Request.Context(), operatorID, from, to)
	if err != nil {
		httperr.Abort(c, err, slotMessages, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotViews(operatorID, from, to, views))
}

// @Summary Bulk create slots
// @Description Expand a weekly template over the target month; existing slots are kept
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BulkCreateSlotsRequest true "Weekly template"
// @Success 201 {object} resdto.BulkCreateSlotsResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/slots/bulk [post]
func (h *AdminHandler) BulkCreateSlots(c *gin.Context) {
	operatorID, ok := requirePrincipalID(c)
	if !ok {
		return
	}

	var req reqdto.BulkCreateSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}

	result, err := h.scheduleCmds.BulkCreate(c.Request.Context(), operatorID, req)
	if err != nil {
		httperr.Abort(c, err, slotMessages, nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.BulkCreateSlotsResponse{Created: result.Created})
}

// @Summary Delete slot
// @Description Delete one unbooked slot
// @Tags admin
// @Security BearerAuth
// @Param date query string true "Day (YYYY-MM-DD)"
// @Param time query string true "Time (HH:MM)"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/slots [delete]
func (h *AdminHandler) DeleteSlot(c *gin.Context) {
	operatorID, ok := requirePrincipalID(c)
	if !ok {
		return
	}

	var query reqdto.DeleteSlotQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortBadRequest(c, err, "Invalid query parameters")
		return
	}
	date, t, err := query.ToDomain()
	if err != nil {
		abortBadRequest(c, err, "Invalid date or time")
		return
	}

	if err := h.scheduleCmds.DeleteSlot(c.Request.Context(), operatorID, date, t); err != nil {
		httperr.Abort(c, err, slotMessages, nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete slots of a day
// @Description Delete every unbooked slot of the day; booked slots are kept
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param date path string true "Day (YYYY-MM-DD)"
// @Success 200 {object} resdto.DeleteSlotsResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/slots/date/{date} [delete]
func (h *AdminHandler) DeleteSlotsByDate(c *gin.Context) {
	operatorID, ok := requirePrincipalID(c)
	if !ok {
		return
	}
	date, err := slot.ParseDate(c.Param("date"))
	if err != nil {
		abortBadRequest(c, err, "Invalid date")
		return
	}

	deleted, err := h.scheduleCmds.DeleteSlotsByDate(c.Request.Context(), operatorID, date)
	if err != nil {
		httperr.Abort(c, err, slotMessages, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.DeleteSlotsResponse{Deleted: deleted})
}
