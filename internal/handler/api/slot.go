package api

import (
	"net/http"

	"salon-reserve/internal/domain/slot"
	reqdto "salon-reserve/internal/handler/dto/request"
	resdto "salon-reserve/internal/handler/dto/response"
	"salon-reserve/internal/handler/httperr"
	"salon-reserve/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SlotHandler struct {
	q queries.SlotQueries
}

func NewSlotHandler(q queries.SlotQueries) *SlotHandler {
	return &SlotHandler{q: q}
}

// @Summary Open slots
// @Description Unbooked slots of an operator ordered by date and time
// @Tags slots
// @Produce json
// @Param operatorId path string true "Operator ID"
// @Param from query string true "First day (YYYY-MM-DD)"
// @Param to query string true "Last day (YYYY-MM-DD)"
// @Success 200 {object} resdto.SlotListResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /operators/{operatorId}/slots [get]
func (h *SlotHandler) OpenSlots(c *gin.Context) {
	operatorID, ok := parseUUIDParam(c, "operatorId")
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

	views, err := h.q.OpenSlots(c.Request.Context(), operatorID, from, to)
	if err != nil {
		httperr.Abort(c, err, slotMessages, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotViews(operatorID, from, to, views))
}

// @Summary Monthly availability
// @Description Dates with open slots and their open times for the month, in the salon's timezone
// @Tags slots
// @Produce json
// @Param operatorId path string true "Operator ID"
// @Param month query string true "Month (YYYY-MM)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /operators/{operatorId}/availability [get]
func (h *SlotHandler) Availability(c *gin.Context) {
	operatorID, ok := parseUUIDParam(c, "operatorId")
	if !ok {
		return
	}

	var query reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortBadRequest(c, err, "Invalid query parameters")
		return
	}
	month, err := slot.ParseMonth(query.Month)
	if err != nil {
		abortBadRequest(c, err, "Invalid month")
		return
	}

	snapshot, err := h.q.Availability(c.Request.Context(), operatorID, month)
	if err != nil {
		httperr.Abort(c, err, slotMessages, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.AvailabilityResponse{
		OperatorID: operatorID,
		Month:      month.MonthString(),
		Snapshot:   snapshot,
	})
}
