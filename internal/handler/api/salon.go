package api

import (
	"net/http"

	reqdto "salon-reserve/internal/handler/dto/request"
	resdto "salon-reserve/internal/handler/dto/response"
	"salon-reserve/internal/handler/httperr"
	"salon-reserve/internal/usecase/commands"
	"salon-reserve/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SalonHandler struct {
	cmds commands.SalonCommands
	q    queries.SalonQueries
}

func NewSalonHandler(cmds commands.SalonCommands, q queries.SalonQueries) *SalonHandler {
	return &SalonHandler{cmds: cmds, q: q}
}

func (h *SalonHandler) respondSalon(c *gin.Context, view *queries.SalonView) {
	resp, err := resdto.FromSalonView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List salon operators
// @Description Active operators of a salon
// @Tags salons
// @Produce json
// @Param salonId path string true "Salon ID"
// @Success 200 {array} resdto.OperatorResponse
// @Failure 404 {object} httperr.Response
// @Router /salons/{salonId}/operators [get]
func (h *SalonHandler) ListOperators(c *gin.Context) {
	salonID, ok := parseUUIDParam(c, "salonId")
	if !ok {
		return
	}
	views, err := h.q.ListOperators(c.Request.Context(), salonID)
	if err != nil {
		httperr.Abort(c, err, salonMessages, nil)
		return
	}
	resp, err := resdto.FromOperatorViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get salon settings
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SalonResponse
// @Router /admin/salon [get]
func (h *SalonHandler) GetSettings(c *gin.Context) {
	salonID, ok := requireSalonID(c)
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), salonID)
	if err != nil {
		httperr.Abort(c, err, salonMessages, nil)
		return
	}
	h.respondSalon(c, view)
}

// @Summary Update salon settings
// @Description Omitted fields keep their stored values
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateSalonSettingsRequest true "Salon settings"
// @Success 200 {object} resdto.SalonResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/salon [put]
func (h *SalonHandler) UpdateSettings(c *gin.Context) {
	salonID, ok := requireSalonID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateSalonSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}

	view, err := h.cmds.UpdateSettings(c.Request.Context(), salonID, req)
	if err != nil {
		httperr.Abort(c, err, salonMessages, nil)
		return
	}
	h.respondSalon(c, view)
}
