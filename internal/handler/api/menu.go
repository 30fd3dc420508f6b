package api

import (
	"net/http"

	reqdto "salon-reserve/internal/handler/dto/request"
	resdto "salon-reserve/internal/handler/dto/response"
	"salon-reserve/internal/handler/httperr"
	"salon-reserve/internal/handler/middleware"
	"salon-reserve/internal/usecase/commands"
	"salon-reserve/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	cmds commands.MenuCommands
	q    queries.MenuQueries
}

func NewMenuHandler(cmds commands.MenuCommands, q queries.MenuQueries) *MenuHandler {
	return &MenuHandler{cmds: cmds, q: q}
}

func (h *MenuHandler) respondMenu(c *gin.Context, status int, view *queries.MenuView) {
	resp, err := resdto.FromMenuView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, resp)
}

func (h *MenuHandler) respondMenus(c *gin.Context, views []*queries.MenuView) {
	resp, err := resdto.FromMenuViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List salon menus
// @Description Active menus of a salon
// @Tags menus
// @Produce json
// @Param salonId path string true "Salon ID"
// @Success 200 {array} resdto.MenuResponse
// @Router /salons/{salonId}/menus [get]
func (h *MenuHandler) ListActive(c *gin.Context) {
	salonID, ok := parseUUIDParam(c, "salonId")
	if !ok {
		return
	}
	views, err := h.q.ListActive(c.Request.Context(), salonID)
	if err != nil {
		httperr.Abort(c, err, menuMessages, nil)
		return
	}
	h.respondMenus(c, views)
}

// @Summary List menu categories
// @Tags menus
// @Produce json
// @Param salonId path string true "Salon ID"
// @Success 200 {array} resdto.MenuCategoryResponse
// @Router /salons/{salonId}/menu-categories [get]
func (h *MenuHandler) ListCategories(c *gin.Context) {
	salonID, ok := parseUUIDParam(c, "salonId")
	if !ok {
		return
	}
	views, err := h.q.ListCategories(c.Request.Context(), salonID)
	if err != nil {
		httperr.Abort(c, err, menuMessages, nil)
		return
	}
	resp, err := resdto.FromMenuCategoryViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get menu
// @Tags menus
// @Produce json
// @Param id path string true "Menu ID"
// @Success 200 {object} resdto.MenuResponse
// @Failure 404 {object} httperr.Response
// @Router /menus/{id} [get]
func (h *MenuHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetActive(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, menuMessages, nil)
		return
	}
	h.respondMenu(c, http.StatusOK, view)
}

// @Summary Rebook check
// @Description Verify a menu can be booked again before entering the booking flow
// @Tags menus
// @Produce json
// @Security BearerAuth
// @Param id path string true "Menu ID"
// @Success 200 {object} resdto.MenuResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /menus/{id}/rebook-check [get]
func (h *MenuHandler) RebookCheck(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	view, err := h.q.RebookCheck(c.Request.Context(), principal.UserID, principal.SalonID, id)
	if err != nil {
		httperr.Abort(c, err, menuMessages, nil)
		return
	}
	h.respondMenu(c, http.StatusOK, view)
}

// @Summary List all salon menus
// @Description Menus of the operator's salon including inactive ones
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.MenuResponse
// @Router /admin/menus [get]
func (h *MenuHandler) AdminList(c *gin.Context) {
	salonID, ok := requireSalonID(c)
	if !ok {
		return
	}
	views, err := h.q.ListForSalon(c.Request.Context(), salonID)
	if err != nil {
		httperr.Abort(c, err, menuMessages, nil)
		return
	}
	h.respondMenus(c, views)
}

// @Summary Create menu
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateMenuRequest true "Menu"
// @Success 201 {object} resdto.MenuResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/menus [post]
func (h *MenuHandler) Create(c *gin.Context) {
	salonID, ok := requireSalonID(c)
	if !ok {
		return
	}
	var req reqdto.CreateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}

	view, err := h.cmds.CreateMenu(c.Request.Context(), salonID, req)
	if err != nil {
		httperr.Abort(c, err, menuMessages, nil)
		return
	}
	h.respondMenu(c, http.StatusCreated, view)
}

// @Summary Update menu
// @Description Omitted fields keep their stored values
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Menu ID"
// @Param request body reqdto.UpdateMenuRequest true "Menu fields"
// @Success 200 {object} resdto.MenuResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/menus/{id} [put]
func (h *MenuHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	salonID, ok := requireSalonID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}

	view, err := h.cmds.UpdateMenu(c.Request.Context(), salonID, id, req)
	if err != nil {
		httperr.Abort(c, err, menuMessages, nil)
		return
	}
	h.respondMenu(c, http.StatusOK, view)
}

// @Summary Deactivate menu
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Menu ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/menus/{id} [delete]
func (h *MenuHandler) Deactivate(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	salonID, ok := requireSalonID(c)
	if !ok {
		return
	}

	if err := h.cmds.DeactivateMenu(c.Request.Context(), salonID, id); err != nil {
		httperr.Abort(c, err, menuMessages, nil)
		return
	}
	c.Status(http.StatusNoContent)
}
