package api

import (
	"errors"
	"net/http"

	reqdto "salon-reserve/internal/handler/dto/request"
	resdto "salon-reserve/internal/handler/dto/response"
	"salon-reserve/internal/handler/httperr"
	"salon-reserve/internal/handler/middleware"
	"salon-reserve/internal/pkg/errs"
	"salon-reserve/internal/usecase/commands"
	"salon-reserve/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	headerIdempotencyKey     = "Idempotency-Key"
	headerIdempotentReplayed = "Idempotent-Replayed"
)

var (
	errIdempotencyKeyRequired = errors.New("idempotency key is required")
	errIdempotencyKeyFormat   = errors.New("invalid idempotency key format")
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Create reservation
// @Description Book an open slot. The slot is locked, marked booked and the reservation inserted in one transaction.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Success 200 {object} resdto.ReservationResponse "Replayed result of an earlier request"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	customerID, ok := requirePrincipalID(c)
	if !ok {
		return
	}

	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		abortBadRequest(c, err, err.Error())
		return
	}

	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		abortBadRequest(c, bindErr, "Invalid request format")
		return
	}

	result, err := h.cmds.CreateReservation(c.Request.Context(), req, customerID, idempotencyKey)
	if err != nil {
		abortReservationErr(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		c.Header(headerIdempotentReplayed, "true")
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromReservationView(result.Reservation))
}

// @Summary Get reservation
// @Description Get one of the caller's reservations
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	customerID, ok := requirePrincipalID(c)
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), customerID, id)
	if err != nil {
		abortReservationErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Reservation history
// @Description Upcoming reservations ascending and a keyset page of past ones descending
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Past page size"
// @Param cursor query string false "Cursor from a previous page"
// @Success 200 {object} resdto.ReservationHistoryResponse
// @Failure 400 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) History(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	var query reqdto.PastReservationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortBadRequest(c, err, "Invalid query parameters")
		return
	}

	var cursor *queries.Cursor
	if query.Cursor != "" {
		cursor = &queries.Cursor{After: query.Cursor}
	}

	history, err := h.q.History(c.Request.Context(), principal.UserID, principal.SalonID, cursor, query.Limit)
	if err != nil {
		if errs.Is(err, queries.ErrInvalidCursor) {
			abortBadRequest(c, err, "Invalid cursor")
			return
		}
		abortReservationErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationHistory(history))
}

// @Summary Cancel reservation
// @Description Cancel one of the caller's reservations before its cancellation deadline and free the slot
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	customerID, ok := requirePrincipalID(c)
	if !ok {
		return
	}

	view, err := h.cmds.CancelByCustomer(c.Request.Context(), customerID, id)
	if err != nil {
		abortReservationErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Booking eligibility
// @Description Whether the caller may create a reservation now, with the lockout end when locked
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.EligibilityResponse
// @Router /reservations/eligibility [get]
func (h *ReservationHandler) Eligibility(c *gin.Context) {
	customerID, ok := requirePrincipalID(c)
	if !ok {
		return
	}

	view, err := h.q.Eligibility(c.Request.Context(), customerID)
	if err != nil {
		abortReservationErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEligibilityView(view))
}

func getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	keyStr := c.GetHeader(headerIdempotencyKey)
	if keyStr == "" {
		return uuid.Nil, errIdempotencyKeyRequired
	}

	key, err := uuid.Parse(keyStr)
	if err != nil {
		return uuid.Nil, errIdempotencyKeyFormat
	}

	return key, nil
}
