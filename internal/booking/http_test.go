//go:build unit

package booking_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"salon-reserve/internal/booking"
	"salon-reserve/internal/domain/availability"
	"salon-reserve/internal/domain/reservation"
	"salon-reserve/internal/domain/slot"
	"salon-reserve/internal/handler/dto/request"
	"salon-reserve/internal/handler/dto/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, register func(r *gin.Engine)) *booking.HTTPBackend {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	register(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return booking.NewHTTPBackend(srv.URL+"/", booking.StaticToken("token-123"))
}

func errorBody(msg string, detail any) gin.H {
	body := gin.H{"error": gin.H{"message": msg}}
	if detail != nil {
		body["detail"] = detail
	}
	return body
}

func TestHTTPBackend_Availability(t *testing.T) {
	operatorID := uuid.New()
	backend := newTestServer(t, func(r *gin.Engine) {
		r.GET("/api/operators/:operatorId/availability", func(c *gin.Context) {
			assert.Equal(t, operatorID.String(), c.Param("operatorId"))
			assert.Equal(t, "2025-03", c.Query("month"))
			snap := availability.Derive([]slot.Occurrence{
				{Date: slot.MustDate("2025-03-05"), Time: slot.MustTime("14:00")},
				{Date: slot.MustDate("2025-03-05"), Time: slot.MustTime("10:00")},
			}, at("2025-03-01T00:00:00"))
			c.JSON(http.StatusOK, response.AvailabilityResponse{OperatorID: operatorID, Month: "2025-03", Snapshot: snap})
		})
	})

	snap, err := backend.Availability(context.Background(), operatorID, slot.MustDate("2025-03-01"))
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00", "14:00"}, timesOf(snap.Times(slot.MustDate("2025-03-05"))))
}

func TestHTTPBackend_Operators(t *testing.T) {
	salonID := uuid.New()
	aoi, ren := uuid.New(), uuid.New()

	t.Run("decodes the operator list in server order", func(t *testing.T) {
		backend := newTestServer(t, func(r *gin.Engine) {
			r.GET("/api/salons/:salonId/operators", func(c *gin.Context) {
				assert.Equal(t, salonID.String(), c.Param("salonId"))
				c.JSON(http.StatusOK, []response.OperatorResponse{
					{ID: aoi, Name: "Aoi", Role: "staff"},
					{ID: ren, Name: "Ren", Role: "admin"},
				})
			})
		})

		ops, err := backend.Operators(context.Background(), salonID)
		require.NoError(t, err)
		assert.Equal(t, []booking.Operator{
			{ID: aoi, Name: "Aoi", Role: "staff"},
			{ID: ren, Name: "Ren", Role: "admin"},
		}, ops)
	})

	t.Run("unknown salon", func(t *testing.T) {
		backend := newTestServer(t, func(r *gin.Engine) {
			r.GET("/api/salons/:salonId/operators", func(c *gin.Context) {
				c.JSON(http.StatusNotFound, errorBody("Salon not found", nil))
			})
		})

		_, err := backend.Operators(context.Background(), salonID)
		assert.Equal(t, booking.KindNotFound, booking.Classify(err))
	})
}

func TestHTTPBackend_CreateReservation(t *testing.T) {
	key := uuid.New()
	req := booking.CreateRequest{
		OperatorID:    uuid.New(),
		MenuID:        uuid.New(),
		Date:          slot.MustDate("2025-03-05"),
		Time:          slot.MustTime("10:30"),
		GelRemoval:    true,
		OtherRequests: "none",
	}

	t.Run("sends the idempotency key and decodes the reservation", func(t *testing.T) {
		backend := newTestServer(t, func(r *gin.Engine) {
			r.POST("/api/reservations", func(c *gin.Context) {
				assert.Equal(t, "Bearer token-123", c.GetHeader("Authorization"))
				assert.Equal(t, key.String(), c.GetHeader("Idempotency-Key"))

				var body request.CreateReservationRequest
				assert.NoError(t, c.ShouldBindJSON(&body))
				assert.Equal(t, "2025-03-05", body.Date)
				assert.Equal(t, "10:30", body.Time)
				assert.True(t, body.GelRemoval)

				c.Header("Idempotent-Replayed", "true")
				c.JSON(http.StatusOK, response.ReservationResponse{
					ID:                          uuid.New(),
					OperatorID:                  body.OperatorID,
					MenuID:                      body.MenuID,
					Date:                        slot.MustDate(body.Date),
					Time:                        slot.MustTime(body.Time),
					Status:                      "reserved",
					CancellationDeadlineMinutes: 720,
				})
			})
		})

		res, err := backend.CreateReservation(context.Background(), key, req)
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusReserved, res.Status)
		assert.Equal(t, req.OperatorID, res.OperatorID)
		assert.True(t, res.Replayed)
		require.NotNil(t, res.CancellationDeadlineMinutes)
		assert.Equal(t, 720, *res.CancellationDeadlineMinutes)
	})

	tests := []struct {
		name   string
		status int
		body   gin.H
		want   booking.Kind
	}{
		{name: "slot taken", status: http.StatusConflict, body: errorBody("The selected time is no longer available", nil), want: booking.KindConflict},
		{
			name:   "locked out",
			status: http.StatusConflict,
			body:   errorBody("locked", gin.H{"locked_until": "2025-03-02T09:00:00+09:00"}),
			want:   booking.KindLockedOut,
		},
		{name: "menu gone", status: http.StatusNotFound, body: errorBody("Menu not found", nil), want: booking.KindNotFound},
		{name: "invalid input", status: http.StatusUnprocessableEntity, body: errorBody("Invalid reservation", nil), want: booking.KindValidation},
		{name: "server unavailable", status: http.StatusServiceUnavailable, body: errorBody("Service Unavailable", nil), want: booking.KindTransient},
		{name: "rate limited", status: http.StatusTooManyRequests, body: errorBody("Too many requests", nil), want: booking.KindTransient},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := newTestServer(t, func(r *gin.Engine) {
				r.POST("/api/reservations", func(c *gin.Context) {
					c.JSON(tt.status, tt.body)
				})
			})

			_, err := backend.CreateReservation(context.Background(), key, req)
			require.Error(t, err)
			assert.Equal(t, tt.want, booking.Classify(err))
		})
	}

	t.Run("lockout detail carries the end time", func(t *testing.T) {
		backend := newTestServer(t, func(r *gin.Engine) {
			r.POST("/api/reservations", func(c *gin.Context) {
				c.JSON(http.StatusConflict, errorBody("locked", gin.H{"locked_until": "2025-03-02T00:00:00Z"}))
			})
		})

		_, err := backend.CreateReservation(context.Background(), key, req)
		var lockout *booking.LockedOutError
		require.True(t, errors.As(err, &lockout))
		assert.True(t, lockout.Until.Equal(time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)))
	})
}

func TestHTTPBackend_EligibilityAndCancel(t *testing.T) {
	id := uuid.New()
	until := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	backend := newTestServer(t, func(r *gin.Engine) {
		r.GET("/api/reservations/eligibility", func(c *gin.Context) {
			c.JSON(http.StatusOK, response.EligibilityResponse{CanCreate: false, LockedUntil: &until})
		})
		r.POST("/api/reservations/:id/cancel", func(c *gin.Context) {
			assert.Equal(t, id.String(), c.Param("id"))
			c.JSON(http.StatusOK, response.ReservationResponse{ID: id, Status: "canceled"})
		})
		r.GET("/api/menus/:id/rebook-check", func(c *gin.Context) {
			c.JSON(http.StatusNotFound, errorBody("Menu not found", nil))
		})
	})
	ctx := context.Background()

	e, err := backend.Eligibility(ctx)
	require.NoError(t, err)
	assert.False(t, e.CanCreate)
	require.NotNil(t, e.LockedUntil)
	assert.True(t, until.Equal(*e.LockedUntil))

	res, err := backend.CancelReservation(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusCanceled, res.Status)

	err = backend.RebookCheck(ctx, uuid.New())
	assert.Equal(t, booking.KindNotFound, booking.Classify(err))
}

func TestHTTPBackend_MalformedPayload(t *testing.T) {
	backend := newTestServer(t, func(r *gin.Engine) {
		r.GET("/api/reservations/eligibility", func(c *gin.Context) {
			c.Data(http.StatusOK, "application/json", []byte("{not json"))
		})
	})

	_, err := backend.Eligibility(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, booking.ErrUnexpectedPayload)
	assert.Equal(t, booking.KindTransient, booking.Classify(err))
}

