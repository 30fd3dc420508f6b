//go:build unit

package api_test

import (
	"errors"
	"net/http"
	gohttptest "net/http/httptest"
	"strings"
	"testing"
	"time"

	"salon-reserve/internal/domain/reservation"
	"salon-reserve/internal/domain/user"
	"salon-reserve/internal/handler/api"
	resdto "salon-reserve/internal/handler/dto/response"
	"salon-reserve/internal/handler/middleware"
	"salon-reserve/internal/pkg/errs"
	"salon-reserve/internal/usecase/commands"
	"salon-reserve/internal/usecase/queries"
	"salon-reserve/tests/common/builder"
	"salon-reserve/tests/common/httptest"
	"salon-reserve/tests/common/testutil"
	commandsmock "salon-reserve/tests/mock/commands"
	queriesmock "salon-reserve/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
	customer     user.Principal
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)
	s.customer = builder.NewUserBuilder().AsCustomer().BuildPrincipal()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		middleware.SetPrincipal(c, s.customer)
		c.Next()
	}

	group := s.router.Group("/reservations", authMiddleware)
	group.POST("", s.handler.Create)
	group.GET("", s.handler.History)
	group.GET("/eligibility", s.handler.Eligibility)
	group.GET("/:id", s.handler.Get)
	group.POST("/:id/cancel", s.handler.Cancel)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

type testCaseReservation struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *ReservationHandlerTestSuite) performWithKey(body any, key string) *gohttptest.ResponseRecorder {
	return httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/reservations", body, map[string]string{
		"Authorization":   "Bearer customer-token",
		"Idempotency-Key": key,
	})
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	rb := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.CustomerID = s.customer.UserID
		b.SalonID = s.customer.SalonID
	})
	reqBody := rb.BuildCreateRequestDTO()
	view := rb.BuildView()
	key := uuid.New()

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), reqBody, s.customer.UserID, key).
			Return(&commands.CreateReservationResult{Reservation: view}, nil).Times(1)

		rec := s.performWithKey(reqBody, key.String())

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("reserved", response.Status)
		s.True(response.IsCancelable)
		s.Empty(rec.Header().Get("Idempotent-Replayed"))
	})

	s.Run("success: replayed request returns 200 with replay header", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), reqBody, s.customer.UserID, key).
			Return(&commands.CreateReservationResult{Reservation: view, IsReplayed: true}, nil).Times(1)

		rec := s.performWithKey(reqBody, key.String())

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Idempotent-Replayed": "true"})
	})

	s.Run("error: 400 when the idempotency key is missing or malformed", func() {
		rec := s.performWithKey(reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "idempotency key is required")

		rec = s.performWithKey(reqBody, "not-a-uuid")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid idempotency key format")
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		bound := []testCaseReservation{
			{name: "other_requests OK (200 chars)", mutate: testutil.Field("other_requests", strings.Repeat("a", 200)), expectCode: http.StatusCreated},
			{name: "other_requests invalid (201 chars)", mutate: testutil.Field("other_requests", strings.Repeat("a", 201)), expectCode: http.StatusBadRequest},
		}

		missing := []testCaseReservation{
			{name: "missing field: operator_id (required)", mutate: testutil.Field("operator_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: menu_id (required)", mutate: testutil.Field("menu_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: date (required)", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: time (required)", mutate: testutil.Field("time", nil), expectCode: http.StatusBadRequest},
		}

		malformed := []testCaseReservation{
			{name: "operator_id not a uuid", mutate: testutil.Field("operator_id", "abc"), expectCode: http.StatusBadRequest},
			{name: "gel_removal not a bool", mutate: testutil.Field("gel_removal", "yes"), expectCode: http.StatusBadRequest},
		}

		for _, testCaseGroup := range [][]testCaseReservation{bound, missing, malformed} {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), s.customer.UserID, key).
							Return(&commands.CreateReservationResult{Reservation: view}, nil).Times(1)
					}
					rec := s.performWithKey(requestMap, key.String())
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
					}
				})
			}
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "slot taken",
				commandsError:  errs.Tag(errors.New("0 rows"), commands.ErrSlotUnavailable),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "The selected time is no longer available",
			},
			{
				name:           "active reservation",
				commandsError:  commands.ErrActiveReservationExists,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "You already have an upcoming reservation",
			},
			{
				name:           "key reused with another body",
				commandsError:  commands.ErrDuplicateReservation,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Duplicate reservation request",
			},
			{
				name:           "menu gone",
				commandsError:  errs.Tag(errors.New("inactive"), commands.ErrMenuNotFound),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Menu not found",
			},
			{
				name:           "invalid booking",
				commandsError:  errs.Tag(errors.New("bad date"), commands.ErrInvalidReservation),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Invalid reservation",
			},
			{
				name:           "idempotency store unavailable",
				commandsError:  errs.Tag(errors.New("conn reset"), commands.ErrIdempotencyCheckFailed),
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "Service temporarily unavailable",
			},
			{
				name:           "unclassified",
				commandsError:  errors.New("boom"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateReservation(gomock.Any(), reqBody, s.customer.UserID, key).
					Return(nil, tc.commandsError).Times(1)

				rec := s.performWithKey(reqBody, key.String())
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: lockout carries locked_until", func() {
		until := time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC)
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), reqBody, s.customer.UserID, key).
			Return(nil, errs.Tag(&commands.LockoutError{Until: until}, commands.ErrLockedOut)).Times(1)

		rec := s.performWithKey(reqBody, key.String())

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "temporarily locked")
		var body struct {
			Detail struct {
				LockedUntil time.Time `json:"locked_until"`
			} `json:"detail"`
		}
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &body))
		s.True(until.Equal(body.Detail.LockedUntil))
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGet() {
	view := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.CustomerID = s.customer.UserID
	}).BuildView()
	url := "/reservations/" + view.ID.String()

	s.Run("success: returns the reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.customer.UserID, view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "customer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.MenuName, response.MenuName)
		s.Equal(view.TotalWithoutGelRemoval, response.TotalWithoutGelRemoval)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/not-a-uuid", nil, "customer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id format")
	})

	s.Run("error: 403 for another customer's reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.customer.UserID, view.ID).
			Return(nil, queries.ErrReservationAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "customer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access to this reservation is denied")
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.customer.UserID, view.ID).
			Return(nil, queries.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "customer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

// ================================================================================
// TestHistory
// ================================================================================

func (s *ReservationHandlerTestSuite) TestHistory() {
	upcoming := builder.NewReservationBuilder().BuildView()
	past := builder.NewReservationBuilder().WithSlot("2024-12-01", "11:00").
		WithStatus(reservation.StatusCompleted).BuildView()

	s.Run("success: first page with next cursor", func() {
		s.mockQueries.EXPECT().History(gomock.Any(), s.customer.UserID, s.customer.SalonID, (*queries.Cursor)(nil), 0).
			Return(&queries.ReservationHistory{
				Upcoming: []*queries.ReservationView{upcoming},
				Past:     []*queries.ReservationView{past},
				Next:     &queries.Cursor{After: "next-token"},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "customer-token")

		var response resdto.ReservationHistoryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Upcoming, 1)
		s.Require().Len(response.Past.Items, 1)
		s.Equal("completed", response.Past.Items[0].Status)
		s.Require().NotNil(response.Past.NextCursor)
		s.Equal("next-token", *response.Past.NextCursor)
	})

	s.Run("success: cursor and limit are forwarded", func() {
		s.mockQueries.EXPECT().History(gomock.Any(), s.customer.UserID, s.customer.SalonID, &queries.Cursor{After: "abc"}, 5).
			Return(&queries.ReservationHistory{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?cursor=abc&limit=5", nil, "customer-token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		pastPage, _ := response["past"].(map[string]any)
		s.Nil(pastPage["next_cursor"])
	})

	s.Run("error: 400 on limit out of range", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?limit=201", nil, "customer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
	})

	s.Run("error: 400 on a cursor that does not decode", func() {
		s.mockQueries.EXPECT().History(gomock.Any(), s.customer.UserID, s.customer.SalonID, gomock.Any(), 0).
			Return(nil, errs.Tag(errors.New("base64"), queries.ErrInvalidCursor)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?cursor=%25%25", nil, "customer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCancel() {
	view := builder.NewReservationBuilder().WithStatus(reservation.StatusCanceled).BuildView()
	url := "/reservations/" + view.ID.String() + "/cancel"

	s.Run("success: returns the canceled reservation", func() {
		s.mockCommands.EXPECT().CancelByCustomer(gomock.Any(), s.customer.UserID, view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "customer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("canceled", response.Status)
		s.False(response.IsCancelable)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "deadline passed", commandsError: commands.ErrCancelDeadlinePassed, expectedStatus: http.StatusConflict, expectedMsg: "The cancellation deadline has passed"},
			{name: "already canceled", commandsError: commands.ErrReservationNotReserved, expectedStatus: http.StatusConflict, expectedMsg: "not in a reserved state"},
			{name: "not owner", commandsError: commands.ErrReservationAccess, expectedStatus: http.StatusForbidden, expectedMsg: "denied"},
			{name: "missing", commandsError: commands.ErrReservationNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Reservation not found"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CancelByCustomer(gomock.Any(), s.customer.UserID, view.ID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "customer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestEligibility
// ================================================================================

func (s *ReservationHandlerTestSuite) TestEligibility() {
	s.Run("success: eligible", func() {
		s.mockQueries.EXPECT().Eligibility(gomock.Any(), s.customer.UserID).
			Return(&queries.EligibilityView{CanCreate: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/eligibility", nil, "customer-token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(true, response["can_create"])
		s.NotContains(response, "locked_until")
	})

	s.Run("success: locked out", func() {
		until := time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC)
		s.mockQueries.EXPECT().Eligibility(gomock.Any(), s.customer.UserID).
			Return(&queries.EligibilityView{CanCreate: false, LockedUntil: &until}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/eligibility", nil, "customer-token")

		var response resdto.EligibilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.CanCreate)
		s.Require().NotNil(response.LockedUntil)
		s.True(until.Equal(*response.LockedUntil))
	})
}
