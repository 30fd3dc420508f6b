//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"salon-reserve/internal/domain/availability"
	"salon-reserve/internal/domain/slot"
	"salon-reserve/internal/handler/api"
	resdto "salon-reserve/internal/handler/dto/response"
	"salon-reserve/internal/usecase/queries"
	"salon-reserve/tests/common/httptest"
	queriesmock "salon-reserve/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SlotHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockSlotQueries
	handler     *api.SlotHandler
}

func (s *SlotHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockSlotQueries(s.mockCtrl)
	s.handler = api.NewSlotHandler(s.mockQueries)

	s.router.GET("/operators/:operatorId/slots", s.handler.OpenSlots)
	s.router.GET("/operators/:operatorId/availability", s.handler.Availability)
}

func (s *SlotHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSlotHandlerSuite(t *testing.T) {
	suite.Run(t, new(SlotHandlerTestSuite))
}

// ================================================================================
// TestOpenSlots
// ================================================================================

func (s *SlotHandlerTestSuite) TestOpenSlots() {
	operatorID := uuid.New()
	base := "/operators/" + operatorID.String() + "/slots"

	s.Run("success: open slots in order", func() {
		from := slot.MustDate("2025-03-05")
		to := slot.MustDate("2025-03-06")
		s.mockQueries.EXPECT().OpenSlots(gomock.Any(), operatorID, from, to).
			Return([]*queries.SlotView{
				{OperatorID: operatorID, Date: from, Time: slot.MustTime("10:00")},
				{OperatorID: operatorID, Date: to, Time: slot.MustTime("09:30")},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?from=2025-03-05&to=2025-03-06", nil, "")

		var response resdto.SlotListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(operatorID, response.OperatorID)
		s.Equal(from, response.From)
		s.Require().Len(response.Slots, 2)
		s.Equal(to, response.Slots[1].Date)
	})

	s.Run("error: 400 on bad range", func() {
		testCases := []struct {
			name  string
			query string
			msg   string
		}{
			{name: "missing to", query: "?from=2025-03-05", msg: "Invalid query parameters"},
			{name: "malformed date", query: "?from=2025-03-05&to=tomorrow", msg: "Invalid date range"},
			{name: "inverted", query: "?from=2025-03-06&to=2025-03-05", msg: "Invalid date range"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+tc.query, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.msg)
			})
		}
	})

	s.Run("error: usecase range limit is 422", func() {
		s.mockQueries.EXPECT().OpenSlots(gomock.Any(), operatorID, gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrInvalidSlotRange).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?from=2025-03-01&to=2025-12-31", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid date range")
	})

	s.Run("error: 404 for unknown operator", func() {
		s.mockQueries.EXPECT().OpenSlots(gomock.Any(), operatorID, gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrOperatorNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?from=2025-03-05&to=2025-03-06", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Operator not found")
	})
}

// ================================================================================
// TestAvailability
// ================================================================================

func (s *SlotHandlerTestSuite) TestAvailability() {
	operatorID := uuid.New()
	base := "/operators/" + operatorID.String() + "/availability"

	s.Run("success: dates and times of the month", func() {
		now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
		snapshot := availability.Derive([]slot.Occurrence{
			{Date: slot.MustDate("2025-03-07"), Time: slot.MustTime("14:00")},
			{Date: slot.MustDate("2025-03-05"), Time: slot.MustTime("10:30")},
			{Date: slot.MustDate("2025-03-05"), Time: slot.MustTime("10:00")},
		}, now)
		s.mockQueries.EXPECT().Availability(gomock.Any(), operatorID, slot.MustDate("2025-03-01")).
			Return(snapshot, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?month=2025-03", nil, "")

		var response struct {
			OperatorID   uuid.UUID `json:"operator_id"`
			Month        string    `json:"month"`
			Availability struct {
				Dates       []string            `json:"dates"`
				TimesByDate map[string][]string `json:"times_by_date"`
			} `json:"availability"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("2025-03", response.Month)
		s.Equal([]string{"2025-03-05", "2025-03-07"}, response.Availability.Dates)
		s.Equal([]string{"10:00", "10:30"}, response.Availability.TimesByDate["2025-03-05"])
	})

	s.Run("success: empty month", func() {
		s.mockQueries.EXPECT().Availability(gomock.Any(), operatorID, slot.MustDate("2025-04-01")).
			Return(availability.Empty(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?month=2025-04", nil, "")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		snapshot, _ := response["availability"].(map[string]any)
		s.Empty(snapshot["dates"])
	})

	s.Run("error: 400 on malformed month", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?month=2025-3", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid month")

		rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, base, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
	})
}
