//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"salon-reserve/internal/domain/salon"
	"salon-reserve/internal/domain/user"
	"salon-reserve/internal/handler/api"
	reqdto "salon-reserve/internal/handler/dto/request"
	resdto "salon-reserve/internal/handler/dto/response"
	"salon-reserve/internal/handler/middleware"
	"salon-reserve/internal/pkg/errs"
	"salon-reserve/internal/usecase/commands"
	"salon-reserve/internal/usecase/queries"
	"salon-reserve/tests/common/builder"
	"salon-reserve/tests/common/httptest"
	commandsmock "salon-reserve/tests/mock/commands"
	queriesmock "salon-reserve/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SalonHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSalonCommands
	mockQueries  *queriesmock.MockSalonQueries
	handler      *api.SalonHandler
	operator     user.Principal
}

func (s *SalonHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSalonCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSalonQueries(s.mockCtrl)
	s.handler = api.NewSalonHandler(s.mockCommands, s.mockQueries)
	s.operator = builder.NewUserBuilder().BuildPrincipal()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "Bearer operator-token" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		middleware.SetPrincipal(c, s.operator)
		c.Next()
	}

	s.router.GET("/salons/:salonId/operators", s.handler.ListOperators)
	admin := s.router.Group("/admin/salon", authMiddleware)
	admin.GET("", s.handler.GetSettings)
	admin.PUT("", s.handler.UpdateSettings)
}

func (s *SalonHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSalonHandlerSuite(t *testing.T) {
	suite.Run(t, new(SalonHandlerTestSuite))
}

func (s *SalonHandlerTestSuite) salonView() *queries.SalonView {
	return &queries.SalonView{ID: s.operator.SalonID, Name: "Salon", Timezone: "Asia/Tokyo", CancellationDeadlineMinutes: 1440}
}

func (s *SalonHandlerTestSuite) TestListOperators() {
	salonID := uuid.New()
	url := "/salons/" + salonID.String() + "/operators"

	s.Run("success: email stays private", func() {
		s.mockQueries.EXPECT().ListOperators(gomock.Any(), salonID).
			Return([]*queries.OperatorView{
				{ID: uuid.New(), SalonID: salonID, Name: "Aoi", Email: "aoi@example.com", Role: "staff", IsActive: true},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []resdto.OperatorResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal("Aoi", response[0].Name)
		s.NotContains(rec.Body.String(), "aoi@example.com")
	})

	s.Run("success: empty salon returns an empty array", func() {
		s.mockQueries.EXPECT().ListOperators(gomock.Any(), salonID).
			Return([]*queries.OperatorView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})

	s.Run("error: 404 for unknown salon", func() {
		s.mockQueries.EXPECT().ListOperators(gomock.Any(), salonID).
			Return(nil, queries.ErrSalonNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Salon not found")
	})

	s.Run("error: 400 on malformed salon id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/salons/abc/operators", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid salonId format")
	})
}

func (s *SalonHandlerTestSuite) TestGetSettings() {
	s.Run("success: reads the principal's salon", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), s.operator.SalonID).Return(s.salonView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/salon", nil, "operator-token")

		var response resdto.SalonResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(1440, response.CancellationDeadlineMinutes)
		s.Equal("Asia/Tokyo", response.Timezone)
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/salon", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *SalonHandlerTestSuite) TestUpdateSettings() {
	s.Run("success: only the deadline is sent", func() {
		deadline := 60
		updated := s.salonView()
		updated.CancellationDeadlineMinutes = deadline
		s.mockCommands.EXPECT().UpdateSettings(gomock.Any(), s.operator.SalonID, reqdto.UpdateSalonSettingsRequest{CancellationDeadlineMinutes: &deadline}).
			Return(updated, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/salon", map[string]any{"cancellation_deadline_minutes": deadline}, "operator-token")

		var response resdto.SalonResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(deadline, response.CancellationDeadlineMinutes)
	})

	s.Run("error: 400 on binding failures", func() {
		testCases := []struct {
			name string
			body map[string]any
		}{
			{name: "negative deadline", body: map[string]any{"cancellation_deadline_minutes": -1}},
			{name: "deadline over thirty days", body: map[string]any{"cancellation_deadline_minutes": 43201}},
			{name: "name over 100 chars", body: map[string]any{"name": strings.Repeat("a", 101)}},
			{name: "deadline as string", body: map[string]any{"cancellation_deadline_minutes": "60"}},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/salon", tc.body, "operator-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "unknown timezone", commandsError: errs.Tag(salon.ErrInvalidTimezone, commands.ErrInvalidSalonSettings), expectedStatus: http.StatusUnprocessableEntity, expectedMsg: "Invalid salon settings"},
			{name: "salon gone", commandsError: commands.ErrSalonNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Salon not found"},
			{name: "database", commandsError: errs.Tag(errors.New("conn"), commands.ErrDatabaseOperationFailed), expectedStatus: http.StatusServiceUnavailable, expectedMsg: "Service temporarily unavailable"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateSettings(gomock.Any(), s.operator.SalonID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/salon", map[string]any{"timezone": "Mars/Olympus"}, "operator-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
