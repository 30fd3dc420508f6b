//go:build e2e

package reservation_test

import (
	"fmt"
	"net/http"

	"salon-reserve/internal/domain/user"
	"salon-reserve/internal/handler/dto/response"
	"salon-reserve/tests/common/authtest"
	"salon-reserve/tests/common/dbtest"
	"salon-reserve/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const (
	salonOperatorsURL = "/api/salons/%s/operators"
	adminSalonURL     = "/api/admin/salon"
)

func (s *ReservationSuite) TestSalonDirectory() {
	s.Run("operator list holds the salon's active operators only", func() {
		t := s.T()
		staffID := dbtest.CreateTestOperator(t, s.DB, "op2@example.com", string(user.RoleStaff))
		retiredID := dbtest.CreateTestOperator(t, s.DB, "op3@example.com", string(user.RoleStaff))
		dbtest.CreateTestOperatorInSalon(t, s.DB, dbtest.OtherSalonID, "elsewhere@example.com", string(user.RoleStaff))
		_, err := s.DB.Exec(t.Context(), "UPDATE operators SET is_active = false WHERE id = $1", retiredID)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(salonOperatorsURL, dbtest.DefaultSalonID), nil, "")

		var got []response.OperatorResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Len(t, got, 2)
		require.Equal(t, s.operatorID, got[0].ID)
		require.Equal(t, staffID, got[1].ID)
		require.NotContains(t, w.Body.String(), `"email"`)
	})

	s.Run("unknown salon is 404", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(salonOperatorsURL, uuid.New()), nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Salon not found")
	})

	s.Run("admin changes the deadline used by new reservations", func() {
		t := s.T()
		operator := authtest.LoginUser(t, s.Router, "op1@example.com", dbtest.DefaultPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, adminSalonURL, map[string]any{"cancellation_deadline_minutes": 60}, operator)
		var updated response.SalonResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &updated)
		require.Equal(t, 60, updated.CancellationDeadlineMinutes)
		require.Equal(t, "Default Salon", updated.Name)
		require.Equal(t, "Asia/Tokyo", updated.Timezone)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, adminSalonURL, nil, operator)
		var read response.SalonResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &read)
		require.Equal(t, updated, read)

		customer := authtest.CreateAndLoginCustomer(t, s.DB, s.Router, "customer@example.com")
		code, res, _ := s.book(t, customer, s.bookingRequest("10:00"), uuid.NewString())
		require.Equal(t, http.StatusCreated, code)
		require.Equal(t, 60, res.CancellationDeadlineMinutes)
	})

	s.Run("settings guards", func() {
		t := s.T()
		admin := authtest.LoginUser(t, s.Router, "op1@example.com", dbtest.DefaultPassword)
		staff := authtest.CreateAndLoginOperator(t, s.DB, s.Router, "staff@example.com", string(user.RoleStaff))
		customer := authtest.CreateAndLoginCustomer(t, s.DB, s.Router, "customer@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, adminSalonURL, map[string]any{"cancellation_deadline_minutes": 60}, staff)
		require.Equal(t, http.StatusForbidden, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, adminSalonURL, nil, customer)
		require.Equal(t, http.StatusForbidden, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, adminSalonURL, map[string]any{"timezone": "Mars/Olympus"}, admin)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Invalid salon settings")

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, adminSalonURL, map[string]any{"cancellation_deadline_minutes": -5}, admin)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var stored int
		err := s.DB.QueryRow(t.Context(), "SELECT cancellation_deadline_minutes FROM salons WHERE id = $1", dbtest.DefaultSalonID).Scan(&stored)
		require.NoError(t, err)
		require.Equal(t, 1440, stored)
	})
}
