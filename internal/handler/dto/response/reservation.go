package response

import (
	"time"

	"salon-reserve/internal/domain/slot"
	"salon-reserve/internal/pkg/ptr"
	"salon-reserve/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID                          uuid.UUID      `json:"id"`
	SalonID                     uuid.UUID      `json:"salon_id"`
	CustomerID                  uuid.UUID      `json:"customer_id"`
	CustomerName                string         `json:"customer_name,omitempty"`
	OperatorID                  uuid.UUID      `json:"operator_id"`
	OperatorName                string         `json:"operator_name"`
	MenuID                      uuid.UUID      `json:"menu_id"`
	MenuName                    string         `json:"menu_name"`
	Date                        slot.Date      `json:"date"`
	Time                        slot.TimeOfDay `json:"time"`
	Status                      string         `json:"status"`
	GelRemoval                  bool           `json:"gel_removal"`
	OtherRequests               string         `json:"other_requests"`
	TotalPrice                  int64          `json:"total_price"`
	TotalWithoutGelRemoval      int64          `json:"total_without_gel_removal"`
	CancellationDeadlineMinutes int            `json:"cancellation_deadline_minutes"`
	IsCancelable                bool           `json:"is_cancelable"`
	CanceledAt                  *time.Time     `json:"canceled_at,omitempty"`
	CanceledBy                  *string        `json:"canceled_by,omitempty"`
	CreatedAt                   time.Time      `json:"created_at"`
	UpdatedAt                   time.Time      `json:"updated_at"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:                          v.ID,
		SalonID:                     v.SalonID,
		CustomerID:                  v.CustomerID,
		CustomerName:                v.CustomerName,
		OperatorID:                  v.OperatorID,
		OperatorName:                v.OperatorName,
		MenuID:                      v.MenuID,
		MenuName:                    v.MenuName,
		Date:                        v.Date,
		Time:                        v.Time,
		Status:                      v.Status,
		GelRemoval:                  v.GelRemoval,
		OtherRequests:               v.OtherRequests,
		TotalPrice:                  v.TotalPrice,
		TotalWithoutGelRemoval:      v.TotalWithoutGelRemoval,
		CancellationDeadlineMinutes: v.CancellationDeadlineMinutes,
		IsCancelable:                v.IsCancelable,
		CanceledAt:                  v.CanceledAt,
		CanceledBy:                  v.CanceledBy,
		CreatedAt:                   v.CreatedAt,
		UpdatedAt:                   v.UpdatedAt,
	}
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, len(views))
	for i, v := range views {
		out[i] = FromReservationView(v)
	}
	return out
}

type PastReservationsResponse struct {
	Items      []*ReservationResponse `json:"items"`
	NextCursor *string                `json:"next_cursor"`
}

type ReservationHistoryResponse struct {
	Upcoming []*ReservationResponse   `json:"upcoming"`
	Past     PastReservationsResponse `json:"past"`
}

func FromReservationHistory(h *queries.ReservationHistory) *ReservationHistoryResponse {
	resp := &ReservationHistoryResponse{
		Upcoming: FromReservationViews(h.Upcoming),
		Past: PastReservationsResponse{
			Items: FromReservationViews(h.Past),
		},
	}
	if h.Next != nil && h.Next.After != "" {
		resp.Past.NextCursor = ptr.Of(h.Next.After)
	}
	return resp
}

type EligibilityResponse struct {
	CanCreate   bool       `json:"can_create"`
	LockedUntil *time.Time `json:"locked_until,omitempty"`
}

func FromEligibilityView(v *queries.EligibilityView) EligibilityResponse {
	return EligibilityResponse{
		CanCreate:   v.CanCreate,
		LockedUntil: v.LockedUntil,
	}
}
