package queries

import (
	"time"

	"salon-reserve/internal/domain/slot"

	"github.com/google/uuid"
)

// SalonView represents read-optimized salon settings
type SalonView struct {
	ID                          uuid.UUID `json:"id"`
	Name                        string    `json:"name"`
	Timezone                    string    `json:"timezone"`
	CancellationDeadlineMinutes int       `json:"cancellation_deadline_minutes"`
}

// Location falls back to fallback when the stored zone is unknown.
func (s *SalonView) Location(fallback *time.Location) *time.Location {
	if s == nil || s.Timezone == "" {
		return fallback
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return fallback
	}
	return loc
}

type OperatorView struct {
	ID        uuid.UUID  `json:"id"`
	SalonID   uuid.UUID  `json:"salon_id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

type CustomerView struct {
	ID        uuid.UUID  `json:"id"`
	SalonID   uuid.UUID  `json:"salon_id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     *string    `json:"phone,omitempty"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	SalonID  uuid.UUID `json:"salon_id"`
	Kind     string    `json:"kind"`
	Role     string    `json:"role,omitempty"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	IsActive bool      `json:"is_active"`
}

type SlotFilter struct {
	OperatorID uuid.UUID
	From       slot.Date
	To         slot.Date
	OnlyOpen   bool
}

type SlotView struct {
	OperatorID uuid.UUID      `json:"operator_id"`
	Date       slot.Date      `json:"date"`
	Time       slot.TimeOfDay `json:"time"`
	IsBooked   bool           `json:"is_booked"`
}

// ReservationView represents read-optimized reservation data joined with display names
type ReservationView struct {
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
	PriceWithoutTax             int64          `json:"price_without_tax"`
	OffPrice                    int64          `json:"off_price"`
	DiscountAmount              int64          `json:"discount_amount"`
	TotalPrice                  int64          `json:"total_price"`
	TotalWithoutGelRemoval      int64          `json:"total_without_gel_removal"`
	CancellationDeadlineMinutes int            `json:"cancellation_deadline_minutes"`
	IsCancelable                bool           `json:"is_cancelable"`
	CanceledAt                  *time.Time     `json:"canceled_at,omitempty"`
	CanceledBy                  *string        `json:"canceled_by,omitempty"`
	CreatedAt                   time.Time      `json:"created_at"`
	UpdatedAt                   time.Time      `json:"updated_at"`
}

type ReservationHistory struct {
	Upcoming []*ReservationView `json:"upcoming"`
	Past     []*ReservationView `json:"past"`
	Next     *Cursor            `json:"next,omitempty"`
}

type ReservationFilters struct {
	From       *slot.Date
	To         *slot.Date
	Status     *string
	OperatorID *uuid.UUID
}

type MenuView struct {
	ID              uuid.UUID   `json:"id"`
	SalonID         uuid.UUID   `json:"salon_id"`
	CategoryID      uuid.UUID   `json:"category_id"`
	DivisionIDs     []uuid.UUID `json:"division_ids"`
	Name            string      `json:"name"`
	Description     string      `json:"description"`
	PriceWithoutTax int64       `json:"price_without_tax"`
	OffPrice        *int64      `json:"off_price,omitempty"`
	DurationMinutes int         `json:"duration_minutes"`
	IsActive        bool        `json:"is_active"`
	IsCoupon        bool        `json:"is_coupon"`
	DiscountAmount  *int64      `json:"discount_amount,omitempty"`
	ValidFrom       *slot.Date  `json:"valid_from,omitempty"`
	ValidUntil      *slot.Date  `json:"valid_until,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type MenuCategoryView struct {
	ID        uuid.UUID `json:"id"`
	SalonID   uuid.UUID `json:"salon_id"`
	Name      string    `json:"name"`
	SortOrder int       `json:"sort_order"`
}

type EligibilityView struct {
	CanCreate   bool       `json:"can_create"`
	LockedUntil *time.Time `json:"locked_until,omitempty"`
}
