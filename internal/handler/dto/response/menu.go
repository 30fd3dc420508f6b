package response

import (
	"time"

	"salon-reserve/internal/domain/slot"
	"salon-reserve/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type MenuResponse struct {
	ID              uuid.UUID   `json:"id"`
	SalonID         uuid.UUID   `json:"salon_id"`
	CategoryID      uuid.UUID   `json:"category_id"`
	DivisionIDs     []uuid.UUID `json:"division_ids"`
	Name            string      `json:"name"`
	Description     string      `json:"description"`
	PriceWithoutTax int64       `json:"price_without_tax"`
	OffPrice        *int64      `json:"off_price,omitempty"`
	DurationMinutes int         `json:"duration_minutes"`
	DurationHours   int         `json:"duration_hours" copier:"-"`
	IsActive        bool        `json:"is_active"`
	IsCoupon        bool        `json:"is_coupon"`
	DiscountAmount  *int64      `json:"discount_amount,omitempty"`
	ValidFrom       *slot.Date  `json:"valid_from,omitempty"`
	ValidUntil      *slot.Date  `json:"valid_until,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// FromMenuView splits the stored duration back into the hours/minutes picker pair.
func FromMenuView(v *queries.MenuView) (*MenuResponse, error) {
	var resp MenuResponse
	if err := copier.CopyWithOption(&resp, v, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	resp.DurationHours = v.DurationMinutes / 60
	resp.DurationMinutes = v.DurationMinutes % 60
	if resp.DivisionIDs == nil {
		resp.DivisionIDs = []uuid.UUID{}
	}
	return &resp, nil
}

func FromMenuViews(views []*queries.MenuView) ([]*MenuResponse, error) {
	out := make([]*MenuResponse, 0, len(views))
	for _, v := range views {
		m, err := FromMenuView(v)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

type MenuCategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	SortOrder int       `json:"sort_order"`
}

func FromMenuCategoryViews(views []*queries.MenuCategoryView) ([]MenuCategoryResponse, error) {
	out := make([]MenuCategoryResponse, 0, len(views))
	if err := copier.Copy(&out, views); err != nil {
		return nil, err
	}
	return out, nil
}
