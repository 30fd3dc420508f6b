package response

import (
	"salon-reserve/internal/domain/availability"
	"salon-reserve/internal/domain/slot"
	"salon-reserve/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotResponse struct {
	Date     slot.Date      `json:"date"`
	Time     slot.TimeOfDay `json:"time"`
	IsBooked bool           `json:"is_booked"`
}

type SlotListResponse struct {
	OperatorID uuid.UUID      `json:"operator_id"`
	From       slot.Date      `json:"from"`
	To         slot.Date      `json:"to"`
	Slots      []SlotResponse `json:"slots"`
}

func FromSlotViews(operatorID uuid.UUID, from, to slot.Date, views []*queries.SlotView) SlotListResponse {
	slots := make([]SlotResponse, len(views))
	for i, v := range views {
		slots[i] = SlotResponse{Date: v.Date, Time: v.Time, IsBooked: v.IsBooked}
	}
	return SlotListResponse{
		OperatorID: operatorID,
		From:       from,
		To:         to,
		Slots:      slots,
	}
}

// AvailabilityResponse embeds the snapshot's wire form (dates, times_by_date).
type AvailabilityResponse struct {
	OperatorID uuid.UUID             `json:"operator_id"`
	Month      string                `json:"month"`
	Snapshot   availability.Snapshot `json:"availability"`
}

type BulkCreateSlotsResponse struct {
	Created int64 `json:"created"`
}

type DeleteSlotsResponse struct {
	Deleted int64 `json:"deleted"`
}
