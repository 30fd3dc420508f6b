package request

import (
	"salon-reserve/internal/domain/slot"
)

type SlotRangeQuery struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

func (q SlotRangeQuery) ToDomain() (slot.Date, slot.Date, error) {
	from, err := slot.ParseDate(q.From)
	if err != nil {
		return slot.Date{}, slot.Date{}, err
	}
	to, err := slot.ParseDate(q.To)
	if err != nil {
		return slot.Date{}, slot.Date{}, err
	}
	if to.Before(from) {
		return slot.Date{}, slot.Date{}, slot.ErrInvalidPeriod
	}
	return from, to, nil
}

type AvailabilityQuery struct {
	Month string `form:"month" binding:"required"`
}

type BulkCreateSlotsRequest struct {
	Weekdays        []int  `json:"weekdays" binding:"required,min=1,dive,min=0,max=6"`
	StartTime       string `json:"start_time" binding:"required"`
	EndTime         string `json:"end_time" binding:"required"`
	IntervalMinutes int    `json:"interval_minutes" binding:"required,min=1,max=240"`
	TargetMonth     string `json:"target_month" binding:"required"`
}

func (r BulkCreateSlotsRequest) ToDomain() (slot.WeeklyTemplate, slot.Date, error) {
	start, err := slot.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return slot.WeeklyTemplate{}, slot.Date{}, err
	}
	end, err := slot.ParseTimeOfDay(r.EndTime)
	if err != nil {
		return slot.WeeklyTemplate{}, slot.Date{}, err
	}
	month, err := slot.ParseMonth(r.TargetMonth)
	if err != nil {
		return slot.WeeklyTemplate{}, slot.Date{}, err
	}
	tmpl, err := slot.NewWeeklyTemplate(r.Weekdays, start, end, r.IntervalMinutes)
	if err != nil {
		return slot.WeeklyTemplate{}, slot.Date{}, err
	}
	return tmpl, month, nil
}

type DeleteSlotQuery struct {
	Date string `form:"date" binding:"required"`
	Time string `form:"time" binding:"required"`
}

func (q DeleteSlotQuery) ToDomain() (slot.Date, slot.TimeOfDay, error) {
	date, err := slot.ParseDate(q.Date)
	if err != nil {
		return slot.Date{}, slot.TimeOfDay{}, err
	}
	t, err := slot.ParseTimeOfDay(q.Time)
	if err != nil {
		return slot.Date{}, slot.TimeOfDay{}, err
	}
	return date, t, nil
}
