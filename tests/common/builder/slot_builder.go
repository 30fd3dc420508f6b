//go:build unit || e2e

package builder

import (
	"salon-reserve/internal/domain/slot"
	reqdto "salon-reserve/internal/handler/dto/request"
)

type ScheduleBuilder struct {
	Weekdays        []int
	StartTime       string
	EndTime         string
	IntervalMinutes int
	TargetMonth     string
}

func NewScheduleBuilder() *ScheduleBuilder {
	return &ScheduleBuilder{
		Weekdays:        []int{1, 3, 5},
		StartTime:       "10:00",
		EndTime:         "12:00",
		IntervalMinutes: 30,
		TargetMonth:     "2025-03",
	}
}

func (s *ScheduleBuilder) With(mutate func(*ScheduleBuilder)) *ScheduleBuilder {
	mutate(s)
	return s
}

// Build methods
func (s *ScheduleBuilder) BuildDomain() (slot.WeeklyTemplate, error) {
	return slot.NewWeeklyTemplate(s.Weekdays, slot.MustTime(s.StartTime), slot.MustTime(s.EndTime), s.IntervalMinutes)
}

func (s *ScheduleBuilder) BuildRequestDTO() reqdto.BulkCreateSlotsRequest {
	return reqdto.BulkCreateSlotsRequest{
		Weekdays:        s.Weekdays,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		IntervalMinutes: s.IntervalMinutes,
		TargetMonth:     s.TargetMonth,
	}
}
