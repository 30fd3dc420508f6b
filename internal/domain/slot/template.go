package slot

import (
	"errors"
	"slices"
	"time"
)

var (
	ErrNoWeekdays      = errors.New("at least one weekday is required")
	ErrInvalidWeekday  = errors.New("weekday must be between 0 (Sunday) and 6 (Saturday)")
	ErrInvalidRange    = errors.New("start time must be before end time")
	ErrInvalidInterval = errors.New("interval must be between 1 and 240 minutes")
	ErrInvalidPeriod   = errors.New("period end must not be before period start")
)

const (
	MinIntervalMinutes = 1
	MaxIntervalMinutes = 240
)

// WeeklyTemplate generates slots every interval minutes in [start, end) on the given weekdays.
type WeeklyTemplate struct {
	weekdays []time.Weekday
	start    TimeOfDay
	end      TimeOfDay
	interval int
}

func NewWeeklyTemplate(weekdays []int, start, end TimeOfDay, intervalMinutes int) (WeeklyTemplate, error) {
	if len(weekdays) == 0 {
		return WeeklyTemplate{}, ErrNoWeekdays
	}
	days := make([]time.Weekday, 0, len(weekdays))
	for _, w := range weekdays {
		if w < int(time.Sunday) || w > int(time.Saturday) {
			return WeeklyTemplate{}, ErrInvalidWeekday
		}
		days = append(days, time.Weekday(w))
	}
	slices.Sort(days)
	days = slices.Compact(days)

	if !start.Before(end) {
		return WeeklyTemplate{}, ErrInvalidRange
	}
	if intervalMinutes < MinIntervalMinutes || intervalMinutes > MaxIntervalMinutes {
		return WeeklyTemplate{}, ErrInvalidInterval
	}

	return WeeklyTemplate{
		weekdays: days,
		start:    start,
		end:      end,
		interval: intervalMinutes,
	}, nil
}

func (t WeeklyTemplate) Weekdays() []time.Weekday { return slices.Clone(t.weekdays) }
func (t WeeklyTemplate) Interval() int            { return t.interval }

// Times lists the wall-clock times of one generated day.
func (t WeeklyTemplate) Times() []TimeOfDay {
	var out []TimeOfDay
	for cur := t.start; cur.Before(t.end); {
		out = append(out, cur)
		next, ok := cur.Add(t.interval)
		if !ok {
			break
		}
		cur = next
	}
	return out
}

// Generate expands the template over [from, to] inclusive, skipping days before today.
func (t WeeklyTemplate) Generate(from, to, today Date) ([]Occurrence, error) {
	if to.Before(from) {
		return nil, ErrInvalidPeriod
	}
	if from.Before(today) {
		from = today
	}

	times := t.Times()
	var out []Occurrence
	for d := from; !d.After(to); d = d.AddDays(1) {
		if !slices.Contains(t.weekdays, d.Weekday()) {
			continue
		}
		for _, tod := range times {
			out = append(out, Occurrence{Date: d, Time: tod})
		}
	}
	return out, nil
}

// GenerateMonth expands the template over the calendar month containing month.
func (t WeeklyTemplate) GenerateMonth(month, today Date) []Occurrence {
	out, _ := t.Generate(month.MonthStart(), month.MonthEnd(), today)
	return out
}
