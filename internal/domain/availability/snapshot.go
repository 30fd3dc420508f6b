package availability

import (
	"encoding/json"
	"slices"
	"time"

	"salon-reserve/internal/domain/slot"
)

// Snapshot is the derived availability of one operator for one query window.
// Every date it reports has at least one open time; dates and times are ascending.
type Snapshot struct {
	timesByDate map[slot.Date][]slot.TimeOfDay
}

func Empty() Snapshot {
	return Snapshot{timesByDate: map[slot.Date][]slot.TimeOfDay{}}
}

// Derive groups open slots by date. On today's date only times strictly after
// the current minute survive; dates left without times are omitted.
func Derive(open []slot.Occurrence, now time.Time) Snapshot {
	today := slot.DateOf(now)
	cutoff := slot.ClockOf(now)

	byDate := make(map[slot.Date][]slot.TimeOfDay)
	for _, o := range open {
		if o.Date == today && !o.Time.After(cutoff) {
			continue
		}
		byDate[o.Date] = append(byDate[o.Date], o.Time)
	}
	for d, times := range byDate {
		slices.SortFunc(times, compareTimes)
		byDate[d] = slices.Compact(times)
	}
	return Snapshot{timesByDate: byDate}
}

func compareTimes(a, b slot.TimeOfDay) int {
	return a.Minutes() - b.Minutes()
}

func compareDates(a, b slot.Date) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

func (s Snapshot) IsEmpty() bool { return len(s.timesByDate) == 0 }

func (s Snapshot) Dates() []slot.Date {
	dates := make([]slot.Date, 0, len(s.timesByDate))
	for d := range s.timesByDate {
		dates = append(dates, d)
	}
	slices.SortFunc(dates, compareDates)
	return dates
}

func (s Snapshot) HasDate(d slot.Date) bool {
	_, ok := s.timesByDate[d]
	return ok
}

func (s Snapshot) Times(d slot.Date) []slot.TimeOfDay {
	return slices.Clone(s.timesByDate[d])
}

func (s Snapshot) Contains(d slot.Date, t slot.TimeOfDay) bool {
	return slices.Contains(s.timesByDate[d], t)
}

// Rederive reapplies the today filter against a later clock reading.
func (s Snapshot) Rederive(now time.Time) Snapshot {
	open := make([]slot.Occurrence, 0, len(s.timesByDate))
	for d, times := range s.timesByDate {
		for _, t := range times {
			open = append(open, slot.Occurrence{Date: d, Time: t})
		}
	}
	return Derive(open, now)
}

type wireSnapshot struct {
	Dates       []slot.Date                    `json:"dates"`
	TimesByDate map[slot.Date][]slot.TimeOfDay `json:"times_by_date"`
}

func (s Snapshot) MarshalJSON() ([]byte, error) {
	w := wireSnapshot{
		Dates:       s.Dates(),
		TimesByDate: s.timesByDate,
	}
	if w.TimesByDate == nil {
		w.TimesByDate = map[slot.Date][]slot.TimeOfDay{}
	}
	return json.Marshal(w)
}

func (s *Snapshot) UnmarshalJSON(b []byte) error {
	var w wireSnapshot
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	byDate := make(map[slot.Date][]slot.TimeOfDay, len(w.TimesByDate))
	for d, times := range w.TimesByDate {
		if len(times) == 0 {
			continue
		}
		sorted := slices.Clone(times)
		slices.SortFunc(sorted, compareTimes)
		byDate[d] = slices.Compact(sorted)
	}
	s.timesByDate = byDate
	return nil
}
