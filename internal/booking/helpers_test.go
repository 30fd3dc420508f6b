//go:build unit

package booking_test

import (
	"context"
	"testing"
	"time"

	"salon-reserve/internal/booking"
	"salon-reserve/internal/booking/bookingtest"
	"salon-reserve/internal/domain/slot"
	"salon-reserve/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var salonZone = time.FixedZone("JST", 9*60*60)

type fixture struct {
	clock      *clock.MockClock
	backend    *bookingtest.MemoryBackend
	slots      *booking.SlotQuery
	calendar   *booking.Calendar
	submission *booking.Submission
	operatorID uuid.UUID
	menuID     uuid.UUID
}

func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()

	clk := clock.NewMockClock(now.In(salonZone))
	backend := bookingtest.NewMemoryBackend(clk)
	slots := booking.NewSlotQuery(backend, clk)
	calendar := booking.NewCalendar(slots, clk)

	f := &fixture{
		clock:      clk,
		backend:    backend,
		slots:      slots,
		calendar:   calendar,
		submission: booking.NewSubmission(backend, calendar, slots),
		operatorID: uuid.New(),
		menuID:     uuid.New(),
	}
	backend.AddMenu(f.menuID)
	return f
}

func (f *fixture) addSlots(date string, times ...string) {
	parsed := make([]slot.TimeOfDay, len(times))
	for i, s := range times {
		parsed[i] = slot.MustTime(s)
	}
	f.backend.AddSlots(f.operatorID, slot.MustDate(date), parsed...)
}

// selectSlot picks operator, month, date and time on the calendar.
func (f *fixture) selectSlot(t *testing.T, date, tm string) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, f.calendar.SelectOperator(ctx, f.operatorID))
	require.NoError(t, f.calendar.ChangeMonth(ctx, slot.MustDate(date)))
	require.NoError(t, f.calendar.SelectDate(slot.MustDate(date)))
	require.NoError(t, f.calendar.SelectTime(slot.MustTime(tm)))
}

func (f *fixture) draft() booking.Draft {
	return booking.Draft{
		MenuID:     f.menuID,
		MenuName:   "Gel nail",
		TotalPrice: 6600,
	}
}

func at(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02T15:04:05", s, salonZone)
	if err != nil {
		panic(err)
	}
	return t
}

func timesOf(ts []slot.TimeOfDay) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.String()
	}
	return out
}
