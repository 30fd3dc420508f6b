//go:build unit

package slot_test

import (
	"encoding/json"
	"testing"
	"time"

	"salon-reserve/internal/domain/slot"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate(t *testing.T) {
	t.Run("parse rejects invalid days", func(t *testing.T) {
		_, err := slot.ParseDate("2025-02-29")
		assert.ErrorIs(t, err, slot.ErrInvalidDate)

		d, err := slot.ParseDate("2024-02-29")
		require.NoError(t, err)
		assert.Equal(t, "2024-02-29", d.String())
	})

	t.Run("month helpers", func(t *testing.T) {
		d := slot.MustDate("2024-02-17")
		assert.Equal(t, "2024-02-01", d.MonthStart().String())
		assert.Equal(t, "2024-02-29", d.MonthEnd().String())
		assert.Equal(t, "2024-03-01", d.AddMonths(1).String())
		assert.Equal(t, "2024-02", d.MonthString())

		m, err := slot.ParseMonth("2025-12")
		require.NoError(t, err)
		assert.Equal(t, "2025-12-01", m.String())

		_, err = slot.ParseMonth("2025-13")
		assert.ErrorIs(t, err, slot.ErrInvalidMonth)
	})

	t.Run("date of reads the instant's own zone", func(t *testing.T) {
		utc := time.Date(2025, 3, 4, 20, 0, 0, 0, time.UTC)
		jst := time.FixedZone("JST", 9*60*60)
		assert.Equal(t, "2025-03-04", slot.DateOf(utc).String())
		assert.Equal(t, "2025-03-05", slot.DateOf(utc.In(jst)).String())
	})

	t.Run("json round trip as text", func(t *testing.T) {
		b, err := json.Marshal(map[string]slot.Date{"d": slot.MustDate("2025-03-05")})
		require.NoError(t, err)
		assert.JSONEq(t, `{"d":"2025-03-05"}`, string(b))
	})

	t.Run("zero date survives a json round trip", func(t *testing.T) {
		type payload struct {
			Date slot.Date `json:"date"`
		}
		b, err := json.Marshal(payload{})
		require.NoError(t, err)
		assert.JSONEq(t, `{"date":""}`, string(b))

		var got payload
		require.NoError(t, json.Unmarshal(b, &got))
		assert.True(t, got.Date.IsZero())

		assert.ErrorIs(t, json.Unmarshal([]byte(`{"date":"0000-00-00"}`), &got), slot.ErrInvalidDate)
	})
}

func TestTimeOfDay(t *testing.T) {
	tests := []struct {
		in    string
		want  string
		valid bool
	}{
		{in: "09:05", want: "09:05", valid: true},
		{in: "23:59", want: "23:59", valid: true},
		{in: "00:00", want: "00:00", valid: true},
		{in: "24:00"},
		{in: "10:60"},
		{in: "10"},
		{in: ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := slot.ParseTimeOfDay(tt.in)
			if !tt.valid {
				assert.ErrorIs(t, err, slot.ErrInvalidTimeOfDay)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}

	t.Run("add reports overflow past midnight", func(t *testing.T) {
		next, ok := slot.MustTime("23:30").Add(15)
		assert.True(t, ok)
		assert.Equal(t, "23:45", next.String())

		_, ok = slot.MustTime("23:30").Add(30)
		assert.False(t, ok)
	})

	t.Run("at combines date and time in a zone", func(t *testing.T) {
		jst := time.FixedZone("JST", 9*60*60)
		got := slot.At(slot.MustDate("2025-01-10"), slot.MustTime("10:00"), jst)
		assert.True(t, got.Equal(time.Date(2025, 1, 10, 1, 0, 0, 0, time.UTC)))
	})
}

func TestSlot(t *testing.T) {
	s, err := slot.NewSlot(uuid.New(), uuid.New(), slot.MustDate("2025-03-05"), slot.MustTime("10:00"))
	require.NoError(t, err)
	assert.False(t, s.IsBooked())

	require.NoError(t, s.Book())
	assert.ErrorIs(t, s.Book(), slot.ErrSlotAlreadyBooked)

	require.NoError(t, s.Free())
	assert.ErrorIs(t, s.Free(), slot.ErrSlotNotBooked)

	_, err = slot.NewSlot(uuid.New(), uuid.Nil, slot.MustDate("2025-03-05"), slot.MustTime("10:00"))
	assert.ErrorIs(t, err, slot.ErrMissingOperator)
}
