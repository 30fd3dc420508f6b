//go:build unit

package metrics_test

import (
	"strings"
	"testing"
	"time"

	"salon-reserve/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewBookingMetrics(reg)

	m.ReservationCreated("created")
	m.ReservationCreated("created")
	m.ReservationCreated("conflict")
	m.ReservationCanceled("customer")
	m.AvailabilityCacheLookup(true)
	m.AvailabilityCacheLookup(false)
	m.AvailabilityCacheLookup(false)
	m.SlotsGenerated(48)
	m.ObserveCommit(20 * time.Millisecond)

	expected := `
# HELP salon_reservations_created_total Reservation create attempts by result.
# TYPE salon_reservations_created_total counter
salon_reservations_created_total{result="conflict"} 1
salon_reservations_created_total{result="created"} 2
# HELP salon_availability_cache_total Availability cache lookups by result.
# TYPE salon_availability_cache_total counter
salon_availability_cache_total{result="hit"} 1
salon_availability_cache_total{result="miss"} 2
# HELP salon_slots_generated_total Slots created by bulk schedule generation.
# TYPE salon_slots_generated_total counter
salon_slots_generated_total 48
`
	err := testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"salon_reservations_created_total", "salon_availability_cache_total", "salon_slots_generated_total")
	require.NoError(t, err)

	n, err := testutil.GatherAndCount(reg, "salon_reservations_canceled_total", "salon_booking_commit_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestBookingMetrics_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewBookingMetrics(reg)

	assert.Panics(t, func() { metrics.NewBookingMetrics(reg) })
}
