package metrics

import (
	"time"

	"salon-reserve/internal/usecase/shared"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "salon"

type BookingMetrics struct {
	reservationsCreated  *prometheus.CounterVec
	reservationsCanceled *prometheus.CounterVec
	cacheLookups         *prometheus.CounterVec
	slotsGenerated       prometheus.Counter
	commitDuration       prometheus.Histogram
}

// NewBookingMetrics registers the booking collectors on reg.
func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		reservationsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reservations_created_total",
				Help:      "Reservation create attempts by result.",
			},
			[]string{"result"},
		),
		reservationsCanceled: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reservations_canceled_total",
				Help:      "Reservations canceled by actor.",
			},
			[]string{"actor"},
		),
		cacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "availability_cache_total",
				Help:      "Availability cache lookups by result.",
			},
			[]string{"result"},
		),
		slotsGenerated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "slots_generated_total",
				Help:      "Slots created by bulk schedule generation.",
			},
		),
		commitDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "booking_commit_duration_seconds",
				Help:      "Latency of the reservation commit transaction.",
				Buckets:   prometheus.DefBuckets,
			},
		),
	}
	reg.MustRegister(m.reservationsCreated, m.reservationsCanceled, m.cacheLookups, m.slotsGenerated, m.commitDuration)
	return m
}

func (m *BookingMetrics) ReservationCreated(result string) {
	m.reservationsCreated.WithLabelValues(result).Inc()
}

func (m *BookingMetrics) ReservationCanceled(actor string) {
	m.reservationsCanceled.WithLabelValues(actor).Inc()
}

func (m *BookingMetrics) AvailabilityCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

func (m *BookingMetrics) SlotsGenerated(n int64) {
	m.slotsGenerated.Add(float64(n))
}

func (m *BookingMetrics) ObserveCommit(d time.Duration) {
	m.commitDuration.Observe(d.Seconds())
}

var _ shared.BookingMetrics = (*BookingMetrics)(nil)

// Nop discards every observation.
type Nop struct{}

func (Nop) ReservationCreated(string)    {}
func (Nop) ReservationCanceled(string)   {}
func (Nop) AvailabilityCacheLookup(bool) {}
func (Nop) SlotsGenerated(int64)         {}
func (Nop) ObserveCommit(time.Duration)  {}

var _ shared.BookingMetrics = Nop{}
