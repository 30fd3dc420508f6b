package bootstrap

import (
	"net/http"

	"salon-reserve/internal/infra/metrics"
	"salon-reserve/internal/pkg/config"
	"salon-reserve/internal/usecase/shared"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewMetricsRegistry,
		NewBookingMetrics,
		NewMetricsHandler,
	),
)

func NewMetricsRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func NewBookingMetrics(cfg config.Config, reg *prometheus.Registry) shared.BookingMetrics {
	if !cfg.Metrics.Enabled {
		return metrics.Nop{}
	}
	return metrics.NewBookingMetrics(reg)
}

func NewMetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}
