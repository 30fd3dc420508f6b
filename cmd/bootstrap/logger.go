package bootstrap

import (
	"log/slog"

	"salon-reserve/internal/handler/middleware"
	"salon-reserve/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger installs the configured handler as the slog default.
func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log)
}
