package components

import (
	"log/slog"
	"net/http"

	"salon-reserve/internal/handler"
	"salon-reserve/internal/handler/api"
	"salon-reserve/internal/handler/middleware"
	"salon-reserve/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewReservationHandler,
		api.NewSlotHandler,
		api.NewMenuHandler,
		api.NewAdminHandler,
		api.NewSalonHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(registerRoutes),
)

type routerParams struct {
	fx.In

	Engine         *gin.Engine
	Config         config.Config
	Logger         *slog.Logger
	Auth           *api.AuthHandler
	Reservation    *api.ReservationHandler
	Slot           *api.SlotHandler
	Menu           *api.MenuHandler
	Admin          *api.AdminHandler
	Salon          *api.SalonHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        http.Handler
}

func registerRoutes(p routerParams) {
	handler.NewRouter(p.Engine, p.Config, p.Logger, handler.Handlers{
		Auth:        p.Auth,
		Reservation: p.Reservation,
		Slot:        p.Slot,
		Menu:        p.Menu,
		Admin:       p.Admin,
		Salon:       p.Salon,
	}, p.AuthMiddleware, p.Metrics)
}
