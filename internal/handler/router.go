package handler

import (
	"log/slog"
	"net/http"

	"salon-reserve/internal/domain/user"
	"salon-reserve/internal/handler/api"
	"salon-reserve/internal/handler/middleware"
	"salon-reserve/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Reservation *api.ReservationHandler
	Slot        *api.SlotHandler
	Menu        *api.MenuHandler
	Admin       *api.AdminHandler
	Salon       *api.SalonHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware, metrics http.Handler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, h, authMiddleware, metrics)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, metrics http.Handler) {
	engine.GET("/health", healthCheck)

	if cfg.Metrics.Enabled && metrics != nil {
		engine.GET(cfg.Metrics.Path, gin.WrapH(metrics))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	rateLimit := middleware.NewRateLimitMiddleware(cfg.RateLimit)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: []gin.HandlerFunc{rateLimit}},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})

			optional := auth.Group("")
			optional.Use(authMiddleware.OptionalAuth())
			addRoutes(optional, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		operators := apiGroup.Group("/operators/:operatorId")
		{
			addRoutes(operators, []route{
				{Method: http.MethodGet, Path: "/slots", Handler: h.Slot.OpenSlots},
				{Method: http.MethodGet, Path: "/availability", Handler: h.Slot.Availability},
			})
		}

		salons := apiGroup.Group("/salons/:salonId")
		{
			addRoutes(salons, []route{
				{Method: http.MethodGet, Path: "/menus", Handler: h.Menu.ListActive},
				{Method: http.MethodGet, Path: "/menu-categories", Handler: h.Menu.ListCategories},
				{Method: http.MethodGet, Path: "/operators", Handler: h.Salon.ListOperators},
			})
		}

		menus := apiGroup.Group("/menus")
		{
			addRoutes(menus, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Menu.Get},
				{
					Method:  http.MethodGet,
					Path:    "/:id/rebook-check",
					Handler: h.Menu.RebookCheck,
					Mw:      []gin.HandlerFunc{authMiddleware.RequireAuth(), authMiddleware.RequireCustomer()},
				},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth(), authMiddleware.RequireCustomer())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create, Mw: []gin.HandlerFunc{rateLimit}},
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.History},
				{Method: http.MethodGet, Path: "/eligibility", Handler: h.Reservation.Eligibility},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Reservation.Cancel, Mw: []gin.HandlerFunc{rateLimit}},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireOperator())
		{
			requireAdmin := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)

			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/reservations", Handler: h.Admin.ListReservations},
				{Method: http.MethodGet, Path: "/reservations/export", Handler: h.Admin.ExportReservations},
				{Method: http.MethodGet, Path: "/reservations/:id", Handler: h.Admin.GetReservation},
				{Method: http.MethodPost, Path: "/reservations/:id/complete", Handler: h.Admin.CompleteReservation},
				{Method: http.MethodPost, Path: "/reservations/:id/noshow", Handler: h.Admin.MarkNoShow},
				{Method: http.MethodPost, Path: "/reservations/:id/cancel", Handler: h.Admin.CancelReservation},

				{Method: http.MethodGet, Path: "/slots", Handler: h.Admin.ListSlots},
				{Method: http.MethodPost, Path: "/slots/bulk", Handler: h.Admin.BulkCreateSlots, Mw: []gin.HandlerFunc{rateLimit}},
				{Method: http.MethodDelete, Path: "/slots", Handler: h.Admin.DeleteSlot},
				{Method: http.MethodDelete, Path: "/slots/date/:date", Handler: h.Admin.DeleteSlotsByDate},

				{Method: http.MethodGet, Path: "/menus", Handler: h.Menu.AdminList},
				{Method: http.MethodPost, Path: "/menus", Handler: h.Menu.Create, Mw: []gin.HandlerFunc{requireAdmin}},
				{Method: http.MethodPut, Path: "/menus/:id", Handler: h.Menu.Update, Mw: []gin.HandlerFunc{requireAdmin}},
				{Method: http.MethodDelete, Path: "/menus/:id", Handler: h.Menu.Deactivate, Mw: []gin.HandlerFunc{requireAdmin}},

				{Method: http.MethodGet, Path: "/salon", Handler: h.Salon.GetSettings},
				{Method: http.MethodPut, Path: "/salon", Handler: h.Salon.UpdateSettings, Mw: []gin.HandlerFunc{requireAdmin}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
