package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"agent-portal/internal/handler/api"
	"agent-portal/internal/handler/middleware"
	"agent-portal/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	cartHandler *api.CartHandler,
	guestHandler *api.GuestHandler,
	checkoutHandler *api.CheckoutHandler,
	profileHandler *api.ProfileHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, cartHandler, guestHandler, checkoutHandler, profileHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	cartHandler *api.CartHandler,
	guestHandler *api.GuestHandler,
	checkoutHandler *api.CheckoutHandler,
	profileHandler *api.ProfileHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodGet, Path: "/refresh-token", Handler: authHandler.RefreshToken},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/access-token", Handler: authHandler.AccessToken},
			})
		}

		protected := apiGroup.Group("")
		protected.Use(authMiddleware.RequireAuth())
		{
			addRoutes(protected, []route{
				{Method: http.MethodGet, Path: "/cart", Handler: cartHandler.GetCart},
				{Method: http.MethodDelete, Path: "/cart/lines/:id", Handler: cartHandler.RemoveLine},
				{Method: http.MethodPut, Path: "/cart/lines/:id/notes", Handler: cartHandler.UpdateNotes},
				{Method: http.MethodPut, Path: "/cart/lines/:id/guest", Handler: cartHandler.SelectGuest},

				{Method: http.MethodGet, Path: "/guests", Handler: guestHandler.List},
				{Method: http.MethodPost, Path: "/guests", Handler: guestHandler.Add},
				{Method: http.MethodDelete, Path: "/guests", Handler: guestHandler.Remove},

				{Method: http.MethodPost, Path: "/checkout/validate", Handler: checkoutHandler.Validate},
				{Method: http.MethodPost, Path: "/checkout", Handler: checkoutHandler.Submit},
				{Method: http.MethodDelete, Path: "/checkout", Handler: checkoutHandler.Cancel},

				{Method: http.MethodGet, Path: "/contact", Handler: profileHandler.GetContact},
				{Method: http.MethodPost, Path: "/contact", Handler: profileHandler.SaveContact},
				{Method: http.MethodGet, Path: "/notifications", Handler: profileHandler.Notifications},
				{Method: http.MethodGet, Path: "/bookings", Handler: profileHandler.Bookings},
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
