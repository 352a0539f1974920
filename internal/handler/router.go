package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"shoestore-api/internal/handler/api"
	"shoestore-api/internal/handler/middleware"
	"shoestore-api/internal/pkg/config"
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
	productHandler *api.ProductHandler,
	orderHandler *api.OrderHandler,
	cartHandler *api.CartHandler,
	dashboardHandler *api.DashboardHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, productHandler, orderHandler, cartHandler, dashboardHandler, authMiddleware)
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
	productHandler *api.ProductHandler,
	orderHandler *api.OrderHandler,
	cartHandler *api.CartHandler,
	dashboardHandler *api.DashboardHandler,
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
				{Method: http.MethodPost, Path: "/signup", Handler: authHandler.Signup},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
				{Method: http.MethodPost, Path: "/forgot-password", Handler: authHandler.ForgotPassword},
				{Method: http.MethodPost, Path: "/reset-password", Handler: authHandler.ResetPassword},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		products := apiGroup.Group("/products")
		{
			addRoutes(products, []route{
				{Method: http.MethodGet, Path: "", Handler: productHandler.ListProducts},
				{Method: http.MethodGet, Path: "/:id", Handler: productHandler.GetProduct},
			})
		}

		cart := apiGroup.Group("/cart")
		cart.Use(authMiddleware.RequireAuth())
		{
			addRoutes(cart, []route{
				{Method: http.MethodGet, Path: "", Handler: cartHandler.GetCart},
				{Method: http.MethodDelete, Path: "", Handler: cartHandler.ClearCart},
				{Method: http.MethodPost, Path: "/items", Handler: cartHandler.AddItem},
				{Method: http.MethodPatch, Path: "/items/:id", Handler: cartHandler.UpdateItemQuantity},
				{Method: http.MethodDelete, Path: "/items/:id", Handler: cartHandler.RemoveItem},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: orderHandler.CreateOrder},
				{Method: http.MethodGet, Path: "", Handler: orderHandler.GetUserOrders},
				{Method: http.MethodGet, Path: "/:id", Handler: orderHandler.GetOrder},
				{Method: http.MethodDelete, Path: "/:id", Handler: orderHandler.CancelOrder},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/products", Handler: productHandler.CreateProduct},
				{Method: http.MethodPut, Path: "/products/:id", Handler: productHandler.UpdateProduct},
				{Method: http.MethodDelete, Path: "/products/:id", Handler: productHandler.DeleteProduct},
				{Method: http.MethodGet, Path: "/orders", Handler: orderHandler.ListAllOrders},
				{Method: http.MethodPatch, Path: "/orders/:id/status", Handler: orderHandler.UpdateDeliveryStatus},
				{Method: http.MethodGet, Path: "/dashboard/stats", Handler: dashboardHandler.GetStats},
				{Method: http.MethodGet, Path: "/dashboard/payments", Handler: dashboardHandler.GetPaymentsOverview},
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
