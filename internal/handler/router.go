package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"catalog-service/internal/handler/api"
	"catalog-service/internal/handler/middleware"
	"catalog-service/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	productHandler *api.ProductHandler,
	couponHandler *api.CouponHandler,
	discountHandler *api.DiscountHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, productHandler, couponHandler, discountHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.NewRateLimiter(cfg.RateLimit).Middleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	productHandler *api.ProductHandler,
	couponHandler *api.CouponHandler,
	discountHandler *api.DiscountHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	products := engine.Group("/products")
	{
		addRoutes(products, []route{
			{Method: http.MethodPost, Path: "", Handler: productHandler.Create},
			{Method: http.MethodGet, Path: "", Handler: productHandler.List},
			{Method: http.MethodGet, Path: "/:id", Handler: productHandler.Get},
			{Method: http.MethodPatch, Path: "/:id", Handler: productHandler.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: productHandler.Delete},
			{Method: http.MethodPost, Path: "/:id/restore", Handler: productHandler.Restore},
			{Method: http.MethodPost, Path: "/:id/discount/coupon", Handler: discountHandler.ApplyCoupon},
			{Method: http.MethodPost, Path: "/:id/discount/percent", Handler: discountHandler.ApplyPercent},
			{Method: http.MethodDelete, Path: "/:id/discount", Handler: discountHandler.Remove},
		})
	}

	coupons := engine.Group("/coupons")
	{
		addRoutes(coupons, []route{
			{Method: http.MethodPost, Path: "", Handler: couponHandler.Create},
			{Method: http.MethodGet, Path: "", Handler: couponHandler.List},
			{Method: http.MethodGet, Path: "/:code", Handler: couponHandler.Get},
			{Method: http.MethodPatch, Path: "/:code", Handler: couponHandler.Update},
			{Method: http.MethodDelete, Path: "/:code", Handler: couponHandler.Delete},
		})
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
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
