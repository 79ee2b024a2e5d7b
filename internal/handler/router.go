package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "coupon-processor/docs"
	"coupon-processor/internal/handler/api"
	"coupon-processor/internal/handler/middleware"
	"coupon-processor/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, metrics *middleware.Metrics, couponHandler *api.CouponHandler, healthHandler *api.HealthHandler) {
	setupMiddleware(engine, cfg, logger, metrics)
	setupRoutes(engine, metrics, couponHandler, healthHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, metrics *middleware.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(metrics.Middleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, metrics *middleware.Metrics, couponHandler *api.CouponHandler, healthHandler *api.HealthHandler) {
	engine.GET("/health", healthHandler.Check)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	coupons := engine.Group("/coupon")
	{
		addRoutes(coupons, []route{
			{Method: http.MethodPost, Path: "", Handler: couponHandler.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: couponHandler.Get},
			{Method: http.MethodDelete, Path: "/:id", Handler: couponHandler.Delete},
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		g.Handle(r.Method, r.Path, r.Handler)
	}
}
