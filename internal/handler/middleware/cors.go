package middleware

import (
	"log/slog"
	"slices"

	"coupon-processor/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Clients need these to follow a created coupon and to quote a request in bug reports.
var alwaysExposed = []string{"Location", RequestIDHeader}

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	expose := slices.Clone(cfg.ExposeHeaders)
	for _, h := range alwaysExposed {
		if !slices.Contains(expose, h) {
			expose = append(expose, h)
		}
	}

	allowCredentials := cfg.AllowCredentials
	if allowCredentials && slices.Contains(cfg.AllowOrigins, "*") {
		slog.Warn("CORS credentials disabled for wildcard origin")
		allowCredentials = false
	}

	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins, "expose_headers", expose)
	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     append(slices.Clone(cfg.AllowHeaders), RequestIDHeader),
		ExposeHeaders:    expose,
		AllowCredentials: allowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}
