package components

import (
	"coupon-processor/internal/handler"
	"coupon-processor/internal/handler/api"
	"coupon-processor/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCouponHandler,
		api.NewHealthHandler,
		middleware.NewMetrics,
	),
	fx.Invoke(handler.NewRouter),
)
