package components

import (
	"catalog-service/internal/handler"
	"catalog-service/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewProductHandler,
		api.NewCouponHandler,
		api.NewDiscountHandler,
	),
	fx.Invoke(handler.NewRouter),
)
