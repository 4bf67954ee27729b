package components

import (
	"catalog-service/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		usecase.NewProductUseCase,
		usecase.NewCouponUseCase,
		usecase.NewDiscountUseCase,
	),
)
