package components

import (
	"catalog-service/internal/infra/cache"
	"catalog-service/internal/infra/repository"
	"catalog-service/internal/pkg/clock"
	"catalog-service/internal/pkg/config"
	"catalog-service/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			repository.NewProductRepository,
			fx.As(new(usecase.ProductRepository)),
		),
		NewCachedCouponRepository,
		fx.Annotate(
			repository.NewDiscountRepository,
			fx.As(new(usecase.DiscountRepository)),
		),
	),
)

// NewCachedCouponRepository wraps the SQL coupon repository with the
// in-process read cache.
func NewCachedCouponRepository(pool *pgxpool.Pool, clk clock.Clock, cfg config.Config) usecase.CouponRepository {
	return cache.NewCouponCache(repository.NewCouponRepository(pool, clk), cfg.Cache.CouponTTL)
}
