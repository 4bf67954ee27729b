package cache

import (
	"context"
	"time"

	"catalog-service/internal/domain/coupon"
	"catalog-service/internal/usecase"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// CouponCache is a read-through decorator over a CouponRepository. Only
// plain code lookups are cached; FindValidByCode and FindAll depend on the
// current time and usage counters, so they always hit the inner repository.
type CouponCache struct {
	inner usecase.CouponRepository
	cache *gocache.Cache
}

func NewCouponCache(inner usecase.CouponRepository, ttl time.Duration) *CouponCache {
	return &CouponCache{
		inner: inner,
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (c *CouponCache) Find(ctx context.Context, code coupon.Code) (*coupon.Coupon, error) {
	if cached, ok := c.cache.Get(code.String()); ok {
		if cp, ok := cached.(*coupon.Coupon); ok {
			return cp, nil
		}
	}

	found, err := c.inner.Find(ctx, code)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(code.String(), found)
	return found, nil
}

func (c *CouponCache) Create(ctx context.Context, nc coupon.NewCoupon) (*coupon.Coupon, error) {
	created, err := c.inner.Create(ctx, nc)
	if err != nil {
		return nil, err
	}
	c.cache.Delete(created.Code.String())
	return created, nil
}

func (c *CouponCache) FindAll(ctx context.Context, q usecase.CouponQuery) ([]*coupon.Coupon, usecase.PaginationMeta, error) {
	return c.inner.FindAll(ctx, q)
}

func (c *CouponCache) Update(ctx context.Context, code coupon.Code, patch coupon.Patch) (*coupon.Coupon, error) {
	updated, err := c.inner.Update(ctx, code, patch)
	if err != nil {
		return nil, err
	}
	c.cache.Delete(code.String())
	return updated, nil
}

func (c *CouponCache) Delete(ctx context.Context, code coupon.Code) error {
	if err := c.inner.Delete(ctx, code); err != nil {
		return err
	}
	c.cache.Delete(code.String())
	return nil
}

func (c *CouponCache) FindValidByCode(ctx context.Context, code coupon.Code) (*coupon.Coupon, error) {
	return c.inner.FindValidByCode(ctx, code)
}

// IncrementUses is keyed by id while the cache is keyed by code, so the
// whole cache is dropped rather than tracking an id-to-code mapping.
func (c *CouponCache) IncrementUses(ctx context.Context, id uuid.UUID) error {
	if err := c.inner.IncrementUses(ctx, id); err != nil {
		return err
	}
	c.cache.Flush()
	return nil
}
