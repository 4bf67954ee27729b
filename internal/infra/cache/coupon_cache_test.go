//go:build unit

package cache_test

import (
	"context"
	"testing"
	"time"

	"catalog-service/internal/domain/coupon"
	"catalog-service/internal/infra/cache"
	"catalog-service/internal/infra/memory"
	"catalog-service/internal/pkg/clock"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CouponCacheTestSuite struct {
	suite.Suite
	ctx    context.Context
	clk    *clock.MockClock
	inner  *memory.CouponRepository
	cached *cache.CouponCache
}

func (s *CouponCacheTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clk = clock.NewMockClock(time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC))
	s.inner = memory.NewCouponRepository(memory.NewStore(s.clk))
	s.cached = cache.NewCouponCache(s.inner, time.Minute)
}

func TestCouponCacheSuite(t *testing.T) {
	suite.Run(t, new(CouponCacheTestSuite))
}

func (s *CouponCacheTestSuite) seed(code string) *coupon.Coupon {
	now := s.clk.Now()
	created, err := s.cached.Create(s.ctx, coupon.NewCoupon{
		Code:       coupon.Code(code),
		Type:       coupon.TypePercent,
		Value:      20,
		ValidFrom:  now.Add(-time.Hour),
		ValidUntil: now.Add(24 * time.Hour),
	})
	require.NoError(s.T(), err)
	return created
}

func (s *CouponCacheTestSuite) TestFindIsReadThrough() {
	created := s.seed("save20")

	first, err := s.cached.Find(s.ctx, "save20")
	s.Require().NoError(err)
	s.Equal(created.ID, first.ID)

	// Mutate behind the cache's back; the cached entry still wins.
	newValue := int64(50)
	_, err = s.inner.Update(s.ctx, "save20", coupon.Patch{Value: &newValue})
	s.Require().NoError(err)

	stale, err := s.cached.Find(s.ctx, "save20")
	s.Require().NoError(err)
	s.Equal(int64(20), stale.Value)
}

func (s *CouponCacheTestSuite) TestUpdateInvalidates() {
	s.seed("save20")

	_, err := s.cached.Find(s.ctx, "save20")
	s.Require().NoError(err)

	newValue := int64(50)
	_, err = s.cached.Update(s.ctx, "save20", coupon.Patch{Value: &newValue})
	s.Require().NoError(err)

	fresh, err := s.cached.Find(s.ctx, "save20")
	s.Require().NoError(err)
	s.Equal(int64(50), fresh.Value)
}

func (s *CouponCacheTestSuite) TestDeleteInvalidates() {
	s.seed("save20")

	_, err := s.cached.Find(s.ctx, "save20")
	s.Require().NoError(err)

	s.Require().NoError(s.cached.Delete(s.ctx, "save20"))

	_, err = s.cached.Find(s.ctx, "save20")
	s.Error(err, "a deleted coupon must not be served from cache")
}

func (s *CouponCacheTestSuite) TestIncrementUsesFlushes() {
	created := s.seed("save20")

	_, err := s.cached.Find(s.ctx, "save20")
	s.Require().NoError(err)

	s.Require().NoError(s.cached.IncrementUses(s.ctx, created.ID))

	fresh, err := s.cached.Find(s.ctx, "save20")
	s.Require().NoError(err)
	s.Equal(int32(1), fresh.UsesCount)
}

func (s *CouponCacheTestSuite) TestFindValidByCodeBypassesCache() {
	s.seed("save20")

	_, err := s.cached.Find(s.ctx, "save20")
	s.Require().NoError(err)

	newValue := int64(50)
	_, err = s.inner.Update(s.ctx, "save20", coupon.Patch{Value: &newValue})
	s.Require().NoError(err)

	fresh, err := s.cached.FindValidByCode(s.ctx, "save20")
	s.Require().NoError(err)
	s.Equal(int64(50), fresh.Value, "usage lookups must never be stale")
}
