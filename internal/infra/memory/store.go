package memory

import (
	"sync"

	"catalog-service/internal/domain/coupon"
	"catalog-service/internal/domain/discount"
	"catalog-service/internal/domain/product"
	"catalog-service/internal/pkg/clock"

	"github.com/google/uuid"
)

// Store is the shared in-memory state behind the repository implementations.
// One mutex guards all three tables so the discount workflow stays atomic:
// applying a coupon reads the coupon, checks the product and writes an
// application under a single critical section.
type Store struct {
	mu           sync.RWMutex
	clk          clock.Clock
	products     map[uuid.UUID]*product.Product
	coupons      map[uuid.UUID]*coupon.Coupon
	applications map[uuid.UUID]*discount.Application
}

func NewStore(clk clock.Clock) *Store {
	return &Store{
		clk:          clk,
		products:     make(map[uuid.UUID]*product.Product),
		coupons:      make(map[uuid.UUID]*coupon.Coupon),
		applications: make(map[uuid.UUID]*discount.Application),
	}
}

// liveProductByName assumes the caller holds the lock.
func (s *Store) liveProductByName(name string) *product.Product {
	for _, p := range s.products {
		if p.DeletedAt == nil && p.Name == name {
			return p
		}
	}
	return nil
}

// liveCouponByCode assumes the caller holds the lock.
func (s *Store) liveCouponByCode(code coupon.Code) *coupon.Coupon {
	for _, c := range s.coupons {
		if c.DeletedAt == nil && c.Code == code {
			return c
		}
	}
	return nil
}

// activeApplication assumes the caller holds the lock.
func (s *Store) activeApplication(productID uuid.UUID) *discount.Application {
	for _, a := range s.applications {
		if a.ProductID == productID && a.RemovedAt == nil {
			return a
		}
	}
	return nil
}

// Repositories return copies so callers never alias store-internal state.

func cloneProduct(p *product.Product) *product.Product {
	cp := *p
	cp.Description = clonePtr(p.Description)
	cp.UpdatedAt = clonePtr(p.UpdatedAt)
	cp.DeletedAt = clonePtr(p.DeletedAt)
	return &cp
}

func cloneCoupon(c *coupon.Coupon) *coupon.Coupon {
	cc := *c
	cc.MaxUses = clonePtr(c.MaxUses)
	cc.UpdatedAt = clonePtr(c.UpdatedAt)
	cc.DeletedAt = clonePtr(c.DeletedAt)
	return &cc
}

func cloneApplication(a *discount.Application) *discount.Application {
	ca := *a
	ca.RemovedAt = clonePtr(a.RemovedAt)
	return &ca
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
