package memory

import (
	"context"

	"catalog-service/internal/domain/coupon"
	"catalog-service/internal/domain/discount"
	"catalog-service/internal/infra"

	"github.com/google/uuid"
)

type DiscountRepository struct {
	store *Store
}

func NewDiscountRepository(store *Store) *DiscountRepository {
	return &DiscountRepository{store: store}
}

// Apply mirrors the transactional workflow of the database implementation:
// everything happens under the write lock, so validity check, conflict check
// and the usage increment are one atomic step.
func (r *DiscountRepository) Apply(ctx context.Context, productID uuid.UUID, code coupon.Code) (*discount.Application, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.liveCouponByCode(code)
	if c == nil {
		return nil, infra.NewRepoErr("coupon not found", infra.KindNotFound)
	}

	now := s.clk.Now()
	if err := c.ValidateUsage(now); err != nil {
		return nil, infra.WrapRepoErr("coupon is not usable", err, infra.KindUnprocessable)
	}

	p, ok := s.products[productID]
	if !ok || p.DeletedAt != nil {
		return nil, infra.NewRepoErr("product does not exist", infra.KindForeignKeyViolated)
	}

	if s.activeApplication(productID) != nil {
		return nil, infra.NewRepoErr("product already has an active coupon", infra.KindConflict)
	}

	app := &discount.Application{
		ID:        uuid.New(),
		ProductID: productID,
		CouponID:  c.ID,
		AppliedAt: now,
	}
	s.applications[app.ID] = app

	c.UsesCount++
	c.UpdatedAt = &now

	return cloneApplication(app), nil
}

// Remove matches the active application for the product; an empty code means
// "whatever coupon is active".
func (r *DiscountRepository) Remove(ctx context.Context, productID uuid.UUID, code coupon.Code) (*discount.Application, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	app := s.activeApplication(productID)
	if app == nil {
		return nil, infra.NewRepoErr("no active application for product and code", infra.KindNotFound)
	}
	if code != "" {
		c, ok := s.coupons[app.CouponID]
		if !ok || c.Code != code {
			return nil, infra.NewRepoErr("no active application for product and code", infra.KindNotFound)
		}
	}

	now := s.clk.Now()
	app.RemovedAt = &now
	return cloneApplication(app), nil
}

// FindActive only surfaces discounts whose coupon is still inside its
// validity window and not soft-deleted; an expired coupon leaves the
// application row in place but the effective price falls back to base.
func (r *DiscountRepository) FindActive(ctx context.Context, productID uuid.UUID) (*discount.ActiveDiscount, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	app := s.activeApplication(productID)
	if app == nil {
		return nil, nil
	}
	c, ok := s.coupons[app.CouponID]
	if !ok {
		return nil, infra.NewRepoErr("application references unknown coupon", infra.KindDBFailure)
	}
	if c.DeletedAt != nil || !c.IsActiveAt(s.clk.Now()) {
		return nil, nil
	}
	return &discount.ActiveDiscount{
		Application: *cloneApplication(app),
		Coupon:      *cloneCoupon(c),
	}, nil
}
