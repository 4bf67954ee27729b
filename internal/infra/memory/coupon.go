package memory

import (
	"context"
	"sort"
	"strings"

	"catalog-service/internal/domain/coupon"
	"catalog-service/internal/infra"
	"catalog-service/internal/pkg/patch"
	"catalog-service/internal/usecase"

	"github.com/google/uuid"
)

type CouponRepository struct {
	store *Store
}

func NewCouponRepository(store *Store) *CouponRepository {
	return &CouponRepository{store: store}
}

func (r *CouponRepository) Create(ctx context.Context, c coupon.NewCoupon) (*coupon.Coupon, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.liveCouponByCode(c.Code) != nil {
		return nil, infra.NewRepoErr("coupon code already exists", infra.KindDuplicateKey)
	}

	created := &coupon.Coupon{
		ID:         uuid.New(),
		Code:       c.Code,
		Type:       c.Type,
		Value:      c.Value,
		OneShot:    c.OneShot,
		ValidFrom:  c.ValidFrom,
		ValidUntil: c.ValidUntil,
		MaxUses:    clonePtr(c.MaxUses),
		CreatedAt:  s.clk.Now(),
	}
	s.coupons[created.ID] = created
	return cloneCoupon(created), nil
}

func (r *CouponRepository) Find(ctx context.Context, code coupon.Code) (*coupon.Coupon, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	c := s.liveCouponByCode(code)
	if c == nil {
		return nil, infra.NewRepoErr("coupon not found", infra.KindNotFound)
	}
	return cloneCoupon(c), nil
}

func (r *CouponRepository) FindAll(ctx context.Context, q usecase.CouponQuery) ([]*coupon.Coupon, usecase.PaginationMeta, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.clk.Now()
	matched := make([]*coupon.Coupon, 0, len(s.coupons))
	for _, c := range s.coupons {
		if c.DeletedAt != nil {
			continue
		}
		if q.Search != "" && !strings.Contains(c.Code.String(), strings.ToLower(q.Search)) {
			continue
		}
		if q.ValidFrom != nil && c.ValidFrom.Before(*q.ValidFrom) {
			continue
		}
		if q.ValidUntil != nil && c.ValidUntil.After(*q.ValidUntil) {
			continue
		}
		if q.IsActive != nil {
			active := c.IsActiveAt(now) && !c.IsExhausted()
			if *q.IsActive != active {
				continue
			}
		}
		matched = append(matched, c)
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID.String() < matched[j].ID.String()
	})

	total := int64(len(matched))
	page := paginate(matched, q.Page, q.Limit)

	items := make([]*coupon.Coupon, 0, len(page))
	for _, c := range page {
		items = append(items, cloneCoupon(c))
	}
	return items, usecase.NewPaginationMeta(q.Page, q.Limit, total), nil
}

func (r *CouponRepository) Update(ctx context.Context, code coupon.Code, pt coupon.Patch) (*coupon.Coupon, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.liveCouponByCode(code)
	if c == nil {
		return nil, infra.NewRepoErr("coupon not found", infra.KindNotFound)
	}

	// Check the merged window before touching the row so a one-sided patch
	// cannot invert it, mirroring the ck_coupons_window constraint.
	validFrom := patch.Coalesce(pt.ValidFrom, c.ValidFrom)
	validUntil := patch.Coalesce(pt.ValidUntil, c.ValidUntil)
	if validFrom.After(validUntil) {
		return nil, infra.NewRepoErr("coupon validity window inverted", infra.KindCheckViolated)
	}

	c.Type = patch.Coalesce(pt.Type, c.Type)
	c.Value = patch.Coalesce(pt.Value, c.Value)
	c.OneShot = patch.Coalesce(pt.OneShot, c.OneShot)
	c.ValidFrom = validFrom
	c.ValidUntil = validUntil
	if pt.MaxUses != nil {
		c.MaxUses = clonePtr(pt.MaxUses)
	}
	now := s.clk.Now()
	c.UpdatedAt = &now

	return cloneCoupon(c), nil
}

func (r *CouponRepository) Delete(ctx context.Context, code coupon.Code) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.liveCouponByCode(code)
	if c == nil {
		return infra.NewRepoErr("coupon not found", infra.KindNotFound)
	}

	now := s.clk.Now()
	c.DeletedAt = &now
	c.UpdatedAt = &now
	return nil
}

func (r *CouponRepository) FindValidByCode(ctx context.Context, code coupon.Code) (*coupon.Coupon, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	c := s.liveCouponByCode(code)
	if c == nil || c.ValidateUsage(s.clk.Now()) != nil {
		return nil, infra.NewRepoErr("no valid coupon for code", infra.KindNotFound)
	}
	return cloneCoupon(c), nil
}

func (r *CouponRepository) IncrementUses(ctx context.Context, id uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.coupons[id]
	if !ok || c.DeletedAt != nil {
		return nil
	}
	c.UsesCount++
	now := s.clk.Now()
	c.UpdatedAt = &now
	return nil
}
