package usecase

import (
	"context"
	"errors"
	"time"

	"catalog-service/internal/domain/coupon"
	"catalog-service/internal/infra"
	"catalog-service/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCouponNotFound      = errors.New("coupon not found")
	ErrCouponAlreadyExists = errors.New("coupon code already exists")
)

type CouponRepository interface {
	Create(ctx context.Context, c coupon.NewCoupon) (*coupon.Coupon, error)
	Find(ctx context.Context, code coupon.Code) (*coupon.Coupon, error)
	FindAll(ctx context.Context, q CouponQuery) ([]*coupon.Coupon, PaginationMeta, error)
	Update(ctx context.Context, code coupon.Code, patch coupon.Patch) (*coupon.Coupon, error)
	Delete(ctx context.Context, code coupon.Code) error
	// FindValidByCode is the single source of truth for "currently usable":
	// not soft-deleted, inside the validity window, usage cap not reached.
	FindValidByCode(ctx context.Context, code coupon.Code) (*coupon.Coupon, error)
	// IncrementUses bumps uses_count by one. The discount workflow performs
	// the increment inside its own transaction; this standalone operation is
	// best-effort and no-ops on an unknown id.
	IncrementUses(ctx context.Context, id uuid.UUID) error
}

type CreateCouponParams struct {
	Code       string
	Type       string
	Value      int64
	OneShot    bool
	ValidFrom  time.Time
	ValidUntil time.Time
	MaxUses    *int32
}

type UpdateCouponParams struct {
	Type       *string
	Value      *int64
	OneShot    *bool
	ValidFrom  *time.Time
	ValidUntil *time.Time
	MaxUses    *int32
}

type CouponList struct {
	Items []*coupon.Coupon
	Meta  PaginationMeta
}

type CouponUseCase interface {
	Create(ctx context.Context, params CreateCouponParams) (*coupon.Coupon, error)
	Get(ctx context.Context, code string) (*coupon.Coupon, error)
	List(ctx context.Context, params ListCouponsParams) (*CouponList, error)
	Update(ctx context.Context, code string, params UpdateCouponParams) (*coupon.Coupon, []FieldChange, error)
	Delete(ctx context.Context, code string) error
}

type couponUseCaseImpl struct {
	couponRepo CouponRepository
}

func NewCouponUseCase(couponRepo CouponRepository) CouponUseCase {
	return &couponUseCaseImpl{couponRepo: couponRepo}
}

func (u *couponUseCaseImpl) Create(ctx context.Context, params CreateCouponParams) (*coupon.Coupon, error) {
	code, err := coupon.NewCode(params.Code)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	typ, err := coupon.ParseType(params.Type)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	newCoupon := coupon.NewCoupon{
		Code:       code,
		Type:       typ,
		Value:      params.Value,
		OneShot:    params.OneShot,
		ValidFrom:  params.ValidFrom,
		ValidUntil: params.ValidUntil,
		MaxUses:    params.MaxUses,
	}
	if err := newCoupon.Validate(); err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	created, err := u.couponRepo.Create(ctx, newCoupon)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrCouponAlreadyExists
		}
		return nil, errs.Wrap(err, "failed to create coupon")
	}
	return created, nil
}

func (u *couponUseCaseImpl) Get(ctx context.Context, code string) (*coupon.Coupon, error) {
	normalized, err := coupon.NewCode(code)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	found, err := u.couponRepo.Find(ctx, normalized)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, errs.Wrap(err, "failed to find coupon")
	}
	return found, nil
}

func (u *couponUseCaseImpl) List(ctx context.Context, params ListCouponsParams) (*CouponList, error) {
	page, limit := NormalizePageLimit(params.Page, params.Limit)

	query := CouponQuery{
		Page:       page,
		Limit:      limit,
		ValidFrom:  params.ValidFrom,
		ValidUntil: params.ValidUntil,
		IsActive:   params.IsActive,
	}
	if params.Search != nil {
		query.Search = *params.Search
	}

	items, meta, err := u.couponRepo.FindAll(ctx, query)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list coupons")
	}
	return &CouponList{Items: items, Meta: meta}, nil
}

func (u *couponUseCaseImpl) Update(ctx context.Context, code string, params UpdateCouponParams) (*coupon.Coupon, []FieldChange, error) {
	normalized, err := coupon.NewCode(code)
	if err != nil {
		return nil, nil, errs.Mark(err, ErrValidation)
	}

	patch := coupon.Patch{
		Value:      params.Value,
		OneShot:    params.OneShot,
		ValidFrom:  params.ValidFrom,
		ValidUntil: params.ValidUntil,
		MaxUses:    params.MaxUses,
	}
	if params.Type != nil {
		typ, err := coupon.ParseType(*params.Type)
		if err != nil {
			return nil, nil, errs.Mark(err, ErrValidation)
		}
		patch.Type = &typ
	}
	if patch.IsEmpty() {
		return nil, nil, ErrNoFieldsToUpdate
	}
	if err := patch.Validate(); err != nil {
		return nil, nil, errs.Mark(err, ErrValidation)
	}

	updated, err := u.couponRepo.Update(ctx, normalized, patch)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, nil, ErrCouponNotFound
		case infra.IsKind(err, infra.KindCheckViolated):
			// A one-sided window patch inverted the stored window; only the
			// store can see the merged result.
			return nil, nil, errs.Mark(coupon.ErrInvalidWindow, ErrValidation)
		}
		return nil, nil, errs.Wrap(err, "failed to update coupon")
	}

	return updated, couponChanges(patch, updated), nil
}

func (u *couponUseCaseImpl) Delete(ctx context.Context, code string) error {
	normalized, err := coupon.NewCode(code)
	if err != nil {
		return errs.Mark(err, ErrValidation)
	}

	if err := u.couponRepo.Delete(ctx, normalized); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCouponNotFound
		}
		return errs.Wrap(err, "failed to delete coupon")
	}
	return nil
}

func couponChanges(patch coupon.Patch, updated *coupon.Coupon) []FieldChange {
	var changes []FieldChange
	if patch.Type != nil {
		changes = append(changes, ReplaceOp("/type", string(updated.Type)))
	}
	if patch.Value != nil {
		changes = append(changes, ReplaceOp("/value", updated.Value))
	}
	if patch.OneShot != nil {
		changes = append(changes, ReplaceOp("/one_shot", updated.OneShot))
	}
	if patch.ValidFrom != nil {
		changes = append(changes, ReplaceOp("/valid_from", updated.ValidFrom))
	}
	if patch.ValidUntil != nil {
		changes = append(changes, ReplaceOp("/valid_until", updated.ValidUntil))
	}
	if patch.MaxUses != nil {
		changes = append(changes, ReplaceOp("/max_uses", updated.MaxUses))
	}
	if updated.UpdatedAt != nil {
		changes = append(changes, ReplaceOp("/updated_at", *updated.UpdatedAt))
	}
	return changes
}
