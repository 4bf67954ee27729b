//go:build unit || integration

package builder

import (
	"time"

	"catalog-service/internal/domain/coupon"
	reqdto "catalog-service/internal/handler/dto/request"

	"github.com/google/uuid"
)

type CouponBuilder struct {
	ID         uuid.UUID
	Code       string
	Type       coupon.Type
	Value      int64
	OneShot    bool
	ValidFrom  time.Time
	ValidUntil time.Time
	MaxUses    *int32
	CreatedAt  time.Time
}

func NewCouponBuilder() *CouponBuilder {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	return &CouponBuilder{
		ID:         uuid.New(),
		Code:       "save20",
		Type:       coupon.TypePercent,
		Value:      20,
		ValidFrom:  start,
		ValidUntil: start.AddDate(0, 1, 0),
		CreatedAt:  start,
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

func (b *CouponBuilder) BuildDomain() *coupon.Coupon {
	return &coupon.Coupon{
		ID:         b.ID,
		Code:       coupon.Code(b.Code),
		Type:       b.Type,
		Value:      b.Value,
		OneShot:    b.OneShot,
		ValidFrom:  b.ValidFrom,
		ValidUntil: b.ValidUntil,
		MaxUses:    b.MaxUses,
		CreatedAt:  b.CreatedAt,
	}
}

func (b *CouponBuilder) BuildCreateRequestDTO() reqdto.CreateCouponRequest {
	return reqdto.CreateCouponRequest{
		Code:       b.Code,
		Type:       string(b.Type),
		Value:      b.Value,
		OneShot:    b.OneShot,
		ValidFrom:  b.ValidFrom,
		ValidUntil: b.ValidUntil,
		MaxUses:    b.MaxUses,
	}
}

func (b *CouponBuilder) BuildUpdateRequestDTO() reqdto.UpdateCouponRequest {
	value := b.Value
	return reqdto.UpdateCouponRequest{
		Value: &value,
	}
}
