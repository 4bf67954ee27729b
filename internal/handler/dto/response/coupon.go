package response

import (
	"time"

	"catalog-service/internal/domain/coupon"
	"catalog-service/internal/usecase"

	"github.com/google/uuid"
)

type CouponResponse struct {
	ID         uuid.UUID  `json:"id"`
	Code       string     `json:"code"`
	Type       string     `json:"type"`
	Value      int64      `json:"value"`
	OneShot    bool       `json:"one_shot"`
	ValidFrom  time.Time  `json:"valid_from"`
	ValidUntil time.Time  `json:"valid_until"`
	UsesCount  int32      `json:"uses_count"`
	MaxUses    *int32     `json:"max_uses,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

func FromCoupon(c *coupon.Coupon) *CouponResponse {
	return &CouponResponse{
		ID:         c.ID,
		Code:       c.Code.String(),
		Type:       string(c.Type),
		Value:      c.Value,
		OneShot:    c.OneShot,
		ValidFrom:  c.ValidFrom,
		ValidUntil: c.ValidUntil,
		UsesCount:  c.UsesCount,
		MaxUses:    c.MaxUses,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

type CouponListResponse struct {
	Data []*CouponResponse      `json:"data"`
	Meta usecase.PaginationMeta `json:"meta"`
}

func FromCouponList(list *usecase.CouponList) *CouponListResponse {
	data := make([]*CouponResponse, 0, len(list.Items))
	for _, c := range list.Items {
		data = append(data, FromCoupon(c))
	}
	return &CouponListResponse{Data: data, Meta: list.Meta}
}

// UpdatedCouponResponse adds the change-log produced by a partial update.
type UpdatedCouponResponse struct {
	Coupon  *CouponResponse       `json:"coupon"`
	Changes []usecase.FieldChange `json:"changes"`
}
