package request

import (
	"time"

	"catalog-service/internal/usecase"
)

type CreateCouponRequest struct {
	Code       string    `json:"code" binding:"required"`
	Type       string    `json:"type" binding:"required"`
	Value      int64     `json:"value" binding:"required"`
	OneShot    bool      `json:"one_shot"`
	ValidFrom  time.Time `json:"valid_from" binding:"required"`
	ValidUntil time.Time `json:"valid_until" binding:"required"`
	MaxUses    *int32    `json:"max_uses,omitempty"`
}

func (r CreateCouponRequest) ToParams() usecase.CreateCouponParams {
	return usecase.CreateCouponParams{
		Code:       r.Code,
		Type:       r.Type,
		Value:      r.Value,
		OneShot:    r.OneShot,
		ValidFrom:  r.ValidFrom,
		ValidUntil: r.ValidUntil,
		MaxUses:    r.MaxUses,
	}
}

type UpdateCouponRequest struct {
	Type       *string    `json:"type,omitempty"`
	Value      *int64     `json:"value,omitempty"`
	OneShot    *bool      `json:"one_shot,omitempty"`
	ValidFrom  *time.Time `json:"valid_from,omitempty"`
	ValidUntil *time.Time `json:"valid_until,omitempty"`
	MaxUses    *int32     `json:"max_uses,omitempty"`
}

func (r UpdateCouponRequest) ToParams() usecase.UpdateCouponParams {
	return usecase.UpdateCouponParams{
		Type:       r.Type,
		Value:      r.Value,
		OneShot:    r.OneShot,
		ValidFrom:  r.ValidFrom,
		ValidUntil: r.ValidUntil,
		MaxUses:    r.MaxUses,
	}
}

type ListCouponsQuery struct {
	Page       *int32     `form:"page"`
	Limit      *int32     `form:"limit"`
	Search     *string    `form:"search"`
	ValidFrom  *time.Time `form:"valid_from" time_format:"2006-01-02T15:04:05Z07:00"`
	ValidUntil *time.Time `form:"valid_until" time_format:"2006-01-02T15:04:05Z07:00"`
	IsActive   *bool      `form:"is_active"`
}

func (q ListCouponsQuery) ToParams() usecase.ListCouponsParams {
	return usecase.ListCouponsParams{
		Page:       q.Page,
		Limit:      q.Limit,
		Search:     q.Search,
		ValidFrom:  q.ValidFrom,
		ValidUntil: q.ValidUntil,
		IsActive:   q.IsActive,
	}
}
