package usecase

import (
	"errors"
	"math"
	"time"
)

// ErrValidation marks structurally invalid input; handlers map it to 400.
var ErrValidation = errors.New("validation failed")

const (
	DefaultPage  int32 = 1
	DefaultLimit int32 = 10
)

type PaginationMeta struct {
	Page       int32 `json:"page"`
	Limit      int32 `json:"limit"`
	TotalItems int64 `json:"total_items"`
	TotalPages int32 `json:"total_pages"`
}

func NewPaginationMeta(page, limit int32, totalItems int64) PaginationMeta {
	return PaginationMeta{
		Page:       page,
		Limit:      limit,
		TotalItems: totalItems,
		TotalPages: int32(math.Ceil(float64(totalItems) / float64(limit))),
	}
}

// NormalizePageLimit applies the 1/10 defaults for absent or non-positive
// paging parameters.
func NormalizePageLimit(page, limit *int32) (int32, int32) {
	p, l := DefaultPage, DefaultLimit
	if page != nil && *page > 0 {
		p = *page
	}
	if limit != nil && *limit > 0 {
		l = *limit
	}
	return p, l
}

// FieldChange is one entry of the change-log produced by partial updates,
// shaped like a JSON Patch replace operation.
type FieldChange struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value"`
}

func ReplaceOp(path string, value any) FieldChange {
	return FieldChange{Op: "replace", Path: path, Value: value}
}

// ListProductsParams mirrors the /products query string; nil means absent.
type ListProductsParams struct {
	Page        *int32
	Limit       *int32
	Search      *string
	MinPrice    *int64
	MaxPrice    *int64
	HasDiscount *bool
}

// ListCouponsParams mirrors the /coupons query string; nil means absent.
type ListCouponsParams struct {
	Page       *int32
	Limit      *int32
	Search     *string
	ValidFrom  *time.Time
	ValidUntil *time.Time
	IsActive   *bool
}

// ProductQuery is the repository-level filter derived from ListProductsParams.
type ProductQuery struct {
	Page        int32
	Limit       int32
	Search      string
	MinPrice    int64
	MaxPrice    int64
	HasDiscount *bool
}

// CouponQuery is the repository-level filter derived from ListCouponsParams.
type CouponQuery struct {
	Page       int32
	Limit      int32
	Search     string
	ValidFrom  *time.Time
	ValidUntil *time.Time
	IsActive   *bool
}
