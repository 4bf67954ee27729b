package response

import (
	"time"

	"catalog-service/internal/domain/product"
	"catalog-service/internal/usecase"

	"github.com/google/uuid"
)

type ProductResponse struct {
	ID               uuid.UUID         `json:"id"`
	Name             string            `json:"name"`
	Description      *string           `json:"description,omitempty"`
	Stock            int32             `json:"stock"`
	Price            int64             `json:"price"`
	FinalPrice       int64             `json:"final_price"`
	IsOutOfStock     bool              `json:"is_out_of_stock"`
	HasCouponApplied bool              `json:"has_coupon_applied"`
	Discount         *DiscountResponse `json:"discount,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        *time.Time        `json:"updated_at,omitempty"`
}

type DiscountResponse struct {
	Code      string    `json:"code"`
	Type      string    `json:"type"`
	Value     int64     `json:"value"`
	AppliedAt time.Time `json:"applied_at"`
}

func FromProductDetails(d *usecase.ProductDetails) *ProductResponse {
	resp := &ProductResponse{
		ID:               d.Product.ID,
		Name:             d.Product.Name,
		Description:      d.Product.Description,
		Stock:            d.Product.Stock,
		Price:            d.Product.Price,
		FinalPrice:       d.FinalPrice,
		IsOutOfStock:     d.Product.IsOutOfStock(),
		HasCouponApplied: d.HasCouponApplied,
		CreatedAt:        d.Product.CreatedAt,
		UpdatedAt:        d.Product.UpdatedAt,
	}
	if d.Discount != nil {
		resp.Discount = &DiscountResponse{
			Code:      d.Discount.Coupon.Code.String(),
			Type:      string(d.Discount.Coupon.Type),
			Value:     d.Discount.Coupon.Value,
			AppliedAt: d.Discount.Application.AppliedAt,
		}
	}
	return resp
}

type ProductListItemResponse struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Description  *string    `json:"description,omitempty"`
	Stock        int32      `json:"stock"`
	Price        int64      `json:"price"`
	IsOutOfStock bool       `json:"is_out_of_stock"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

type ProductListResponse struct {
	Data []*ProductListItemResponse `json:"data"`
	Meta usecase.PaginationMeta     `json:"meta"`
}

func FromProductList(list *usecase.ProductList) *ProductListResponse {
	data := make([]*ProductListItemResponse, 0, len(list.Items))
	for _, p := range list.Items {
		data = append(data, fromProductListItem(p))
	}
	return &ProductListResponse{Data: data, Meta: list.Meta}
}

func fromProductListItem(p *product.Product) *ProductListItemResponse {
	return &ProductListItemResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Stock:        p.Stock,
		Price:        p.Price,
		IsOutOfStock: p.IsOutOfStock(),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// UpdatedProductResponse adds the change-log produced by a partial update.
type UpdatedProductResponse struct {
	Product *ProductResponse      `json:"product"`
	Changes []usecase.FieldChange `json:"changes"`
}
