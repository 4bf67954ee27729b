package request

import (
	"catalog-service/internal/usecase"
)

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
	Stock       int32   `json:"stock"`
	Price       int64   `json:"price" binding:"required"`
}

func (r CreateProductRequest) ToParams() usecase.CreateProductParams {
	return usecase.CreateProductParams{
		Name:        r.Name,
		Description: r.Description,
		Stock:       r.Stock,
		Price:       r.Price,
	}
}

type UpdateProductRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Stock       *int32  `json:"stock,omitempty"`
	Price       *int64  `json:"price,omitempty"`
}

func (r UpdateProductRequest) ToParams() usecase.UpdateProductParams {
	return usecase.UpdateProductParams{
		Name:        r.Name,
		Description: r.Description,
		Stock:       r.Stock,
		Price:       r.Price,
	}
}

type ListProductsQuery struct {
	Page        *int32  `form:"page"`
	Limit       *int32  `form:"limit"`
	Search      *string `form:"search"`
	MinPrice    *int64  `form:"min_price"`
	MaxPrice    *int64  `form:"max_price"`
	HasDiscount *bool   `form:"has_discount"`
}

func (q ListProductsQuery) ToParams() usecase.ListProductsParams {
	return usecase.ListProductsParams{
		Page:        q.Page,
		Limit:       q.Limit,
		Search:      q.Search,
		MinPrice:    q.MinPrice,
		MaxPrice:    q.MaxPrice,
		HasDiscount: q.HasDiscount,
	}
}
