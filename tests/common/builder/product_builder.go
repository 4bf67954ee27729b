//go:build unit || integration

package builder

import (
	"time"

	"catalog-service/internal/domain/product"
	reqdto "catalog-service/internal/handler/dto/request"
	"catalog-service/internal/usecase"

	"github.com/google/uuid"
)

type ProductBuilder struct {
	ID          uuid.UUID
	Name        string
	Description string
	Stock       int32
	Price       int64
	CreatedAt   time.Time
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:          uuid.New(),
		Name:        "gaming mouse",
		Description: "wireless gaming mouse",
		Stock:       250,
		Price:       2590,
		CreatedAt:   time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(b)
	return b
}

func (b *ProductBuilder) BuildDomain() *product.Product {
	desc := b.Description
	return &product.Product{
		ID:          b.ID,
		Name:        b.Name,
		Description: &desc,
		Stock:       b.Stock,
		Price:       b.Price,
		CreatedAt:   b.CreatedAt,
	}
}

func (b *ProductBuilder) BuildDetails() *usecase.ProductDetails {
	p := b.BuildDomain()
	return &usecase.ProductDetails{
		Product:    *p,
		FinalPrice: p.Price,
	}
}

func (b *ProductBuilder) BuildCreateRequestDTO() reqdto.CreateProductRequest {
	desc := b.Description
	return reqdto.CreateProductRequest{
		Name:        b.Name,
		Description: &desc,
		Stock:       b.Stock,
		Price:       b.Price,
	}
}

func (b *ProductBuilder) BuildUpdateRequestDTO() reqdto.UpdateProductRequest {
	name := b.Name
	stock := b.Stock
	return reqdto.UpdateProductRequest{
		Name:  &name,
		Stock: &stock,
	}
}
