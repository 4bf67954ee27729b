package usecase

import (
	"context"
	"errors"
	"math"

	"catalog-service/internal/domain/discount"
	"catalog-service/internal/domain/product"
	"catalog-service/internal/infra"
	"catalog-service/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrProductAlreadyExists = errors.New("product already exists")
	ErrNoFieldsToUpdate     = errors.New("no fields to update")
)

type ProductRepository interface {
	Find(ctx context.Context, id uuid.UUID) (*product.Product, error)
	FindAll(ctx context.Context, q ProductQuery) ([]*product.Product, PaginationMeta, error)
	Create(ctx context.Context, p product.NewProduct) (*product.Product, error)
	Update(ctx context.Context, id uuid.UUID, patch product.Patch) (*product.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) (*product.Product, error)
	HasDiscount(ctx context.Context, id uuid.UUID) (bool, error)
}

type CreateProductParams struct {
	Name        string
	Description *string
	Stock       int32
	Price       int64
}

type UpdateProductParams struct {
	Name        *string
	Description *string
	Stock       *int32
	Price       *int64
}

// ProductDetails is a product read with its effective price re-derived from
// the currently active discount, if any.
type ProductDetails struct {
	Product          product.Product
	FinalPrice       int64
	HasCouponApplied bool
	Discount         *discount.ActiveDiscount
}

type ProductList struct {
	Items []*product.Product
	Meta  PaginationMeta
}

type ProductUseCase interface {
	Create(ctx context.Context, params CreateProductParams) (*ProductDetails, error)
	Get(ctx context.Context, id uuid.UUID) (*ProductDetails, error)
	List(ctx context.Context, params ListProductsParams) (*ProductList, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateProductParams) (*ProductDetails, []FieldChange, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) (*ProductDetails, error)
}

type productUseCaseImpl struct {
	productRepo  ProductRepository
	discountRepo DiscountRepository
}

func NewProductUseCase(productRepo ProductRepository, discountRepo DiscountRepository) ProductUseCase {
	return &productUseCaseImpl{
		productRepo:  productRepo,
		discountRepo: discountRepo,
	}
}

func (u *productUseCaseImpl) Create(ctx context.Context, params CreateProductParams) (*ProductDetails, error) {
	newProduct := product.NewProduct{
		Name:        params.Name,
		Description: params.Description,
		Stock:       params.Stock,
		Price:       params.Price,
	}
	newProduct.Normalize()
	if err := newProduct.Validate(); err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	created, err := u.productRepo.Create(ctx, newProduct)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrProductAlreadyExists
		}
		return nil, errs.Wrap(err, "failed to create product")
	}

	return u.details(ctx, created)
}

func (u *productUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*ProductDetails, error) {
	found, err := u.productRepo.Find(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, errs.Wrap(err, "failed to find product")
	}

	return u.details(ctx, found)
}

func (u *productUseCaseImpl) List(ctx context.Context, params ListProductsParams) (*ProductList, error) {
	page, limit := NormalizePageLimit(params.Page, params.Limit)

	query := ProductQuery{
		Page:     page,
		Limit:    limit,
		MaxPrice: math.MaxInt64,
	}
	if params.Search != nil {
		query.Search = *params.Search
	}
	if params.MinPrice != nil {
		query.MinPrice = *params.MinPrice
	}
	if params.MaxPrice != nil {
		query.MaxPrice = *params.MaxPrice
	}
	query.HasDiscount = params.HasDiscount

	items, meta, err := u.productRepo.FindAll(ctx, query)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list products")
	}

	return &ProductList{Items: items, Meta: meta}, nil
}

func (u *productUseCaseImpl) Update(ctx context.Context, id uuid.UUID, params UpdateProductParams) (*ProductDetails, []FieldChange, error) {
	patch := product.Patch{
		Name:        params.Name,
		Description: params.Description,
		Stock:       params.Stock,
		Price:       params.Price,
	}
	patch.Normalize()
	if patch.IsEmpty() {
		return nil, nil, ErrNoFieldsToUpdate
	}
	if err := patch.Validate(); err != nil {
		return nil, nil, errs.Mark(err, ErrValidation)
	}

	updated, err := u.productRepo.Update(ctx, id, patch)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, nil, ErrProductNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, nil, ErrProductAlreadyExists
		}
		return nil, nil, errs.Wrap(err, "failed to update product")
	}

	changes := productChanges(patch, updated)

	details, err := u.details(ctx, updated)
	if err != nil {
		return nil, nil, err
	}
	return details, changes, nil
}

func (u *productUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.productRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrProductNotFound
		}
		return errs.Wrap(err, "failed to delete product")
	}
	return nil
}

func (u *productUseCaseImpl) Restore(ctx context.Context, id uuid.UUID) (*ProductDetails, error) {
	restored, err := u.productRepo.Restore(ctx, id)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrProductNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrProductAlreadyExists
		}
		return nil, errs.Wrap(err, "failed to restore product")
	}
	return u.details(ctx, restored)
}

func (u *productUseCaseImpl) details(ctx context.Context, p *product.Product) (*ProductDetails, error) {
	return buildProductDetails(ctx, u.discountRepo, p)
}

// buildProductDetails recomputes the effective price from the active
// discount; the final price is a function of (product.price, active coupon),
// never stored state.
func buildProductDetails(ctx context.Context, discountRepo DiscountRepository, p *product.Product) (*ProductDetails, error) {
	active, err := discountRepo.FindActive(ctx, p.ID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to find active discount")
	}

	d := &ProductDetails{
		Product:    *p,
		FinalPrice: p.Price,
	}
	if active != nil {
		d.HasCouponApplied = true
		d.Discount = active
		d.FinalPrice = discount.FinalPrice(p.Price, active.Coupon.Type, active.Coupon.Value)
	}
	return d, nil
}

func productChanges(patch product.Patch, updated *product.Product) []FieldChange {
	var changes []FieldChange
	if patch.Name != nil {
		changes = append(changes, ReplaceOp("/name", updated.Name))
	}
	if patch.Description != nil {
		changes = append(changes, ReplaceOp("/description", updated.Description))
	}
	if patch.Stock != nil {
		changes = append(changes, ReplaceOp("/stock", updated.Stock))
	}
	if patch.Price != nil {
		changes = append(changes, ReplaceOp("/price", updated.Price))
	}
	if updated.UpdatedAt != nil {
		changes = append(changes, ReplaceOp("/updated_at", *updated.UpdatedAt))
	}
	return changes
}
