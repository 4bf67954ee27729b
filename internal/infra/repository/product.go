package repository

import (
	"context"

	"catalog-service/internal/domain/product"
	"catalog-service/internal/infra"
	"catalog-service/internal/pkg/clock"
	"catalog-service/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uqProductsName = "uq_products_name"

const productColumns = `id, name, description, stock, price, created_at, updated_at, deleted_at`

type ProductRepository struct {
	pool *pgxpool.Pool
	clk  clock.Clock
}

func NewProductRepository(pool *pgxpool.Pool, clk clock.Clock) *ProductRepository {
	return &ProductRepository{pool: pool, clk: clk}
}

func (r *ProductRepository) Find(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1 AND deleted_at IS NULL`, id)

	p, err := scanProduct(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product", err)
	}
	return p, nil
}

func (r *ProductRepository) FindAll(ctx context.Context, q usecase.ProductQuery) ([]*product.Product, usecase.PaginationMeta, error) {
	where := `WHERE deleted_at IS NULL
		AND ($1 = '' OR name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
		AND price >= $2 AND price <= $3
		AND ($4::boolean IS NULL OR $4 = EXISTS (
			SELECT 1 FROM product_coupon_applications a
			WHERE a.product_id = products.id AND a.removed_at IS NULL
		))`
	args := []any{q.Search, q.MinPrice, q.MaxPrice, q.HasDiscount}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM products `+where, args...).Scan(&total); err != nil {
		return nil, usecase.PaginationMeta{}, infra.WrapRepoErr("failed to count products", err)
	}

	offset := (q.Page - 1) * q.Limit
	rows, err := r.pool.Query(ctx,
		`SELECT `+productColumns+` FROM products `+where+
			` ORDER BY created_at DESC, id LIMIT $5 OFFSET $6`,
		append(args, q.Limit, offset)...)
	if err != nil {
		return nil, usecase.PaginationMeta{}, infra.WrapRepoErr("failed to list products", err)
	}
	defer rows.Close()

	items := make([]*product.Product, 0, q.Limit)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, usecase.PaginationMeta{}, infra.WrapRepoErr("failed to scan product row", err)
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, usecase.PaginationMeta{}, infra.WrapRepoErr("failed to read product rows", err)
	}

	return items, usecase.NewPaginationMeta(q.Page, q.Limit, total), nil
}

func (r *ProductRepository) Create(ctx context.Context, p product.NewProduct) (*product.Product, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO products (name, description, stock, price, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+productColumns,
		p.Name, p.Description, p.Stock, p.Price, r.clk.Now())

	created, err := scanProduct(row)
	if err != nil {
		if infra.IsUniqueViolation(err) && infra.ConstraintName(err) == uqProductsName {
			return nil, infra.WrapRepoErr("product name already exists", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to create product", err)
	}
	return created, nil
}

func (r *ProductRepository) Update(ctx context.Context, id uuid.UUID, patch product.Patch) (*product.Product, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE products SET
			name        = COALESCE($2, name),
			description = COALESCE($3, description),
			stock       = COALESCE($4, stock),
			price       = COALESCE($5, price),
			updated_at  = $6
		 WHERE id = $1 AND deleted_at IS NULL
		 RETURNING `+productColumns,
		id, patch.Name, patch.Description, patch.Stock, patch.Price, r.clk.Now())

	updated, err := scanProduct(row)
	if err != nil {
		switch {
		case infra.IsNoRows(err):
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		case infra.IsUniqueViolation(err) && infra.ConstraintName(err) == uqProductsName:
			return nil, infra.WrapRepoErr("product name already exists", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to update product", err)
	}
	return updated, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	now := r.clk.Now()
	tag, err := r.pool.Exec(ctx,
		`UPDATE products SET deleted_at = $2, updated_at = $2
		 WHERE id = $1 AND deleted_at IS NULL`, id, now)
	if err != nil {
		return infra.WrapRepoErr("failed to delete product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr("product not found", infra.KindNotFound)
	}
	return nil
}

func (r *ProductRepository) Restore(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE products SET deleted_at = NULL, updated_at = $2
		 WHERE id = $1 AND deleted_at IS NOT NULL
		 RETURNING `+productColumns,
		id, r.clk.Now())

	restored, err := scanProduct(row)
	if err != nil {
		switch {
		case infra.IsNoRows(err):
			return nil, infra.WrapRepoErr("deleted product not found", err, infra.KindNotFound)
		case infra.IsUniqueViolation(err) && infra.ConstraintName(err) == uqProductsName:
			return nil, infra.WrapRepoErr("product name already exists", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to restore product", err)
	}
	return restored, nil
}

func (r *ProductRepository) HasDiscount(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM product_coupon_applications
			WHERE product_id = $1 AND removed_at IS NULL
		)`, id).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check product discount", err)
	}
	return exists, nil
}

func scanProduct(row pgx.Row) (*product.Product, error) {
	var p product.Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Stock,
		&p.Price,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
