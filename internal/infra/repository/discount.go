package repository

import (
	"context"

	"catalog-service/internal/domain/coupon"
	"catalog-service/internal/domain/discount"
	"catalog-service/internal/infra"
	"catalog-service/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const idxUniqueActiveCoupon = "idx_unique_active_coupon"

const applicationColumns = `id, product_id, coupon_id, applied_at, removed_at`

type DiscountRepository struct {
	pool *pgxpool.Pool
	clk  clock.Clock
}

func NewDiscountRepository(pool *pgxpool.Pool, clk clock.Clock) *DiscountRepository {
	return &DiscountRepository{pool: pool, clk: clk}
}

// Apply runs the whole workflow in one transaction: the coupon row is locked
// with FOR UPDATE so a concurrent apply of the same code serializes behind
// it, the validity check runs against the locked row, and the usage counter
// is bumped alongside the inserted application. The partial unique index on
// active applications decides the winner when two different codes race for
// the same product.
func (r *DiscountRepository) Apply(ctx context.Context, productID uuid.UUID, code coupon.Code) (*discount.Application, error) {
	now := r.clk.Now()
	var app discount.Application

	err := runInTx(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		row := tx.QueryRow(ctx,
			`SELECT `+couponColumns+` FROM coupons
			 WHERE code = $1 AND deleted_at IS NULL
			 FOR UPDATE`, code)

		c, err := scanCoupon(row)
		if err != nil {
			if infra.IsNoRows(err) {
				return infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
			}
			return infra.WrapRepoErr("failed to lock coupon", err)
		}

		if err := c.ValidateUsage(now); err != nil {
			return infra.WrapRepoErr("coupon is not usable", err, infra.KindUnprocessable)
		}

		err = tx.QueryRow(ctx,
			`INSERT INTO product_coupon_applications (product_id, coupon_id, applied_at)
			 VALUES ($1, $2, $3)
			 RETURNING `+applicationColumns,
			productID, c.ID, now).
			Scan(&app.ID, &app.ProductID, &app.CouponID, &app.AppliedAt, &app.RemovedAt)
		if err != nil {
			switch {
			case infra.IsUniqueViolation(err) && infra.ConstraintName(err) == idxUniqueActiveCoupon:
				return infra.WrapRepoErr("product already has an active coupon", err, infra.KindConflict)
			case infra.IsForeignKeyViolation(err):
				return infra.WrapRepoErr("product does not exist", err, infra.KindForeignKeyViolated)
			}
			return infra.WrapRepoErr("failed to insert application", err)
		}

		if _, err := tx.Exec(ctx,
			`UPDATE coupons SET uses_count = uses_count + 1, updated_at = $2
			 WHERE id = $1`, c.ID, now); err != nil {
			return infra.WrapRepoErr("failed to increment coupon uses", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// Remove matches the active application for the product; an empty code means
// "whatever coupon is active".
func (r *DiscountRepository) Remove(ctx context.Context, productID uuid.UUID, code coupon.Code) (*discount.Application, error) {
	var app discount.Application
	err := r.pool.QueryRow(ctx,
		`UPDATE product_coupon_applications a SET removed_at = $3
		 FROM coupons c
		 WHERE a.coupon_id = c.id
		   AND a.product_id = $1
		   AND ($2 = '' OR c.code = $2)
		   AND a.removed_at IS NULL
		 RETURNING a.id, a.product_id, a.coupon_id, a.applied_at, a.removed_at`,
		productID, code, r.clk.Now()).
		Scan(&app.ID, &app.ProductID, &app.CouponID, &app.AppliedAt, &app.RemovedAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no active application for product and code", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to remove application", err)
	}
	return &app, nil
}

// FindActive only surfaces discounts whose coupon is still inside its
// validity window and not soft-deleted; an expired coupon leaves the
// application row in place but the effective price falls back to base.
func (r *DiscountRepository) FindActive(ctx context.Context, productID uuid.UUID) (*discount.ActiveDiscount, error) {
	var (
		app discount.Application
		c   coupon.Coupon
	)
	err := r.pool.QueryRow(ctx,
		`SELECT a.id, a.product_id, a.coupon_id, a.applied_at, a.removed_at,
		        c.id, c.code, c.type, c.value, c.one_shot, c.valid_from, c.valid_until,
		        c.uses_count, c.max_uses, c.created_at, c.updated_at, c.deleted_at
		 FROM product_coupon_applications a
		 JOIN coupons c ON c.id = a.coupon_id
		 WHERE a.product_id = $1 AND a.removed_at IS NULL
		   AND c.deleted_at IS NULL
		   AND c.valid_from <= $2 AND c.valid_until >= $2`,
		productID, r.clk.Now()).
		Scan(
			&app.ID, &app.ProductID, &app.CouponID, &app.AppliedAt, &app.RemovedAt,
			&c.ID, &c.Code, &c.Type, &c.Value, &c.OneShot, &c.ValidFrom, &c.ValidUntil,
			&c.UsesCount, &c.MaxUses, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
		)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find active discount", err)
	}
	return &discount.ActiveDiscount{Application: app, Coupon: c}, nil
}
