package repository

import (
	"context"

	"catalog-service/internal/domain/coupon"
	"catalog-service/internal/infra"
	"catalog-service/internal/pkg/clock"
	"catalog-service/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	uqCouponsCode   = "uq_coupons_code"
	ckCouponsWindow = "ck_coupons_window"
)

const couponColumns = `id, code, type, value, one_shot, valid_from, valid_until,
	uses_count, max_uses, created_at, updated_at, deleted_at`

type CouponRepository struct {
	pool *pgxpool.Pool
	clk  clock.Clock
}

func NewCouponRepository(pool *pgxpool.Pool, clk clock.Clock) *CouponRepository {
	return &CouponRepository{pool: pool, clk: clk}
}

func (r *CouponRepository) Create(ctx context.Context, c coupon.NewCoupon) (*coupon.Coupon, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO coupons (code, type, value, one_shot, valid_from, valid_until, max_uses, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+couponColumns,
		c.Code, c.Type, c.Value, c.OneShot, c.ValidFrom, c.ValidUntil, c.MaxUses, r.clk.Now())

	created, err := scanCoupon(row)
	if err != nil {
		if infra.IsUniqueViolation(err) && infra.ConstraintName(err) == uqCouponsCode {
			return nil, infra.WrapRepoErr("coupon code already exists", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to create coupon", err)
	}
	return created, nil
}

func (r *CouponRepository) Find(ctx context.Context, code coupon.Code) (*coupon.Coupon, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+couponColumns+` FROM coupons WHERE code = $1 AND deleted_at IS NULL`, code)

	c, err := scanCoupon(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon", err)
	}
	return c, nil
}

func (r *CouponRepository) FindAll(ctx context.Context, q usecase.CouponQuery) ([]*coupon.Coupon, usecase.PaginationMeta, error) {
	now := r.clk.Now()
	where := `WHERE deleted_at IS NULL
		AND ($1 = '' OR code ILIKE '%' || $1 || '%')
		AND ($2::timestamptz IS NULL OR valid_from >= $2)
		AND ($3::timestamptz IS NULL OR valid_until <= $3)
		AND ($4::boolean IS NULL OR $4 = (
			valid_from <= $5 AND valid_until >= $5
			AND (max_uses IS NULL OR uses_count < max_uses)
		))`
	args := []any{q.Search, q.ValidFrom, q.ValidUntil, q.IsActive, now}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM coupons `+where, args...).Scan(&total); err != nil {
		return nil, usecase.PaginationMeta{}, infra.WrapRepoErr("failed to count coupons", err)
	}

	offset := (q.Page - 1) * q.Limit
	rows, err := r.pool.Query(ctx,
		`SELECT `+couponColumns+` FROM coupons `+where+
			` ORDER BY created_at DESC, id LIMIT $6 OFFSET $7`,
		append(args, q.Limit, offset)...)
	if err != nil {
		return nil, usecase.PaginationMeta{}, infra.WrapRepoErr("failed to list coupons", err)
	}
	defer rows.Close()

	items := make([]*coupon.Coupon, 0, q.Limit)
	for rows.Next() {
		c, err := scanCoupon(rows)
		if err != nil {
			return nil, usecase.PaginationMeta{}, infra.WrapRepoErr("failed to scan coupon row", err)
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, usecase.PaginationMeta{}, infra.WrapRepoErr("failed to read coupon rows", err)
	}

	return items, usecase.NewPaginationMeta(q.Page, q.Limit, total), nil
}

func (r *CouponRepository) Update(ctx context.Context, code coupon.Code, patch coupon.Patch) (*coupon.Coupon, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE coupons SET
			type        = COALESCE($2, type),
			value       = COALESCE($3, value),
			one_shot    = COALESCE($4, one_shot),
			valid_from  = COALESCE($5, valid_from),
			valid_until = COALESCE($6, valid_until),
			max_uses    = COALESCE($7, max_uses),
			updated_at  = $8
		 WHERE code = $1 AND deleted_at IS NULL
		 RETURNING `+couponColumns,
		code, patch.Type, patch.Value, patch.OneShot, patch.ValidFrom, patch.ValidUntil, patch.MaxUses, r.clk.Now())

	updated, err := scanCoupon(row)
	if err != nil {
		switch {
		case infra.IsNoRows(err):
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		case infra.IsCheckViolation(err) && infra.ConstraintName(err) == ckCouponsWindow:
			// One-sided window patch inverted the merged window.
			return nil, infra.WrapRepoErr("coupon validity window inverted", err, infra.KindCheckViolated)
		}
		return nil, infra.WrapRepoErr("failed to update coupon", err)
	}
	return updated, nil
}

func (r *CouponRepository) Delete(ctx context.Context, code coupon.Code) error {
	now := r.clk.Now()
	tag, err := r.pool.Exec(ctx,
		`UPDATE coupons SET deleted_at = $2, updated_at = $2
		 WHERE code = $1 AND deleted_at IS NULL`, code, now)
	if err != nil {
		return infra.WrapRepoErr("failed to delete coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr("coupon not found", infra.KindNotFound)
	}
	return nil
}

func (r *CouponRepository) FindValidByCode(ctx context.Context, code coupon.Code) (*coupon.Coupon, error) {
	now := r.clk.Now()
	row := r.pool.QueryRow(ctx,
		`SELECT `+couponColumns+` FROM coupons
		 WHERE code = $1 AND deleted_at IS NULL
		   AND valid_from <= $2 AND valid_until >= $2
		   AND (max_uses IS NULL OR uses_count < max_uses)`,
		code, now)

	c, err := scanCoupon(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no valid coupon for code", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find valid coupon", err)
	}
	return c, nil
}

func (r *CouponRepository) IncrementUses(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE coupons SET uses_count = uses_count + 1, updated_at = $2
		 WHERE id = $1 AND deleted_at IS NULL`, id, r.clk.Now())
	if err != nil {
		return infra.WrapRepoErr("failed to increment coupon uses", err)
	}
	return nil
}

func scanCoupon(row pgx.Row) (*coupon.Coupon, error) {
	var c coupon.Coupon
	err := row.Scan(
		&c.ID,
		&c.Code,
		&c.Type,
		&c.Value,
		&c.OneShot,
		&c.ValidFrom,
		&c.ValidUntil,
		&c.UsesCount,
		&c.MaxUses,
		&c.CreatedAt,
		&c.UpdatedAt,
		&c.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
