//go:build unit || integration

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestProduct(t *testing.T, db DBLike, name string, price int64) uuid.UUID {
	t.Helper()

	productID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO products (id, name, description, stock, price) VALUES ($1, $2, $3, $4, $5)",
		productID, name, "fixture product", int32(100), price)
	require.NoError(t, err)

	return productID
}

func CreateTestCoupon(t *testing.T, db DBLike, code, typ string, value int64, validFrom, validUntil time.Time) uuid.UUID {
	t.Helper()

	couponID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO coupons (id, code, type, value, valid_from, valid_until) VALUES ($1, $2, $3, $4, $5, $6)",
		couponID, code, typ, value, validFrom, validUntil)
	require.NoError(t, err)

	return couponID
}

// truncates all catalog tables between tests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx,
		"TRUNCATE product_coupon_applications, coupons, products RESTART IDENTITY CASCADE")
	return err
}
