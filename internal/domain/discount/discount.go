package discount

import (
	"time"

	"catalog-service/internal/domain/coupon"

	"github.com/google/uuid"
)

// MinFinalPrice keeps a discounted price from reaching zero; a product is
// never given away.
const MinFinalPrice = 1

// Application is one row of the product/coupon application relation. Rows
// are never physically deleted; removal sets RemovedAt (audit trail).
type Application struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	CouponID  uuid.UUID
	AppliedAt time.Time
	RemovedAt *time.Time
}

func (a *Application) IsActive() bool {
	return a.RemovedAt == nil
}

// ActiveDiscount pairs an active application with its coupon.
type ActiveDiscount struct {
	Application Application
	Coupon      coupon.Coupon
}

// FinalPrice derives the effective price of a product from its base price and
// the applied coupon. Percent values are whole percents out of 100. The
// result is never cached on the product; it is recomputed on every read.
func FinalPrice(price int64, typ coupon.Type, value int64) int64 {
	var final int64
	switch typ {
	case coupon.TypePercent:
		final = price - (price*value)/100
	case coupon.TypeFixed:
		final = price - value
	default:
		return price
	}
	if final < MinFinalPrice {
		return MinFinalPrice
	}
	return final
}
