package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"

	"catalog-service/internal/domain/coupon"
	"catalog-service/internal/domain/discount"
	"catalog-service/internal/domain/product"
	"catalog-service/internal/infra"
	"catalog-service/internal/pkg/clock"
	"catalog-service/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCouponNotUsable   = errors.New("coupon is not valid")
	ErrDiscountConflict  = errors.New("product already has an active coupon")
	ErrNoActiveDiscount  = errors.New("no active coupon found for product")
	ErrPriceBelowMinimum = errors.New("final price must be at least 1 cent")
)

// Bounds for the direct percent-discount endpoint. Coupons created through
// the coupon API are not bound by these.
const (
	MinDirectPercent int64 = 1
	MaxDirectPercent int64 = 80
)

type DiscountRepository interface {
	// Apply validates the coupon and records the application atomically:
	// the coupon row is locked, revalidated, the application inserted and
	// uses_count incremented in one transaction. Error kinds: KindNotFound
	// when no usable coupon matches the code, KindUnprocessable when the
	// coupon exists but is outside its window or exhausted, KindConflict
	// when the product already has an active coupon, KindForeignKeyViolated
	// when the product vanished mid-flight.
	Apply(ctx context.Context, productID uuid.UUID, code coupon.Code) (*discount.Application, error)
	// Remove ends the active application by stamping removed_at; the row
	// stays for audit. KindNotFound means no active application matched.
	Remove(ctx context.Context, productID uuid.UUID, code coupon.Code) (*discount.Application, error)
	// FindActive returns the active application with its coupon, or nil
	// when the product has no discount.
	FindActive(ctx context.Context, productID uuid.UUID) (*discount.ActiveDiscount, error)
}

type DiscountUseCase interface {
	ApplyCoupon(ctx context.Context, productID uuid.UUID, code string) (*ProductDetails, error)
	ApplyPercent(ctx context.Context, productID uuid.UUID, percent int64) (*ProductDetails, error)
	RemoveCoupon(ctx context.Context, productID uuid.UUID, code string) (*ProductDetails, error)
}

type discountUseCaseImpl struct {
	productRepo  ProductRepository
	couponRepo   CouponRepository
	discountRepo DiscountRepository
	clk          clock.Clock
}

func NewDiscountUseCase(
	productRepo ProductRepository,
	couponRepo CouponRepository,
	discountRepo DiscountRepository,
	clk clock.Clock,
) DiscountUseCase {
	return &discountUseCaseImpl{
		productRepo:  productRepo,
		couponRepo:   couponRepo,
		discountRepo: discountRepo,
		clk:          clk,
	}
}

func (u *discountUseCaseImpl) ApplyCoupon(ctx context.Context, productID uuid.UUID, code string) (*ProductDetails, error) {
	normalized, err := coupon.NewCode(code)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	found, err := u.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if _, err := u.discountRepo.Apply(ctx, found.ID, normalized); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrCouponNotFound
		case infra.IsKind(err, infra.KindUnprocessable):
			return nil, ErrCouponNotUsable
		case infra.IsKind(err, infra.KindConflict):
			return nil, ErrDiscountConflict
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, ErrProductNotFound
		}
		return nil, errs.Wrap(err, "failed to apply coupon")
	}

	return u.details(ctx, found)
}

// ApplyPercent applies an ad-hoc percent discount without a pre-existing
// coupon. It is backed by a generated one-shot coupon so the application
// trail stays uniform with coupon-based discounts.
func (u *discountUseCaseImpl) ApplyPercent(ctx context.Context, productID uuid.UUID, percent int64) (*ProductDetails, error) {
	if percent < MinDirectPercent || percent > MaxDirectPercent {
		return nil, errs.Mark(errs.Newf("percent must be between %d and %d", MinDirectPercent, MaxDirectPercent), ErrValidation)
	}

	found, err := u.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	final := found.Price - (found.Price*percent)/100
	if final < discount.MinFinalPrice {
		return nil, ErrPriceBelowMinimum
	}

	created, err := u.createSyntheticCoupon(ctx, percent)
	if err != nil {
		return nil, err
	}

	if _, err := u.discountRepo.Apply(ctx, found.ID, created.Code); err != nil {
		// The minted coupon was never applied; drop it so it does not
		// linger in coupon listings.
		_ = u.couponRepo.Delete(ctx, created.Code)
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrDiscountConflict
		}
		return nil, errs.Wrap(err, "failed to apply percent discount")
	}

	return u.details(ctx, found)
}

// RemoveCoupon ends the product's active discount. An empty code removes
// whichever coupon is active; a non-empty code must match it.
func (u *discountUseCaseImpl) RemoveCoupon(ctx context.Context, productID uuid.UUID, code string) (*ProductDetails, error) {
	var normalized coupon.Code
	if code != "" {
		var err error
		normalized, err = coupon.NewCode(code)
		if err != nil {
			return nil, errs.Mark(err, ErrValidation)
		}
	}

	found, err := u.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if normalized != "" {
		if _, err := u.couponRepo.Find(ctx, normalized); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrCouponNotFound
			}
			return nil, errs.Wrap(err, "failed to find coupon")
		}
	}

	if _, err := u.discountRepo.Remove(ctx, found.ID, normalized); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNoActiveDiscount
		}
		return nil, errs.Wrap(err, "failed to remove coupon")
	}

	return u.details(ctx, found)
}

func (u *discountUseCaseImpl) findProduct(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	found, err := u.productRepo.Find(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, errs.Wrap(err, "failed to find product")
	}
	return found, nil
}

// createSyntheticCoupon mints a single-use coupon for the direct percent
// endpoint. Generated codes can in principle collide with an existing code,
// so creation retries with a fresh code a few times.
func (u *discountUseCaseImpl) createSyntheticCoupon(ctx context.Context, percent int64) (*coupon.Coupon, error) {
	now := u.clk.Now()
	maxUses := int32(1)

	for attempt := 0; attempt < 3; attempt++ {
		code, err := generateCouponCode()
		if err != nil {
			return nil, errs.Wrap(err, "failed to generate coupon code")
		}

		created, err := u.couponRepo.Create(ctx, coupon.NewCoupon{
			Code:       code,
			Type:       coupon.TypePercent,
			Value:      percent,
			OneShot:    true,
			ValidFrom:  now,
			ValidUntil: now.AddDate(1, 0, 0),
			MaxUses:    &maxUses,
		})
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				continue
			}
			return nil, errs.Wrap(err, "failed to create synthetic coupon")
		}
		return created, nil
	}
	return nil, errs.New("failed to create synthetic coupon: code collisions")
}

const (
	codeAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	codeLength   = 12
)

func generateCouponCode() (coupon.Code, error) {
	buf := make([]byte, codeLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeAlphabet))))
		if err != nil {
			return "", err
		}
		buf[i] = codeAlphabet[n.Int64()]
	}
	return coupon.NewCode(string(buf))
}

func (u *discountUseCaseImpl) details(ctx context.Context, p *product.Product) (*ProductDetails, error) {
	return buildProductDetails(ctx, u.discountRepo, p)
}
