package coupon

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotYetValid   = errors.New("coupon is not yet valid")
	ErrExpired       = errors.New("coupon has expired")
	ErrExhausted     = errors.New("coupon has reached its usage limit")
	ErrInvalidWindow = errors.New("valid_from must not be after valid_until")
)

type Coupon struct {
	ID         uuid.UUID
	Code       Code
	Type       Type
	Value      int64
	OneShot    bool
	ValidFrom  time.Time
	ValidUntil time.Time
	UsesCount  int32
	MaxUses    *int32
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	DeletedAt  *time.Time
}

func (c *Coupon) IsDeleted() bool {
	return c.DeletedAt != nil
}

// IsActiveAt reports whether t falls within the validity window (inclusive).
func (c *Coupon) IsActiveAt(t time.Time) bool {
	return !t.Before(c.ValidFrom) && !t.After(c.ValidUntil)
}

func (c *Coupon) IsExhausted() bool {
	return c.MaxUses != nil && c.UsesCount >= *c.MaxUses
}

// ValidateUsage is the single check for "can this coupon be applied now".
func (c *Coupon) ValidateUsage(t time.Time) error {
	if t.Before(c.ValidFrom) {
		return ErrNotYetValid
	}
	if t.After(c.ValidUntil) {
		return ErrExpired
	}
	if c.IsExhausted() {
		return ErrExhausted
	}
	return nil
}

// NewCoupon is the validated creation payload.
type NewCoupon struct {
	Code       Code
	Type       Type
	Value      int64
	OneShot    bool
	ValidFrom  time.Time
	ValidUntil time.Time
	MaxUses    *int32
}

func (c NewCoupon) Validate() error {
	if _, err := NewCode(c.Code.String()); err != nil {
		return err
	}
	if _, err := ParseType(string(c.Type)); err != nil {
		return err
	}
	if err := ValidateValue(c.Value); err != nil {
		return err
	}
	if c.ValidFrom.After(c.ValidUntil) {
		return ErrInvalidWindow
	}
	if c.MaxUses != nil && *c.MaxUses < 1 {
		return ErrInvalidValue
	}
	return nil
}

// Patch carries only the fields present in a partial update. The code itself
// is immutable; coupons are addressed by code.
type Patch struct {
	Type       *Type
	Value      *int64
	OneShot    *bool
	ValidFrom  *time.Time
	ValidUntil *time.Time
	MaxUses    *int32
}

func (p Patch) Validate() error {
	if p.Type != nil {
		if _, err := ParseType(string(*p.Type)); err != nil {
			return err
		}
	}
	if p.Value != nil {
		if err := ValidateValue(*p.Value); err != nil {
			return err
		}
	}
	if p.ValidFrom != nil && p.ValidUntil != nil && p.ValidFrom.After(*p.ValidUntil) {
		return ErrInvalidWindow
	}
	if p.MaxUses != nil && *p.MaxUses < 1 {
		return ErrInvalidValue
	}
	return nil
}

func (p Patch) IsEmpty() bool {
	return p.Type == nil && p.Value == nil && p.OneShot == nil &&
		p.ValidFrom == nil && p.ValidUntil == nil && p.MaxUses == nil
}
