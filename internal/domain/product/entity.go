package product

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNameRequired       = errors.New("product name must be between 1 and 100 characters")
	ErrDescriptionTooLong = errors.New("product description cannot exceed 300 characters")
	ErrStockOutOfRange    = errors.New("product stock must be between 0 and 999999")
	ErrPriceNotPositive   = errors.New("product price must be a positive amount")
)

const (
	maxNameLen        = 100
	maxDescriptionLen = 300
	maxStock          = 999999
)

type Product struct {
	ID          uuid.UUID
	Name        string
	Description *string
	Stock       int32
	Price       int64
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
}

func (p *Product) IsDeleted() bool {
	return p.DeletedAt != nil
}

func (p *Product) IsOutOfStock() bool {
	return p.Stock == 0
}

// NormalizeName trims, lowercases and collapses inner whitespace. Name
// uniqueness is always checked against the normalized form.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// NewProduct is the validated creation payload.
type NewProduct struct {
	Name        string
	Description *string
	Stock       int32
	Price       int64
}

func (p *NewProduct) Normalize() {
	p.Name = NormalizeName(p.Name)
}

func (p NewProduct) Validate() error {
	if l := len(p.Name); l < 1 || l > maxNameLen {
		return ErrNameRequired
	}
	if p.Description != nil && len(*p.Description) > maxDescriptionLen {
		return ErrDescriptionTooLong
	}
	if p.Stock < 0 || p.Stock > maxStock {
		return ErrStockOutOfRange
	}
	if p.Price < 1 {
		return ErrPriceNotPositive
	}
	return nil
}

// Patch carries only the fields present in a partial update; nil means
// "leave untouched".
type Patch struct {
	Name        *string
	Description *string
	Stock       *int32
	Price       *int64
}

func (p *Patch) Normalize() {
	if p.Name != nil {
		normalized := NormalizeName(*p.Name)
		p.Name = &normalized
	}
}

func (p Patch) Validate() error {
	if p.Name != nil {
		if l := len(*p.Name); l < 1 || l > maxNameLen {
			return ErrNameRequired
		}
	}
	if p.Description != nil && len(*p.Description) > maxDescriptionLen {
		return ErrDescriptionTooLong
	}
	if p.Stock != nil && (*p.Stock < 0 || *p.Stock > maxStock) {
		return ErrStockOutOfRange
	}
	if p.Price != nil && *p.Price < 1 {
		return ErrPriceNotPositive
	}
	return nil
}

func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Stock == nil && p.Price == nil
}
