//go:build unit

package product_test

import (
	"strings"
	"testing"

	"catalog-service/internal/domain/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercases", input: "Gaming Mouse", want: "gaming mouse"},
		{name: "trims edges", input: "  keyboard  ", want: "keyboard"},
		{name: "collapses inner whitespace", input: "usb \t c  hub", want: "usb c hub"},
		{name: "already normalized", input: "webcam", want: "webcam"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, product.NormalizeName(tt.input))
		})
	}
}

func TestNewProductValidate(t *testing.T) {
	desc := "a plain description"
	valid := func() product.NewProduct {
		return product.NewProduct{
			Name:        "gaming mouse",
			Description: &desc,
			Stock:       10,
			Price:       2590,
		}
	}

	t.Run("valid payload passes", func(t *testing.T) {
		p := valid()
		p.Normalize()
		require.NoError(t, p.Validate())
	})

	tests := []struct {
		name    string
		mutate  func(p *product.NewProduct)
		wantErr error
	}{
		{
			name:    "empty name",
			mutate:  func(p *product.NewProduct) { p.Name = "   " },
			wantErr: product.ErrNameRequired,
		},
		{
			name:    "name too long",
			mutate:  func(p *product.NewProduct) { p.Name = strings.Repeat("a", 101) },
			wantErr: product.ErrNameRequired,
		},
		{
			name: "description too long",
			mutate: func(p *product.NewProduct) {
				long := strings.Repeat("d", 301)
				p.Description = &long
			},
			wantErr: product.ErrDescriptionTooLong,
		},
		{
			name:    "negative stock",
			mutate:  func(p *product.NewProduct) { p.Stock = -1 },
			wantErr: product.ErrStockOutOfRange,
		},
		{
			name:    "stock above cap",
			mutate:  func(p *product.NewProduct) { p.Stock = 1000000 },
			wantErr: product.ErrStockOutOfRange,
		},
		{
			name:    "zero price",
			mutate:  func(p *product.NewProduct) { p.Price = 0 },
			wantErr: product.ErrPriceNotPositive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid()
			tt.mutate(&p)
			p.Normalize()
			assert.ErrorIs(t, p.Validate(), tt.wantErr)
		})
	}

	t.Run("boundary values pass", func(t *testing.T) {
		p := valid()
		p.Name = strings.Repeat("n", 100)
		longDesc := strings.Repeat("d", 300)
		p.Description = &longDesc
		p.Stock = 999999
		p.Price = 1
		p.Normalize()
		assert.NoError(t, p.Validate())
	})
}

func TestPatch(t *testing.T) {
	t.Run("empty patch detected", func(t *testing.T) {
		assert.True(t, product.Patch{}.IsEmpty())
	})

	t.Run("normalize applies to name only", func(t *testing.T) {
		name := "  New   Name "
		p := product.Patch{Name: &name}
		p.Normalize()
		assert.Equal(t, "new name", *p.Name)
		assert.False(t, p.IsEmpty())
	})

	t.Run("invalid price rejected", func(t *testing.T) {
		price := int64(0)
		p := product.Patch{Price: &price}
		assert.ErrorIs(t, p.Validate(), product.ErrPriceNotPositive)
	})
}
