//go:build unit

package memory_test

import (
	"context"
	"math"
	"testing"
	"time"

	"catalog-service/internal/domain/product"
	"catalog-service/internal/infra/memory"
	"catalog-service/internal/pkg/clock"
	"catalog-service/internal/usecase"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// Rows handed out by the store are copies; mutating them must never leak
// back into the store.
func TestStoreCloneOnRead(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC))
	repo := memory.NewProductRepository(memory.NewStore(clk))

	desc := "original description"
	created, err := repo.Create(ctx, product.NewProduct{
		Name:        "immutable product",
		Description: &desc,
		Stock:       10,
		Price:       500,
	})
	require.NoError(t, err)

	created.Name = "mutated"
	*created.Description = "mutated description"
	created.Price = 1

	stored, err := repo.Find(ctx, created.ID)
	require.NoError(t, err)

	want := &product.Product{
		ID:          created.ID,
		Name:        "immutable product",
		Description: &desc,
		Stock:       10,
		Price:       500,
		CreatedAt:   clk.Now(),
	}
	if diff := cmp.Diff(want, stored); diff != "" {
		t.Errorf("stored product mutated through a returned copy (-want +got):\n%s", diff)
	}
}

// A caller bypassing the use-case paging defaults must not be able to panic
// the store with a non-positive page.
func TestFindAllClampsNonPositivePage(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC))
	repo := memory.NewProductRepository(memory.NewStore(clk))

	_, err := repo.Create(ctx, product.NewProduct{Name: "lone product", Stock: 1, Price: 100})
	require.NoError(t, err)

	items, meta, err := repo.FindAll(ctx, usecase.ProductQuery{Page: 0, Limit: 10, MaxPrice: math.MaxInt64})
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, int64(1), meta.TotalItems)
}
