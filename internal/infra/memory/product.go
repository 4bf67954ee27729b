package memory

import (
	"context"
	"sort"
	"strings"

	"catalog-service/internal/domain/product"
	"catalog-service/internal/infra"
	"catalog-service/internal/pkg/patch"
	"catalog-service/internal/usecase"

	"github.com/google/uuid"
)

type ProductRepository struct {
	store *Store
}

func NewProductRepository(store *Store) *ProductRepository {
	return &ProductRepository{store: store}
}

func (r *ProductRepository) Find(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok || p.DeletedAt != nil {
		return nil, infra.NewRepoErr("product not found", infra.KindNotFound)
	}
	return cloneProduct(p), nil
}

func (r *ProductRepository) FindAll(ctx context.Context, q usecase.ProductQuery) ([]*product.Product, usecase.PaginationMeta, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*product.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.DeletedAt != nil {
			continue
		}
		if q.Search != "" && !matchesSearch(p, q.Search) {
			continue
		}
		if p.Price < q.MinPrice || p.Price > q.MaxPrice {
			continue
		}
		if q.HasDiscount != nil && *q.HasDiscount != (s.activeApplication(p.ID) != nil) {
			continue
		}
		matched = append(matched, p)
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID.String() < matched[j].ID.String()
	})

	total := int64(len(matched))
	page := paginate(matched, q.Page, q.Limit)

	items := make([]*product.Product, 0, len(page))
	for _, p := range page {
		items = append(items, cloneProduct(p))
	}
	return items, usecase.NewPaginationMeta(q.Page, q.Limit, total), nil
}

func (r *ProductRepository) Create(ctx context.Context, p product.NewProduct) (*product.Product, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.liveProductByName(p.Name) != nil {
		return nil, infra.NewRepoErr("product name already exists", infra.KindDuplicateKey)
	}

	created := &product.Product{
		ID:          uuid.New(),
		Name:        p.Name,
		Description: clonePtr(p.Description),
		Stock:       p.Stock,
		Price:       p.Price,
		CreatedAt:   s.clk.Now(),
	}
	s.products[created.ID] = created
	return cloneProduct(created), nil
}

func (r *ProductRepository) Update(ctx context.Context, id uuid.UUID, pt product.Patch) (*product.Product, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok || p.DeletedAt != nil {
		return nil, infra.NewRepoErr("product not found", infra.KindNotFound)
	}

	if pt.Name != nil {
		if other := s.liveProductByName(*pt.Name); other != nil && other.ID != id {
			return nil, infra.NewRepoErr("product name already exists", infra.KindDuplicateKey)
		}
		p.Name = *pt.Name
	}
	if pt.Description != nil {
		p.Description = clonePtr(pt.Description)
	}
	p.Stock = patch.Coalesce(pt.Stock, p.Stock)
	p.Price = patch.Coalesce(pt.Price, p.Price)
	now := s.clk.Now()
	p.UpdatedAt = &now

	return cloneProduct(p), nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok || p.DeletedAt != nil {
		return infra.NewRepoErr("product not found", infra.KindNotFound)
	}

	now := s.clk.Now()
	p.DeletedAt = &now
	p.UpdatedAt = &now
	return nil
}

func (r *ProductRepository) Restore(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok || p.DeletedAt == nil {
		return nil, infra.NewRepoErr("deleted product not found", infra.KindNotFound)
	}
	if other := s.liveProductByName(p.Name); other != nil {
		return nil, infra.NewRepoErr("product name already exists", infra.KindDuplicateKey)
	}

	now := s.clk.Now()
	p.DeletedAt = nil
	p.UpdatedAt = &now
	return cloneProduct(p), nil
}

func (r *ProductRepository) HasDiscount(ctx context.Context, id uuid.UUID) (bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeApplication(id) != nil, nil
}

// matchesSearch does a case-insensitive substring match against the name or
// the description. Names are stored lowercased already.
func matchesSearch(p *product.Product, search string) bool {
	needle := strings.ToLower(search)
	if strings.Contains(p.Name, needle) {
		return true
	}
	return p.Description != nil && strings.Contains(strings.ToLower(*p.Description), needle)
}

// paginate slices one 1-indexed page out of items. Non-positive pages clamp
// to the first page so a caller bypassing the use-case defaults cannot panic
// the store.
func paginate[T any](items []T, page, limit int32) []T {
	start := int(page-1) * int(limit)
	if start < 0 {
		start = 0
	}
	if start >= len(items) {
		return nil
	}
	end := start + int(limit)
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
