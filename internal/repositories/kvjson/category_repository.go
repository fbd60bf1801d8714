package kvjson

import (
	"context"
	"fmt"
	"sync"

	"github.com/moneynest/money_tracker_app/internal/apperrors"
	"github.com/moneynest/money_tracker_app/internal/core/domain"
	portsrepo "github.com/moneynest/money_tracker_app/internal/core/ports/repositories"
)

// KVCategoryRepository keeps the category collection in memory, persisting
// it through the KVStore port after every mutation.
type KVCategoryRepository struct {
	kv portsrepo.KVStore

	mu         sync.RWMutex
	categories []domain.Category
}

// NewKVCategoryRepository loads the stored category collection. Corrupt or
// missing data yields an empty collection, never an error.
func NewKVCategoryRepository(ctx context.Context, kv portsrepo.KVStore) *KVCategoryRepository {
	return &KVCategoryRepository{
		kv:         kv,
		categories: loadCollection[domain.Category](ctx, kv, keyCategories),
	}
}

// Ensure KVCategoryRepository implements portsrepo.CategoryRepositoryFacade
var _ portsrepo.CategoryRepositoryFacade = (*KVCategoryRepository)(nil)

func (r *KVCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.categories {
		if r.categories[i].CategoryID == categoryID {
			category := r.categories[i]
			return &category, nil
		}
	}
	return nil, fmt.Errorf("category %s: %w", categoryID, apperrors.ErrNotFound)
}

func (r *KVCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *KVCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	replaced := false
	for i := range r.categories {
		if r.categories[i].CategoryID == category.CategoryID {
			r.categories[i] = category
			replaced = true
			break
		}
	}
	if !replaced {
		r.categories = append(r.categories, category)
	}
	return persistCollection(ctx, r.kv, keyCategories, r.categories)
}

func (r *KVCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.categories {
		if r.categories[i].CategoryID == categoryID {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return persistCollection(ctx, r.kv, keyCategories, r.categories)
		}
	}
	return fmt.Errorf("category %s: %w", categoryID, apperrors.ErrNotFound)
}
