package services

import (
	"context"

	"github.com/moneynest/money_tracker_app/internal/core/domain"
	"github.com/moneynest/money_tracker_app/internal/dto"
)

// CategorySvcFacade defines category management. Deleting a category never
// cascades to transactions; they keep the snapshot recorded at creation.
type CategorySvcFacade interface {
	// CreateCategory creates a new category.
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)

	// GetCategoryByID retrieves a category by ID.
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategories retrieves all categories.
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// UpdateCategory edits a category's name, emoji or type in place,
	// preserving its identity.
	UpdateCategory(ctx context.Context, req dto.UpdateCategoryRequest) (*domain.Category, error)

	// DeleteCategory removes a category by ID.
	DeleteCategory(ctx context.Context, categoryID string) error

	// EnsureDefaultCategories seeds the fixed starter categories, only when
	// the stored collection is genuinely empty.
	EnsureDefaultCategories(ctx context.Context) error
}
