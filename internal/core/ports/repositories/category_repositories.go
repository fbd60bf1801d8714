package repositories

import (
	"context"

	"github.com/moneynest/money_tracker_app/internal/core/domain"
)

// CategoryReader defines read operations for category data.
type CategoryReader interface {
	// FindCategoryByID retrieves a specific category by its unique identifier.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategories retrieves all categories.
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// CategoryWriter defines write operations for category data.
type CategoryWriter interface {
	// SaveCategory inserts the category, or replaces the stored category
	// with the same ID (identity is preserved across edits).
	SaveCategory(ctx context.Context, category domain.Category) error

	// DeleteCategory removes the category by ID. Transactions keep their
	// category snapshots; there is no cascade.
	DeleteCategory(ctx context.Context, categoryID string) error
}

// CategoryRepositoryFacade combines all category repository interfaces.
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
