package repositories

import (
	"context"

	"github.com/moneynest/money_tracker_app/internal/core/domain"
)

// BudgetReader defines read operations for budget data.
type BudgetReader interface {
	// FindBudgetByID retrieves a specific budget by its unique identifier.
	FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error)

	// ListBudgets retrieves all budgets, current and historical.
	ListBudgets(ctx context.Context) ([]domain.Budget, error)
}

// BudgetWriter defines write operations for budget data.
type BudgetWriter interface {
	// SaveBudget inserts the budget, or replaces the stored budget with the
	// same ID.
	SaveBudget(ctx context.Context, budget domain.Budget) error

	// DeleteBudget removes the budget by ID. Deleting an unknown ID returns
	// apperrors.ErrNotFound.
	DeleteBudget(ctx context.Context, budgetID string) error
}

// BudgetRepositoryFacade combines all budget repository interfaces.
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}
