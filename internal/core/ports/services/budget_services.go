package services

import (
	"context"

	"github.com/moneynest/money_tracker_app/internal/core/domain"
	"github.com/moneynest/money_tracker_app/internal/dto"
	"github.com/shopspring/decimal"
)

// BudgetSvcFacade defines the budget store: monthly budget CRUD, rollover,
// status aggregates, and the spent-amount mutation paths reserved for the
// reconciliation service.
type BudgetSvcFacade interface {
	// CreateBudget creates a budget covering one calendar month for a
	// category, with a zero spent amount.
	CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (*domain.Budget, error)

	// GetBudgetByID retrieves a budget by ID.
	GetBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error)

	// UpdateBudget edits a budget's limit, description or active flag.
	UpdateBudget(ctx context.Context, req dto.UpdateBudgetRequest) (*domain.Budget, error)

	// DeleteBudget removes a budget by ID.
	DeleteBudget(ctx context.Context, budgetID string) error

	// ListBudgets retrieves all budgets, current and historical.
	ListBudgets(ctx context.Context) ([]domain.Budget, error)

	// CheckAndResetMonthlyRollover advances every active budget whose
	// window has passed to the current calendar month, resetting its spent
	// amount to zero. Future windows are left alone. Idempotent within a
	// month.
	CheckAndResetMonthlyRollover(ctx context.Context) error

	// ActiveBudgets runs the rollover check, then returns budgets that are
	// flagged active and whose window contains the current moment.
	ActiveBudgets(ctx context.Context) ([]domain.Budget, error)

	// BudgetForCategory runs the rollover check, then returns the active
	// budget for the category, or apperrors.ErrNotFound if there is none.
	// Having no budget for a category is an expected state, not a fault.
	BudgetForCategory(ctx context.Context, categoryID string) (*domain.Budget, error)

	// TotalBudgetAmount sums the limits of all active budgets.
	TotalBudgetAmount(ctx context.Context) (decimal.Decimal, error)

	// TotalSpentAmount sums the spent amounts of all active budgets.
	TotalSpentAmount(ctx context.Context) (decimal.Decimal, error)

	// TotalRemainingAmount sums the remaining amounts of all active budgets.
	TotalRemainingAmount(ctx context.Context) (decimal.Decimal, error)

	// BudgetsNeedingAttention returns active budgets whose status is
	// WARNING or OVER_BUDGET.
	BudgetsNeedingAttention(ctx context.Context) ([]domain.Budget, error)

	// AddToSpent adjusts a budget's spent amount by delta, clamping the
	// result at zero. Reserved for the reconciliation service.
	AddToSpent(ctx context.Context, budgetID string, delta decimal.Decimal) error

	// SetSpent overwrites a budget's spent amount. Reserved for the
	// reconciliation service's full resync.
	SetSpent(ctx context.Context, budgetID string, amount decimal.Decimal) error
}
