package kvjson

import (
	"context"
	"fmt"
	"sync"

	"github.com/moneynest/money_tracker_app/internal/apperrors"
	"github.com/moneynest/money_tracker_app/internal/core/domain"
	portsrepo "github.com/moneynest/money_tracker_app/internal/core/ports/repositories"
)

// KVBudgetRepository keeps the budget collection in memory, persisting it
// through the KVStore port after every mutation.
type KVBudgetRepository struct {
	kv portsrepo.KVStore

	mu      sync.RWMutex
	budgets []domain.Budget
}

// NewKVBudgetRepository loads the stored budget collection. Corrupt or
// missing data yields an empty collection, never an error.
func NewKVBudgetRepository(ctx context.Context, kv portsrepo.KVStore) *KVBudgetRepository {
	return &KVBudgetRepository{
		kv:      kv,
		budgets: loadCollection[domain.Budget](ctx, kv, keyBudgets),
	}
}

// Ensure KVBudgetRepository implements portsrepo.BudgetRepositoryFacade
var _ portsrepo.BudgetRepositoryFacade = (*KVBudgetRepository)(nil)

func (r *KVBudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.budgets {
		if r.budgets[i].BudgetID == budgetID {
			budget := r.budgets[i]
			return &budget, nil
		}
	}
	return nil, fmt.Errorf("budget %s: %w", budgetID, apperrors.ErrNotFound)
}

func (r *KVBudgetRepository) ListBudgets(ctx context.Context) ([]domain.Budget, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Budget, len(r.budgets))
	copy(out, r.budgets)
	return out, nil
}

func (r *KVBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	replaced := false
	for i := range r.budgets {
		if r.budgets[i].BudgetID == budget.BudgetID {
			r.budgets[i] = budget
			replaced = true
			break
		}
	}
	if !replaced {
		r.budgets = append(r.budgets, budget)
	}
	return persistCollection(ctx, r.kv, keyBudgets, r.budgets)
}

func (r *KVBudgetRepository) DeleteBudget(ctx context.Context, budgetID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.budgets {
		if r.budgets[i].BudgetID == budgetID {
			r.budgets = append(r.budgets[:i], r.budgets[i+1:]...)
			return persistCollection(ctx, r.kv, keyBudgets, r.budgets)
		}
	}
	return fmt.Errorf("budget %s: %w", budgetID, apperrors.ErrNotFound)
}
