package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneynest/money_tracker_app/internal/apperrors"
	"github.com/moneynest/money_tracker_app/internal/core/domain"
	portsrepo "github.com/moneynest/money_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/moneynest/money_tracker_app/internal/core/ports/services"
	"github.com/moneynest/money_tracker_app/internal/dto"
	"github.com/moneynest/money_tracker_app/internal/logging"
	"github.com/moneynest/money_tracker_app/internal/utils/calendar"
)

// budgetService owns the budget collection: monthly rollover, status
// aggregates and the spent-amount mutation paths used by reconciliation.
//
// SpentAmount is a cached aggregate. This service never recomputes it from
// the ledger on reads; only the reconciliation service moves it.
type budgetService struct {
	budgetRepo  portsrepo.BudgetRepositoryFacade
	categorySvc portssvc.CategorySvcFacade
	now         func() time.Time
}

// BudgetServiceOption customizes a budget service.
type BudgetServiceOption func(*budgetService)

// WithClock replaces the time source, letting tests pin "now".
func WithClock(now func() time.Time) BudgetServiceOption {
	return func(s *budgetService) {
		s.now = now
	}
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(budgetRepo portsrepo.BudgetRepositoryFacade, categorySvc portssvc.CategorySvcFacade, opts ...BudgetServiceOption) portssvc.BudgetSvcFacade {
	s := &budgetService{
		budgetRepo:  budgetRepo,
		categorySvc: categorySvc,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ensure budgetService implements the portssvc.BudgetSvcFacade interface
var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

func (s *budgetService) CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	logger := logging.FromCtx(ctx)

	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if req.BudgetAmount.IsNegative() {
		return nil, fmt.Errorf("%w: budget amount must not be negative", apperrors.ErrValidation)
	}

	category, err := s.categorySvc.GetCategoryByID(ctx, req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve category %s: %w", req.CategoryID, err)
	}

	month := req.Month
	if month.IsZero() {
		month = s.now()
	}
	start, end := calendar.MonthBounds(month)

	// Overlapping active budgets for one category are not structurally
	// prevented; queries resolve the ambiguity by most recent creation.
	if existing, err := s.budgetForCategoryAt(ctx, req.CategoryID, month); err == nil && existing != nil {
		logger.Warn("Creating a second active budget for category",
			slog.String("category_id", req.CategoryID),
			slog.String("existing_budget_id", existing.BudgetID))
	}

	now := s.now().UTC()
	budget := domain.Budget{
		BudgetID:     uuid.NewString(),
		Category:     *category, // value snapshot, not a reference
		BudgetAmount: req.BudgetAmount,
		SpentAmount:  decimal.Zero,
		Description:  req.Description,
		StartDate:    start,
		EndDate:      end,
		IsActive:     true,
		AuditFields:  domain.NewAuditFields(now),
	}

	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		logger.Error("Failed to save budget", slog.String("error", err.Error()), slog.String("budget_id", budget.BudgetID))
		return nil, fmt.Errorf("failed to save budget: %w", err)
	}

	logger.Info("Budget created",
		slog.String("budget_id", budget.BudgetID),
		slog.String("category", budget.Category.Name),
		slog.String("month", budget.MonthYear()))
	return &budget, nil
}

func (s *budgetService) GetBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logging.FromCtx(ctx).Error("Failed to find budget", slog.String("error", err.Error()), slog.String("budget_id", budgetID))
		}
		return nil, err
	}
	return budget, nil
}

// UpdateBudget edits a budget's limit, description or active flag. The
// spent amount and window never change here. An unknown ID is a silent
// no-op and returns nil, nil.
func (s *budgetService) UpdateBudget(ctx context.Context, req dto.UpdateBudgetRequest) (*domain.Budget, error) {
	logger := logging.FromCtx(ctx)

	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	budget, err := s.budgetRepo.FindBudgetByID(ctx, req.BudgetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Debug("Update for unknown budget ignored", slog.String("budget_id", req.BudgetID))
			return nil, nil
		}
		return nil, err
	}

	if req.BudgetAmount != nil {
		if req.BudgetAmount.IsNegative() {
			return nil, fmt.Errorf("%w: budget amount must not be negative", apperrors.ErrValidation)
		}
		budget.BudgetAmount = *req.BudgetAmount
	}
	if req.Description != nil {
		budget.Description = *req.Description
	}
	if req.IsActive != nil {
		budget.IsActive = *req.IsActive
	}
	budget.LastUpdatedAt = s.now().UTC()

	if err := s.budgetRepo.SaveBudget(ctx, *budget); err != nil {
		logger.Error("Failed to update budget", slog.String("error", err.Error()), slog.String("budget_id", budget.BudgetID))
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	logger.Info("Budget updated", slog.String("budget_id", budget.BudgetID))
	return budget, nil
}

// DeleteBudget removes a budget. An unknown ID is a silent no-op.
func (s *budgetService) DeleteBudget(ctx context.Context, budgetID string) error {
	logger := logging.FromCtx(ctx)

	err := s.budgetRepo.DeleteBudget(ctx, budgetID)
	if errors.Is(err, apperrors.ErrNotFound) {
		logger.Debug("Delete for unknown budget ignored", slog.String("budget_id", budgetID))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	logger.Info("Budget deleted", slog.String("budget_id", budgetID))
	return nil
}

func (s *budgetService) ListBudgets(ctx context.Context) ([]domain.Budget, error) {
	budgets, err := s.budgetRepo.ListBudgets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	if budgets == nil {
		budgets = []domain.Budget{}
	}
	return budgets, nil
}

// CheckAndResetMonthlyRollover advances every active budget whose window has
// already passed: spent amount back to zero, window moved to the current
// calendar month. Budgets created for future months are left untouched.
// Running it again within the same month changes nothing.
func (s *budgetService) CheckAndResetMonthlyRollover(ctx context.Context) error {
	logger := logging.FromCtx(ctx)
	now := s.now()

	budgets, err := s.budgetRepo.ListBudgets(ctx)
	if err != nil {
		return fmt.Errorf("failed to list budgets for rollover: %w", err)
	}

	rolled := 0
	for _, budget := range budgets {
		if !budget.IsActive || !budget.NeedsMonthlyReset(now) {
			continue
		}

		start, end := calendar.MonthBounds(now)
		budget.SpentAmount = decimal.Zero
		budget.StartDate = start
		budget.EndDate = end
		budget.LastUpdatedAt = now.UTC()

		if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
			return fmt.Errorf("failed to roll over budget %s: %w", budget.BudgetID, err)
		}
		rolled++
	}

	if rolled > 0 {
		logger.Info("Rolled budgets over to current month",
			slog.Int("count", rolled),
			slog.String("month", now.Format("January 2006")))
	}
	return nil
}

func (s *budgetService) ActiveBudgets(ctx context.Context) ([]domain.Budget, error) {
	if err := s.CheckAndResetMonthlyRollover(ctx); err != nil {
		return nil, err
	}

	budgets, err := s.budgetRepo.ListBudgets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	now := s.now()
	active := []domain.Budget{}
	for _, budget := range budgets {
		if budget.IsActive && budget.Contains(now) {
			active = append(active, budget)
		}
	}
	return active, nil
}

// BudgetForCategory returns the active budget for the category, or
// apperrors.ErrNotFound when there is none. A category without a budget is
// an expected state; callers treat the miss as a no-op, not a fault.
func (s *budgetService) BudgetForCategory(ctx context.Context, categoryID string) (*domain.Budget, error) {
	if err := s.CheckAndResetMonthlyRollover(ctx); err != nil {
		return nil, err
	}

	budget, err := s.budgetForCategoryAt(ctx, categoryID, s.now())
	if err != nil {
		return nil, err
	}
	if budget == nil {
		return nil, fmt.Errorf("active budget for category %s: %w", categoryID, apperrors.ErrNotFound)
	}
	return budget, nil
}

func (s *budgetService) TotalBudgetAmount(ctx context.Context) (decimal.Decimal, error) {
	return s.sumActive(ctx, func(b domain.Budget) decimal.Decimal { return b.BudgetAmount })
}

func (s *budgetService) TotalSpentAmount(ctx context.Context) (decimal.Decimal, error) {
	return s.sumActive(ctx, func(b domain.Budget) decimal.Decimal { return b.SpentAmount })
}

func (s *budgetService) TotalRemainingAmount(ctx context.Context) (decimal.Decimal, error) {
	return s.sumActive(ctx, func(b domain.Budget) decimal.Decimal { return b.RemainingAmount() })
}

// BudgetsNeedingAttention returns active budgets in WARNING or OVER_BUDGET.
func (s *budgetService) BudgetsNeedingAttention(ctx context.Context) ([]domain.Budget, error) {
	active, err := s.ActiveBudgets(ctx)
	if err != nil {
		return nil, err
	}

	attention := []domain.Budget{}
	for _, budget := range active {
		switch budget.Status() {
		case domain.StatusWarning, domain.StatusOverBudget:
			attention = append(attention, budget)
		}
	}
	return attention, nil
}

// AddToSpent adjusts a budget's spent amount by delta, clamping at zero so
// reversal arithmetic can never drive it negative. An unknown ID is a
// silent no-op.
func (s *budgetService) AddToSpent(ctx context.Context, budgetID string, delta decimal.Decimal) error {
	logger := logging.FromCtx(ctx)

	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Debug("Spent adjustment for unknown budget ignored", slog.String("budget_id", budgetID))
			return nil
		}
		return err
	}

	spent := budget.SpentAmount.Add(delta)
	if spent.IsNegative() {
		spent = decimal.Zero
	}
	budget.SpentAmount = spent
	budget.LastUpdatedAt = s.now().UTC()

	if err := s.budgetRepo.SaveBudget(ctx, *budget); err != nil {
		logger.Error("Failed to persist spent adjustment", slog.String("error", err.Error()), slog.String("budget_id", budgetID))
		return fmt.Errorf("failed to persist spent adjustment for budget %s: %w", budgetID, err)
	}
	return nil
}

// SetSpent overwrites a budget's spent amount; used by the full resync.
// An unknown ID is a silent no-op.
func (s *budgetService) SetSpent(ctx context.Context, budgetID string, amount decimal.Decimal) error {
	logger := logging.FromCtx(ctx)

	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Debug("Spent overwrite for unknown budget ignored", slog.String("budget_id", budgetID))
			return nil
		}
		return err
	}

	budget.SpentAmount = amount
	budget.LastUpdatedAt = s.now().UTC()

	if err := s.budgetRepo.SaveBudget(ctx, *budget); err != nil {
		logger.Error("Failed to persist spent overwrite", slog.String("error", err.Error()), slog.String("budget_id", budgetID))
		return fmt.Errorf("failed to persist spent overwrite for budget %s: %w", budgetID, err)
	}
	return nil
}

// budgetForCategoryAt finds the budget active for a category at t without
// running the rollover check. When several overlap, the most recently
// created wins, with the ID as a deterministic tie-break.
func (s *budgetService) budgetForCategoryAt(ctx context.Context, categoryID string, t time.Time) (*domain.Budget, error) {
	budgets, err := s.budgetRepo.ListBudgets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	var match *domain.Budget
	for i := range budgets {
		b := budgets[i]
		if b.Category.CategoryID != categoryID || !b.IsActive || !b.Contains(t) {
			continue
		}
		if match == nil ||
			b.CreatedAt.After(match.CreatedAt) ||
			(b.CreatedAt.Equal(match.CreatedAt) && b.BudgetID > match.BudgetID) {
			match = &b
		}
	}
	return match, nil
}

func (s *budgetService) sumActive(ctx context.Context, field func(domain.Budget) decimal.Decimal) (decimal.Decimal, error) {
	active, err := s.ActiveBudgets(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, budget := range active {
		total = total.Add(field(budget))
	}
	return total, nil
}
