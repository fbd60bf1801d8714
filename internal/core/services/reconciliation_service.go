package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/moneynest/money_tracker_app/internal/apperrors"
	"github.com/moneynest/money_tracker_app/internal/core/domain"
	portssvc "github.com/moneynest/money_tracker_app/internal/core/ports/services"
	"github.com/moneynest/money_tracker_app/internal/dto"
	"github.com/moneynest/money_tracker_app/internal/logging"
)

// reconciliationService keeps budget spent amounts consistent with the
// transaction ledger. The ledger and budget stores persist independently;
// every transaction mutation flows through here so the two can never drift.
//
// The rollover check always runs before a mutation touches a budget, so
// spending recorded this month never lands in a budget object still labeled
// for last month. Budget lookups are evaluated fresh at each step, never
// cached from creation time, because budgets may have rolled over since.
//
// Updates reverse the old amount and reapply the new one unconditionally.
// A field diff would do less arithmetic but invites drift on partial edits;
// the symmetric form has no such failure mode.
type reconciliationService struct {
	ledgerSvc portssvc.LedgerSvcFacade
	budgetSvc portssvc.BudgetSvcFacade
}

// NewReconciliationService creates a new ReconciliationService.
func NewReconciliationService(ledgerSvc portssvc.LedgerSvcFacade, budgetSvc portssvc.BudgetSvcFacade) portssvc.ReconciliationSvcFacade {
	return &reconciliationService{
		ledgerSvc: ledgerSvc,
		budgetSvc: budgetSvc,
	}
}

// Ensure reconciliationService implements the portssvc.ReconciliationSvcFacade interface
var _ portssvc.ReconciliationSvcFacade = (*reconciliationService)(nil)

func (s *reconciliationService) AddTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if err := s.budgetSvc.CheckAndResetMonthlyRollover(ctx); err != nil {
		return nil, err
	}

	tx, err := s.ledgerSvc.AddTransaction(ctx, req)
	if err != nil {
		return nil, err
	}

	if tx.Type == domain.Expense {
		if err := s.adjustBudgetSpent(ctx, tx.Category.CategoryID, tx.Amount); err != nil {
			return nil, err
		}
	}
	return tx, nil
}

func (s *reconciliationService) UpdateTransaction(ctx context.Context, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	logger := logging.FromCtx(ctx)

	if err := s.budgetSvc.CheckAndResetMonthlyRollover(ctx); err != nil {
		return nil, err
	}

	// Capture the old entry before the ledger replaces it; its budget
	// effect has to be reversed against whatever budget is active now.
	old, err := s.ledgerSvc.GetTransactionByID(ctx, req.TransactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Debug("Update for unknown transaction ignored", slog.String("transaction_id", req.TransactionID))
			return nil, nil
		}
		return nil, err
	}

	updated, err := s.ledgerSvc.UpdateTransaction(ctx, req)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, nil
	}

	// Both steps run unconditionally, even when category and amount are
	// unchanged: reverse the old expense, then apply the new one.
	if old.Type == domain.Expense {
		if err := s.adjustBudgetSpent(ctx, old.Category.CategoryID, old.Amount.Neg()); err != nil {
			return nil, err
		}
	}
	if updated.Type == domain.Expense {
		if err := s.adjustBudgetSpent(ctx, updated.Category.CategoryID, updated.Amount); err != nil {
			return nil, err
		}
	}
	return updated, nil
}

func (s *reconciliationService) DeleteTransaction(ctx context.Context, transactionID string) error {
	logger := logging.FromCtx(ctx)

	if err := s.budgetSvc.CheckAndResetMonthlyRollover(ctx); err != nil {
		return err
	}

	old, err := s.ledgerSvc.GetTransactionByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Debug("Delete for unknown transaction ignored", slog.String("transaction_id", transactionID))
			return nil
		}
		return err
	}

	if err := s.ledgerSvc.DeleteTransaction(ctx, transactionID); err != nil {
		return err
	}

	if old.Type == domain.Expense {
		return s.adjustBudgetSpent(ctx, old.Category.CategoryID, old.Amount.Neg())
	}
	return nil
}

// DeleteAccount cascades the ledger delete, then resyncs all active budgets
// from the remaining transactions, since the cascade may have removed
// expenses in bulk.
func (s *reconciliationService) DeleteAccount(ctx context.Context, accountID string) error {
	if err := s.ledgerSvc.DeleteAccount(ctx, accountID); err != nil {
		return err
	}
	return s.SyncAllBudgetsWithTransactions(ctx)
}

// SyncAllBudgetsWithTransactions recomputes every active budget's spent
// amount from scratch: the sum of expense transactions matching the
// budget's category inside its window, overwritten unconditionally. This is
// the ground truth the incremental updates must agree with, and the repair
// operation when they don't.
func (s *reconciliationService) SyncAllBudgetsWithTransactions(ctx context.Context) error {
	logger := logging.FromCtx(ctx)

	active, err := s.budgetSvc.ActiveBudgets(ctx)
	if err != nil {
		return err
	}

	for _, budget := range active {
		txs, err := s.ledgerSvc.TransactionsInRange(ctx, budget.StartDate, budget.EndDate)
		if err != nil {
			return fmt.Errorf("failed to load transactions for budget %s: %w", budget.BudgetID, err)
		}

		total := decimal.Zero
		for _, tx := range txs {
			if tx.Type == domain.Expense && tx.Category.CategoryID == budget.Category.CategoryID {
				total = total.Add(tx.Amount)
			}
		}

		if err := s.budgetSvc.SetSpent(ctx, budget.BudgetID, total); err != nil {
			return err
		}
	}

	logger.Info("Synced budgets with transaction ledger", slog.Int("budgets", len(active)))
	return nil
}

// adjustBudgetSpent applies delta to the budget currently active for the
// category. A category with no active budget is a valid state; the
// adjustment just has nowhere to land.
func (s *reconciliationService) adjustBudgetSpent(ctx context.Context, categoryID string, delta decimal.Decimal) error {
	logger := logging.FromCtx(ctx)

	budget, err := s.budgetSvc.BudgetForCategory(ctx, categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Debug("No active budget for category, spending untracked", slog.String("category_id", categoryID))
			return nil
		}
		return err
	}

	return s.budgetSvc.AddToSpent(ctx, budget.BudgetID, delta)
}
