package services

import (
	"context"

	"github.com/moneynest/money_tracker_app/internal/core/domain"
	"github.com/moneynest/money_tracker_app/internal/dto"
)

// ReconciliationSvcFacade binds ledger mutations to budget spent-amount
// updates. It is the entry point the presentation layer uses for every
// transaction mutation, so budgets can never silently drift from the ledger.
//
// Before any mutation touches a budget, the monthly rollover check runs, so
// spending recorded this month never lands in a budget still labeled for
// last month.
type ReconciliationSvcFacade interface {
	// AddTransaction records a transaction in the ledger and, for expenses,
	// adds the amount to the active budget for its category. A category
	// with no active budget is a valid no-op.
	AddTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction replaces a transaction in the ledger. If the old
	// entry was an expense its amount is reversed from the budget currently
	// active for its category; if the new entry is an expense its amount is
	// applied to the budget currently active for the new category. Both
	// steps run unconditionally; reverse-then-reapply, never a delta.
	UpdateTransaction(ctx context.Context, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction from the ledger and, for
	// expenses, reverses the amount from the active budget for its category.
	DeleteTransaction(ctx context.Context, transactionID string) error

	// DeleteAccount removes an account with its transaction cascade, then
	// resyncs every active budget from the remaining ledger.
	DeleteAccount(ctx context.Context, accountID string) error

	// SyncAllBudgetsWithTransactions recomputes every active budget's spent
	// amount from scratch out of the transaction ledger and overwrites it
	// unconditionally. This is the authoritative repair operation and may
	// be called at any time.
	SyncAllBudgetsWithTransactions(ctx context.Context) error
}
