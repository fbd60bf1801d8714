package repositories

import (
	"context"
	"time"

	"github.com/moneynest/money_tracker_app/internal/core/domain"
)

// TransactionReader defines read operations over the transaction ledger.
// All queries are filters over the full collection; callers sort as needed.
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves every recorded transaction.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// ListTransactionsByAccountID retrieves all transactions recorded against an account.
	ListTransactionsByAccountID(ctx context.Context, accountID string) ([]domain.Transaction, error)

	// ListTransactionsByCategoryID retrieves all transactions whose category snapshot matches the ID.
	ListTransactionsByCategoryID(ctx context.Context, categoryID string) ([]domain.Transaction, error)

	// ListTransactionsOnDay retrieves transactions dated on the same calendar day as day,
	// evaluated in day's location.
	ListTransactionsOnDay(ctx context.Context, day time.Time) ([]domain.Transaction, error)

	// ListTransactionsInRange retrieves transactions dated within [from, to], inclusive.
	ListTransactionsInRange(ctx context.Context, from, to time.Time) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations over the transaction ledger.
type TransactionWriter interface {
	// SaveTransaction inserts the transaction, or replaces the stored
	// transaction with the same ID.
	SaveTransaction(ctx context.Context, tx domain.Transaction) error

	// DeleteTransaction removes the transaction by ID. Deleting an unknown
	// ID returns apperrors.ErrNotFound.
	DeleteTransaction(ctx context.Context, transactionID string) error

	// DeleteTransactionsByAccountID removes every transaction recorded
	// against the account and returns how many were removed.
	DeleteTransactionsByAccountID(ctx context.Context, accountID string) (int, error)
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
