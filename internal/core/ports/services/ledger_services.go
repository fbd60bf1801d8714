package services

import (
	"context"
	"time"

	"github.com/moneynest/money_tracker_app/internal/core/domain"
	"github.com/moneynest/money_tracker_app/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerSvcFacade defines the ledger store: the durable collection of
// accounts and transactions, and the single writer of account balances.
//
// Transaction mutations here touch only the ledger. Callers that need
// budget spent amounts kept in step go through ReconciliationSvcFacade,
// which wraps these operations.
type LedgerSvcFacade interface {
	// CreateAccount creates a new account with the given initial balance.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// GetAccountByID retrieves an account by ID.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves all accounts.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// UpdateAccount renames an account or changes its emoji. Existing
	// transactions keep the snapshot taken when they were recorded.
	UpdateAccount(ctx context.Context, req dto.UpdateAccountRequest) (*domain.Account, error)

	// DeleteAccount removes an account and cascades: every transaction
	// recorded against it is removed too. No balance reversal is applied
	// since the account itself is gone.
	DeleteAccount(ctx context.Context, accountID string) error

	// TotalBalance sums the balances of all accounts.
	TotalBalance(ctx context.Context) (decimal.Decimal, error)

	// EnsureDefaultAccounts seeds the fixed starter accounts, only when the
	// stored collection is genuinely empty.
	EnsureDefaultAccounts(ctx context.Context) error

	// AddTransaction records a transaction, snapshotting its account and
	// category, and applies its balance effect to the account.
	AddTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction replaces a stored transaction: the old entry's
	// balance effect is reversed, then the new entry's applied. An unknown
	// ID is a silent no-op and returns nil, nil.
	UpdateTransaction(ctx context.Context, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction and reverses its balance
	// effect. An unknown ID is a silent no-op.
	DeleteTransaction(ctx context.Context, transactionID string) error

	// GetTransactionByID retrieves a transaction by ID.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves every recorded transaction.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// TransactionsOnDay filters transactions to one calendar day.
	TransactionsOnDay(ctx context.Context, day time.Time) ([]domain.Transaction, error)

	// TransactionsByAccount filters transactions to one account.
	TransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error)

	// TransactionsByCategory filters transactions to one category snapshot ID.
	TransactionsByCategory(ctx context.Context, categoryID string) ([]domain.Transaction, error)

	// TransactionsInRange filters transactions to the closed range [from, to].
	TransactionsInRange(ctx context.Context, from, to time.Time) ([]domain.Transaction, error)
}
