package repositories

import (
	"context"

	"github.com/moneynest/money_tracker_app/internal/core/domain"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves all accounts.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// SaveAccount inserts the account, or replaces the stored account with
	// the same ID. The ledger service is the single writer of balances.
	SaveAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes the account by ID. Deleting an unknown ID
	// returns apperrors.ErrNotFound.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountRepositoryFacade combines all account repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
