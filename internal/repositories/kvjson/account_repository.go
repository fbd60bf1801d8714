package kvjson

import (
	"context"
	"fmt"
	"sync"

	"github.com/moneynest/money_tracker_app/internal/apperrors"
	"github.com/moneynest/money_tracker_app/internal/core/domain"
	portsrepo "github.com/moneynest/money_tracker_app/internal/core/ports/repositories"
)

// KVAccountRepository keeps the account collection in memory, persisting it
// through the KVStore port after every mutation.
type KVAccountRepository struct {
	kv portsrepo.KVStore

	mu       sync.RWMutex
	accounts []domain.Account
}

// NewKVAccountRepository loads the stored account collection. Corrupt or
// missing data yields an empty collection, never an error.
func NewKVAccountRepository(ctx context.Context, kv portsrepo.KVStore) *KVAccountRepository {
	return &KVAccountRepository{
		kv:       kv,
		accounts: loadCollection[domain.Account](ctx, kv, keyAccounts),
	}
}

// Ensure KVAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*KVAccountRepository)(nil)

func (r *KVAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.accounts {
		if r.accounts[i].AccountID == accountID {
			account := r.accounts[i]
			return &account, nil
		}
	}
	return nil, fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
}

func (r *KVAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Account, len(r.accounts))
	copy(out, r.accounts)
	return out, nil
}

func (r *KVAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	replaced := false
	for i := range r.accounts {
		if r.accounts[i].AccountID == account.AccountID {
			r.accounts[i] = account
			replaced = true
			break
		}
	}
	if !replaced {
		r.accounts = append(r.accounts, account)
	}
	return persistCollection(ctx, r.kv, keyAccounts, r.accounts)
}

func (r *KVAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.accounts {
		if r.accounts[i].AccountID == accountID {
			r.accounts = append(r.accounts[:i], r.accounts[i+1:]...)
			return persistCollection(ctx, r.kv, keyAccounts, r.accounts)
		}
	}
	return fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
}
