package kvjson

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/moneynest/money_tracker_app/internal/apperrors"
	"github.com/moneynest/money_tracker_app/internal/core/domain"
	portsrepo "github.com/moneynest/money_tracker_app/internal/core/ports/repositories"
	"github.com/moneynest/money_tracker_app/internal/utils/calendar"
)

// KVTransactionRepository keeps the transaction ledger in memory, persisting
// it through the KVStore port after every mutation. Query methods are plain
// filters over the collection; no ordering is guaranteed.
type KVTransactionRepository struct {
	kv portsrepo.KVStore

	mu           sync.RWMutex
	transactions []domain.Transaction
}

// NewKVTransactionRepository loads the stored ledger. Corrupt or missing
// data yields an empty collection, never an error.
func NewKVTransactionRepository(ctx context.Context, kv portsrepo.KVStore) *KVTransactionRepository {
	return &KVTransactionRepository{
		kv:           kv,
		transactions: loadCollection[domain.Transaction](ctx, kv, keyTransactions),
	}
}

// Ensure KVTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*KVTransactionRepository)(nil)

func (r *KVTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.transactions {
		if r.transactions[i].TransactionID == transactionID {
			tx := r.transactions[i]
			return &tx, nil
		}
	}
	return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
}

func (r *KVTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Transaction, len(r.transactions))
	copy(out, r.transactions)
	return out, nil
}

func (r *KVTransactionRepository) ListTransactionsByAccountID(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	return r.filter(func(tx domain.Transaction) bool {
		return tx.Account.AccountID == accountID
	}), nil
}

func (r *KVTransactionRepository) ListTransactionsByCategoryID(ctx context.Context, categoryID string) ([]domain.Transaction, error) {
	return r.filter(func(tx domain.Transaction) bool {
		return tx.Category.CategoryID == categoryID
	}), nil
}

func (r *KVTransactionRepository) ListTransactionsOnDay(ctx context.Context, day time.Time) ([]domain.Transaction, error) {
	return r.filter(func(tx domain.Transaction) bool {
		return calendar.SameDay(day, tx.Date)
	}), nil
}

func (r *KVTransactionRepository) ListTransactionsInRange(ctx context.Context, from, to time.Time) ([]domain.Transaction, error) {
	return r.filter(func(tx domain.Transaction) bool {
		return !tx.Date.Before(from) && !tx.Date.After(to)
	}), nil
}

func (r *KVTransactionRepository) SaveTransaction(ctx context.Context, tx domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	replaced := false
	for i := range r.transactions {
		if r.transactions[i].TransactionID == tx.TransactionID {
			r.transactions[i] = tx
			replaced = true
			break
		}
	}
	if !replaced {
		r.transactions = append(r.transactions, tx)
	}
	return persistCollection(ctx, r.kv, keyTransactions, r.transactions)
}

func (r *KVTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.transactions {
		if r.transactions[i].TransactionID == transactionID {
			r.transactions = append(r.transactions[:i], r.transactions[i+1:]...)
			return persistCollection(ctx, r.kv, keyTransactions, r.transactions)
		}
	}
	return fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
}

func (r *KVTransactionRepository) DeleteTransactionsByAccountID(ctx context.Context, accountID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.transactions[:0]
	removed := 0
	for _, tx := range r.transactions {
		if tx.Account.AccountID == accountID {
			removed++
			continue
		}
		kept = append(kept, tx)
	}
	if removed == 0 {
		return 0, nil
	}
	r.transactions = kept
	return removed, persistCollection(ctx, r.kv, keyTransactions, r.transactions)
}

func (r *KVTransactionRepository) filter(keep func(domain.Transaction) bool) []domain.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Transaction
	for _, tx := range r.transactions {
		if keep(tx) {
			out = append(out, tx)
		}
	}
	return out
}
