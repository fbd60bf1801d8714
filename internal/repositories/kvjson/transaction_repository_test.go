package kvjson_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneynest/money_tracker_app/internal/apperrors"
	"github.com/moneynest/money_tracker_app/internal/core/domain"
	"github.com/moneynest/money_tracker_app/internal/repositories/kvjson"
	"github.com/moneynest/money_tracker_app/internal/storage"
)

func makeTransaction(accountID, categoryID string, amount int64, date time.Time) domain.Transaction {
	now := time.Now().UTC()
	return domain.Transaction{
		TransactionID: uuid.NewString(),
		Type:          domain.Expense,
		Amount:        decimal.NewFromInt(amount),
		Date:          date,
		Account:       domain.Account{AccountID: accountID, Name: "Checking"},
		Category:      domain.Category{CategoryID: categoryID, Name: "Food", Type: domain.CategoryExpense},
		AuditFields:   domain.NewAuditFields(now),
	}
}

func TestTransactionRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	repo := kvjson.NewKVTransactionRepository(ctx, storage.NewMemoryKVStore())

	tx := makeTransaction("acc-1", "cat-1", 25, time.Now().UTC())
	require.NoError(t, repo.SaveTransaction(ctx, tx))

	found, err := repo.FindTransactionByID(ctx, tx.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, tx.TransactionID, found.TransactionID)
	assert.True(t, found.Amount.Equal(tx.Amount))

	_, err = repo.FindTransactionByID(ctx, "nope")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTransactionRepository_SaveReplacesExisting(t *testing.T) {
	ctx := context.Background()
	repo := kvjson.NewKVTransactionRepository(ctx, storage.NewMemoryKVStore())

	tx := makeTransaction("acc-1", "cat-1", 25, time.Now().UTC())
	require.NoError(t, repo.SaveTransaction(ctx, tx))

	tx.Amount = decimal.NewFromInt(40)
	require.NoError(t, repo.SaveTransaction(ctx, tx))

	all, err := repo.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].Amount.Equal(decimal.NewFromInt(40)))
}

func TestTransactionRepository_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKVStore()

	repo := kvjson.NewKVTransactionRepository(ctx, kv)
	tx := makeTransaction("acc-1", "cat-1", 25, time.Now().UTC())
	require.NoError(t, repo.SaveTransaction(ctx, tx))

	reloaded := kvjson.NewKVTransactionRepository(ctx, kv)
	found, err := reloaded.FindTransactionByID(ctx, tx.TransactionID)
	require.NoError(t, err)
	assert.True(t, found.Amount.Equal(tx.Amount))
	assert.Equal(t, "Food", found.Category.Name)
}

func TestTransactionRepository_CorruptDataStartsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKVStore()
	require.NoError(t, kv.Save(ctx, "transactions", []byte("{{{ not json")))

	repo := kvjson.NewKVTransactionRepository(ctx, kv)

	all, err := repo.ListTransactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	// The collection is usable again after the first write.
	tx := makeTransaction("acc-1", "cat-1", 10, time.Now().UTC())
	require.NoError(t, repo.SaveTransaction(ctx, tx))

	reloaded := kvjson.NewKVTransactionRepository(ctx, kv)
	all, err = reloaded.ListTransactions(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestTransactionRepository_DeleteTransaction(t *testing.T) {
	ctx := context.Background()
	repo := kvjson.NewKVTransactionRepository(ctx, storage.NewMemoryKVStore())

	tx := makeTransaction("acc-1", "cat-1", 25, time.Now().UTC())
	require.NoError(t, repo.SaveTransaction(ctx, tx))

	require.NoError(t, repo.DeleteTransaction(ctx, tx.TransactionID))
	assert.ErrorIs(t, repo.DeleteTransaction(ctx, tx.TransactionID), apperrors.ErrNotFound)
}

func TestTransactionRepository_DeleteByAccountID(t *testing.T) {
	ctx := context.Background()
	repo := kvjson.NewKVTransactionRepository(ctx, storage.NewMemoryKVStore())

	now := time.Now().UTC()
	require.NoError(t, repo.SaveTransaction(ctx, makeTransaction("acc-1", "cat-1", 10, now)))
	require.NoError(t, repo.SaveTransaction(ctx, makeTransaction("acc-1", "cat-2", 20, now)))
	require.NoError(t, repo.SaveTransaction(ctx, makeTransaction("acc-2", "cat-1", 30, now)))

	removed, err := repo.DeleteTransactionsByAccountID(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	remaining, err := repo.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "acc-2", remaining[0].Account.AccountID)

	removed, err = repo.DeleteTransactionsByAccountID(ctx, "acc-1")
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestTransactionRepository_Queries(t *testing.T) {
	ctx := context.Background()
	repo := kvjson.NewKVTransactionRepository(ctx, storage.NewMemoryKVStore())

	day := time.Date(2026, time.April, 10, 15, 0, 0, 0, time.UTC)
	require.NoError(t, repo.SaveTransaction(ctx, makeTransaction("acc-1", "cat-1", 10, day)))
	require.NoError(t, repo.SaveTransaction(ctx, makeTransaction("acc-2", "cat-1", 20, day.AddDate(0, 0, 1))))
	require.NoError(t, repo.SaveTransaction(ctx, makeTransaction("acc-1", "cat-2", 30, day.AddDate(0, 0, 5))))

	byAccount, err := repo.ListTransactionsByAccountID(ctx, "acc-1")
	require.NoError(t, err)
	assert.Len(t, byAccount, 2)

	byCategory, err := repo.ListTransactionsByCategoryID(ctx, "cat-1")
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)

	onDay, err := repo.ListTransactionsOnDay(ctx, day)
	require.NoError(t, err)
	assert.Len(t, onDay, 1)

	inRange, err := repo.ListTransactionsInRange(ctx, day, day.AddDate(0, 0, 2))
	require.NoError(t, err)
	assert.Len(t, inRange, 2)
}
