// Package kvjson implements the repository ports over durable key-value
// storage. Each collection is held in memory and rewritten wholesale as one
// JSON array after every mutation; last writer wins, which is acceptable for
// a strictly single-user, single-process application.
package kvjson

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	portsrepo "github.com/moneynest/money_tracker_app/internal/core/ports/repositories"
	"github.com/moneynest/money_tracker_app/internal/logging"
)

// Storage keys, one per persisted collection.
const (
	keyAccounts     = "accounts"
	keyCategories   = "categories"
	keyTransactions = "transactions"
	keyBudgets      = "budgets"
)

// loadCollection decodes the JSON array stored under key. Missing or corrupt
// data degrades to an empty collection with a warning; the caller never sees
// an error at load time.
func loadCollection[T any](ctx context.Context, kv portsrepo.KVStore, key string) []T {
	logger := logging.FromCtx(ctx)

	raw, found, err := kv.Load(ctx, key)
	if err != nil {
		logger.Warn("Failed to load collection, starting empty",
			slog.String("key", key), slog.String("error", err.Error()))
		return nil
	}
	if !found {
		return nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		logger.Warn("Corrupt collection data, starting empty",
			slog.String("key", key), slog.String("error", err.Error()))
		return nil
	}
	return items
}

// persistCollection rewrites the whole collection under key.
func persistCollection[T any](ctx context.Context, kv portsrepo.KVStore, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := kv.Save(ctx, key, raw); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}
