package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	portsrepo "github.com/moneynest/money_tracker_app/internal/core/ports/repositories"
	"github.com/moneynest/money_tracker_app/internal/core/services"
	"github.com/moneynest/money_tracker_app/internal/logging"
	"github.com/moneynest/money_tracker_app/internal/platform/config"
	"github.com/moneynest/money_tracker_app/internal/storage"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := logging.WithLogger(context.Background(), logger)

	var kv portsrepo.KVStore
	switch cfg.DataBackend {
	case config.BackendMemory:
		kv = storage.NewMemoryKVStore()
		logger.Info("Using in-memory storage backend")
	default:
		store, err := storage.NewSQLiteKVStore(cfg.DBPath)
		if err != nil {
			logger.Error("Failed to open storage", slog.String("error", err.Error()), slog.String("path", cfg.DBPath))
			os.Exit(1)
		}
		defer store.Close()
		kv = store
		logger.Info("Storage opened", slog.String("path", cfg.DBPath))
	}

	container := services.NewContainer(ctx, kv)

	// First-run seeding; no-ops when collections already hold data.
	if err := container.Ledger.EnsureDefaultAccounts(ctx); err != nil {
		logger.Error("Failed to seed accounts", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := container.Category.EnsureDefaultCategories(ctx); err != nil {
		logger.Error("Failed to seed categories", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Roll stale budgets into the current month, then repair any drift
	// between cached spent amounts and the actual ledger.
	if err := container.Budget.CheckAndResetMonthlyRollover(ctx); err != nil {
		logger.Error("Failed monthly rollover check", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := container.Reconciliation.SyncAllBudgetsWithTransactions(ctx); err != nil {
		logger.Error("Failed budget resync", slog.String("error", err.Error()))
		os.Exit(1)
	}

	summary, err := container.Reporting.MonthlySummary(ctx, time.Now())
	if err != nil {
		logger.Error("Failed to build monthly summary", slog.String("error", err.Error()))
		os.Exit(1)
	}
	totalBalance, err := container.Ledger.TotalBalance(ctx)
	if err != nil {
		logger.Error("Failed to total balances", slog.String("error", err.Error()))
		os.Exit(1)
	}
	attention, err := container.Budget.BudgetsNeedingAttention(ctx)
	if err != nil {
		logger.Error("Failed to check budget health", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Ledger ready",
		slog.String("month", summary.Month),
		slog.String("total_balance", totalBalance.String()),
		slog.String("income", summary.TotalIncome.String()),
		slog.String("expense", summary.TotalExpense.String()),
		slog.Int("budgets_needing_attention", len(attention)))
}
