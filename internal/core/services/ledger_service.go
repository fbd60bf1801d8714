package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneynest/money_tracker_app/internal/apperrors"
	"github.com/moneynest/money_tracker_app/internal/core/domain"
	portsrepo "github.com/moneynest/money_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/moneynest/money_tracker_app/internal/core/ports/services"
	"github.com/moneynest/money_tracker_app/internal/dto"
	"github.com/moneynest/money_tracker_app/internal/logging"
)

// ledgerService owns the account and transaction collections and is the
// single writer of account balances. Every transaction mutation applies, or
// reverses, the transaction's signed balance effect on its account.
//
// Updates deliberately reverse the old entry's effect and then apply the new
// entry's effect rather than computing a field diff: the two steps stay
// correct even when type, amount and account all change at once.
type ledgerService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	txRepo      portsrepo.TransactionRepositoryFacade
	categorySvc portssvc.CategorySvcFacade
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(accountRepo portsrepo.AccountRepositoryFacade, txRepo portsrepo.TransactionRepositoryFacade, categorySvc portssvc.CategorySvcFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		accountRepo: accountRepo,
		txRepo:      txRepo,
		categorySvc: categorySvc,
	}
}

// Ensure ledgerService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// --- Accounts ---

func (s *ledgerService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := logging.FromCtx(ctx)

	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		Name:        req.Name,
		Emoji:       req.Emoji,
		Balance:     req.InitialBalance,
		AuditFields: domain.NewAuditFields(now),
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account", slog.String("error", err.Error()), slog.String("account_id", account.AccountID))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID), slog.String("name", account.Name))
	return &account, nil
}

func (s *ledgerService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logging.FromCtx(ctx).Error("Failed to find account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *ledgerService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}
	return accounts, nil
}

// UpdateAccount renames an account or changes its emoji. Recorded
// transactions keep the snapshot taken when they were created; only a
// subsequent re-save embeds the new name. An unknown ID is a silent no-op.
func (s *ledgerService) UpdateAccount(ctx context.Context, req dto.UpdateAccountRequest) (*domain.Account, error) {
	logger := logging.FromCtx(ctx)

	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Debug("Update for unknown account ignored", slog.String("account_id", req.AccountID))
			return nil, nil
		}
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Emoji != nil {
		account.Emoji = *req.Emoji
	}
	account.LastUpdatedAt = time.Now().UTC()

	if err := s.accountRepo.SaveAccount(ctx, *account); err != nil {
		logger.Error("Failed to update account", slog.String("error", err.Error()), slog.String("account_id", account.AccountID))
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	logger.Info("Account updated", slog.String("account_id", account.AccountID))
	return account, nil
}

// DeleteAccount removes an account and every transaction recorded against
// it. No balance reversal is applied; the account is gone with its history.
// An unknown ID is a silent no-op.
func (s *ledgerService) DeleteAccount(ctx context.Context, accountID string) error {
	logger := logging.FromCtx(ctx)

	removed, err := s.txRepo.DeleteTransactionsByAccountID(ctx, accountID)
	if err != nil {
		logger.Error("Failed to cascade-delete transactions", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return fmt.Errorf("failed to delete transactions for account %s: %w", accountID, err)
	}

	err = s.accountRepo.DeleteAccount(ctx, accountID)
	if errors.Is(err, apperrors.ErrNotFound) {
		logger.Debug("Delete for unknown account ignored", slog.String("account_id", accountID))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to delete account %s: %w", accountID, err)
	}

	logger.Info("Account deleted", slog.String("account_id", accountID), slog.Int("transactions_removed", removed))
	return nil
}

func (s *ledgerService) TotalBalance(ctx context.Context) (decimal.Decimal, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list accounts: %w", err)
	}

	total := decimal.Zero
	for _, account := range accounts {
		total = total.Add(account.Balance)
	}
	return total, nil
}

// EnsureDefaultAccounts seeds the starter accounts when the stored
// collection is genuinely empty. Idempotent.
func (s *ledgerService) EnsureDefaultAccounts(ctx context.Context) error {
	logger := logging.FromCtx(ctx)

	existing, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing accounts: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now().UTC()
	for _, seed := range defaultAccounts {
		account := domain.Account{
			AccountID:   uuid.NewString(),
			Name:        seed.name,
			Emoji:       seed.emoji,
			Balance:     decimal.Zero,
			AuditFields: domain.NewAuditFields(now),
		}
		if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
			return fmt.Errorf("failed to seed account %q: %w", seed.name, err)
		}
	}

	logger.Info("Seeded default accounts", slog.Int("count", len(defaultAccounts)))
	return nil
}

// --- Transactions ---

func (s *ledgerService) AddTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	logger := logging.FromCtx(ctx)

	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: transaction amount must be positive", apperrors.ErrValidation)
	}

	account, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve account %s: %w", req.AccountID, err)
	}
	category, err := s.categorySvc.GetCategoryByID(ctx, req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve category %s: %w", req.CategoryID, err)
	}

	now := time.Now().UTC()
	date := req.Date
	if date.IsZero() {
		date = now
	}

	tx := domain.Transaction{
		TransactionID: uuid.NewString(),
		Type:          domain.TransactionType(req.Type),
		Amount:        req.Amount,
		Description:   req.Description,
		Date:          date,
		Account:       *account, // value snapshot, not a reference
		Category:      *category,
		IsRecurring:   req.IsRecurring,
		AuditFields:   domain.NewAuditFields(now),
	}

	if err := s.txRepo.SaveTransaction(ctx, tx); err != nil {
		logger.Error("Failed to save transaction", slog.String("error", err.Error()), slog.String("transaction_id", tx.TransactionID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	if err := s.applyAccountEffect(ctx, tx.Account.AccountID, tx.Type.BalanceEffect(tx.Amount)); err != nil {
		return nil, err
	}

	logger.Info("Transaction recorded",
		slog.String("transaction_id", tx.TransactionID),
		slog.String("type", string(tx.Type)),
		slog.String("amount", tx.Amount.String()),
		slog.String("account_id", tx.Account.AccountID))
	return &tx, nil
}

// UpdateTransaction replaces a stored transaction. The old entry's balance
// effect is reversed first, then the new entry's applied, so the account
// ends up right even when type, amount and account all changed. New account
// and category snapshots are taken. An unknown ID is a silent no-op and
// returns nil, nil.
func (s *ledgerService) UpdateTransaction(ctx context.Context, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	logger := logging.FromCtx(ctx)

	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: transaction amount must be positive", apperrors.ErrValidation)
	}

	old, err := s.txRepo.FindTransactionByID(ctx, req.TransactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Debug("Update for unknown transaction ignored", slog.String("transaction_id", req.TransactionID))
			return nil, nil
		}
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve account %s: %w", req.AccountID, err)
	}
	category, err := s.categorySvc.GetCategoryByID(ctx, req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve category %s: %w", req.CategoryID, err)
	}

	// Reverse the old entry's effect before anything else.
	if err := s.applyAccountEffect(ctx, old.Account.AccountID, old.Type.BalanceEffect(old.Amount).Neg()); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	date := req.Date
	if date.IsZero() {
		date = old.Date
	}

	updated := domain.Transaction{
		TransactionID: old.TransactionID,
		Type:          domain.TransactionType(req.Type),
		Amount:        req.Amount,
		Description:   req.Description,
		Date:          date,
		Account:       *account, // fresh snapshots on re-save
		Category:      *category,
		IsRecurring:   req.IsRecurring,
		AuditFields: domain.AuditFields{
			CreatedAt:     old.CreatedAt,
			LastUpdatedAt: now,
		},
	}

	if err := s.txRepo.SaveTransaction(ctx, updated); err != nil {
		logger.Error("Failed to replace transaction", slog.String("error", err.Error()), slog.String("transaction_id", updated.TransactionID))
		return nil, fmt.Errorf("failed to replace transaction: %w", err)
	}

	if err := s.applyAccountEffect(ctx, updated.Account.AccountID, updated.Type.BalanceEffect(updated.Amount)); err != nil {
		return nil, err
	}

	logger.Info("Transaction updated", slog.String("transaction_id", updated.TransactionID))
	return &updated, nil
}

// DeleteTransaction removes a transaction and reverses its balance effect.
// An unknown ID is a silent no-op.
func (s *ledgerService) DeleteTransaction(ctx context.Context, transactionID string) error {
	logger := logging.FromCtx(ctx)

	tx, err := s.txRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Debug("Delete for unknown transaction ignored", slog.String("transaction_id", transactionID))
			return nil
		}
		return err
	}

	if err := s.txRepo.DeleteTransaction(ctx, transactionID); err != nil {
		logger.Error("Failed to delete transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	if err := s.applyAccountEffect(ctx, tx.Account.AccountID, tx.Type.BalanceEffect(tx.Amount).Neg()); err != nil {
		return err
	}

	logger.Info("Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

func (s *ledgerService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	tx, err := s.txRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logging.FromCtx(ctx).Error("Failed to find transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return tx, nil
}

func (s *ledgerService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	txs, err := s.txRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txs == nil {
		txs = []domain.Transaction{}
	}
	return txs, nil
}

func (s *ledgerService) TransactionsOnDay(ctx context.Context, day time.Time) ([]domain.Transaction, error) {
	return s.txRepo.ListTransactionsOnDay(ctx, day)
}

func (s *ledgerService) TransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	return s.txRepo.ListTransactionsByAccountID(ctx, accountID)
}

func (s *ledgerService) TransactionsByCategory(ctx context.Context, categoryID string) ([]domain.Transaction, error) {
	return s.txRepo.ListTransactionsByCategoryID(ctx, categoryID)
}

func (s *ledgerService) TransactionsInRange(ctx context.Context, from, to time.Time) ([]domain.Transaction, error) {
	return s.txRepo.ListTransactionsInRange(ctx, from, to)
}

// applyAccountEffect adds delta to the live account's balance. A zero delta
// is skipped; an account that no longer exists absorbs the effect silently,
// since there is no balance left to correct.
func (s *ledgerService) applyAccountEffect(ctx context.Context, accountID string, delta decimal.Decimal) error {
	if delta.IsZero() {
		return nil
	}

	logger := logging.FromCtx(ctx)
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Debug("Balance effect on missing account ignored", slog.String("account_id", accountID))
			return nil
		}
		return err
	}

	account.Balance = account.Balance.Add(delta)
	account.LastUpdatedAt = time.Now().UTC()

	if err := s.accountRepo.SaveAccount(ctx, *account); err != nil {
		logger.Error("Failed to persist balance change", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return fmt.Errorf("failed to persist balance change for account %s: %w", accountID, err)
	}
	return nil
}
