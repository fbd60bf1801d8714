package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is income, an expense or a
// transfer between accounts. The set is closed; every switch over it is
// exhaustive.
type TransactionType string

const (
	Income   TransactionType = "INCOME"
	Expense  TransactionType = "EXPENSE"
	Transfer TransactionType = "TRANSFER"
)

// Valid reports whether the transaction type is one of the known values.
func (t TransactionType) Valid() bool {
	switch t {
	case Income, Expense, Transfer:
		return true
	}
	return false
}

// BalanceEffect returns the signed effect a transaction of this type has on
// its account's balance. Amounts are always stored positive; direction is
// derived here.
//
// Income adds, expense subtracts. A transfer carries a single account
// reference and no offsetting entry, so it is balance-neutral.
func (t TransactionType) BalanceEffect(amount decimal.Decimal) decimal.Decimal {
	switch t {
	case Income:
		return amount
	case Expense:
		return amount.Neg()
	case Transfer:
		return decimal.Zero
	}
	return decimal.Zero
}

// Transaction represents a single recorded income, expense or transfer.
//
// Account and Category are value copies taken at creation time, not live
// references: renaming an account later does not retroactively rename it on
// old transactions unless the transaction is re-saved with a fresh copy.
type Transaction struct {
	TransactionID string          `json:"id"` // Primary Key (UUID)
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"` // Always positive
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"`
	Account       Account         `json:"account"`  // Snapshot at creation
	Category      Category        `json:"category"` // Snapshot at creation
	IsRecurring   bool            `json:"isRecurring"`
	AuditFields
}
