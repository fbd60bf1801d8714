package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the payload for recording a transaction.
// The account and category are referenced by ID here; the ledger service
// embeds value snapshots of both into the stored transaction.
type CreateTransactionRequest struct {
	Type        string          `json:"type" validate:"required,oneof=INCOME EXPENSE TRANSFER"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	AccountID   string          `json:"accountID" validate:"required"`
	CategoryID  string          `json:"categoryID" validate:"required"`
	IsRecurring bool            `json:"isRecurring"`
}

// UpdateTransactionRequest defines the payload for re-saving a transaction.
// All fields are replaced; the service takes fresh account and category
// snapshots, so an update is also how stale snapshots get refreshed.
type UpdateTransactionRequest struct {
	TransactionID string          `json:"id" validate:"required"`
	Type          string          `json:"type" validate:"required,oneof=INCOME EXPENSE TRANSFER"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"`
	AccountID     string          `json:"accountID" validate:"required"`
	CategoryID    string          `json:"categoryID" validate:"required"`
	IsRecurring   bool            `json:"isRecurring"`
}
