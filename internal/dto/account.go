package dto

import "github.com/shopspring/decimal"

// CreateAccountRequest defines the payload for creating a new account.
type CreateAccountRequest struct {
	Name           string          `json:"name" validate:"required,max=100"`
	Emoji          string          `json:"emoji"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
}

// UpdateAccountRequest defines the payload for renaming an account.
// Balance is never set directly; it only moves through transactions.
type UpdateAccountRequest struct {
	AccountID string  `json:"id" validate:"required"`
	Name      *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Emoji     *string `json:"emoji,omitempty"`
}
