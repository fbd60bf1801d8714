package domain

import (
	"github.com/shopspring/decimal"
)

// Account represents a financial account (wallet, bank account, card) that
// transactions are recorded against. This is the primary representation used
// by services.
type Account struct {
	AccountID string          `json:"id"` // Primary Key (UUID)
	Name      string          `json:"name"`
	Emoji     string          `json:"emoji"`
	Balance   decimal.Decimal `json:"balance"`
	AuditFields
}
