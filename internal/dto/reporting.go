package dto

import "github.com/shopspring/decimal"

// CategorySpend is one row of a per-category spending breakdown.
// Fields come from the category snapshots embedded in transactions, so
// deleted categories still appear under their recorded name.
type CategorySpend struct {
	CategoryID string          `json:"categoryID"`
	Name       string          `json:"name"`
	Emoji      string          `json:"emoji"`
	Total      decimal.Decimal `json:"total"`
}

// MonthlySummary aggregates one calendar month of ledger activity.
type MonthlySummary struct {
	Month        string          `json:"month"` // e.g. "September 2026"
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Net          decimal.Decimal `json:"net"`
	ByCategory   []CategorySpend `json:"byCategory"`
}
