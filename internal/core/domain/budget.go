package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetStatus classifies how a budget is tracking against its limit.
type BudgetStatus string

const (
	StatusSafe       BudgetStatus = "SAFE"
	StatusOnTrack    BudgetStatus = "ON_TRACK"
	StatusWarning    BudgetStatus = "WARNING"
	StatusOverBudget BudgetStatus = "OVER_BUDGET"
)

var (
	warningThreshold = decimal.NewFromFloat(0.80)
	onTrackThreshold = decimal.NewFromFloat(0.50)
)

// Budget caps spending for one category over one calendar month.
//
// SpentAmount is a cached aggregate maintained by the reconciliation
// service; nothing else may write it. Multiple historical budgets for the
// same category may coexist, but only the one whose window contains "now"
// is considered active by queries.
type Budget struct {
	BudgetID     string          `json:"id"` // Primary Key (UUID)
	Category     Category        `json:"category"` // Snapshot at creation
	BudgetAmount decimal.Decimal `json:"budgetAmount"`
	SpentAmount  decimal.Decimal `json:"spentAmount"` // Derived, reconciliation-owned
	Description  string          `json:"description"`
	StartDate    time.Time       `json:"startDate"`
	EndDate      time.Time       `json:"endDate"`
	IsActive     bool            `json:"isActive"`
	AuditFields
}

// RemainingAmount returns how much of the budget is left to spend.
// May be negative when the budget is exceeded.
func (b Budget) RemainingAmount() decimal.Decimal {
	return b.BudgetAmount.Sub(b.SpentAmount)
}

// PercentageUsed returns spent/budget as a ratio (1.0 == fully used).
// A zero budget amount yields zero rather than dividing by zero.
func (b Budget) PercentageUsed() decimal.Decimal {
	if b.BudgetAmount.IsZero() {
		return decimal.Zero
	}
	return b.SpentAmount.Div(b.BudgetAmount)
}

// MonthYear returns the calendar-month label of the budget's window,
// e.g. "September 2026".
func (b Budget) MonthYear() string {
	return b.StartDate.Format("January 2006")
}

// Contains reports whether t falls within the budget's date window.
func (b Budget) Contains(t time.Time) bool {
	return !t.Before(b.StartDate) && !t.After(b.EndDate)
}

// NeedsMonthlyReset reports whether the budget's window is stale, i.e. now
// has passed its end date. A budget created for a future month is not stale;
// its window and zero spent amount must survive until that month arrives.
func (b Budget) NeedsMonthlyReset(now time.Time) bool {
	return now.After(b.EndDate)
}

// Status classifies the budget's health.
//
// Spending strictly above the budget amount is always OVER_BUDGET, even for
// a zero budget amount. Otherwise the spent/budget ratio decides: >= 80% is
// WARNING, >= 50% is ON_TRACK, below that SAFE. Exactly 100% is WARNING,
// not OVER_BUDGET.
func (b Budget) Status() BudgetStatus {
	if b.SpentAmount.GreaterThan(b.BudgetAmount) {
		return StatusOverBudget
	}
	p := b.PercentageUsed()
	switch {
	case p.GreaterThanOrEqual(warningThreshold):
		return StatusWarning
	case p.GreaterThanOrEqual(onTrackThreshold):
		return StatusOnTrack
	default:
		return StatusSafe
	}
}
