package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines the payload for creating a monthly budget.
// Month selects the calendar month the budget covers; the zero value means
// the current month. The service derives the start/end window from it.
type CreateBudgetRequest struct {
	CategoryID   string          `json:"categoryID" validate:"required"`
	BudgetAmount decimal.Decimal `json:"budgetAmount"`
	Description  string          `json:"description"`
	Month        time.Time       `json:"month"`
}

// UpdateBudgetRequest defines the payload for editing a budget's limit or
// description. The spent amount and window are never edited directly.
type UpdateBudgetRequest struct {
	BudgetID     string           `json:"id" validate:"required"`
	BudgetAmount *decimal.Decimal `json:"budgetAmount,omitempty"`
	Description  *string          `json:"description,omitempty"`
	IsActive     *bool            `json:"isActive,omitempty"`
}
