package services

import (
	"context"
	"time"

	"github.com/moneynest/money_tracker_app/internal/dto"
)

// ReportingSvcFacade exposes read-only aggregates over the ledger for the
// presentation layer. Rendering and export live outside the core.
type ReportingSvcFacade interface {
	// MonthlySummary aggregates income, expense and per-category spending
	// for the calendar month containing month.
	MonthlySummary(ctx context.Context, month time.Time) (*dto.MonthlySummary, error)

	// SpendingByCategory totals expense transactions per category snapshot
	// over the closed range [from, to], largest first.
	SpendingByCategory(ctx context.Context, from, to time.Time) ([]dto.CategorySpend, error)
}
