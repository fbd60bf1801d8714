package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneynest/money_tracker_app/internal/core/domain"
	portsrepo "github.com/moneynest/money_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/moneynest/money_tracker_app/internal/core/ports/services"
	"github.com/moneynest/money_tracker_app/internal/dto"
	"github.com/moneynest/money_tracker_app/internal/utils/calendar"
)

// reportingService produces read-only aggregates over the ledger for the
// presentation layer. Category rows come from the snapshots embedded in
// transactions, so spending against a deleted category still reports under
// its recorded name.
type reportingService struct {
	txRepo portsrepo.TransactionReader
}

// NewReportingService creates a new ReportingService.
func NewReportingService(txRepo portsrepo.TransactionReader) portssvc.ReportingSvcFacade {
	return &reportingService{txRepo: txRepo}
}

// Ensure reportingService implements the portssvc.ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) MonthlySummary(ctx context.Context, month time.Time) (*dto.MonthlySummary, error) {
	start, end := calendar.MonthBounds(month)
	txs, err := s.txRepo.ListTransactionsInRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for summary: %w", err)
	}

	income := decimal.Zero
	expense := decimal.Zero
	for _, tx := range txs {
		switch tx.Type {
		case domain.Income:
			income = income.Add(tx.Amount)
		case domain.Expense:
			expense = expense.Add(tx.Amount)
		case domain.Transfer:
			// Balance-neutral; excluded from both totals.
		}
	}

	return &dto.MonthlySummary{
		Month:        start.Format("January 2006"),
		TotalIncome:  income,
		TotalExpense: expense,
		Net:          income.Sub(expense),
		ByCategory:   aggregateExpenses(txs),
	}, nil
}

func (s *reportingService) SpendingByCategory(ctx context.Context, from, to time.Time) ([]dto.CategorySpend, error) {
	txs, err := s.txRepo.ListTransactionsInRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for breakdown: %w", err)
	}
	return aggregateExpenses(txs), nil
}

// aggregateExpenses totals expense transactions per category snapshot,
// largest first.
func aggregateExpenses(txs []domain.Transaction) []dto.CategorySpend {
	byID := make(map[string]*dto.CategorySpend)
	for _, tx := range txs {
		if tx.Type != domain.Expense {
			continue
		}
		row, ok := byID[tx.Category.CategoryID]
		if !ok {
			row = &dto.CategorySpend{
				CategoryID: tx.Category.CategoryID,
				Name:       tx.Category.Name,
				Emoji:      tx.Category.Emoji,
				Total:      decimal.Zero,
			}
			byID[tx.Category.CategoryID] = row
		}
		row.Total = row.Total.Add(tx.Amount)
	}

	out := make([]dto.CategorySpend, 0, len(byID))
	for _, row := range byID {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].CategoryID < out[j].CategoryID
	})
	return out
}
