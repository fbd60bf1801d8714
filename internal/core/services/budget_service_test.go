package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/moneynest/money_tracker_app/internal/apperrors"
	"github.com/moneynest/money_tracker_app/internal/core/domain"
	portssvc "github.com/moneynest/money_tracker_app/internal/core/ports/services"
	"github.com/moneynest/money_tracker_app/internal/core/services"
	"github.com/moneynest/money_tracker_app/internal/dto"
	"github.com/moneynest/money_tracker_app/internal/repositories/kvjson"
	"github.com/moneynest/money_tracker_app/internal/storage"
)

// --- Test Suite Setup ---

type BudgetServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	now         time.Time
	categorySvc portssvc.CategorySvcFacade
	service     portssvc.BudgetSvcFacade

	category *domain.Category
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.now = time.Date(2026, time.January, 15, 10, 0, 0, 0, time.UTC)

	kv := storage.NewMemoryKVStore()
	categoryRepo := kvjson.NewKVCategoryRepository(suite.ctx, kv)
	budgetRepo := kvjson.NewKVBudgetRepository(suite.ctx, kv)

	suite.categorySvc = services.NewCategoryService(categoryRepo)
	suite.service = services.NewBudgetService(budgetRepo, suite.categorySvc,
		services.WithClock(func() time.Time { return suite.now }))

	category, err := suite.categorySvc.CreateCategory(suite.ctx, dto.CreateCategoryRequest{
		Name:  "Dining",
		Emoji: "🍜",
		Type:  "EXPENSE",
	})
	suite.Require().NoError(err)
	suite.category = category
}

func (suite *BudgetServiceTestSuite) createBudget(amount int64) *domain.Budget {
	budget, err := suite.service.CreateBudget(suite.ctx, dto.CreateBudgetRequest{
		CategoryID:   suite.category.CategoryID,
		BudgetAmount: decimal.NewFromInt(amount),
	})
	suite.Require().NoError(err)
	return budget
}

// --- Test Cases ---

func (suite *BudgetServiceTestSuite) TestCreateBudget_WindowCoversCurrentMonth() {
	budget := suite.createBudget(1000)

	suite.NotEmpty(budget.BudgetID)
	suite.Equal(suite.category.CategoryID, budget.Category.CategoryID)
	suite.True(budget.SpentAmount.IsZero())
	suite.True(budget.IsActive)
	suite.Equal("January 2026", budget.MonthYear())
	suite.Equal(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), budget.StartDate)
	suite.True(budget.Contains(suite.now))
	suite.False(budget.Contains(suite.now.AddDate(0, 1, 0)))
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_ExplicitMonth() {
	budget, err := suite.service.CreateBudget(suite.ctx, dto.CreateBudgetRequest{
		CategoryID:   suite.category.CategoryID,
		BudgetAmount: decimal.NewFromInt(300),
		Month:        time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC),
	})

	suite.Require().NoError(err)
	suite.Equal("March 2026", budget.MonthYear())
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_RejectsNegativeAmount() {
	_, err := suite.service.CreateBudget(suite.ctx, dto.CreateBudgetRequest{
		CategoryID:   suite.category.CategoryID,
		BudgetAmount: decimal.NewFromInt(-5),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_UnknownCategoryFails() {
	_, err := suite.service.CreateBudget(suite.ctx, dto.CreateBudgetRequest{
		CategoryID:   "nope",
		BudgetAmount: decimal.NewFromInt(100),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *BudgetServiceTestSuite) TestUpdateBudget_PartialEdit() {
	budget := suite.createBudget(1000)

	newAmount := decimal.NewFromInt(1500)
	updated, err := suite.service.UpdateBudget(suite.ctx, dto.UpdateBudgetRequest{
		BudgetID:     budget.BudgetID,
		BudgetAmount: &newAmount,
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.True(updated.BudgetAmount.Equal(newAmount))
	suite.Equal(budget.Description, updated.Description)
	suite.True(updated.SpentAmount.IsZero())
}

func (suite *BudgetServiceTestSuite) TestUpdateBudget_UnknownIDIsNoOp() {
	updated, err := suite.service.UpdateBudget(suite.ctx, dto.UpdateBudgetRequest{BudgetID: "nope"})

	suite.Require().NoError(err)
	suite.Nil(updated)
}

func (suite *BudgetServiceTestSuite) TestDeleteBudget() {
	budget := suite.createBudget(1000)

	suite.Require().NoError(suite.service.DeleteBudget(suite.ctx, budget.BudgetID))

	_, err := suite.service.GetBudgetByID(suite.ctx, budget.BudgetID)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.Require().NoError(suite.service.DeleteBudget(suite.ctx, budget.BudgetID))
}

func (suite *BudgetServiceTestSuite) TestMonthlyRollover_ResetsSpentAndWindow() {
	budget := suite.createBudget(1000)
	suite.Require().NoError(suite.service.AddToSpent(suite.ctx, budget.BudgetID, decimal.NewFromInt(400)))

	suite.now = time.Date(2026, time.February, 2, 9, 0, 0, 0, time.UTC)
	suite.Require().NoError(suite.service.CheckAndResetMonthlyRollover(suite.ctx))

	rolled, err := suite.service.GetBudgetByID(suite.ctx, budget.BudgetID)
	suite.Require().NoError(err)
	suite.True(rolled.SpentAmount.IsZero())
	suite.Equal("February 2026", rolled.MonthYear())
	suite.True(rolled.Contains(suite.now))
}

func (suite *BudgetServiceTestSuite) TestMonthlyRollover_IdempotentWithinMonth() {
	budget := suite.createBudget(1000)
	suite.Require().NoError(suite.service.AddToSpent(suite.ctx, budget.BudgetID, decimal.NewFromInt(400)))

	suite.Require().NoError(suite.service.CheckAndResetMonthlyRollover(suite.ctx))
	suite.Require().NoError(suite.service.CheckAndResetMonthlyRollover(suite.ctx))

	unchanged, err := suite.service.GetBudgetByID(suite.ctx, budget.BudgetID)
	suite.Require().NoError(err)
	suite.True(unchanged.SpentAmount.Equal(decimal.NewFromInt(400)))
	suite.Equal("January 2026", unchanged.MonthYear())
}

func (suite *BudgetServiceTestSuite) TestMonthlyRollover_SkipsInactiveBudgets() {
	budget := suite.createBudget(1000)
	inactive := false
	_, err := suite.service.UpdateBudget(suite.ctx, dto.UpdateBudgetRequest{
		BudgetID: budget.BudgetID,
		IsActive: &inactive,
	})
	suite.Require().NoError(err)

	suite.now = suite.now.AddDate(0, 1, 0)
	suite.Require().NoError(suite.service.CheckAndResetMonthlyRollover(suite.ctx))

	skipped, err := suite.service.GetBudgetByID(suite.ctx, budget.BudgetID)
	suite.Require().NoError(err)
	suite.Equal("January 2026", skipped.MonthYear())
}

func (suite *BudgetServiceTestSuite) TestMonthlyRollover_LeavesFutureBudgetAlone() {
	future, err := suite.service.CreateBudget(suite.ctx, dto.CreateBudgetRequest{
		CategoryID:   suite.category.CategoryID,
		BudgetAmount: decimal.NewFromInt(300),
		Month:        time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
	})
	suite.Require().NoError(err)

	// Still January; the March window has not passed, so the rollover and
	// the active query must not drag it back to the current month.
	active, err := suite.service.ActiveBudgets(suite.ctx)
	suite.Require().NoError(err)
	suite.Empty(active)

	stored, err := suite.service.GetBudgetByID(suite.ctx, future.BudgetID)
	suite.Require().NoError(err)
	suite.Equal("March 2026", stored.MonthYear())
	suite.True(stored.SpentAmount.IsZero())

	// Once March arrives it activates with its original window.
	suite.now = time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC)
	active, err = suite.service.ActiveBudgets(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(active, 1)
	suite.Equal(future.BudgetID, active[0].BudgetID)
	suite.Equal("March 2026", active[0].MonthYear())
}

func (suite *BudgetServiceTestSuite) TestActiveBudgets_RollsOverBeforeFiltering() {
	budget := suite.createBudget(1000)

	suite.now = time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	active, err := suite.service.ActiveBudgets(suite.ctx)

	suite.Require().NoError(err)
	suite.Require().Len(active, 1)
	suite.Equal(budget.BudgetID, active[0].BudgetID)
	suite.Equal("March 2026", active[0].MonthYear())
}

func (suite *BudgetServiceTestSuite) TestBudgetForCategory_FindsActiveBudget() {
	budget := suite.createBudget(1000)

	found, err := suite.service.BudgetForCategory(suite.ctx, suite.category.CategoryID)

	suite.Require().NoError(err)
	suite.Equal(budget.BudgetID, found.BudgetID)
}

func (suite *BudgetServiceTestSuite) TestBudgetForCategory_NoneReturnsNotFound() {
	_, err := suite.service.BudgetForCategory(suite.ctx, suite.category.CategoryID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *BudgetServiceTestSuite) TestBudgetForCategory_LatestCreatedWins() {
	first := suite.createBudget(500)
	suite.now = suite.now.Add(time.Hour)
	second := suite.createBudget(800)

	found, err := suite.service.BudgetForCategory(suite.ctx, suite.category.CategoryID)

	suite.Require().NoError(err)
	suite.Equal(second.BudgetID, found.BudgetID)
	suite.NotEqual(first.BudgetID, found.BudgetID)
}

func (suite *BudgetServiceTestSuite) TestTotals_SumActiveBudgetsOnly() {
	budget := suite.createBudget(1000)
	suite.Require().NoError(suite.service.AddToSpent(suite.ctx, budget.BudgetID, decimal.NewFromInt(300)))

	other, err := suite.categorySvc.CreateCategory(suite.ctx, dto.CreateCategoryRequest{
		Name: "Transport", Type: "EXPENSE",
	})
	suite.Require().NoError(err)
	second, err := suite.service.CreateBudget(suite.ctx, dto.CreateBudgetRequest{
		CategoryID:   other.CategoryID,
		BudgetAmount: decimal.NewFromInt(200),
	})
	suite.Require().NoError(err)

	inactive := false
	_, err = suite.service.UpdateBudget(suite.ctx, dto.UpdateBudgetRequest{
		BudgetID: second.BudgetID,
		IsActive: &inactive,
	})
	suite.Require().NoError(err)

	total, err := suite.service.TotalBudgetAmount(suite.ctx)
	suite.Require().NoError(err)
	suite.True(total.Equal(decimal.NewFromInt(1000)))

	spent, err := suite.service.TotalSpentAmount(suite.ctx)
	suite.Require().NoError(err)
	suite.True(spent.Equal(decimal.NewFromInt(300)))

	remaining, err := suite.service.TotalRemainingAmount(suite.ctx)
	suite.Require().NoError(err)
	suite.True(remaining.Equal(decimal.NewFromInt(700)))
}

func (suite *BudgetServiceTestSuite) TestBudgetsNeedingAttention() {
	healthy := suite.createBudget(1000)
	suite.Require().NoError(suite.service.AddToSpent(suite.ctx, healthy.BudgetID, decimal.NewFromInt(100)))

	other, err := suite.categorySvc.CreateCategory(suite.ctx, dto.CreateCategoryRequest{
		Name: "Shopping", Type: "EXPENSE",
	})
	suite.Require().NoError(err)
	hot, err := suite.service.CreateBudget(suite.ctx, dto.CreateBudgetRequest{
		CategoryID:   other.CategoryID,
		BudgetAmount: decimal.NewFromInt(100),
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.service.AddToSpent(suite.ctx, hot.BudgetID, decimal.NewFromInt(90)))

	attention, err := suite.service.BudgetsNeedingAttention(suite.ctx)

	suite.Require().NoError(err)
	suite.Require().Len(attention, 1)
	suite.Equal(hot.BudgetID, attention[0].BudgetID)
	suite.Equal(domain.StatusWarning, attention[0].Status())
}

func (suite *BudgetServiceTestSuite) TestAddToSpent_ClampsAtZero() {
	budget := suite.createBudget(1000)
	suite.Require().NoError(suite.service.AddToSpent(suite.ctx, budget.BudgetID, decimal.NewFromInt(50)))

	suite.Require().NoError(suite.service.AddToSpent(suite.ctx, budget.BudgetID, decimal.NewFromInt(-80)))

	clamped, err := suite.service.GetBudgetByID(suite.ctx, budget.BudgetID)
	suite.Require().NoError(err)
	suite.True(clamped.SpentAmount.IsZero())
}

func (suite *BudgetServiceTestSuite) TestAddToSpent_UnknownIDIsNoOp() {
	suite.Require().NoError(suite.service.AddToSpent(suite.ctx, "nope", decimal.NewFromInt(10)))
}

func (suite *BudgetServiceTestSuite) TestSetSpent_Overwrites() {
	budget := suite.createBudget(1000)
	suite.Require().NoError(suite.service.AddToSpent(suite.ctx, budget.BudgetID, decimal.NewFromInt(50)))

	suite.Require().NoError(suite.service.SetSpent(suite.ctx, budget.BudgetID, decimal.NewFromInt(720)))

	stored, err := suite.service.GetBudgetByID(suite.ctx, budget.BudgetID)
	suite.Require().NoError(err)
	suite.True(stored.SpentAmount.Equal(decimal.NewFromInt(720)))
}

func TestBudgetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
