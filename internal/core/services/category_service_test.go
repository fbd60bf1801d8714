package services_test

import (
	"context"
	"testing"

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

type CategoryServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	service portssvc.CategorySvcFacade
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	repo := kvjson.NewKVCategoryRepository(suite.ctx, storage.NewMemoryKVStore())
	suite.service = services.NewCategoryService(repo)
}

// --- Test Cases ---

func (suite *CategoryServiceTestSuite) TestCreateCategory_Success() {
	created, err := suite.service.CreateCategory(suite.ctx, dto.CreateCategoryRequest{
		Name:  "Rent",
		Emoji: "🏠",
		Type:  "EXPENSE",
	})

	suite.Require().NoError(err)
	suite.NotEmpty(created.CategoryID)
	suite.Equal("Rent", created.Name)
	suite.Equal(domain.CategoryExpense, created.Type)
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_RejectsUnknownType() {
	_, err := suite.service.CreateCategory(suite.ctx, dto.CreateCategoryRequest{
		Name: "Misc",
		Type: "SIDEWAYS",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_PartialEdit() {
	created, err := suite.service.CreateCategory(suite.ctx, dto.CreateCategoryRequest{
		Name: "Rent", Type: "EXPENSE",
	})
	suite.Require().NoError(err)

	name := "Housing"
	updated, err := suite.service.UpdateCategory(suite.ctx, dto.UpdateCategoryRequest{
		CategoryID: created.CategoryID,
		Name:       &name,
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.Equal("Housing", updated.Name)
	suite.Equal(domain.CategoryExpense, updated.Type)
	suite.Equal(created.CategoryID, updated.CategoryID)
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_UnknownIDIsNoOp() {
	name := "Ghost"
	updated, err := suite.service.UpdateCategory(suite.ctx, dto.UpdateCategoryRequest{
		CategoryID: "nope",
		Name:       &name,
	})

	suite.Require().NoError(err)
	suite.Nil(updated)
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory() {
	created, err := suite.service.CreateCategory(suite.ctx, dto.CreateCategoryRequest{
		Name: "Rent", Type: "EXPENSE",
	})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.service.DeleteCategory(suite.ctx, created.CategoryID))

	_, err = suite.service.GetCategoryByID(suite.ctx, created.CategoryID)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.Require().NoError(suite.service.DeleteCategory(suite.ctx, created.CategoryID))
}

func (suite *CategoryServiceTestSuite) TestEnsureDefaultCategories_SeedsOnce() {
	suite.Require().NoError(suite.service.EnsureDefaultCategories(suite.ctx))

	first, err := suite.service.ListCategories(suite.ctx)
	suite.Require().NoError(err)
	suite.NotEmpty(first)

	suite.Require().NoError(suite.service.EnsureDefaultCategories(suite.ctx))

	second, err := suite.service.ListCategories(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(second, len(first))
}

func (suite *CategoryServiceTestSuite) TestEnsureDefaultCategories_SkipsNonEmptyCollection() {
	_, err := suite.service.CreateCategory(suite.ctx, dto.CreateCategoryRequest{
		Name: "Custom", Type: "EXPENSE",
	})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.service.EnsureDefaultCategories(suite.ctx))

	categories, err := suite.service.ListCategories(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(categories, 1)
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
