package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/moneynest/money_tracker_app/internal/apperrors"
	"github.com/moneynest/money_tracker_app/internal/core/domain"
	portsrepo "github.com/moneynest/money_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/moneynest/money_tracker_app/internal/core/ports/services"
	"github.com/moneynest/money_tracker_app/internal/dto"
	"github.com/moneynest/money_tracker_app/internal/logging"
)

// categoryService provides category management. Categories are referenced
// by snapshot everywhere else, so edits and deletes here never rewrite
// recorded transactions or budgets.
type categoryService struct {
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

// Ensure categoryService implements the portssvc.CategorySvcFacade interface
var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	logger := logging.FromCtx(ctx)

	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	category := domain.Category{
		CategoryID:  uuid.NewString(),
		Name:        req.Name,
		Emoji:       req.Emoji,
		Type:        domain.CategoryType(req.Type),
		AuditFields: domain.NewAuditFields(now),
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		logger.Error("Failed to save category", slog.String("error", err.Error()), slog.String("category_id", category.CategoryID))
		return nil, fmt.Errorf("failed to save category: %w", err)
	}

	logger.Info("Category created", slog.String("category_id", category.CategoryID), slog.String("name", category.Name))
	return &category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logging.FromCtx(ctx).Error("Failed to find category", slog.String("error", err.Error()), slog.String("category_id", categoryID))
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return categories, nil
}

// UpdateCategory edits a category in place, preserving its identity.
// An unknown ID is a silent no-op and returns nil, nil.
func (s *categoryService) UpdateCategory(ctx context.Context, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	logger := logging.FromCtx(ctx)

	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Debug("Update for unknown category ignored", slog.String("category_id", req.CategoryID))
			return nil, nil
		}
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Emoji != nil {
		category.Emoji = *req.Emoji
	}
	if req.Type != nil {
		category.Type = domain.CategoryType(*req.Type)
	}
	category.LastUpdatedAt = time.Now().UTC()

	if err := s.categoryRepo.SaveCategory(ctx, *category); err != nil {
		logger.Error("Failed to update category", slog.String("error", err.Error()), slog.String("category_id", category.CategoryID))
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	logger.Info("Category updated", slog.String("category_id", category.CategoryID))
	return category, nil
}

// DeleteCategory removes a category. Transactions and budgets keep their
// snapshots; an unknown ID is a silent no-op.
func (s *categoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	logger := logging.FromCtx(ctx)

	err := s.categoryRepo.DeleteCategory(ctx, categoryID)
	if errors.Is(err, apperrors.ErrNotFound) {
		logger.Debug("Delete for unknown category ignored", slog.String("category_id", categoryID))
		return nil
	}
	if err != nil {
		logger.Error("Failed to delete category", slog.String("error", err.Error()), slog.String("category_id", categoryID))
		return fmt.Errorf("failed to delete category: %w", err)
	}

	logger.Info("Category deleted", slog.String("category_id", categoryID))
	return nil
}

// EnsureDefaultCategories seeds the starter categories when the stored
// collection is genuinely empty. Idempotent.
func (s *categoryService) EnsureDefaultCategories(ctx context.Context) error {
	logger := logging.FromCtx(ctx)

	existing, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing categories: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now().UTC()
	for _, seed := range defaultCategories {
		category := domain.Category{
			CategoryID:  uuid.NewString(),
			Name:        seed.name,
			Emoji:       seed.emoji,
			Type:        seed.categoryType,
			AuditFields: domain.NewAuditFields(now),
		}
		if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", seed.name, err)
		}
	}

	logger.Info("Seeded default categories", slog.Int("count", len(defaultCategories)))
	return nil
}
