package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/FinanceApp/internal/core/ports"
	"github.com/GoArmGo/FinanceApp/internal/domain"
)

// categoryUseCase implements CategoryUseCase
type categoryUseCase struct {
	categoryStorage    ports.CategoryStorage
	transactionStorage ports.TransactionStorage
	logger             *slog.Logger
}

// NewCategoryUseCase создает новый экземпляр CategoryUseCase
func NewCategoryUseCase(
	categoryStorage ports.CategoryStorage,
	transactionStorage ports.TransactionStorage,
	logger *slog.Logger,
) CategoryUseCase {
	return &categoryUseCase{
		categoryStorage:    categoryStorage,
		transactionStorage: transactionStorage,
		logger:             logger,
	}
}

// CreateCategory создает новую категорию. Уникальность имени не требуется.
func (uc *categoryUseCase) CreateCategory(ctx context.Context, in CreateCategoryInput) (*domain.Category, error) {
	category := &domain.Category{Name: in.Name}

	if err := uc.categoryStorage.SaveCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("usecase: ошибка при сохранении категории: %w", err)
	}

	uc.logger.Info("category created", "category_id", category.ID, "name", category.Name)
	return category, nil
}

// GetCategoryByID получает категорию по ID
func (uc *categoryUseCase) GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error) {
	category, err := uc.categoryStorage.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при получении категории по ID %d: %w", id, err)
	}
	if category == nil {
		return nil, domain.NewNotFound("Category", id)
	}
	return category, nil
}

// ListCategories получает все категории
func (uc *categoryUseCase) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := uc.categoryStorage.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при получении списка категорий: %w", err)
	}
	return categories, nil
}

// UpdateCategory меняет только переданные поля категории
func (uc *categoryUseCase) UpdateCategory(ctx context.Context, id int64, in UpdateCategoryInput) (*domain.Category, error) {
	category, err := uc.categoryStorage.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при получении категории по ID %d: %w", id, err)
	}
	if category == nil {
		return nil, domain.NewNotFound("Category", id)
	}

	updated := *category
	if in.Name != nil {
		updated.Name = *in.Name
	}

	if err := uc.categoryStorage.SaveCategory(ctx, &updated); err != nil {
		return nil, fmt.Errorf("usecase: ошибка при сохранении категории: %w", err)
	}

	uc.logger.Info("category updated", "category_id", updated.ID)
	return &updated, nil
}

// DeleteCategory удаляет категорию, если на неё не ссылаются транзакции
func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id int64) error {
	category, err := uc.categoryStorage.GetCategoryByID(ctx, id)
	if err != nil {
		return fmt.Errorf("usecase: ошибка при получении категории по ID %d: %w", id, err)
	}
	if category == nil {
		return domain.NewNotFound("Category", id)
	}

	count, err := uc.transactionStorage.CountTransactionsByCategoryID(ctx, id)
	if err != nil {
		return fmt.Errorf("usecase: ошибка при подсчёте транзакций категории %d: %w", id, err)
	}
	if count > 0 {
		return domain.NewConflict(fmt.Sprintf("Category with ID %d still has %d transactions and cannot be deleted", id, count))
	}

	if err := uc.categoryStorage.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("usecase: ошибка при удалении категории %d: %w", id, err)
	}

	uc.logger.Info("category deleted", "category_id", id)
	return nil
}
