package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/FinanceApp/internal/domain"
	"gorm.io/gorm"
)

// CategoryStorage реализует интерфейс ports.CategoryStorage с использованием GORM
type CategoryStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewCategoryStorage создает новый экземпляр CategoryStorage
func NewCategoryStorage(db *gorm.DB, logger *slog.Logger) *CategoryStorage {
	return &CategoryStorage{db: db, logger: logger}
}

// SaveCategory сохраняет категорию в бд (создание при нулевом ID, иначе upsert)
func (s *CategoryStorage) SaveCategory(ctx context.Context, category *domain.Category) error {
	result := s.db.WithContext(ctx).Save(category)
	if result.Error != nil {
		return fmt.Errorf("ошибка при сохранении категории с GORM: %w", result.Error)
	}

	s.logger.Debug("category saved", "category_id", category.ID)
	return nil
}

// GetCategoryByID получает категорию по ID, (nil, nil) если не найдена
func (s *CategoryStorage) GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error) {
	var category domain.Category
	result := s.db.WithContext(ctx).First(&category, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка при получении категории по ID из БД: %w", result.Error)
	}
	return &category, nil
}

// ListCategories получает все категории из бд
func (s *CategoryStorage) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	result := s.db.WithContext(ctx).Find(&categories)
	if result.Error != nil {
		return nil, fmt.Errorf("ошибка при получении списка категорий из БД: %w", result.Error)
	}
	return categories, nil
}

// DeleteCategory удаляет категорию по ID
func (s *CategoryStorage) DeleteCategory(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Delete(&domain.Category{}, id)
	if result.Error != nil {
		return fmt.Errorf("ошибка при удалении категории из БД: %w", result.Error)
	}

	s.logger.Debug("category deleted", "category_id", id)
	return nil
}
