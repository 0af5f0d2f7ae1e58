package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/FinanceApp/internal/domain"
	"gorm.io/gorm"
)

// TransactionStorage реализует интерфейс ports.TransactionStorage с использованием GORM.
// Все методы чтения, кроме ListTransactionsForSummary, возвращают транзакции
// с уже подгруженными User и Category (аналог eager-отношений ManyToOne).
type TransactionStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewTransactionStorage создает новый экземпляр TransactionStorage
func NewTransactionStorage(db *gorm.DB, logger *slog.Logger) *TransactionStorage {
	return &TransactionStorage{db: db, logger: logger}
}

// SaveTransaction сохраняет транзакцию в бд (создание при нулевом ID, иначе upsert)
func (s *TransactionStorage) SaveTransaction(ctx context.Context, transaction *domain.Transaction) error {
	// Omit не даёт GORM каскадно пересоздавать связанные User/Category —
	// хранилище транзакций владеет только внешними ключами
	result := s.db.WithContext(ctx).Omit("User", "Category").Save(transaction)
	if result.Error != nil {
		return fmt.Errorf("ошибка при сохранении транзакции с GORM: %w", result.Error)
	}

	s.logger.Debug("transaction saved", "transaction_id", transaction.ID)
	return nil
}

// GetTransactionByID получает транзакцию по ID со связанными сущностями,
// (nil, nil) если не найдена
func (s *TransactionStorage) GetTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	var transaction domain.Transaction
	result := s.db.WithContext(ctx).
		Preload("User").
		Preload("Category").
		First(&transaction, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка при получении транзакции по ID из БД: %w", result.Error)
	}
	return &transaction, nil
}

// ListTransactions получает все транзакции со связанными сущностями
func (s *TransactionStorage) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	result := s.db.WithContext(ctx).
		Preload("User").
		Preload("Category").
		Find(&transactions)
	if result.Error != nil {
		return nil, fmt.Errorf("ошибка при получении списка транзакций из БД: %w", result.Error)
	}
	return transactions, nil
}

// ListTransactionsByUserID получает транзакции пользователя со связанными сущностями.
// Для неизвестного пользователя возвращает пустой список.
func (s *TransactionStorage) ListTransactionsByUserID(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	result := s.db.WithContext(ctx).
		Preload("User").
		Preload("Category").
		Where("user_id = ?", userID).
		Find(&transactions)
	if result.Error != nil {
		return nil, fmt.Errorf("ошибка при получении транзакций пользователя из БД: %w", result.Error)
	}
	return transactions, nil
}

// ListTransactionsForSummary получает транзакции пользователя без связанных
// сущностей — агрегату нужны только тип и сумма
func (s *TransactionStorage) ListTransactionsForSummary(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	result := s.db.WithContext(ctx).
		Select("id", "type", "amount_in_cents").
		Where("user_id = ?", userID).
		Find(&transactions)
	if result.Error != nil {
		return nil, fmt.Errorf("ошибка при получении транзакций для сводки из БД: %w", result.Error)
	}
	return transactions, nil
}

// CountTransactionsByUserID возвращает число транзакций, ссылающихся на пользователя
func (s *TransactionStorage) CountTransactionsByUserID(ctx context.Context, userID int64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&domain.Transaction{}).
		Where("user_id = ?", userID).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("ошибка при подсчёте транзакций пользователя: %w", result.Error)
	}
	return count, nil
}

// CountTransactionsByCategoryID возвращает число транзакций, ссылающихся на категорию
func (s *TransactionStorage) CountTransactionsByCategoryID(ctx context.Context, categoryID int64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&domain.Transaction{}).
		Where("category_id = ?", categoryID).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("ошибка при подсчёте транзакций категории: %w", result.Error)
	}
	return count, nil
}

// DeleteTransaction удаляет транзакцию по ID
func (s *TransactionStorage) DeleteTransaction(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Delete(&domain.Transaction{}, id)
	if result.Error != nil {
		return fmt.Errorf("ошибка при удалении транзакции из БД: %w", result.Error)
	}

	s.logger.Debug("transaction deleted", "transaction_id", id)
	return nil
}
