package app

import (
	"context"
	"time"

	"github.com/GoArmGo/FinanceApp/internal/domain"
)

// In-memory хранилища для маршрутных тестов: роутер и бизнес-логика
// настоящие, только слой бд подменён картами в памяти.

type memUserStorage struct {
	users  map[int64]domain.User
	nextID int64
}

func newMemUserStorage() *memUserStorage {
	return &memUserStorage{users: make(map[int64]domain.User), nextID: 1}
}

func (s *memUserStorage) SaveUser(_ context.Context, user *domain.User) error {
	if user.ID == 0 {
		user.ID = s.nextID
		s.nextID++
		user.CreatedAt = time.Now()
	}
	user.UpdatedAt = time.Now()
	s.users[user.ID] = *user
	return nil
}

func (s *memUserStorage) GetUserByID(_ context.Context, id int64) (*domain.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (s *memUserStorage) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			return &user, nil
		}
	}
	return nil, nil
}

func (s *memUserStorage) FindConflictingUser(_ context.Context, email, document string, excludeID int64) (*domain.User, error) {
	for _, user := range s.users {
		if user.ID == excludeID {
			continue
		}
		if user.Email == email || user.Document == document {
			return &user, nil
		}
	}
	return nil, nil
}

func (s *memUserStorage) ListUsers(_ context.Context) ([]domain.User, error) {
	users := make([]domain.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	return users, nil
}

func (s *memUserStorage) DeleteUser(_ context.Context, id int64) error {
	delete(s.users, id)
	return nil
}

type memCategoryStorage struct {
	categories map[int64]domain.Category
	nextID     int64
}

func newMemCategoryStorage() *memCategoryStorage {
	return &memCategoryStorage{categories: make(map[int64]domain.Category), nextID: 1}
}

func (s *memCategoryStorage) SaveCategory(_ context.Context, category *domain.Category) error {
	if category.ID == 0 {
		category.ID = s.nextID
		s.nextID++
		category.CreatedAt = time.Now()
	}
	category.UpdatedAt = time.Now()
	s.categories[category.ID] = *category
	return nil
}

func (s *memCategoryStorage) GetCategoryByID(_ context.Context, id int64) (*domain.Category, error) {
	category, ok := s.categories[id]
	if !ok {
		return nil, nil
	}
	return &category, nil
}

func (s *memCategoryStorage) ListCategories(_ context.Context) ([]domain.Category, error) {
	categories := make([]domain.Category, 0, len(s.categories))
	for _, category := range s.categories {
		categories = append(categories, category)
	}
	return categories, nil
}

func (s *memCategoryStorage) DeleteCategory(_ context.Context, id int64) error {
	delete(s.categories, id)
	return nil
}

type memTransactionStorage struct {
	transactions map[int64]domain.Transaction
	nextID       int64
}

func newMemTransactionStorage() *memTransactionStorage {
	return &memTransactionStorage{transactions: make(map[int64]domain.Transaction), nextID: 1}
}

func (s *memTransactionStorage) SaveTransaction(_ context.Context, transaction *domain.Transaction) error {
	if transaction.ID == 0 {
		transaction.ID = s.nextID
		s.nextID++
		transaction.CreatedAt = time.Now()
	}
	transaction.UpdatedAt = time.Now()
	s.transactions[transaction.ID] = *transaction
	return nil
}

func (s *memTransactionStorage) GetTransactionByID(_ context.Context, id int64) (*domain.Transaction, error) {
	transaction, ok := s.transactions[id]
	if !ok {
		return nil, nil
	}
	return &transaction, nil
}

func (s *memTransactionStorage) ListTransactions(_ context.Context) ([]domain.Transaction, error) {
	transactions := make([]domain.Transaction, 0, len(s.transactions))
	for _, transaction := range s.transactions {
		transactions = append(transactions, transaction)
	}
	return transactions, nil
}

func (s *memTransactionStorage) ListTransactionsByUserID(_ context.Context, userID int64) ([]domain.Transaction, error) {
	transactions := make([]domain.Transaction, 0)
	for _, transaction := range s.transactions {
		if transaction.UserID == userID {
			transactions = append(transactions, transaction)
		}
	}
	return transactions, nil
}

func (s *memTransactionStorage) ListTransactionsForSummary(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	return s.ListTransactionsByUserID(ctx, userID)
}

func (s *memTransactionStorage) CountTransactionsByUserID(_ context.Context, userID int64) (int64, error) {
	var count int64
	for _, transaction := range s.transactions {
		if transaction.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (s *memTransactionStorage) CountTransactionsByCategoryID(_ context.Context, categoryID int64) (int64, error) {
	var count int64
	for _, transaction := range s.transactions {
		if transaction.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (s *memTransactionStorage) DeleteTransaction(_ context.Context, id int64) error {
	delete(s.transactions, id)
	return nil
}
