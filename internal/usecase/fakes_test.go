package usecase

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/GoArmGo/FinanceApp/internal/domain"
	"github.com/GoArmGo/FinanceApp/internal/messaging/payloads"
)

// In-memory реализации портов хранилищ для тестов бизнес-логики.
// Потокобезопасность не нужна — тесты работают в одной горутине.

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeUserStorage struct {
	users  map[int64]domain.User
	nextID int64
}

func newFakeUserStorage() *fakeUserStorage {
	return &fakeUserStorage{users: make(map[int64]domain.User), nextID: 1}
}

func (f *fakeUserStorage) SaveUser(_ context.Context, user *domain.User) error {
	if user.ID == 0 {
		user.ID = f.nextID
		f.nextID++
		user.CreatedAt = time.Now()
	}
	user.UpdatedAt = time.Now()
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserStorage) GetUserByID(_ context.Context, id int64) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (f *fakeUserStorage) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return &user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStorage) FindConflictingUser(_ context.Context, email, document string, excludeID int64) (*domain.User, error) {
	for _, user := range f.users {
		if user.ID == excludeID {
			continue
		}
		if user.Email == email || user.Document == document {
			return &user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStorage) ListUsers(_ context.Context) ([]domain.User, error) {
	users := make([]domain.User, 0, len(f.users))
	for _, user := range f.users {
		users = append(users, user)
	}
	return users, nil
}

func (f *fakeUserStorage) DeleteUser(_ context.Context, id int64) error {
	delete(f.users, id)
	return nil
}

type fakeCategoryStorage struct {
	categories map[int64]domain.Category
	nextID     int64
}

func newFakeCategoryStorage() *fakeCategoryStorage {
	return &fakeCategoryStorage{categories: make(map[int64]domain.Category), nextID: 1}
}

func (f *fakeCategoryStorage) SaveCategory(_ context.Context, category *domain.Category) error {
	if category.ID == 0 {
		category.ID = f.nextID
		f.nextID++
		category.CreatedAt = time.Now()
	}
	category.UpdatedAt = time.Now()
	f.categories[category.ID] = *category
	return nil
}

func (f *fakeCategoryStorage) GetCategoryByID(_ context.Context, id int64) (*domain.Category, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, nil
	}
	return &category, nil
}

func (f *fakeCategoryStorage) ListCategories(_ context.Context) ([]domain.Category, error) {
	categories := make([]domain.Category, 0, len(f.categories))
	for _, category := range f.categories {
		categories = append(categories, category)
	}
	return categories, nil
}

func (f *fakeCategoryStorage) DeleteCategory(_ context.Context, id int64) error {
	delete(f.categories, id)
	return nil
}

type fakeTransactionStorage struct {
	transactions map[int64]domain.Transaction
	nextID       int64
}

func newFakeTransactionStorage() *fakeTransactionStorage {
	return &fakeTransactionStorage{transactions: make(map[int64]domain.Transaction), nextID: 1}
}

func (f *fakeTransactionStorage) SaveTransaction(_ context.Context, transaction *domain.Transaction) error {
	if transaction.ID == 0 {
		transaction.ID = f.nextID
		f.nextID++
		transaction.CreatedAt = time.Now()
	}
	transaction.UpdatedAt = time.Now()
	f.transactions[transaction.ID] = *transaction
	return nil
}

func (f *fakeTransactionStorage) GetTransactionByID(_ context.Context, id int64) (*domain.Transaction, error) {
	transaction, ok := f.transactions[id]
	if !ok {
		return nil, nil
	}
	return &transaction, nil
}

func (f *fakeTransactionStorage) ListTransactions(_ context.Context) ([]domain.Transaction, error) {
	transactions := make([]domain.Transaction, 0, len(f.transactions))
	for _, transaction := range f.transactions {
		transactions = append(transactions, transaction)
	}
	return transactions, nil
}

func (f *fakeTransactionStorage) ListTransactionsByUserID(_ context.Context, userID int64) ([]domain.Transaction, error) {
	transactions := make([]domain.Transaction, 0)
	for _, transaction := range f.transactions {
		if transaction.UserID == userID {
			transactions = append(transactions, transaction)
		}
	}
	return transactions, nil
}

func (f *fakeTransactionStorage) ListTransactionsForSummary(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	return f.ListTransactionsByUserID(ctx, userID)
}

func (f *fakeTransactionStorage) CountTransactionsByUserID(_ context.Context, userID int64) (int64, error) {
	var count int64
	for _, transaction := range f.transactions {
		if transaction.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeTransactionStorage) CountTransactionsByCategoryID(_ context.Context, categoryID int64) (int64, error) {
	var count int64
	for _, transaction := range f.transactions {
		if transaction.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (f *fakeTransactionStorage) DeleteTransaction(_ context.Context, id int64) error {
	delete(f.transactions, id)
	return nil
}

type fakeEventPublisher struct {
	events []payloads.TransactionEventPayload
}

func (f *fakeEventPublisher) PublishTransactionEvent(_ context.Context, payload payloads.TransactionEventPayload) error {
	f.events = append(f.events, payload)
	return nil
}
