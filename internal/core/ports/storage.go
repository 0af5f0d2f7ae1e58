package ports

import (
	"context"

	"github.com/GoArmGo/FinanceApp/internal/domain"
)

// UserStorage определяет методы для взаимодействия с хранилищем пользователей
type UserStorage interface {
	// SaveUser сохраняет нового или изменённого пользователя (upsert по ID)
	SaveUser(ctx context.Context, user *domain.User) error

	// GetUserByID получает пользователя по внутреннему ID
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)

	// GetUserByEmail получает пользователя по email, nil без ошибки если не найден
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindConflictingUser ищет другого пользователя с таким же email или document.
	// excludeID исключает самого пользователя при update (0 — без исключения).
	FindConflictingUser(ctx context.Context, email, document string, excludeID int64) (*domain.User, error)

	// ListUsers получает всех пользователей
	ListUsers(ctx context.Context) ([]domain.User, error)

	// DeleteUser удаляет пользователя по ID
	DeleteUser(ctx context.Context, id int64) error
}

// CategoryStorage определяет методы для взаимодействия с хранилищем категорий
type CategoryStorage interface {
	SaveCategory(ctx context.Context, category *domain.Category) error
	GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

// TransactionStorage определяет методы для взаимодействия с хранилищем транзакций.
// Методы чтения возвращают транзакции с уже подгруженными User и Category.
type TransactionStorage interface {
	SaveTransaction(ctx context.Context, transaction *domain.Transaction) error
	GetTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error)
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// ListTransactionsByUserID получает транзакции пользователя.
	// Для неизвестного пользователя возвращает пустой список, а не ошибку.
	ListTransactionsByUserID(ctx context.Context, userID int64) ([]domain.Transaction, error)

	// ListTransactionsForSummary получает транзакции пользователя без связанных
	// сущностей — для агрегата достаточно типа и суммы
	ListTransactionsForSummary(ctx context.Context, userID int64) ([]domain.Transaction, error)

	// CountTransactionsByUserID / CountTransactionsByCategoryID нужны для
	// запрета удаления сущностей, на которые ещё ссылаются транзакции
	CountTransactionsByUserID(ctx context.Context, userID int64) (int64, error)
	CountTransactionsByCategoryID(ctx context.Context, categoryID int64) (int64, error)

	DeleteTransaction(ctx context.Context, id int64) error
}
