package usecase

import (
	"context"

	"github.com/GoArmGo/FinanceApp/internal/domain"
)

// isoDateLayout — формат календарных дат во входных данных (birthdate, date транзакции)
const isoDateLayout = "2006-01-02"

// CreateUserInput — данные для регистрации пользователя.
// Приходят уже структурно проверенными из слоя валидации.
type CreateUserInput struct {
	Email     string
	Document  string
	Password  string
	Birthdate *string // ISO-дата, опционально
	Fullname  *string
}

// UpdateUserInput — частичное обновление пользователя, nil-поля не трогаются
type UpdateUserInput struct {
	Email     *string
	Document  *string
	Password  *string
	Birthdate *string
	Fullname  *string
}

// CreateCategoryInput — данные для создания категории
type CreateCategoryInput struct {
	Name string
}

// UpdateCategoryInput — частичное обновление категории
type UpdateCategoryInput struct {
	Name *string
}

// CreateTransactionInput — данные для создания транзакции
type CreateTransactionInput struct {
	Title         string
	CategoryID    int64
	Description   *string
	AmountInCents int64
	UserID        int64
	Date          string // ISO-дата
	Type          domain.TransactionType
}

// UpdateTransactionInput — частичное обновление транзакции, nil-поля не трогаются
type UpdateTransactionInput struct {
	Title         *string
	CategoryID    *int64
	Description   *string
	AmountInCents *int64
	UserID        *int64
	Date          *string
	Type          *domain.TransactionType
}

// UserUseCase определяет бизнес-логику работы с пользователями
type UserUseCase interface {
	// CreateUser регистрирует пользователя; возвращает ConflictError,
	// если email или document уже заняты. Пароль хешируется до сохранения.
	CreateUser(ctx context.Context, in CreateUserInput) (*domain.User, error)

	// GetUserByID возвращает пользователя или NotFoundError
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)

	// FindUserByEmail возвращает пользователя или nil без ошибки —
	// используется смежными слоями аутентификации
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListUsers возвращает всех пользователей
	ListUsers(ctx context.Context) ([]domain.User, error)

	// UpdateUser меняет только переданные поля; при смене email/document
	// повторно проверяет уникальность, исключая самого пользователя
	UpdateUser(ctx context.Context, id int64, in UpdateUserInput) (*domain.User, error)

	// DeleteUser удаляет пользователя; ConflictError, если на него ещё
	// ссылаются транзакции
	DeleteUser(ctx context.Context, id int64) error
}

// CategoryUseCase определяет бизнес-логику работы с категориями
type CategoryUseCase interface {
	CreateCategory(ctx context.Context, in CreateCategoryInput) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, id int64, in UpdateCategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

// TransactionUseCase определяет бизнес-логику работы с транзакциями и сводкой
type TransactionUseCase interface {
	// CreateTransaction проверяет существование пользователя и категории
	// (именно в этом порядке) и сохраняет транзакцию
	CreateTransaction(ctx context.Context, in CreateTransactionInput) (*domain.Transaction, error)

	// GetTransactionByID возвращает транзакцию со связанными User/Category
	GetTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error)

	// ListTransactions возвращает все транзакции со связанными сущностями
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// ListTransactionsByUserID возвращает транзакции пользователя;
	// для неизвестного пользователя — пустой список, а не ошибка
	ListTransactionsByUserID(ctx context.Context, userID int64) ([]domain.Transaction, error)

	// UpdateTransaction меняет только переданные поля; новые userId/categoryId
	// обязаны ссылаться на существующие сущности
	UpdateTransaction(ctx context.Context, id int64, in UpdateTransactionInput) (*domain.Transaction, error)

	// DeleteTransaction удаляет транзакцию или возвращает NotFoundError
	DeleteTransaction(ctx context.Context, id int64) error

	// GetTransactionSummary считает агрегат по транзакциям пользователя.
	// Неизвестный пользователь даёт нулевую сводку.
	GetTransactionSummary(ctx context.Context, userID int64) (*domain.Summary, error)
}
